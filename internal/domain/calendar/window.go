package calendar

import "time"

// Window is an inclusive date range.
type Window struct {
	From Date
	To   Date
}

// MonthWindow spans the first to the last day of the month containing now,
// as seen in now's location.
func MonthWindow(now time.Time) Window {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return Window{From: FromTime(first), To: FromTime(last)}
}

// DaysFrom spans start and the following n days.
func DaysFrom(start Date, n int) Window {
	return Window{From: start, To: start.AddDays(n)}
}

func (w Window) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return d >= w.From && d <= w.To
}

// Label is the "YYYY-MM" of the window start.
func (w Window) Label() string {
	return w.From.Month()
}
