// Package calendar holds time-zone free calendar dates. Dates are kept as
// zero-padded ISO strings so that lexical order equals chronological order.
package calendar

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("calendar: invalid date")

// Date is a year-month-day without time of day. The zero value is the empty
// string.
type Date string

// Parse accepts YYYY-MM-DD, an ISO datetime (only the date part is kept) or
// DD/MM/YYYY.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)

	switch {
	case len(s) > 10 && s[10] == 'T':
		s = s[:10]
	case len(s) == 10 && s[2] == '/' && s[5] == '/':
		s = s[6:10] + "-" + s[3:5] + "-" + s[0:2]
	}

	if len(s) != len(Layout) {
		return "", ErrInvalidDate
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return Date(t.Format(Layout)), nil
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime takes the calendar date of t as seen in t's own location.
func FromTime(t time.Time) Date {
	return Date(t.Format(Layout))
}

func (d Date) String() string { return string(d) }

func (d Date) IsZero() bool { return d == "" }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	t, err := time.Parse(Layout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Month is the "YYYY-MM" bucket of d.
func (d Date) Month() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

func (d Date) Before(o Date) bool { return d < o }

func (d Date) After(o Date) bool { return d > o }

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
