package service

import "strings"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// InitialStatus is used when a service is created without a status.
func InitialStatus() Status {
	return StatusPending
}

// ParseStatus is case-insensitive and accepts the Portuguese names used by
// the front office.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING", "PENDENTE":
		return StatusPending, true
	case "COMPLETED", "CONCLUIDO", "CONCLUÍDO", "PAGO":
		return StatusCompleted, true
	default:
		return "", false
	}
}

func (s Status) String() string { return string(s) }
