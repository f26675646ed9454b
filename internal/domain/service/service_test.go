package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
	"github.com/BruksfildServices01/pest-control-api/internal/optional"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"PENDING", StatusPending, true},
		{"pendente", StatusPending, true},
		{"Completed", StatusCompleted, true},
		{"CONCLUIDO", StatusCompleted, true},
		{"pago", StatusCompleted, true},
		{"cancelled", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStatus(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	s, err := New("s1", Input{
		ClientID:    "c1",
		Date:        "2026-10-20T09:00:00-03:00",
		ServiceType: "  Desinsetização - Baratas ",
	}, now)
	require.NoError(t, err)

	require.Equal(t, string(StatusPending), s.Status)
	require.Equal(t, 0.0, s.Value)
	require.Equal(t, calendar.Date("2026-10-20"), s.Date)
	require.Equal(t, "Desinsetização - Baratas", s.ServiceType)
	require.Equal(t, now, s.UpdatedAt)
}

func TestNew_Validation(t *testing.T) {
	base := Input{ClientID: "c1", Date: "2026-10-20", ServiceType: "Cupim"}

	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"missing client", func(in *Input) { in.ClientID = " " }, "client_id"},
		{"bad date", func(in *Input) { in.Date = "20/20/2026" }, "date"},
		{"short type", func(in *Input) { in.ServiceType = "x" }, "service_type"},
		{"negative value", func(in *Input) { in.Value = floatPtr(-1) }, "value"},
		{"unknown status", func(in *Input) { in.Status = strPtr("CANCELLED") }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := New("s1", in, time.Now())

			var be httperr.BusinessError
			require.ErrorAs(t, err, &be)
			require.Equal(t, httperr.KindValidation, be.Kind)
			require.Contains(t, be.Fields, tt.field)
		})
	}
}

func TestApply(t *testing.T) {
	created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	s, err := New("s1", Input{ClientID: "c1", Date: "2026-10-05", ServiceType: "Cupim", Value: floatPtr(150)}, created)
	require.NoError(t, err)

	later := created.Add(time.Hour)
	require.NoError(t, Apply(s, Patch{
		Status:      optional.Of("CONCLUIDO"),
		Value:       optional.Of(200.0),
		ServiceType: optional.Of(" Cupim de solo "),
		Notes:       optional.Null[string](),
	}, later))

	require.Equal(t, string(StatusCompleted), s.Status)
	require.Equal(t, 200.0, s.Value)
	require.Equal(t, "Cupim de solo", s.ServiceType)
	require.Equal(t, later, s.UpdatedAt)

	clientID, ok := Patch{ClientID: optional.Of(" c2 ")}.NewClientID()
	require.True(t, ok)
	require.Equal(t, "c2", clientID)
}

func TestApply_RejectsAndKeepsOriginal(t *testing.T) {
	s, err := New("s1", Input{ClientID: "c1", Date: "2026-10-05", ServiceType: "Cupim"}, time.Now())
	require.NoError(t, err)
	before := *s

	err = Apply(s, Patch{Value: optional.Of(-10.0)}, time.Now().Add(time.Hour))
	require.Error(t, err)
	require.Equal(t, before, *s)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("pendente", "2026-10-01", "31/10/2026", " c1 ")
	require.NoError(t, err)
	require.Equal(t, Filter{Status: StatusPending, From: "2026-10-01", To: "2026-10-31", ClientID: "c1"}, f)

	_, err = ParseFilter("done", "bad", "", "")
	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	require.Contains(t, be.Fields, "status")
	require.Contains(t, be.Fields, "from")
}

func TestFilter_Matches(t *testing.T) {
	s := &models.Service{ClientID: "c1", Date: "2026-10-15", Status: string(StatusCompleted)}

	require.True(t, Filter{}.Matches(s))
	require.True(t, Filter{From: "2026-10-15", To: "2026-10-15"}.Matches(s))
	require.False(t, Filter{From: "2026-10-16"}.Matches(s))
	require.False(t, Filter{To: "2026-10-14"}.Matches(s))
	require.False(t, Filter{Status: StatusPending}.Matches(s))
	require.False(t, Filter{ClientID: "c2"}.Matches(s))
}
