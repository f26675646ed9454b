// Package dashboard computes the figures shown on the home and summary
// screens from plain service rows.
package dashboard

import (
	"sort"

	"github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

const (
	MaxTopServiceTypes = 10
	MaxMonthsRanking   = 24
)

type Summary struct {
	Month         string  `json:"month"`
	ClientsTotal  int64   `json:"clients_total"`
	ServicesMonth int     `json:"services_month"`
	PendingMonth  int     `json:"pending_month"`
	RevenueMonth  float64 `json:"revenue_month"`
}

// Summarize counts the services dated inside w. Services outside the window
// are ignored so callers may pass a wider set.
func Summarize(w calendar.Window, clientsTotal int64, services []models.Service) Summary {
	out := Summary{
		Month:        w.Label(),
		ClientsTotal: clientsTotal,
	}

	for i := range services {
		s := &services[i]
		if !w.Contains(s.Date) {
			continue
		}
		out.ServicesMonth++
		switch service.Status(s.Status) {
		case service.StatusPending:
			out.PendingMonth++
		case service.StatusCompleted:
			out.RevenueMonth += s.Value
		}
	}
	return out
}

type ServiceTypeCount struct {
	ServiceType string `json:"service_type"`
	Count       int    `json:"count"`
}

type MonthRevenue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type Insights struct {
	TotalServices       int                `json:"total_services"`
	RevenueCompleted    float64            `json:"revenue_completed"`
	BestMonth           string             `json:"best_month"`
	BestMonthValue      float64            `json:"best_month_value"`
	TopServiceType      string             `json:"top_service_type"`
	TopServiceTypeCount int                `json:"top_service_type_count"`
	TopServiceTypes     []ServiceTypeCount `json:"top_service_types"`
	MonthsRanking       []MonthRevenue     `json:"months_ranking"`
	CountByStatus       map[string]int     `json:"count_by_status"`
}

// BuildInsights aggregates over every service ever recorded. Revenue only
// counts completed services. Ties are broken by the earlier month and by
// service type name so the output is stable.
func BuildInsights(services []models.Service) Insights {
	byType := map[string]int{}
	byMonth := map[string]float64{}
	byStatus := map[string]int{
		string(service.StatusPending):   0,
		string(service.StatusCompleted): 0,
	}

	out := Insights{TotalServices: len(services)}

	for i := range services {
		s := &services[i]
		byType[s.ServiceType]++
		byStatus[s.Status]++

		if service.Status(s.Status) != service.StatusCompleted {
			continue
		}
		out.RevenueCompleted += s.Value
		if m := s.Date.Month(); m != "" {
			byMonth[m] += s.Value
		}
	}

	out.TopServiceTypes = make([]ServiceTypeCount, 0, len(byType))
	for t, n := range byType {
		out.TopServiceTypes = append(out.TopServiceTypes, ServiceTypeCount{ServiceType: t, Count: n})
	}
	sort.Slice(out.TopServiceTypes, func(i, j int) bool {
		a, b := out.TopServiceTypes[i], out.TopServiceTypes[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ServiceType < b.ServiceType
	})
	if len(out.TopServiceTypes) > MaxTopServiceTypes {
		out.TopServiceTypes = out.TopServiceTypes[:MaxTopServiceTypes]
	}
	if len(out.TopServiceTypes) > 0 {
		out.TopServiceType = out.TopServiceTypes[0].ServiceType
		out.TopServiceTypeCount = out.TopServiceTypes[0].Count
	}

	out.MonthsRanking = make([]MonthRevenue, 0, len(byMonth))
	for m, v := range byMonth {
		out.MonthsRanking = append(out.MonthsRanking, MonthRevenue{Month: m, Value: v})
	}
	sort.Slice(out.MonthsRanking, func(i, j int) bool {
		a, b := out.MonthsRanking[i], out.MonthsRanking[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Month < b.Month
	})
	if len(out.MonthsRanking) > MaxMonthsRanking {
		out.MonthsRanking = out.MonthsRanking[:MaxMonthsRanking]
	}
	if len(out.MonthsRanking) > 0 && out.MonthsRanking[0].Value > 0 {
		out.BestMonth = out.MonthsRanking[0].Month
		out.BestMonthValue = out.MonthsRanking[0].Value
	}

	out.CountByStatus = byStatus
	return out
}
