package dto

import "github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"

type AgendaItemDTO struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name"`
	ServiceType string  `json:"service_type"`
	Value       float64 `json:"value"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
}

type AgendaDayDTO struct {
	Date     calendar.Date   `json:"date"`
	Services []AgendaItemDTO `json:"services"`
}

type AgendaDTO struct {
	From calendar.Date  `json:"from"`
	To   calendar.Date  `json:"to"`
	Days []AgendaDayDTO `json:"days"`
}
