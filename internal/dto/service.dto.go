package dto

import "github.com/BruksfildServices01/pest-control-api/internal/optional"

type CreateServiceRequest struct {
	ClientID    string   `json:"client_id"`
	Date        string   `json:"date"`
	ServiceType string   `json:"service_type"`
	Value       *float64 `json:"value"`
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
}

type UpdateServiceRequest struct {
	ClientID    optional.Field[string]  `json:"client_id"`
	Date        optional.Field[string]  `json:"date"`
	ServiceType optional.Field[string]  `json:"service_type"`
	Value       optional.Field[float64] `json:"value"`
	Status      optional.Field[string]  `json:"status"`
	Notes       optional.Field[string]  `json:"notes"`
}

type ArchiveResponse struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Rows   int    `json:"rows"`
}
