package dto

import "github.com/BruksfildServices01/pest-control-api/internal/optional"

type CreateClientRequest struct {
	Name         string  `json:"name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Neighborhood *string `json:"neighborhood"`
	Email        *string `json:"email"`
}

type UpdateClientRequest struct {
	Name         optional.Field[string] `json:"name"`
	Phone        optional.Field[string] `json:"phone"`
	Address      optional.Field[string] `json:"address"`
	City         optional.Field[string] `json:"city"`
	Neighborhood optional.Field[string] `json:"neighborhood"`
	Email        optional.Field[string] `json:"email"`
}
