package handler

import (
	"time"

	"pkcnic/internal/cnic/service"
)

// ValidateResponse is the HTTP response for POST /cnic/validate.
type ValidateResponse struct {
	CNIC      string    `json:"cnic"`
	Valid     bool      `json:"valid"`
	Format    string    `json:"format,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// FromValidateResult converts a service result to an HTTP response.
func FromValidateResult(result service.ValidateResult, checkedAt time.Time) *ValidateResponse {
	resp := &ValidateResponse{
		CNIC:      result.Identifier,
		Valid:     result.Valid,
		Reason:    result.Reason,
		CheckedAt: checkedAt.UTC(),
	}
	if result.Valid {
		resp.Format = result.Format.String()
	}
	return resp
}

// FormatResponse is the HTTP response for POST /cnic/format.
type FormatResponse struct {
	CNIC      string `json:"cnic"`
	Formatted string `json:"formatted"`
}
