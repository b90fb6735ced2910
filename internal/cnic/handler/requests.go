package handler

import (
	"pkcnic/pkg/cnic"
	dErrors "pkcnic/pkg/domain-errors"
)

// maxCNICFieldLen bounds the cnic field before any parsing.
const maxCNICFieldLen = 64

// CNICRequest is the HTTP request body for POST /cnic/validate and
// POST /cnic/extract.
type CNICRequest struct {
	CNIC *string `json:"cnic"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
// Blank values pass through so the service can report them as invalid CNICs.
func (r *CNICRequest) Validate() error {
	if r == nil || r.CNIC == nil {
		return dErrors.New(dErrors.CodeBadRequest, "cnic is required")
	}
	if len(*r.CNIC) > maxCNICFieldLen {
		return dErrors.New(dErrors.CodeValidation, "cnic must be at most 64 characters")
	}
	return nil
}

// Value returns the raw cnic field.
func (r *CNICRequest) Value() string {
	if r == nil || r.CNIC == nil {
		return ""
	}
	return *r.CNIC
}

// FormatRequest is the HTTP request body for POST /cnic/format.
type FormatRequest struct {
	CNICRequest
	Format string `json:"format"`

	// Parsed values (populated by Validate)
	parsedFormat cnic.Format
}

// Validate validates and parses the request.
func (r *FormatRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := r.CNICRequest.Validate(); err != nil {
		return err
	}
	f, err := cnic.ParseFormat(r.Format)
	if err != nil {
		return err
	}
	r.parsedFormat = f
	return nil
}

// ParsedFormat returns the validated target format.
func (r *FormatRequest) ParsedFormat() cnic.Format {
	return r.parsedFormat
}
