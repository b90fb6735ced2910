package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pkcnic/internal/cnic/service"
	"pkcnic/pkg/cnic"
	dErrors "pkcnic/pkg/domain-errors"
	"pkcnic/pkg/platform/httputil"
	"pkcnic/pkg/requestcontext"
)

// Service defines the interface for CNIC operations.
type Service interface {
	Validate(ctx context.Context, raw string) (service.ValidateResult, error)
	Format(ctx context.Context, raw string, f cnic.Format) (string, error)
	Extract(ctx context.Context, raw string) (cnic.Info, error)
}

// Handler wires CNIC endpoints to the CNIC service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a CNIC handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts CNIC endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/cnic/validate", h.HandleValidate)
	r.Post("/cnic/format", h.HandleFormat)
	r.Post("/cnic/extract", h.HandleExtract)
}

// HandleValidate handles POST /cnic/validate. An invalid CNIC is a 200 with
// valid=false.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CNICRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Validate(ctx, req.Value())
	if err != nil {
		h.fail(ctx, w, "cnic validation failed", requestID, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromValidateResult(result, requestcontext.Now(ctx)))
}

// HandleFormat handles POST /cnic/format.
func (h *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FormatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	formatted, err := h.service.Format(ctx, req.Value(), req.ParsedFormat())
	if err != nil {
		h.fail(ctx, w, "cnic formatting failed", requestID, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &FormatResponse{
		CNIC:      cnic.Trim(req.Value()),
		Formatted: formatted,
	})
}

// HandleExtract handles POST /cnic/extract.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CNICRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	info, err := h.service.Extract(ctx, req.Value())
	if err != nil {
		h.fail(ctx, w, "cnic extraction failed", requestID, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, info)
}

// fail logs client errors at warn and everything else at error before writing
// the error response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg, requestID string, err error) {
	if dErrors.HasCode(err, dErrors.CodeInvalidInput) || dErrors.HasCode(err, dErrors.CodeValidation) {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestID,
			"reason", cnic.Reason(err),
		)
	} else {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestID,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
