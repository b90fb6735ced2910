// Package service exposes CNIC validation, formatting and extraction to the
// transport layer with tracing, metrics and logging around the pure library.
package service

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pkcnic/internal/platform/metrics"
	"pkcnic/pkg/cnic"
	dErrors "pkcnic/pkg/domain-errors"
	"pkcnic/pkg/requestcontext"
)

const tracerName = "pkcnic/internal/cnic/service"

// Operation names used for spans and metric labels.
const (
	OpValidate = "validate"
	OpFormat   = "format"
	OpExtract  = "extract"
)

// ValidateResult reports the outcome of Validate. Invalid input is a normal
// result, not an error.
type ValidateResult struct {
	Identifier string
	Valid      bool
	Format     cnic.Format
	// Reason names the first rule an invalid input broke; empty when valid.
	Reason string
}

// Service wraps the cnic package for request handling.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service. Without options it logs nowhere, records no
// metrics and traces through the global OpenTelemetry provider.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Validate checks raw without failing on invalid input.
func (s *Service) Validate(ctx context.Context, raw string) (ValidateResult, error) {
	ctx, span := s.start(ctx, OpValidate)
	defer span.End()
	if err := checkContext(ctx); err != nil {
		return ValidateResult{}, err
	}

	c, err := cnic.Parse(raw)
	result := ValidateResult{Identifier: cnic.Trim(raw), Valid: err == nil}
	if err == nil {
		result.Format, _ = cnic.Detect(raw)
	} else {
		result.Reason = cnic.Reason(err)
	}
	s.record(ctx, span, OpValidate, raw, result.Reason)
	if result.Valid {
		span.SetAttributes(attribute.String("cnic.district_code", c.Info().DistrictCode))
	}
	return result, nil
}

// Format renders raw in the requested form.
func (s *Service) Format(ctx context.Context, raw string, f cnic.Format) (string, error) {
	ctx, span := s.start(ctx, OpFormat)
	defer span.End()
	if err := checkContext(ctx); err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String("cnic.format", f.String()))

	if f == cnic.FormatUnknown {
		return "", dErrors.New(dErrors.CodeValidation, "format must be one of: dashed, undashed")
	}
	if _, err := cnic.Parse(raw); err != nil {
		s.record(ctx, span, OpFormat, raw, cnic.Reason(err))
		return "", err
	}
	out, ok := cnic.FormatAs(raw, f)
	if !ok {
		return "", dErrors.New(dErrors.CodeInternal, "formatting a validated CNIC failed")
	}
	s.record(ctx, span, OpFormat, raw, "")
	return out, nil
}

// Extract decomposes raw into its fields.
func (s *Service) Extract(ctx context.Context, raw string) (cnic.Info, error) {
	ctx, span := s.start(ctx, OpExtract)
	defer span.End()
	if err := checkContext(ctx); err != nil {
		return cnic.Info{}, err
	}

	if _, err := cnic.Parse(raw); err != nil {
		s.record(ctx, span, OpExtract, raw, cnic.Reason(err))
		return cnic.Info{}, err
	}
	info, ok := cnic.ExtractInfo(raw)
	if !ok {
		return cnic.Info{}, dErrors.New(dErrors.CodeInternal, "extracting a validated CNIC failed")
	}
	s.record(ctx, span, OpExtract, raw, "")
	return info, nil
}

func (s *Service) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "cnic."+op,
		trace.WithAttributes(attribute.String("request_id", requestcontext.RequestID(ctx))),
	)
}

// record emits the metric, span attributes and debug log for one operation. An
// empty reason means the input was valid. Only format and extract mark the span
// as failed; an invalid CNIC is a successful validate.
func (s *Service) record(ctx context.Context, span trace.Span, op, raw, reason string) {
	valid := reason == ""
	s.metrics.IncrementOutcome(op, valid)
	s.metrics.IncrementRejection(reason)

	span.SetAttributes(attribute.Bool("cnic.valid", valid))
	if !valid {
		span.SetAttributes(attribute.String("cnic.reason", reason))
		if op != OpValidate {
			span.SetStatus(codes.Error, "invalid CNIC")
		}
	}

	s.logger.DebugContext(ctx, "cnic "+op,
		"request_id", requestcontext.RequestID(ctx),
		"cnic", Mask(raw),
		"valid", valid,
		"reason", reason,
	)
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "request aborted: context cancelled")
	}
	return nil
}

// Mask hides the middle of an identifier for logging, keeping the first five
// and the last character of inputs long enough to still be unidentifying.
func Mask(raw string) string {
	r := []rune(cnic.Trim(raw))
	if len(r) < 8 {
		return strings.Repeat("*", len(r))
	}
	for i := 5; i < len(r)-1; i++ {
		if r[i] != '-' {
			r[i] = '*'
		}
	}
	return string(r)
}
