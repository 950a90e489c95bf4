package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/idyllic-labs/idyllic-api/internal/common/constants"
	commonerrors "github.com/idyllic-labs/idyllic-api/internal/common/errors"
	"github.com/idyllic-labs/idyllic-api/internal/common/httpmetrics"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
	"github.com/idyllic-labs/idyllic-api/internal/observability/metrics"
)

// ErrorHandler converts errors to HTTP responses at the request boundary.
// With debug enabled, response bodies include the underlying cause.
type ErrorHandler struct {
	log   *logger.Logger
	debug bool
}

func NewErrorHandler(log *logger.Logger, debug bool) *ErrorHandler {
	return &ErrorHandler{log: log, debug: debug}
}

func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	ctx := r.Context()
	traceID := getTraceIDFromContext(ctx)

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		h.handleDomainError(w, r, domainErr)
		return
	}

	logFields := logger.Fields{
		"error":  err.Error(),
		"action": "unhandled_error",
	}
	if traceID != "" {
		logFields["trace_id"] = traceID
		w.Header().Set("X-Trace-ID", traceID)
	}

	h.log.WithFields(ctx, logFields).Errorf("unhandled error: %v", err)

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(http.StatusInternalServerError),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	detail := "internal server error"
	if h.debug {
		detail = err.Error()
	}
	WriteErrorEnvelope(w, http.StatusInternalServerError, CodeUnknown, detail, nil, traceID)
}

func (h *ErrorHandler) handleDomainError(w http.ResponseWriter, r *http.Request, err commonerrors.DomainError) {
	ctx := r.Context()
	traceID := getTraceIDFromContext(ctx)

	domainErr := err
	if traceID != "" && err.TraceID() == "" {
		domainErr = err.WithTraceID(traceID)
	}

	status := domainErr.HTTPStatus()
	detail := domainErr.Message()
	if h.debug && domainErr.Unwrap() != nil {
		detail = domainErr.Error()
	}

	logFields := logger.Fields{
		"error_code": domainErr.Code(),
		"category":   string(domainErr.Category()),
		"status":     status,
		"action":     "domain_error",
	}
	if traceID != "" {
		logFields["trace_id"] = traceID
	}

	if h.log.ShouldLog(logger.DEBUG) {
		h.log.WithFields(ctx, logFields).Debugf("domain error: %s", domainErr.Error())
	}

	metrics.DomainErrorsTotal.WithLabelValues(
		string(domainErr.Category()),
		domainErr.Code(),
		strconv.Itoa(status),
	).Inc()

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(status),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	if traceID != "" {
		w.Header().Set("X-Trace-ID", traceID)
	}

	var fields []commonerrors.FieldError
	if vErr, ok := commonerrors.AsValidationError(domainErr); ok {
		fields = vErr.Fields()
	}

	WriteErrorEnvelope(w, status, domainErr.Code(), detail, fields, domainErr.TraceID())
}

func getTraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, ok := ctx.Value(constants.TraceIDKey).(string)
	if !ok || traceID == "" {
		return ""
	}
	return traceID
}
