package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	commonerrors "github.com/idyllic-labs/idyllic-api/internal/common/errors"
)

// ErrorEnvelope is the body of every non-2xx response. Detail is always
// present; Fields lists the failing request fields on validation errors.
type ErrorEnvelope struct {
	Code    string                    `json:"code"`
	Detail  string                    `json:"detail"`
	Fields  []commonerrors.FieldError `json:"fields,omitempty"`
	TraceID string                    `json:"trace_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteErrorEnvelope(w, status, CodeUnknown, detail, nil, "")
}

func WriteErrorEnvelope(w http.ResponseWriter, status int, code, detail string, fields []commonerrors.FieldError, traceID string) {
	env := ErrorEnvelope{Code: code, Detail: detail}
	if len(fields) > 0 {
		env.Fields = fields
	}
	if traceID != "" {
		env.TraceID = traceID
	}
	WriteJSON(w, status, env)
}

func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func RequireMethod(method string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				WriteErrorEnvelope(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil, "")
				return
			}
			next(w, r)
		}
	}
}

func WithTimeout(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next(w, r.WithContext(ctx))
		}
	}
}
