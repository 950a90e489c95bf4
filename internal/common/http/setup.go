package http

import (
	"net/http"

	"github.com/idyllic-labs/idyllic-api/internal/common/constants"
	"github.com/idyllic-labs/idyllic-api/internal/common/httpmetrics"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
)

func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware
	csp := ContentSecurityPolicyMiddleware("")

	return securityHeaders(csp(recovery(traceID(maxRequestSize(metrics.Wrap(handler))))))
}
