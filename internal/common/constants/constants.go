package constants

import "time"

const (
	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultHTTPHost       = "127.0.0.1"
	DefaultHTTPPort       = "8000"
	DefaultRequestTimeout = 5 * time.Second

	RateLimitGeneralRequestsPerSecond  = 50
	RateLimitGeneralBurst              = 100
	RateLimitMutationRequestsPerSecond = 10
	RateLimitMutationBurst             = 20
	RateLimitCleanupInterval           = 5 * time.Minute

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
