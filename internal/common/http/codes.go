package http

// Domain error codes live with their errors in the commonerrors package;
// only transport-level codes are defined here.
const (
	CodeUnknown          = "UNKNOWN"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)
