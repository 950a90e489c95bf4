package http

import (
	"strconv"
	"strings"

	commonerrors "github.com/idyllic-labs/idyllic-api/internal/common/errors"
)

// PathSegment returns the single path segment following prefix. The second
// result is false when the segment is empty or the path has further segments.
func PathSegment(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	segment := strings.TrimPrefix(path, prefix)
	if segment == "" || strings.Contains(segment, "/") {
		return "", false
	}
	return segment, true
}

// ParseUserID extracts the integer id segment following prefix. A segment
// that is not an integer yields ErrInvalidUserID; a missing or nested
// segment yields ErrRouteNotMatched.
func ParseUserID(path, prefix string) (int, error) {
	segment, ok := PathSegment(path, prefix)
	if !ok {
		return 0, commonerrors.ErrRouteNotMatched
	}

	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, commonerrors.ErrInvalidUserID.WithCause(err)
	}

	return id, nil
}
