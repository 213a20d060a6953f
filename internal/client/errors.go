package client

import (
	"fmt"
	"strings"
)

// APIError is a structured remote failure: a non-200 response whose JSON
// body carried an "error" code. Code keeps the wire casing (lowercase) for
// programmatic matching; the message embeds the HTTP status and the
// uppercased code.
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] Lemmy API returned %s exception", e.Status, strings.ToUpper(e.Code))
}
