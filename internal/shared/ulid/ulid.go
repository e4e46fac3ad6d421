// Package ulid issues request ids.
package ulid

import (
	"github.com/oklog/ulid/v2"
)

// MaxRequestIDLength bounds caller supplied ids, which end up in response headers and logs.
const MaxRequestIDLength = 128

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// RequestID returns incoming when it is usable as a request id, otherwise a new ULID.
// Usable means non-empty, at most MaxRequestIDLength bytes, printable ASCII without spaces.
func RequestID(incoming string) string {
	if !isUsableRequestID(incoming) {
		return NewULID()
	}
	return incoming
}

func isUsableRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
