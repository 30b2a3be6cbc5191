// Package mega implements the MEGA request protocol: the batched JSON-array
// command envelope, the password-login handshake, and the session-scoped
// file operations built on it.
package mega

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotLoggedIn is returned by session-scoped calls made before a
// successful Login. The call fails locally; no request is sent.
var ErrNotLoggedIn = errors.New("mega: not logged in")

// TransportError reports a failed network exchange: either the request never
// completed (Err is set, StatusCode is zero) or the server answered with a
// non-2xx status.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mega: request failed: %v", e.Err)
	}

	return fmt.Sprintf("mega: HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a 2xx response whose body violates the command
// envelope: not JSON, not an array, or an array of unexpected shape.
// The raw body is preserved for diagnostics.
type ProtocolError struct {
	Reason string
	Body   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("mega: protocol error: %s: %q", e.Reason, e.Body)
}

// APIError is a structurally valid response signaling a server-side
// rejection, carried as the protocol's numeric result code. The codes are
// not mapped to names here; callers get the raw value.
type APIError struct {
	Code int64
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mega: API error %d", e.Code)
}

// AuthError is a login response that carries no session identifier. The raw
// response element is preserved so callers can inspect the server's reason.
type AuthError struct {
	Response json.RawMessage
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("mega: login rejected: %s", string(e.Response))
}
