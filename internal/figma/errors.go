package figma

import (
	"fmt"
	"net/http"
)

// ConfigError reports a missing credential or document identifier. It is
// returned before any network call is attempted.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("figma: missing required configuration: %s", e.Field)
}

// AuthError is returned on HTTP 401: the token is invalid or expired.
type AuthError struct {
	Op     string
	Detail string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("figma: %s: unauthorized (check the access token): %s", e.Op, e.Detail)
}

// PermissionError is returned on HTTP 403: the token lacks access to the file
// or team.
type PermissionError struct {
	Op     string
	Detail string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("figma: %s: forbidden: %s", e.Op, e.Detail)
}

// TransportError covers every other failed call, network errors included.
// StatusCode is zero when no response was received.
type TransportError struct {
	Op         string
	StatusCode int
	Detail     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("figma: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("figma: %s: %d %s: %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode), e.Detail)
}

func (e *TransportError) Unwrap() error { return e.Err }

// statusError maps a non-2xx response to the matching error type.
func statusError(op string, status int, detail string) error {
	switch status {
	case http.StatusUnauthorized:
		return &AuthError{Op: op, Detail: detail}
	case http.StatusForbidden:
		return &PermissionError{Op: op, Detail: detail}
	default:
		return &TransportError{Op: op, StatusCode: status, Detail: detail}
	}
}
