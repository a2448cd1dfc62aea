package device

import (
	"fmt"

	"github.com/go-drift/screenlock/pkg/lock"
)

// Error codes reported by the local auth channel.
const (
	ErrCodeNotAvailable   = "not_available"
	ErrCodeNotEnrolled    = "not_enrolled"
	ErrCodePasscodeNotSet = "passcode_not_set"
	ErrCodeLockout        = "lockout"
	ErrCodeUserCancel     = "user_cancel"
	ErrCodeAuthFailed     = "auth_failed"
)

// AuthError is a structured error from the local auth channel.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "local_auth: " + e.Code
	}
	return fmt.Sprintf("local_auth: %s: %s", e.Code, e.Message)
}

// Unwrap maps the code onto the lock error taxonomy.
func (e *AuthError) Unwrap() error {
	switch e.Code {
	case ErrCodeUserCancel, ErrCodeAuthFailed:
		return lock.ErrFailed
	default:
		return lock.ErrUnavailable
	}
}
