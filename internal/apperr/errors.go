package apperr

import "errors"

var (
	// ErrConfig reports a malformed method template at registry load time.
	ErrConfig = errors.New("invalid method configuration")
	// ErrPoolExhausted reports that selection cannot fill the role plan
	// under the current diversity constraints.
	ErrPoolExhausted = errors.New("candidate pool exhausted")
	ErrNotFound      = errors.New("not found")
)
