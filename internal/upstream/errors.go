package upstream

import "errors"

var (
	// ErrUnauthenticated means the credential is missing, invalid or
	// expired and a silent refresh could not fix it.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the credential is valid but the role does not
	// grant the requested operation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means the upstream has no such resource.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is a transport or timeout failure.
	ErrUnavailable = errors.New("upstream is unavailable")
	// ErrServer is an upstream 5xx or a malformed response.
	ErrServer = errors.New("upstream internal error")
)
