package session

import (
	"time"

	"github.com/lumistore/backoffice/internal/pkg/auth"
)

type Status int

const (
	StatusUninitialized Status = iota
	StatusResolving
	StatusAuthenticated
	StatusAnonymous
)

// Credential is the opaque artifact proving identity to the upstream API.
// The gateway reads its claims but never verifies the signature,
// verification belongs to the upstream.
type Credential string

type Session struct {
	UserID     string
	Role       auth.Role
	Credential Credential
	ExpiresAt  time.Time
}

// IsComplete reports whether the identity pair is fully populated.
// UserID and Role are either both set or both empty, a session
// with only one of them is never stored.
func (s Session) IsComplete() bool {
	return s.UserID != "" && s.Role != ""
}
