package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lumistore/backoffice/internal/pkg/auth"
)

var (
	ErrCredentialInvalid = errors.New("credential is malformed")
	ErrCredentialExpired = errors.New("credential is expired")
)

type Claims struct {
	UserID    string
	Role      auth.Role
	ExpiresAt time.Time
}

type credentialClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeCredential reads identity claims from a self-contained credential.
// The signature is deliberately not verified here: the upstream API is the
// only party holding the signing key and rejects tampered tokens itself.
func DecodeCredential(credential Credential) (Claims, error) {
	var claims credentialClaims
	_, _, err := jwt.NewParser().ParseUnverified(string(credential), &claims)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrCredentialInvalid, err)
	}

	role, err := auth.ParseRole(claims.Role)
	if err != nil || claims.UserID == "" {
		return Claims{}, fmt.Errorf("%w: incomplete identity claims", ErrCredentialInvalid)
	}

	if claims.ExpiresAt == nil {
		return Claims{}, fmt.Errorf("%w: expiry claim is missing", ErrCredentialInvalid)
	}
	if !claims.ExpiresAt.Time.After(time.Now()) {
		return Claims{}, ErrCredentialExpired
	}

	return Claims{
		UserID:    claims.UserID,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
