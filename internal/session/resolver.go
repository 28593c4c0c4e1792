package session

import (
	"context"
	"net/http"

	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type (
	// Resolver determines whether a valid session exists.
	// Resolve updates the store exactly once per call, never retries
	// and never fails to the caller: any failure is an anonymous outcome.
	Resolver interface {
		Resolve(ctx context.Context, store *Store) Session
	}

	// CredentialSource abstracts where the raw credential is kept.
	// Drop discards a credential found to be expired or malformed.
	CredentialSource interface {
		Credential() (Credential, bool)
		Drop()
	}
)

type claimsResolver struct {
	source CredentialSource
}

// NewClaimsResolver resolves the session locally by decoding the
// self-contained credential, without any upstream round trip.
func NewClaimsResolver(source CredentialSource) Resolver {
	return claimsResolver{source: source}
}

func (r claimsResolver) Resolve(_ context.Context, store *Store) Session {
	store.StartResolving()

	credential, ok := r.source.Credential()
	if !ok {
		store.Clear()
		return Session{}
	}

	claims, err := DecodeCredential(credential)
	if err != nil {
		r.source.Drop()
		store.Clear()
		return Session{}
	}

	current := Session{
		UserID:     claims.UserID,
		Role:       claims.Role,
		Credential: credential,
		ExpiresAt:  claims.ExpiresAt,
	}
	if err := store.Set(current); err != nil {
		store.Clear()
		return Session{}
	}

	return current
}

type remoteResolver struct {
	client       pkghttp.Client
	identityPath string
}

// NewRemoteResolver resolves the session with a single idempotent call
// to the upstream identity endpoint, for deployments where the
// credential is opaque to the gateway.
func NewRemoteResolver(client pkghttp.Client, identityPath string) Resolver {
	return remoteResolver{
		client:       client,
		identityPath: identityPath,
	}
}

func (r remoteResolver) Resolve(ctx context.Context, store *Store) Session {
	store.StartResolving()

	var identity identityResponse
	resp, err := r.client.NewRequest(ctx).SetResult(&identity).Get(r.identityPath)
	if err != nil || resp.StatusCode() != http.StatusOK {
		store.Clear()
		return Session{}
	}

	current, err := identity.toSession()
	if err != nil {
		store.Clear()
		return Session{}
	}

	if err := store.Set(current); err != nil {
		store.Clear()
		return Session{}
	}

	return current
}
