package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

var ErrRefreshFailed = errors.New("session refresh failed")

// Refresher silently renews the credential without user interaction.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type identityResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"userId"`
	Role        string `json:"role"`
}

func (r identityResponse) toSession() (Session, error) {
	claims, err := DecodeCredential(Credential(r.AccessToken))
	if err != nil {
		return Session{}, fmt.Errorf("decode renewed credential: %w", err)
	}

	return Session{
		UserID:     claims.UserID,
		Role:       claims.Role,
		Credential: Credential(r.AccessToken),
		ExpiresAt:  claims.ExpiresAt,
	}, nil
}

type refreshAttempt struct {
	done chan struct{}
	err  error
}

type coalescedRefresher struct {
	client      pkghttp.Client
	refreshPath string
	store       *Store

	mu      sync.Mutex
	pending *refreshAttempt
}

// NewRefresher renews the session against the upstream refresh endpoint.
// Concurrent callers share a single in-flight renewal: the first caller
// performs the call, the rest wait on its outcome. Without coalescing,
// parallel renewals can invalidate each other's tokens upstream.
func NewRefresher(client pkghttp.Client, refreshPath string, store *Store) Refresher {
	return &coalescedRefresher{
		client:      client,
		refreshPath: refreshPath,
		store:       store,
	}
}

func (r *coalescedRefresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if attempt := r.pending; attempt != nil {
		r.mu.Unlock()
		select {
		case <-attempt.done:
			return attempt.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	attempt := &refreshAttempt{done: make(chan struct{})}
	r.pending = attempt
	r.mu.Unlock()

	attempt.err = r.refresh(ctx)

	r.mu.Lock()
	r.pending = nil
	r.mu.Unlock()
	close(attempt.done)

	return attempt.err
}

func (r *coalescedRefresher) refresh(ctx context.Context) error {
	var identity identityResponse
	resp, err := r.client.NewRequest(ctx).SetResult(&identity).Get(r.refreshPath)
	if err != nil {
		r.store.Clear()
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if !resp.IsSuccess() {
		r.store.Clear()
		return fmt.Errorf("%w: upstream responded %d", ErrRefreshFailed, resp.StatusCode())
	}

	renewed, err := identity.toSession()
	if err != nil {
		r.store.Clear()
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	if err := r.store.Set(renewed); err != nil {
		r.store.Clear()
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	return nil
}
