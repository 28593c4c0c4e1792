package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumistore/backoffice/internal/pkg/auth"
	"github.com/lumistore/backoffice/internal/session"
	"github.com/lumistore/backoffice/internal/upstream"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

type refresherStub struct {
	calls   atomic.Int32
	refresh func(ctx context.Context) error
}

func (r *refresherStub) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	if r.refresh == nil {
		return nil
	}
	return r.refresh(ctx)
}

func authenticatedState(t *testing.T, credential session.Credential, refresher session.Refresher) (context.Context, *session.Store) {
	t.Helper()

	store := session.NewStore()
	require.NoError(t, store.Set(session.Session{
		UserID:     "staff-42",
		Role:       auth.RoleAdmin,
		Credential: credential,
	}))

	ctx := session.WithState(context.Background(), &session.State{
		Store:     store,
		Refresher: refresher,
	})
	return ctx, store
}

func testClient(baseURL string) *upstream.Client {
	return upstream.NewClient(pkghttp.NewClient(pkghttp.WithClientDestination("upstream", baseURL)))
}

func TestClient_Send_AttachesCredential(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer current-credential", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "42"})
	}))
	defer srv.Close()

	ctx, _ := authenticatedState(t, "current-credential", &refresherStub{})

	result, err := upstream.GetJSON[map[string]string](ctx, testClient(srv.URL), "/things/42", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "42"}, result)
}

func TestClient_Send_RefreshesAndRetriesOnce(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer renewed-credential" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "42"})
	}))
	defer srv.Close()

	var store *session.Store
	refresher := &refresherStub{
		refresh: func(context.Context) error {
			return store.Set(session.Session{
				UserID:     "staff-42",
				Role:       auth.RoleAdmin,
				Credential: "renewed-credential",
			})
		},
	}

	ctx, s := authenticatedState(t, "stale-credential", refresher)
	store = s

	result, err := upstream.GetJSON[map[string]string](ctx, testClient(srv.URL), "/things/42", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "42"}, result)
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestClient_Send_FailedRefreshSurfacesUnauthenticated(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	refresher := &refresherStub{
		refresh: func(context.Context) error {
			return session.ErrRefreshFailed
		},
	}
	ctx, _ := authenticatedState(t, "stale-credential", refresher)

	_, err := upstream.GetJSON[map[string]string](ctx, testClient(srv.URL), "/things/42", nil)
	assert.ErrorIs(t, err, upstream.ErrUnauthenticated)
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestClient_Send_SecondAuthFailureClearsSession(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	ctx, store := authenticatedState(t, "current-credential", &refresherStub{})

	_, err := upstream.GetJSON[map[string]string](ctx, testClient(srv.URL), "/things/42", nil)
	assert.ErrorIs(t, err, upstream.ErrForbidden)
	assert.Equal(t, int32(2), calls.Load(), "exactly one retry after refresh")

	_, status := store.Get()
	assert.Equal(t, session.StatusAnonymous, status)
}

func TestClient_Send_AuthFailureWithoutRefresherClearsSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := session.NewStore()
	require.NoError(t, store.Set(session.Session{
		UserID:     "staff-42",
		Role:       auth.RoleAdmin,
		Credential: "current-credential",
	}))
	ctx := session.WithState(context.Background(), &session.State{Store: store})

	_, err := upstream.GetJSON[map[string]string](ctx, testClient(srv.URL), "/things/42", nil)
	assert.ErrorIs(t, err, upstream.ErrUnauthenticated)

	_, status := store.Get()
	assert.Equal(t, session.StatusAnonymous, status)
}

func TestClient_Send_MapsResponseErrors(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		expectedErr error
	}{
		{
			name:        "not_found",
			statusCode:  http.StatusNotFound,
			expectedErr: upstream.ErrNotFound,
		},
		{
			name:        "internal_error",
			statusCode:  http.StatusInternalServerError,
			expectedErr: upstream.ErrServer,
		},
		{
			name:        "bad_gateway",
			statusCode:  http.StatusBadGateway,
			expectedErr: upstream.ErrServer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
			}))
			defer srv.Close()

			_, err := upstream.GetJSON[map[string]string](context.Background(), testClient(srv.URL), "/things", nil)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestClient_Send_HungUpstreamTimesOutAsUnavailable(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	client := upstream.NewClient(pkghttp.NewClient(
		pkghttp.WithClientDestination("upstream", srv.URL),
		pkghttp.WithClientTimeout(50*time.Millisecond),
	))

	start := time.Now()
	_, err := upstream.GetJSON[map[string]string](context.Background(), client, "/things", nil)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
	assert.Less(t, time.Since(start), 5*time.Second, "call must not hang on an unresponsive upstream")
}

func TestClient_Send_UnreachableUpstreamIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	baseURL := srv.URL
	srv.Close()

	_, err := upstream.GetJSON[map[string]string](context.Background(), testClient(baseURL), "/things", nil)
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
	assert.False(t, errors.Is(err, upstream.ErrServer))
}
