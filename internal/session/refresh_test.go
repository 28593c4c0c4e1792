package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumistore/backoffice/internal/pkg/auth"
	"github.com/lumistore/backoffice/internal/session"
)

func TestRefresher_Refresh_RenewsSession(t *testing.T) {
	t.Parallel()

	credential := staffCredential(t, "staff-42", auth.RoleSale, time.Now().Add(time.Hour))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/refresh", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": string(credential),
			"userId":       "staff-42",
			"role":         string(auth.RoleSale),
		})
	}))
	defer srv.Close()

	store := session.NewStore()
	refresher := session.NewRefresher(testHTTPClient(srv.URL), "/auth/refresh", store)

	require.NoError(t, refresher.Refresh(context.Background()))

	current, status := store.Get()
	assert.Equal(t, session.StatusAuthenticated, status)
	assert.Equal(t, "staff-42", current.UserID)
	assert.Equal(t, auth.RoleSale, current.Role)
	assert.Equal(t, credential, current.Credential)
}

func TestRefresher_Refresh_FailureClearsSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := session.NewStore()
	require.NoError(t, store.Set(session.Session{
		UserID:     "staff-42",
		Role:       auth.RoleSale,
		Credential: "stale-credential",
	}))

	refresher := session.NewRefresher(testHTTPClient(srv.URL), "/auth/refresh", store)

	err := refresher.Refresh(context.Background())
	assert.ErrorIs(t, err, session.ErrRefreshFailed)

	_, status := store.Get()
	assert.Equal(t, session.StatusAnonymous, status)
}

func TestRefresher_Refresh_CoalescesConcurrentCallers(t *testing.T) {
	t.Parallel()

	const waiters = 5

	credential := staffCredential(t, "staff-42", auth.RoleAdmin, time.Now().Add(time.Hour))

	var calls atomic.Int32
	firstEntered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			close(firstEntered)
			<-release
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": string(credential),
			"userId":       "staff-42",
			"role":         string(auth.RoleAdmin),
		})
	}))
	defer srv.Close()

	store := session.NewStore()
	refresher := session.NewRefresher(testHTTPClient(srv.URL), "/auth/refresh", store)

	errs := make(chan error, waiters)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- refresher.Refresh(context.Background())
	}()

	<-firstEntered
	for range waiters - 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- refresher.Refresh(context.Background())
		}()
	}

	// let the late callers reach the shared in-flight attempt
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())

	_, status := store.Get()
	assert.Equal(t, session.StatusAuthenticated, status)
}

func TestRefresher_Refresh_WaiterHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	firstEntered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(firstEntered)
		<-release
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := session.NewStore()
	refresher := session.NewRefresher(testHTTPClient(srv.URL), "/auth/refresh", store)

	go func() {
		_ = refresher.Refresh(context.Background())
	}()
	<-firstEntered

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := refresher.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
}
