package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumistore/backoffice/internal/upstream"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
	"github.com/lumistore/backoffice/pkg/log"
)

func TestAwaitReadiness_RetriesUntilHealthy(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/healthz", r.URL.Path)
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("upstream", srv.URL))

	err := upstream.AwaitReadiness(context.Background(), client, log.NewStub())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAwaitReadiness_GivesUpOnCancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("upstream", srv.URL))
	err := upstream.AwaitReadiness(ctx, client, log.NewStub())
	assert.Error(t, err)
}
