package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	pkghttp "github.com/lumistore/backoffice/pkg/http"
	"github.com/lumistore/backoffice/pkg/log"
)

const (
	readinessPath       = "/healthz"
	readinessMaxElapsed = time.Minute
)

// AwaitReadiness blocks until the upstream API answers its health
// endpoint, giving up after the backoff budget. Used at startup only,
// regular requests are never retried this way.
func AwaitReadiness(ctx context.Context, client pkghttp.Client, logger log.Logger) error {
	ping := func() error {
		resp, err := client.NewRequest(ctx).Get(readinessPath)
		if err != nil {
			return err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("upstream responded %d", resp.StatusCode())
		}
		return nil
	}

	notify := func(err error, next time.Duration) {
		logger.WithError(err).WithField("nextAttemptIn", next.String()).
			Warn(ctx, "upstream is not ready yet")
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = readinessMaxElapsed

	err := backoff.RetryNotify(ping, backoff.WithContext(policy, ctx), notify)
	if err != nil {
		return fmt.Errorf("await upstream readiness: %w", err)
	}

	return nil
}
