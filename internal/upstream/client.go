package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/lumistore/backoffice/internal/session"
	pkghttp "github.com/lumistore/backoffice/pkg/http"
)

// Client is the sole sanctioned way the gateway performs upstream I/O.
// It attaches the session credential to every call and handles auth
// failures centrally, feature code never touches credentials itself.
type Client struct {
	http pkghttp.Client
}

func NewClient(httpClient pkghttp.Client) *Client {
	return &Client{http: httpClient}
}

// Send performs the call with the current credential attached. A 401 or
// 403 response triggers one session refresh followed by one resend of
// the request, never more: the second auth failure clears the session
// and surfaces as ErrUnauthenticated or ErrForbidden.
func (c *Client) Send(
	ctx context.Context,
	method, path string,
	build func(*resty.Request),
) (*resty.Response, error) {
	resp, err := c.send(ctx, method, path, build)
	if err != nil {
		return nil, err
	}
	if !isAuthFailure(resp.StatusCode()) {
		return c.acceptResponse(resp)
	}

	state, ok := session.StateFromContext(ctx)
	if !ok || state.Refresher == nil {
		c.clearSession(ctx)
		return nil, authFailureError(resp.StatusCode())
	}

	if err = state.Refresher.Refresh(ctx); err != nil {
		if errors.Is(err, ctx.Err()) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	resp, err = c.send(ctx, method, path, build)
	if err != nil {
		return nil, err
	}
	if isAuthFailure(resp.StatusCode()) {
		c.clearSession(ctx)
		return nil, authFailureError(resp.StatusCode())
	}

	return c.acceptResponse(resp)
}

func (c *Client) send(
	ctx context.Context,
	method, path string,
	build func(*resty.Request),
) (*resty.Response, error) {
	req := c.http.NewRequest(ctx)
	if build != nil {
		build(req)
	}

	if state, ok := session.StateFromContext(ctx); ok {
		if current, status := state.Store.Get(); status == session.StatusAuthenticated {
			req.SetAuthToken(string(current.Credential))
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, classifySendError(err)
	}

	return resp, nil
}

func (c *Client) acceptResponse(resp *resty.Response) (*resty.Response, error) {
	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: upstream responded %d", ErrServer, resp.StatusCode())
	case resp.StatusCode() == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return resp, nil
	}
}

func (c *Client) clearSession(ctx context.Context) {
	if state, ok := session.StateFromContext(ctx); ok {
		state.Store.Clear()
	}
}

func isAuthFailure(statusCode int) bool {
	return statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden
}

func authFailureError(statusCode int) error {
	if statusCode == http.StatusForbidden {
		return ErrForbidden
	}
	return ErrUnauthenticated
}

func classifySendError(err error) error {
	var netErr net.Error
	var urlErr *url.Error
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.As(err, &netErr), errors.As(err, &urlErr):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		// resty fails here on response decoding as well
		return fmt.Errorf("%w: %w", ErrServer, err)
	}
}
