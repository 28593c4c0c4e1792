package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// GetJSON fetches a resource and decodes the successful response body.
func GetJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var result T
	_, err := c.Send(ctx, http.MethodGet, path, func(req *resty.Request) {
		req.SetResult(&result)
		if len(query) > 0 {
			req.SetQueryParamsFromValues(query)
		}
	})
	return result, err
}

// PostJSON sends a JSON body and decodes the successful response body.
func PostJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var result T
	_, err := c.Send(ctx, http.MethodPost, path, func(req *resty.Request) {
		req.SetBody(body).SetResult(&result)
	})
	return result, err
}

// PutJSON sends a JSON body and decodes the successful response body.
func PutJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var result T
	_, err := c.Send(ctx, http.MethodPut, path, func(req *resty.Request) {
		req.SetBody(body).SetResult(&result)
	})
	return result, err
}

// Delete removes a resource, the response body is discarded.
func Delete(ctx context.Context, c *Client, path string) error {
	_, err := c.Send(ctx, http.MethodDelete, path, nil)
	return err
}
