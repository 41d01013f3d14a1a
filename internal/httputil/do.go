// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/forkify/pkg/types"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Do executes req and reads the whole body, racing the exchange against a
// timer of length timeout. The body is consumed inside the race so that the
// returned Response stays valid after the losing timer cancels the shared
// context.
//
// Transport and read failures wrap types.ErrNetwork; the timer wraps
// types.ErrTimeout. Status codes are not interpreted here.
func Do(ctx context.Context, client *http.Client, req *http.Request, timeout time.Duration) (*Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	fetch := func(ctx context.Context) (*Response, error) {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrNetwork, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: reading response body: %v", types.ErrNetwork, err)
		}
		return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
	}

	if timeout <= 0 {
		return fetch(ctx)
	}
	return WithTimeout(ctx, timeout, fetch)
}
