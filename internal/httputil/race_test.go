// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pdiddy/forkify/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRace_FirstSuccessWins(t *testing.T) {
	fast := func(ctx context.Context) (string, error) { return "fast", nil }
	slow := func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "slow", ctx.Err()
	}

	got, err := Race(context.Background(), slow, fast)
	require.NoError(t, err)
	assert.Equal(t, "fast", got)
}

func TestRace_FirstFailureWins(t *testing.T) {
	boom := errors.New("boom")
	failing := func(ctx context.Context) (int, error) { return 0, boom }
	slow := func(ctx context.Context) (int, error) {
		select {
		case <-time.After(time.Second):
			return 1, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	_, err := Race(context.Background(), failing, slow)
	assert.ErrorIs(t, err, boom)
}

func TestRace_CancelsLosers(t *testing.T) {
	var cancelled atomic.Bool
	done := make(chan struct{})
	loser := func(ctx context.Context) (int, error) {
		defer close(done)
		<-ctx.Done()
		cancelled.Store(true)
		return 0, ctx.Err()
	}
	winner := func(ctx context.Context) (int, error) { return 7, nil }

	got, err := Race(context.Background(), winner, loser)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loser was not cancelled")
	}
	assert.True(t, cancelled.Load())
}

func TestRace_NoTasks(t *testing.T) {
	_, err := Race[int](context.Background())
	assert.Error(t, err)
}

func TestAfter_Fires(t *testing.T) {
	_, err := After[int](5*time.Millisecond)(context.Background())
	assert.ErrorIs(t, err, types.ErrTimeout)
	assert.Contains(t, err.Error(), "timeout after")
}

func TestAfter_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := After[int](time.Hour)(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeout(t *testing.T) {
	tests := []struct {
		name    string
		delay   time.Duration
		timeout time.Duration
		wantErr error
	}{
		{"task settles first", 0, time.Second, nil},
		{"timer settles first", time.Second, 10 * time.Millisecond, types.ErrTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := func(ctx context.Context) (string, error) {
				select {
				case <-time.After(tt.delay):
					return "ok", nil
				case <-ctx.Done():
					return "", ctx.Err()
				}
			}
			got, err := WithTimeout(context.Background(), tt.timeout, task)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", got)
		})
	}
}

func TestDo_ReadsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := Do(context.Background(), ts.Client(), req, time.Second)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"status":"success"}`, string(resp.Body))
}

func TestDo_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = Do(context.Background(), ts.Client(), req, 20*time.Millisecond)
	assert.ErrorIs(t, err, types.ErrTimeout)
}

func TestDo_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	_, err = Do(context.Background(), http.DefaultClient, req, time.Second)
	assert.ErrorIs(t, err, types.ErrNetwork)
}
