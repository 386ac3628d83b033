//go:build !integration

package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// startServer runs s in the background and waits for its listener.
func startServer(t *testing.T, ctx context.Context, s *Server) (net.Addr, <-chan error) {
	t.Helper()
	errChan := make(chan error, 1)
	go func() { errChan <- s.Run(ctx) }()

	select {
	case addr := <-s.Ready():
		return addr, errChan
	case err := <-errChan:
		require.FailNow(t, "server failed to start", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start in time")
	}
	return nil, nil
}

func TestNewServer(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 5*time.Second, server.httpServer.ReadHeaderTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestNewServer_Options(t *testing.T) {
	tests := []struct {
		name            string
		opts            []ServerOption
		expectedTimeout time.Duration
		expectedHooks   int
	}{
		{"defaults", nil, 10 * time.Second, 0},
		{"custom timeout", []ServerOption{WithShutdownTimeout(3 * time.Second)}, 3 * time.Second, 0},
		{"non-positive timeout ignored", []ServerOption{WithShutdownTimeout(0)}, 10 * time.Second, 0},
		{"hooks", []ServerOption{WithShutdownHook(func(context.Context) {}), WithShutdownHook(func(context.Context) {})}, 10 * time.Second, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(http.NewServeMux(), "8080", tt.opts...)
			assert.Equal(t, tt.expectedTimeout, server.shutdownTimeout)
			assert.Len(t, server.onShutdown, tt.expectedHooks)
		})
	}
}

func TestServer_Run_ServesUntilContextDone(t *testing.T) {
	hookRan := make(chan struct{})
	server := NewServer(okHandler(), "0",
		WithShutdownHook(func(context.Context) { close(hookRan) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr, errChan := startServer(t, ctx, server)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", addr))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not shut down in time")
	}
	select {
	case <-hookRan:
	default:
		assert.Fail(t, "shutdown hook did not run")
	}
}

func TestServer_Run_StopsOnSIGTERM(t *testing.T) {
	server := NewServer(okHandler(), "0")
	_, errChan := startServer(t, context.Background(), server)

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(syscall.SIGTERM))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not stop on SIGTERM")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	hookRan := false
	server := NewServer(okHandler(), "invalid-port",
		WithShutdownHook(func(context.Context) { hookRan = true }),
	)

	err := server.Run(context.Background())

	assert.Error(t, err)
	assert.False(t, hookRan)
}

func TestServer_Shutdown_RunsHooksInOrder(t *testing.T) {
	var order []string
	server := NewServer(http.NewServeMux(), "0",
		WithShutdownHook(func(context.Context) { order = append(order, "cart") }),
		WithShutdownHook(func(ctx context.Context) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			order = append(order, "database")
		}),
	)

	require.NoError(t, server.Shutdown())
	assert.Equal(t, []string{"cart", "database"}, order)
}
