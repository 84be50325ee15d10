package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/knobs"
	"github.com/aretw0/knobs/internal/presentation/tui"
	httpAdapter "github.com/aretw0/knobs/pkg/adapters/http"
	"github.com/aretw0/knobs/pkg/adapters/mcp"
	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/observability"
	"github.com/aretw0/knobs/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Addr string
	// Key, when set, restores the snapshot stored under it at startup and saves
	// the final values back on shutdown.
	Key string
	// Ready, if not nil, receives the bound address once the listener is open.
	Ready chan<- string
}

// Serve exposes the registry over HTTP until ctx is cancelled.
func Serve(ctx context.Context, w io.Writer, opts Options, serveOpts ServeOptions) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(promReg)

	// The registry already logs each assignment, so only metrics are hooked.
	loadOpts := []knobs.Option{knobs.WithHooks(metrics.Hooks())}
	var store ports.ValueStore
	if serveOpts.Key != "" {
		s, closeStore, err := OpenStore(opts)
		if err != nil {
			return err
		}
		defer closeStore()
		store = s
		loadOpts = append(loadOpts, knobs.WithStore(store, serveOpts.Key))
	}

	reg, err := BuildRegistry(ctx, opts, logger, nil, loadOpts...)
	if err != nil {
		return err
	}

	api := httpAdapter.NewServer(reg,
		httpAdapter.WithMetrics(promReg),
		httpAdapter.WithLogger(logger),
	)
	srv := &http.Server{
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", serveOpts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", serveOpts.Addr, err)
	}

	if tui.IsTerminal(w) {
		tui.PrintBanner(w, knobs.Version)
	}
	logger.Info("knobs server listening", "addr", ln.Addr().String(), "parameters", reg.Len())
	if serveOpts.Ready != nil {
		serveOpts.Ready <- ln.Addr().String()
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				logger.Error("failed to close server", "err", err)
			}
		}
	}

	if store != nil {
		// Handlers may outlive a forced Close, so values are read under the API lock.
		return persist(store, serveOpts.Key, api.Values(), logger)
	}
	return nil
}

// persist saves the final values. The serve context is already cancelled, so a
// fresh one bounds the write.
func persist(store ports.ValueStore, key string, snap *domain.Snapshot, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := store.Save(ctx, key, snap); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	logger.Info("snapshot saved", "key", key)
	return nil
}

// ServeMCP exposes the registry as MCP tools over stdio.
// Logs go to stderr so they never corrupt the JSON-RPC stream on stdout.
func ServeMCP(ctx context.Context, opts Options, key string) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}

	var loadOpts []knobs.Option
	if key != "" {
		store, closeStore, err := OpenStore(opts)
		if err != nil {
			return err
		}
		defer closeStore()
		loadOpts = append(loadOpts, knobs.WithStore(store, key))
	}

	reg, err := BuildRegistry(ctx, opts, logger, nil, loadOpts...)
	if err != nil {
		return err
	}

	logger.Info("starting knobs MCP server (stdio)", "parameters", reg.Len())
	return mcp.NewServer(reg).ServeStdio()
}
