package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/sofakit/internal/presentation/tui"
	httpAdapter "github.com/aretw0/sofakit/pkg/adapters/http"
	"github.com/aretw0/sofakit/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  `Serves the catalog, descriptor builder and plan endpoints over HTTP, with Prometheus metrics on /metrics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			promReg := prometheus.NewRegistry()
			promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics, err := observability.NewMetrics(promReg)
			if err != nil {
				return err
			}
			metrics.ObserveRegistry(a.kit.Registry())

			store, closeStore := openStore(a.cfg.Store)
			defer closeStore()

			handler := httpAdapter.NewHandler(a.kit.Registry(),
				httpAdapter.WithStore(store),
				httpAdapter.WithMetrics(metrics, promReg),
				httpAdapter.WithLogger(a.logger),
			)

			srv := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			if tui.IsTerminal(os.Stderr) {
				tui.PrintBanner(os.Stderr)
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("starting sofakit server", "address", srv.Addr, "kinds", a.kit.Registry().Len(), "store", a.cfg.Store.Backend)
				serverErrors <- srv.ListenAndServe()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)

			case <-ctx.Done():
				a.logger.Info("shutdown signal received")

				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
					if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("error killing server: %w", err)
					}
				}
				a.logger.Info("sofakit server stopped gracefully")
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Address to listen on (default from config, :8080)")
	return cmd
}
