package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/statespace/pkg/adapters/http"
	"github.com/aretw0/statespace/pkg/observability"
	"github.com/aretw0/statespace/pkg/solver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the puzzle catalogue, plans and exploration graphs as a JSON API over
HTTP, with Prometheus metrics on /metrics. Plans are cached in memory, or in
Redis when --redis-addr is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		watch, _ := cmd.Flags().GetBool("watch")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		// Create a context that cancels on interrupt signal
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		reg, loader, err := loadRegistry(ctx, cmd)
		if err != nil {
			return err
		}

		promReg := prometheus.NewRegistry()
		promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(promReg)

		mgr, cleanup := newManager(cmd, reg, logger, solver.WithPuzzleHooks(metrics.Hooks))
		defer cleanup()

		if watch && loader != nil {
			go func() {
				if err := mgr.Watch(ctx, loader, loader); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("Watch stopped", "err", err)
				}
			}()
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(mgr, httpAdapter.WithLogger(logger), httpAdapter.WithMetrics(promReg)),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting Statespace Server", "addr", srv.Addr, "puzzles", len(reg.List()))
			serverErrors <- srv.ListenAndServe()
		}()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			return err

		case <-ctx.Done():
			logger.Info("Start shutdown...")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "err", err)
				return srv.Close()
			}
			logger.Info("Statespace Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Bool("watch", false, "Reload definitions of --dir when they change")
}
