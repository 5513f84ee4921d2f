package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"dayplan/internal/instrumentation"
	"dayplan/internal/logging"
	"dayplan/internal/server"
)

func newWatchCmd() *cobra.Command {
	var schedule, metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run a periodic refresh loop with Prometheus metrics",
		Long: `Keep the local caches warm by refreshing events and emails on a cron
schedule. Prometheus metrics are served on a dedicated port while the
loop runs. Stops cleanly on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(schedule, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron schedule for refreshes (default from config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Metrics server address (default from config)")
	return cmd
}

func runWatch(schedule, metricsAddr string) error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	instrConfig := instrumentation.ConfigFromEnv()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(ctx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer shutdownCancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "error during instrumentation shutdown: %v\n", err)
		}
	}()

	eng, err := newEngine(provider.Metrics())
	if err != nil {
		return err
	}
	logger := logging.WithService(eng.logger, "watch")

	if schedule == "" {
		schedule = eng.conf.RefreshCron
	}
	if metricsAddr == "" {
		metricsAddr = eng.conf.MetricsAddr
	}

	var metricsServer *server.MetricsServer
	if provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsAddr,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			logger.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	refresh := func() {
		refreshOnce(ctx, eng, provider.Metrics(), logger)
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(schedule, refresh); err != nil {
		return fmt.Errorf("failed to parse refresh schedule %q: %w", schedule, err)
	}

	// Warm the caches immediately instead of waiting for the first tick.
	refresh()
	scheduler.Start()
	logger.Info("watch loop running", "schedule", schedule)

	<-ctx.Done()
	logger.Info("shutting down")

	// Stop returns a context that is done once running jobs finish.
	<-scheduler.Stop().Done()

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down metrics server: %w", err)
		}
	}

	return nil
}

// refreshOnce runs a single refresh cycle. Failures are logged and
// counted, never fatal: the cached state stays usable and the next tick
// retries.
func refreshOnce(ctx context.Context, eng *engine, metrics *instrumentation.Metrics, logger *slog.Logger) {
	result := instrumentation.ResultSuccess

	if _, err := eng.store.Refresh(ctx); err != nil {
		logger.Warn("event refresh failed", logging.Err(err))
		result = instrumentation.ResultError
	}
	if _, err := eng.mail.Fetch(ctx); err != nil {
		logger.Warn("email fetch failed", logging.Err(err))
		result = instrumentation.ResultError
	}

	metrics.RecordWatchCycle(ctx, result)
	logger.Debug("refresh cycle complete", logging.Status(result))
}
