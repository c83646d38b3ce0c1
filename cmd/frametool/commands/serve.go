package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ironcurve/lneto/internal/config"
	"github.com/ironcurve/lneto/internal/metrics"
	"github.com/ironcurve/lneto/internal/tapharness"
)

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer ARP and observe DHCPINFORM traffic on a TAP device",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return cmd
}

// runServe loads configuration, starts the Prometheus metrics endpoint
// and the TAP harness, and blocks until SIGINT/SIGTERM or either
// component fails. Grounded on the sibling gobfd daemon's
// runServers/gracefulShutdown pattern, simplified: frametool has one
// background loop and one HTTP endpoint, not a full session manager.
func runServe(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.Log.Level),
	}))
	if cfg.Log.Format == "text" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: config.ParseLogLevel(cfg.Log.Level),
		}))
	}

	hwAddr, err := parseMAC(cfg.TapDevice.HardwareAddr)
	if err != nil {
		return fmt.Errorf("parse tap.hardware_addr: %w", err)
	}
	ipAddr, err := parseIPv4(cfg.TapDevice.IPAddr)
	if err != nil {
		return fmt.Errorf("parse tap.ip_addr: %w", err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	harness := tapharness.New(tapharness.Config{
		DeviceName:   cfg.TapDevice.Name,
		HardwareAddr: hwAddr,
		IPAddr:       ipAddr,
	}, collector, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	httpServer := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("metrics server listening", "addr", cfg.Metrics.Addr, "path", cfg.Metrics.Path)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return harness.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
