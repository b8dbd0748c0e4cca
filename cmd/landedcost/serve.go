package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/rshade/landedcost/internal/metrics"
	"github.com/rshade/landedcost/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var grpcAddr, metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over gRPC with a Prometheus /metrics endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("grpc-addr") {
				a.cfg.GRPCAddr = grpcAddr
			}
			if cmd.Flags().Changed("metrics-addr") {
				a.cfg.MetricsAddr = metricsAddr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC listen address; overrides config")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", `metrics listen address; "" disables; overrides config`)
	return cmd
}

// serve runs until ctx is cancelled, then drains both listeners.
func (a *app) serve(ctx context.Context) error {
	if a.cfg.GRPCAddr == "" {
		return errors.New("grpc address must not be empty")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	gs := server.NewGRPCServer(server.New(a.engine, m, a.logger))

	lis, err := net.Listen("tcp", a.cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.cfg.GRPCAddr, err)
	}

	errCh := make(chan error, 2)
	go func() {
		a.logger.Info().
			Str("addr", lis.Addr().String()).
			Int("duty_table_rows", a.engine.DutyTable().Len()).
			Str("duty_table_source", a.engine.DutyTable().Source()).
			Msg("Starting calculator service")
		if err := gs.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server failed: %w", err)
		}
	}()

	var httpServer *http.Server
	if a.cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		httpServer = &http.Server{
			Addr:              a.cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			a.logger.Info().Str("addr", a.cfg.MetricsAddr).Msg("Starting metrics endpoint")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server failed: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info().Msg("Shutting down")
	case runErr = <-errCh:
		a.logger.Error().Err(runErr).Msg("Server failed")
	}

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("Metrics shutdown failed")
		}
	}

	stopped := make(chan struct{})
	go func() {
		gs.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		gs.Stop()
	}
	return runErr
}
