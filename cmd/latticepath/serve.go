package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticepath/metrics"
	"github.com/katalvlaran/latticepath/server"
)

func newServeCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve searches over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, s)
		},
	}
	f := cmd.Flags()
	f.String("addr", ":8080", "listen address")
	f.Int64("max-body", server.DefaultMaxBody, "largest accepted request body in bytes")
	f.Duration("search-timeout", server.DefaultSearchTimeout, "per-request search time limit")
	return cmd
}

func runServe(cmd *cobra.Command, s *settings) error {
	v := s.v
	if v.GetInt64("max-body") <= 0 || v.GetDuration("search-timeout") <= 0 {
		return fmt.Errorf("max-body and search-timeout must be positive")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	srv := server.New(metrics.New(reg), reg,
		server.WithMaxBody(v.GetInt64("max-body")),
		server.WithSearchTimeout(v.GetDuration("search-timeout")),
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, v.GetString("addr"))
}
