package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/latticepath/metrics"
	"github.com/katalvlaran/latticepath/problem"
	"github.com/katalvlaran/latticepath/search"
)

func newSolveCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem file and write the answer",
		Long: `Reads a problem (text format, or a YAML/JSON document when the input ends in
.yaml, .yml or .json) and writes the answer. An unreachable finish or an
endpoint that is not a node is answered with FAIL, not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, s)
		},
	}
	f := cmd.Flags()
	f.String("input", "input.txt", "problem file, - for stdin")
	f.String("output", "output.txt", "answer file, - for stdout")
	f.String("strategy", "", "override the problem's strategy (BFS, UCS, A*)")
	f.String("format", "text", "answer format: text, yaml or json")
	f.String("metrics-file", "", "write Prometheus metrics to this file after solving")
	f.Duration("timeout", 0, "abort the search after this long (0 disables)")
	return cmd
}

func runSolve(cmd *cobra.Command, s *settings) error {
	v := s.v
	format, err := problem.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}

	p, err := readProblem(cmd, v.GetString("input"))
	if err != nil {
		return err
	}
	if name := v.GetString("strategy"); name != "" {
		if p.Strategy, err = search.ParseStrategy(name); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if d := v.GetDuration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)

	g := p.Grid()
	klog.V(2).InfoS("Solving", "strategy", p.Strategy, "nodes", g.Len(), "edges", g.EdgeCount(),
		"start", p.Start, "finish", p.Finish)
	res, serr := collector.Solve(g, p.Strategy, search.WithContext(ctx))
	switch {
	case serr == nil:
		klog.InfoS("Path found", "strategy", p.Strategy, "cost", res.Cost, "length", res.Length,
			"explored", res.Stats.Explored)
	case errors.Is(serr, search.ErrFailed):
		klog.InfoS("No path", "strategy", p.Strategy, "reason", serr)
	default:
		return serr
	}

	err = writeOutput(cmd, v.GetString("output"), func(w io.Writer) error {
		if format == problem.FormatText {
			return problem.WriteSolution(w, res, serr)
		}
		data, err := problem.MarshalSolution(p.Strategy, res, serr, format)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	if err != nil {
		return err
	}

	if path := v.GetString("metrics-file"); path != "" {
		if err = metrics.WriteTextfile(path, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// readProblem decodes path as a document when its extension says so and as
// the text format otherwise.
func readProblem(cmd *cobra.Command, path string) (*problem.Problem, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return problem.DecodeDocument(data)
	default:
		return problem.Decode(in)
	}
}
