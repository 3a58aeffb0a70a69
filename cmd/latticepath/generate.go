package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/latticepath/generator"
	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/problem"
	"github.com/katalvlaran/latticepath/search"
)

func newGenerateCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random problem file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, s)
		},
	}
	f := cmd.Flags()
	f.String("bounds", "10,10,10", "box size as x,y,z")
	f.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	f.Float64("density", generator.DefaultDensity, "probability that a cell becomes a node")
	f.String("strategy", string(generator.DefaultStrategy), "strategy written into the problem")
	f.String("output", "input.txt", "problem file, - for stdout")
	f.String("format", "text", "problem format: text, yaml or json")
	f.String("answer", "", "also solve the problem and write the text answer here")
	f.Bool("connected", false, "pick start and finish from one connected group")
	return cmd
}

func runGenerate(cmd *cobra.Command, s *settings) error {
	v := s.v
	bounds, err := parseBounds(v.GetString("bounds"))
	if err != nil {
		return err
	}
	strategy, err := search.ParseStrategy(v.GetString("strategy"))
	if err != nil {
		return err
	}
	format, err := problem.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}
	seed := v.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []generator.Option{
		generator.WithSeed(seed),
		generator.WithDensity(v.GetFloat64("density")),
		generator.WithStrategy(strategy),
	}
	if v.GetBool("connected") {
		opts = append(opts, generator.WithConnectedEndpoints())
	}
	p, err := generator.Generate(bounds, opts...)
	if err != nil {
		return err
	}
	klog.InfoS("Generated problem", "seed", seed, "bounds", bounds, "nodes", p.Declared,
		"locations", len(p.Records), "start", p.Start, "finish", p.Finish)

	err = writeOutput(cmd, v.GetString("output"), func(w io.Writer) error {
		if format == problem.FormatText {
			return problem.Encode(w, p)
		}
		data, err := problem.Marshal(problem.NewDocument(p), format)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	if err != nil {
		return err
	}

	if path := v.GetString("answer"); path != "" {
		res, serr := p.Solve(search.WithContext(cmd.Context()))
		return writeOutput(cmd, path, func(w io.Writer) error {
			return problem.WriteSolution(w, res, serr)
		})
	}
	return nil
}

// parseBounds reads "x,y,z" (commas or spaces).
func parseBounds(s string) (lattice.Coord, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == 'x' })
	if len(fields) != 3 {
		return lattice.Coord{}, fmt.Errorf("bounds %q: want three integers", s)
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return lattice.Coord{}, fmt.Errorf("bounds %q: %w", s, err)
		}
		v[i] = n
	}
	return lattice.Coord{X: v[0], Y: v[1], Z: v[2]}, nil
}
