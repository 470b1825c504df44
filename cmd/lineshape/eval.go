package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/internal/config"
	"github.com/cwbudde/algo-lineshape/internal/logging"
	"github.com/cwbudde/algo-lineshape/lineshape/model"
)

type evalFlags struct {
	configFile string
	from, to   float64
	num        int
	params     []string
	resampling string
	csv        bool
	plot       bool
}

func newEvalCmd() *cobra.Command {
	var f evalFlags

	cmd := &cobra.Command{
		Use:   "eval [model]",
		Short: "evaluate a model on an evenly spaced grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveEvalConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return runEval(cmd.OutOrStdout(), cfg, f)
		},
	}

	cmd.Flags().StringVar(&f.configFile, "config", "", "run file (yaml)")
	cmd.Flags().Float64Var(&f.from, "from", config.DefaultFrom, "grid start")
	cmd.Flags().Float64Var(&f.to, "to", config.DefaultTo, "grid end")
	cmd.Flags().IntVar(&f.num, "num", config.DefaultNum, "number of grid points")
	cmd.Flags().StringArrayVarP(&f.params, "param", "p", nil, "parameter as name=value (repeatable)")
	cmd.Flags().StringVar(&f.resampling, "resampling", "", "resampling mode (linear|hermite)")
	cmd.Flags().BoolVar(&f.csv, "csv", false, "write CSV")
	cmd.Flags().BoolVar(&f.plot, "plot", false, "draw a terminal plot")
	return cmd
}

// resolveEvalConfig layers explicit flags over the run file over defaults.
func resolveEvalConfig(cmd *cobra.Command, f evalFlags, args []string) (*config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Model = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("from") {
		cfg.Grid.From = f.from
	}
	if flags.Changed("to") {
		cfg.Grid.To = f.to
	}
	if flags.Changed("num") {
		cfg.Grid.Num = f.num
	}
	if flags.Changed("resampling") {
		cfg.Engine.Resampling = f.resampling
	}

	params, err := parseParams(f.params)
	if err != nil {
		return nil, err
	}
	for k, v := range params {
		cfg.Params[k] = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseParams(pairs []string) (model.Params, error) {
	p := make(model.Params, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("param %q: want name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", pair, err)
		}
		p[strings.TrimSpace(name)] = v
	}
	return p, nil
}

func linspace(from, to float64, num int) []float64 {
	return floats.Span(make([]float64, num), from, to)
}

func runEval(out io.Writer, cfg *config.Config, f evalFlags) error {
	m, err := model.Lookup(cfg.Model)
	if err != nil {
		return err
	}

	x := linspace(cfg.Grid.From, cfg.Grid.To, cfg.Grid.Num)
	opts := append(cfg.EngineOptions(), core.WithLogger(logging.Logger))

	logging.Logger.Debug("evaluating", "model", m.Name, "points", len(x), "params", cfg.Params)
	y, err := m.Eval(x, cfg.Params, opts...)
	if err != nil {
		return err
	}

	switch {
	case f.plot:
		fmt.Fprintln(out, asciigraph.Plot(y,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s on [%g, %g]", m.Name, cfg.Grid.From, cfg.Grid.To)),
		))
		return nil
	case f.csv:
		return writeCSV(out, x, y)
	default:
		return writeTable(out, x, y)
	}
}

func writeCSV(out io.Writer, x, y []float64) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range x {
		rec := []string{
			strconv.FormatFloat(x[i], 'g', -1, 64),
			strconv.FormatFloat(y[i], 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeTable(out io.Writer, x, y []float64) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "x\ty\t")
	for i := range x {
		fmt.Fprintf(tw, "%.6g\t%.6g\t\n", x[i], y[i])
	}
	return tw.Flush()
}
