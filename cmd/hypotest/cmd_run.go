package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/TomTonic/hypotest"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// scenarioFile is the on-disk format read by `hypotest run`.
type scenarioFile struct {
	Tests []hypotest.TestConfig `yaml:"tests"`
}

// powerPoint is the power of a test at one true parameter value.
type powerPoint struct {
	TrueValue   float64 `json:"true_value" yaml:"true_value"`
	ErrorTypeII float64 `json:"error_type_ii" yaml:"error_type_ii"`
	Power       float64 `json:"power" yaml:"power"`
}

// testResult is one evaluated scenario.
type testResult struct {
	Name             string `json:"name" yaml:"name"`
	hypotest.Summary `yaml:",inline"`
	Power            []powerPoint `json:"power,omitempty" yaml:"power,omitempty"`
}

func newRunCommand() *cobra.Command {
	var format string
	var workers int

	cmd := &cobra.Command{
		Use:   "run <scenarios.yaml>",
		Short: "Evaluate the tests listed in a scenario file",
		Long: `Evaluate every test listed in a YAML scenario file.

Each entry names a test kind (mean, variance or proportion), its samples or
summary inputs, the null value, significance level and alternative. Entries with
a power_at list also get the power of the test at each listed true value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := loadScenarios(args[0])
			if err != nil {
				return err
			}
			return evaluateAndPrint(cmd.OutOrStdout(), configs, format, workers)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.GOMAXPROCS(0), "Number of tests evaluated in parallel")

	return cmd
}

func loadScenarios(path string) ([]hypotest.TestConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var sf scenarioFile
	if err := dec.Decode(&sf); err != nil {
		return nil, &hypotest.Error{Kind: hypotest.ConfigurationError, Op: "loadScenarios", Message: path, Err: err}
	}
	if len(sf.Tests) == 0 {
		return nil, &hypotest.Error{Kind: hypotest.ConfigurationError, Op: "loadScenarios", Message: path + " lists no tests"}
	}
	return sf.Tests, nil
}

func evaluateAndPrint(w io.Writer, configs []hypotest.TestConfig, format string, workers int) error {
	if format != "table" && format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format %q: must be table, json or yaml", format)
	}
	results, err := evaluateAll(configs, workers)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}
	printResultTable(w, results)
	return nil
}

// evaluateAll builds every test concurrently. Results keep the order of configs.
func evaluateAll(configs []hypotest.TestConfig, workers int) ([]testResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]testResult, len(configs))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, cfg := range configs {
		g.Go(func() error {
			logger := slog.Default().With("test", cfg.Name)
			t, err := hypotest.Build(cfg, logger)
			if err != nil {
				return fmt.Errorf("test %q: %w", cfg.Name, err)
			}
			r := testResult{Name: cfg.Name, Summary: t.Summary()}
			for _, v := range cfg.PowerAt {
				beta, err := t.ErrorTypeII(v)
				if err != nil {
					return fmt.Errorf("test %q: power at %v: %w", cfg.Name, v, err)
				}
				r.Power = append(r.Power, powerPoint{TrueValue: v, ErrorTypeII: beta, Power: 1 - beta})
			}
			logger.LogAttrs(context.Background(), slog.LevelInfo, "test done", t.Attrs()...)
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printResultTable(w io.Writer, results []testResult) {
	row := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", padRight(label, 22), value)
	}
	for _, r := range results {
		fmt.Fprintln(w, strings.Repeat("=", 70))
		fmt.Fprintf(w, " %s\n", r.Name)
		fmt.Fprintf(w, " %s\n", r.Description)
		fmt.Fprintln(w, strings.Repeat("-", 70))
		row("Distribution", r.Distribution)
		row("Null value", fmt.Sprint(r.NullValue))
		row("Alternative", r.Alternative.String())
		row("Significance", fmt.Sprint(r.Significance))
		row("Statistic", fmt.Sprintf("%.6f", r.Statistic))
		row("Critical values", formatFloats(r.CriticalValues))
		row("P-value", fmt.Sprintf("%.6f", r.PValue))
		row("Reject H0", fmt.Sprint(r.Reject))
		for _, e := range r.SamplingEstimates {
			row(e.Name, fmt.Sprintf("%.6g", e.Value))
		}
		if len(r.Power) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  %s %s %s\n", padRight("True value", 14), padRight("Type II", 14), "Power")
			for _, p := range r.Power {
				fmt.Fprintf(w, "  %-14.6g %-14.6f %.6f\n", p.TrueValue, p.ErrorTypeII, p.Power)
			}
		}
	}
	fmt.Fprintln(w, strings.Repeat("=", 70))
}

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%.6f", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
