package main

import (
	"github.com/TomTonic/hypotest"
	"github.com/spf13/cobra"
)

func newDemoCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Evaluate a built-in set of example tests",
		Long: `Evaluate one example of every supported test on reproducible synthetic
samples: two Normal samples of 25 values with means 5 and 4.6 and standard
deviation 6, and proportions 0.43 of 250 and 0.5 of 300.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluateAndPrint(cmd.OutOrStdout(), demoScenarios(), format, 1)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")

	return cmd
}

func demoScenarios() []hypotest.TestConfig {
	sample01 := &hypotest.SampleSpec{Mean: 5, StdDev: 6, N: 25, Seed: 1}
	sample02 := &hypotest.SampleSpec{Mean: 4.6, StdDev: 6, N: 25, Seed: 2}
	left, right := hypotest.Left, hypotest.Right

	return []hypotest.TestConfig{
		{
			Name:      "one mean",
			Kind:      "mean",
			GenerateX: sample01,
			NullValue: ptr(5.0),
			PowerAt:   []float64{2, 4, 6, 8},
		},
		{
			Name:           "two means",
			Kind:           "mean",
			GenerateX:      sample01,
			GenerateY:      sample02,
			Significance:   ptr(0.07),
			Alternative:    &left,
			EqualVariances: true,
			PowerAt:        []float64{-5, -4, -3, -2, -1},
		},
		{
			Name:         "one variance",
			Kind:         "variance",
			GenerateX:    sample01,
			NullValue:    ptr(36.0),
			Significance: ptr(0.08),
			Alternative:  &right,
			PowerAt:      []float64{40, 60, 80, 100},
		},
		{
			Name:      "two variances",
			Kind:      "variance",
			GenerateX: sample01,
			GenerateY: sample02,
		},
		{
			Name:        "one proportion",
			Kind:        "proportion",
			P1:          ptr(0.43),
			N1:          ptr(250),
			NullValue:   ptr(0.4),
			Alternative: &right,
			PowerAt:     []float64{0.45, 0.5},
		},
		{
			Name:         "two proportions",
			Kind:         "proportion",
			P1:           ptr(0.43),
			N1:           ptr(250),
			P2:           ptr(0.5),
			N2:           ptr(300),
			Significance: ptr(0.1),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
