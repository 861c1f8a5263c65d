package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nativebind/nativebind-go/pkg/cheb"
)

var functions = map[string]cheb.Func{
	"cos":   math.Cos,
	"sin":   math.Sin,
	"exp":   math.Exp,
	"abs":   math.Abs,
	"runge": func(x float64) float64 { return 1 / (1 + 25*x*x) },
}

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a function with a native Chebyshev series",
	Long: `Fit a named function over [from, to] with a native Chebyshev series of
the given order, then report the largest absolute error over evenly spaced
points. With --reference the native coefficients are also compared with the
pure-Go fit.`,
	Args: cobra.NoArgs,
	RunE: runFit,
}

func init() {
	fitCmd.Flags().StringP("func", "f", "cos", "Function to fit: "+strings.Join(functionNames(), ", "))
	fitCmd.Flags().IntP("order", "n", 40, "Series order (order+1 coefficients)")
	fitCmd.Flags().Float64("from", 0, "Interval start")
	fitCmd.Flags().Float64("to", math.Pi, "Interval end")
	fitCmd.Flags().Int("points", 100, "Number of evaluation intervals")
	fitCmd.Flags().Bool("reference", false, "Compare with the pure-Go fit")
	rootCmd.AddCommand(fitCmd)
}

func functionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runFit(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("func")
	order, _ := cmd.Flags().GetInt("order")
	a, _ := cmd.Flags().GetFloat64("from")
	b, _ := cmd.Flags().GetFloat64("to")
	points, _ := cmd.Flags().GetInt("points")
	reference, _ := cmd.Flags().GetBool("reference")

	f, ok := functions[name]
	if !ok {
		return fmt.Errorf("unknown function %q: use one of %s", name, strings.Join(functionNames(), ", "))
	}
	if points < 1 {
		return fmt.Errorf("points must be positive, got %d", points)
	}

	out := cmd.OutOrStdout()
	return cheb.With(order, func(s *cheb.Series) error {
		if err := s.Init(f, a, b); err != nil {
			return err
		}

		worst, at := 0.0, a
		for i := 0; i <= points; i++ {
			x := a + (b-a)*float64(i)/float64(points)
			if e := math.Abs(s.Eval(x) - f(x)); e > worst {
				worst, at = e, x
			}
		}

		fmt.Fprintf(out, "backend:   %s\n", cheb.Backend())
		fmt.Fprintf(out, "function:  %s on [%g, %g]\n", name, a, b)
		fmt.Fprintf(out, "order:     %d\n", s.Order())
		fmt.Fprintf(out, "max error: %.3e at x=%g\n", worst, at)

		if reference {
			ref, err := cheb.FitCoefficients(f, order, a, b)
			if err != nil {
				return err
			}
			native := s.Coefficients()
			diff := 0.0
			for j := range ref.C {
				diff = math.Max(diff, math.Abs(ref.C[j]-native.C[j]))
			}
			fmt.Fprintf(out, "reference: max coefficient difference %.3e\n", diff)
		}
		return nil
	}, cheb.WithLogger(newLogger(cmd)))
}
