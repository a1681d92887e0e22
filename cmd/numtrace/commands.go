package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/numtrace/engine"
)

func (a *app) bisectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bisect",
		Short: "Find a root by bisection after an automatic bracket search",
		Example: `  numtrace bisect
  numtrace bisect --equation "x**2 - 2" --decimals 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, engine.MethodBisection)
		},
	}
	rootFlags(cmd.Flags())

	return cmd
}

func (a *app) secantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "secant",
		Short:   "Find a root by the secant method from two seeds",
		Example: `  numtrace secant --equation "x**2 - 2" --x0 1 --x1 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, engine.MethodSecant)
		},
	}
	f := cmd.Flags()
	rootFlags(f)
	f.Float64("x0", 0, "first seed (default 2)")
	f.Float64("x1", 0, "second seed (default 3)")
	f.Int("max-iterations", 0, "iteration budget (default 50)")

	return cmd
}

func (a *app) directCmd(name, short string) *cobra.Command {
	method, _ := engine.ParseMethod(name)
	cmd := &cobra.Command{
		Use:     name,
		Short:   short,
		Example: fmt.Sprintf(`  numtrace %s --matrix "2,1,5; 1,3,10"`, name),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, method)
		},
	}
	f := cmd.Flags()
	systemFlags(f)
	f.Int("precision", 0, "decimal places kept in intermediate values, -1 for none (default 6)")

	return cmd
}

func (a *app) iterativeCmd(name, short string) *cobra.Command {
	method, _ := engine.ParseMethod(name)
	cmd := &cobra.Command{
		Use:     name,
		Short:   short,
		Example: fmt.Sprintf(`  numtrace %s --tolerance 1e-6 --max-iterations 100`, name),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, method)
		},
	}
	f := cmd.Flags()
	systemFlags(f)
	f.Float64("tolerance", 0, "stop when every component moves less than this (default 1e-4)")
	f.Int("max-iterations", 0, "sweep budget (default 50)")
	f.Int("precision", 0, "decimal places kept per sweep, -1 for none (default 6)")

	return cmd
}

func (a *app) rk2Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rk2",
		Short:   "Integrate dy/dx = f(x, y) with the second-order Runge-Kutta (Heun) method",
		Example: `  numtrace rk2 --equation "x + y" --y0 1 --h 0.1 --target-x 0.5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, engine.MethodRK2)
		},
	}
	f := cmd.Flags()
	f.StringP("equation", "e", "", "right-hand side f(x, y) (default \"x + y\")")
	f.Float64("x0", 0, "initial x")
	f.Float64("y0", 0, "initial y (default 1)")
	f.Float64("h", 0, "step size (default 0.2)")
	f.Float64("target-x", 0, "x to integrate up to (default 0.4)")
	f.StringP("input", "i", "", "read the problem from a YAML file")

	return cmd
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run every problem listed in a YAML file concurrently",
		Long: `run reads a YAML file holding either one problem or a list under
"problems:", runs them concurrently and prints each result in order.

  problems:
    - method: bisection
      equation: x**2 - 2
    - method: seidel
      matrix: [[4, 1, 9], [1, 3, 7]]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := loadRequests(args[0], "")
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			responses, runErr := engine.RunAll(ctx, reqs)
			if err := a.printAll(responses); err != nil {
				return err
			}

			return runErr
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.v.GetString("output") == "json" {
				return a.printJSON(map[string]string{"version": version, "commit": commit, "date": date})
			}
			_, err := fmt.Fprintf(a.stdout, "numtrace %s (commit %s, built %s)\n", version, commit, date)
			return err
		},
	}
}

// solve builds the request for method from defaults, --input, config,
// environment and flags (in increasing precedence), runs it and prints it.
func (a *app) solve(cmd *cobra.Command, method engine.Method) error {
	req, err := a.request(method)
	if err != nil {
		return err
	}
	ctx, cancel := a.context(cmd)
	defer cancel()
	resp, err := engine.Run(ctx, req)
	if err != nil {
		return err
	}

	return a.print(resp)
}

func rootFlags(f *pflag.FlagSet) {
	f.StringP("equation", "e", "", "function of x (default \"x**3 - x**2 + x - 7\")")
	f.Int("decimals", 0, "decimal places of the result (default 4)")
	f.StringP("input", "i", "", "read the problem from a YAML file")
}

func systemFlags(f *pflag.FlagSet) {
	f.StringP("matrix", "m", "", "augmented matrix, rows separated by ';', values by ',' or spaces")
	f.StringP("input", "i", "", "read the problem from a YAML file")
}
