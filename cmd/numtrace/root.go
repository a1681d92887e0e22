package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the per-invocation state shared by all commands: the viper
// instance the flags, environment and config file are merged into, and the
// output streams.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

func newApp() *app {
	return &app{v: viper.New(), stdout: os.Stdout, stderr: os.Stderr, log: zerolog.Nop()}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numtrace",
		Short: "Numerical methods that show their work",
		Long: `numtrace runs classical numerical methods (bisection, secant, LU,
Gauss elimination, Jacobi, Gauss-Seidel, RK2) and prints every arithmetic
step taken to reach the result.

Settings are read from flags, NUMTRACE_* environment variables and a
numtrace.yaml config file in the working directory or ~/.config/numtrace.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default numtrace.yaml in . or ~/.config/numtrace)")
	pf.StringP("output", "o", "text", "output format: text or json")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("log-level", "warn", "log level: trace, debug, info, warn, error, disabled")
	pf.Duration("timeout", 0, "abort a computation after this long (0 = no limit)")

	cmd.AddCommand(
		a.bisectCmd(),
		a.secantCmd(),
		a.directCmd("lu", "Solve a linear system by LU (Doolittle) decomposition"),
		a.directCmd("gauss", "Solve a linear system by Gauss elimination with partial pivoting"),
		a.iterativeCmd("jacobi", "Solve a linear system by Jacobi iteration"),
		a.iterativeCmd("seidel", "Solve a linear system by Gauss-Seidel iteration"),
		a.rk2Cmd(),
		a.runCmd(),
		a.versionCmd(),
	)

	return cmd
}

// setup binds the executing command's flags, loads the config file and
// configures colors and logging.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("NUMTRACE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := a.readConfig(); err != nil {
		return err
	}

	if a.v.GetBool("no-color") || !isTerminal(a.stdout) {
		color.NoColor = true
	}

	level, err := zerolog.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	var w io.Writer = a.stderr
	if isTerminal(a.stderr) {
		w = zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.Kitchen, NoColor: color.NoColor}
	}
	a.log = zerolog.New(w).Level(level).With().Timestamp().Logger()

	return nil
}

func (a *app) readConfig() error {
	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
	} else {
		a.v.SetConfigName("numtrace")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "numtrace"))
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// context returns the command context carrying the logger and the
// configured timeout.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = a.log.WithContext(ctx)
	if d := a.v.GetDuration("timeout"); d > 0 {
		return context.WithTimeout(ctx, d)
	}

	return context.WithCancel(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
