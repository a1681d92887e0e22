package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"

	"github.com/katalvlaran/numtrace/engine"
	"github.com/katalvlaran/numtrace/trace"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func (a *app) print(resp *engine.Response) error {
	if a.v.GetString("output") == "json" {
		return a.printJSON(resp)
	}
	a.printText(resp)

	return nil
}

// printAll prints batch results in order; failed runs are nil and skipped.
func (a *app) printAll(responses []*engine.Response) error {
	if a.v.GetString("output") == "json" {
		return a.printJSON(responses)
	}
	for i, resp := range responses {
		if resp == nil {
			continue
		}
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		a.printText(resp)
	}

	return nil
}

func (a *app) printJSON(v any) error {
	var b []byte
	var err error
	if color.NoColor {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = prettyjson.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, string(b))

	return err
}

func (a *app) printText(resp *engine.Response) {
	fmt.Fprintf(a.stdout, "%s  status: %s\n", bold(resp.Method), statusColor(resp.Status))
	if h := resp.Heading(); h != "" {
		fmt.Fprintln(a.stdout, bold(h))
	}
	for _, line := range resp.Lines() {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "error:"):
			fmt.Fprintln(a.stdout, red(line))
		case strings.HasPrefix(line, " "):
			fmt.Fprintln(a.stdout, line)
		default:
			fmt.Fprintln(a.stdout, cyan(line))
		}
	}
	if resp.Error != "" {
		fmt.Fprintln(a.stdout, red("error: "+resp.Error))
	}
	if s := summary(resp); s != "" {
		fmt.Fprintln(a.stdout, bold(s))
	}
}

func summary(resp *engine.Response) string {
	digits := resp.Method.Digits()
	switch {
	case resp.Root != nil:
		if !resp.Root.Found {
			return fmt.Sprintf("no root found after %d iterations", resp.Root.Iterations)
		}
		return fmt.Sprintf("root = %s (%d iterations)", trace.Num(resp.Root.Root, digits), resp.Root.Iterations)
	case resp.Direct != nil && len(resp.Direct.X) > 0:
		return "x = " + vector(resp.Direct.X, digits)
	case resp.Iterative != nil:
		return fmt.Sprintf("x = %s after %d iterations", vector(resp.Iterative.X, digits), resp.Iterative.Iterations)
	case resp.ODE != nil:
		return fmt.Sprintf("y(%s) = %s after %d steps",
			trace.Num(resp.ODE.FinalX, digits), trace.Num(resp.ODE.FinalY, digits), resp.ODE.Steps)
	}

	return ""
}

func vector(v []trace.Float, digits int) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = trace.Num(f, digits)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func statusColor(status string) string {
	switch status {
	case engine.StatusSolved, "converged", "exact":
		return green(status)
	case engine.StatusSingular, engine.StatusDiverged:
		return red(status)
	}

	return yellow(status)
}
