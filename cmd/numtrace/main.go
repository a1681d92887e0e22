package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var red = color.New(color.FgRed).SprintFunc()

func main() {
	if err := newApp().root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}
}
