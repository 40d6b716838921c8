// SPDX-License-Identifier: Unlicense OR MIT

// Command xdgpopupdemo drives the popup core through a handful of named
// scenarios against in-process fakes for every collaborator, logging each
// protocol transition. It exercises the same paths the popup package's own
// tests do, but as a readable trace instead of assertions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	flags "github.com/jessevdk/go-flags"
)

type scenarioFunc func(*slog.Logger) error

var scenarios = map[string]scenarioFunc{
	"create-map-destroy":     scenarioCreateMapDestroy,
	"grab-before-map":        scenarioGrabBeforeMap,
	"grab-on-mapped":         scenarioGrabOnMapped,
	"destroy-non-topmost":    scenarioDestroyNonTopmost,
	"reactive-reconstrain":   scenarioReactiveReconstrain,
	"seat-destroyed-pending": scenarioSeatDestroyedDuringPendingGrab,
}

type runCmd struct {
	Verbose bool `short:"v" long:"verbose" description:"enable debug-level logging"`
}

func (c *runCmd) Execute(args []string) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if len(args) == 0 {
		for name := range scenarios {
			args = append(args, name)
		}
	}
	for _, name := range args {
		fn, ok := scenarios[name]
		if !ok {
			return fmt.Errorf("unknown scenario %q", name)
		}
		log.Info("running scenario", "name", name)
		if err := fn(log); err != nil {
			return fmt.Errorf("scenario %q: %w", name, err)
		}
	}
	return nil
}

func main() {
	parser := flags.NewNamedParser("xdgpopupdemo", flags.Default)
	if _, err := parser.AddCommand("run", "run one or more scenarios", "", &runCmd{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
