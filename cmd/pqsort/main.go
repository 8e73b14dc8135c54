// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pqsort prints lines of text in priority order using a bounded
// max-heap. The number of lines that can be ordered is limited by the
// heap's capacity.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue/container/boundedheap"
	"cloudeng.io/pqueue/internal/pqsort"
)

// CommonFlags are the flags shared by all pqsort commands.
type CommonFlags struct {
	Config   string `subcmd:"config,,'yaml configuration file, flags given on the command line override its settings'"`
	Capacity int    `subcmd:"capacity,,maximum number of lines that can be ordered"`
	Reverse  bool   `subcmd:"reverse,false,output the lowest priority lines first"`
	Numeric  bool   `subcmd:"numeric,false,'order lines by their numeric value rather than lexically, NaN is rejected'"`
	Limit    int    `subcmd:"limit,0,'maximum number of lines to output, 0 for all'"`
	cmdutil.LoggingFlags
}

type sortFlags struct {
	CommonFlags
}

type peekFlags struct {
	CommonFlags
}

type configFlags struct {
	CommonFlags
}

var (
	cmdSet       *subcmd.CommandSet
	flagDefaults = map[string]any{"capacity": boundedheap.DefaultCapacity}

	stdout io.Writer = os.Stdout
)

func init() {
	sortCmd := subcmd.NewCommand("sort",
		subcmd.MustRegisterFlagStruct(&sortFlags{}, flagDefaults, nil),
		sortLines, subcmd.AtLeastNArguments(1))
	sortCmd.Document("print the lines in the specified files in priority order", "<file>...")

	peekCmd := subcmd.NewCommand("peek",
		subcmd.MustRegisterFlagStruct(&peekFlags{}, flagDefaults, nil),
		peekLine, subcmd.AtLeastNArguments(1))
	peekCmd.Document("print the highest priority line in the specified files", "<file>...")

	configCmd := subcmd.NewCommand("config",
		subcmd.MustRegisterFlagStruct(&configFlags{}, flagDefaults, nil),
		printConfig, subcmd.ExactlyNumArguments(0))
	configCmd.Document("print the effective configuration")

	cmdSet = subcmd.NewCommandSet(sortCmd, peekCmd, configCmd)
	cmdSet.Document(`order lines of text by priority using a fixed capacity heap.

Lines are compared lexically, or by their numeric value if --numeric is set,
and are printed highest priority first unless --reverse is set. Inputs with
more lines than --capacity are rejected.`)
}

func main() {
	if err := dispatch(context.Background(), os.Args[1:]...); err != nil {
		cmdutil.Exit("%v", err)
	}
}

type argsKey struct{}

// dispatch runs the command named by args[0]. The arguments are stored
// on the context so that explicitFlags can determine which flags were
// given on the command line.
func dispatch(ctx context.Context, args ...string) error {
	ctx = context.WithValue(ctx, argsKey{}, args)
	return cmdSet.DispatchWithArgs(ctx, "pqsort", args...)
}

// explicitFlags returns the names of the flags that appear on the command
// line stored in ctx by dispatch, whatever their values.
func explicitFlags(ctx context.Context) (map[string]bool, error) {
	set := map[string]bool{}
	args, _ := ctx.Value(argsKey{}).([]string)
	if len(args) == 0 {
		return set, nil
	}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := flags.RegisterFlagsInStruct(fs, "subcmd", &CommonFlags{}, flagDefaults, nil); err != nil {
		return nil, err
	}
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set, nil
}

// config returns the configuration obtained by applying the flags named
// in set to the contents of the config file, if one is specified, or to
// pqsort.DefaultConfig.
func (cf *CommonFlags) config(ctx context.Context, set map[string]bool) (pqsort.Config, error) {
	cfg := pqsort.DefaultConfig()
	if set["config"] && len(cf.Config) > 0 {
		var err error
		if cfg, err = pqsort.ParseConfigFile(ctx, cf.Config); err != nil {
			return pqsort.Config{}, err
		}
	}
	if set["capacity"] {
		cfg.Capacity = cf.Capacity
	}
	if set["reverse"] {
		cfg.Reverse = cf.Reverse
	}
	if set["numeric"] {
		cfg.Numeric = cf.Numeric
	}
	if set["limit"] {
		cfg.Limit = cf.Limit
	}
	if set["log-level"] {
		cfg.Logging.Level = cf.Level
	}
	if set["log-file"] {
		cfg.Logging.File = cf.File
	}
	if set["log-format"] {
		cfg.Logging.Format = cf.Format
	}
	if set["log-source-code"] {
		cfg.Logging.SourceCode = cf.SourceCode
	}
	return cfg, cfg.Validate()
}

// setup returns the configuration and a context containing a logger
// created from it.
func (cf *CommonFlags) setup(ctx context.Context, set map[string]bool) (context.Context, pqsort.Config, func(), error) {
	cfg, err := cf.config(ctx, set)
	if err != nil {
		return ctx, cfg, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, cfg, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	return ctx, cfg, func() { _ = logger.Close() }, nil
}

func readAndSort(ctx context.Context, cf *CommonFlags, args []string, fn func(context.Context, *pqsort.Sorter, []string) error) error {
	set, err := explicitFlags(ctx)
	if err != nil {
		return err
	}
	ctx, cfg, done, err := cf.setup(ctx, set)
	if err != nil {
		return err
	}
	defer done()
	sorter, err := pqsort.NewSorter(cfg)
	if err != nil {
		return err
	}
	lines, err := pqsort.ReadLines(ctx, args...)
	if err != nil {
		return err
	}
	return fn(ctx, sorter, lines)
}

func sortLines(ctx context.Context, values any, args []string) error {
	fv := values.(*sortFlags)
	return readAndSort(ctx, &fv.CommonFlags, args, func(ctx context.Context, s *pqsort.Sorter, lines []string) error {
		sorted, err := s.Sort(ctx, lines)
		if err != nil {
			return err
		}
		for _, l := range sorted {
			fmt.Fprintln(stdout, l)
		}
		return nil
	})
}

func peekLine(ctx context.Context, values any, args []string) error {
	fv := values.(*peekFlags)
	return readAndSort(ctx, &fv.CommonFlags, args, func(ctx context.Context, s *pqsort.Sorter, lines []string) error {
		top, err := s.Top(ctx, lines)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, top)
		return nil
	})
}

func printConfig(ctx context.Context, values any, _ []string) error {
	fv := values.(*configFlags)
	set, err := explicitFlags(ctx)
	if err != nil {
		return err
	}
	cfg, err := fv.config(ctx, set)
	if err != nil {
		return err
	}
	out, err := cfg.YAML()
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, out)
	return nil
}
