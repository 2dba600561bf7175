// Command dosecurve compares the AACE insulin dosing formulas with
// alternative regression models over a range of total daily doses.
//
// Usage:
//
//	dosecurve explore [flags]   evaluate a user-built formula
//	dosecurve results [flags]   compare a precomputed model with AACE
//	dosecurve catalog           list the BMI/CHO combinations
//	dosecurve pack [flags]      compress results files
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/dosecurve/internal/config"
	"github.com/arloliu/dosecurve/internal/logging"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type command struct {
	summary string
	run     func(app *app, args []string) error
}

var commands = map[string]command{
	"explore": {"evaluate a user-built formula against the AACE reference", runExplore},
	"results": {"compare a precomputed model with the AACE reference", runResults},
	"catalog": {"list the BMI/CHO combinations offered for comparison", runCatalog},
	"pack":    {"compress results files (zstd, s2 or lz4)", runPack},
}

var commandOrder = []string{"explore", "results", "catalog", "pack"}

// app carries the output streams and the per-invocation configuration.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return 2
		}

		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)

		return 2
	}

	a := &app{stdout: stdout, stderr: stderr}
	if err := cmd.run(a, args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "dosecurve %s: %v\n", args[0], err)

		return 1
	}

	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: dosecurve <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].summary)
	}
}

// newFlagSet returns a flag set carrying the shared configuration flags.
func (a *app) newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	config.BindFlags(fs)

	return fs
}

// setup parses args, then loads the configuration and builds the logger.
func (a *app) setup(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger, err := logging.New(a.stderr, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("command", fs.Name()))

	return nil
}
