//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command sha256sum prints and checks SHA-256 checksums.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	flagSet := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.str, "string", "s", "",
		"hash the argument string instead of files")
	flagSet.StringVarP(&opts.check, "check", "c", "",
		"read checksums from file and verify them")
	flagSet.StringVar(&opts.selftest, "selftest", "",
		"run known-answer vectors from the YAML file")
	flagSet.Lookup("selftest").NoOptDefVal = builtinVectors
	flagSet.BoolVar(&opts.timing, "timing", false,
		"print the pipeline stage timings")
	flagSet.BoolVar(&opts.trace, "trace", false,
		"print the intermediate hash value after each block")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	cmd := &app{
		opts:   opts,
		stdin:  stdin,
		stdout: stdout,
		logger: slog.New(slog.NewTextHandler(stderr,
			&slog.HandlerOptions{Level: level})),
	}

	var err error
	var ok bool
	switch {
	case len(opts.selftest) > 0:
		ok, err = cmd.selfTest(opts.selftest)
	case len(opts.check) > 0:
		ok, err = cmd.checkFile(opts.check)
	case flagSet.Changed("string"):
		ok, err = true, cmd.printDigest(fmt.Sprintf("%q", opts.str),
			[]byte(opts.str))
	default:
		files := flagSet.Args()
		if len(files) == 0 {
			files = []string{"-"}
		}
		ok, err = true, cmd.sumFiles(files)
	}
	if err != nil {
		fmt.Fprintf(stderr, "sha256sum: %v\n", err)
		return exitError
	}
	if !ok {
		return exitMismatch
	}
	return exitOK
}
