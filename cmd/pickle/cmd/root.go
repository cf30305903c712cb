//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package cmd implements the pickle command line tool: a REPL and a
// script runner built around the pickle interpreter, structured the
// way vippsas-sqlcode/cli/cmd lays out its root command and
// subcommands.
package cmd

import (
	"bufio"
	"errors"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/moneytech/pickle/internal/config"
	"github.com/moneytech/pickle/internal/host"
	"github.com/moneytech/pickle/pickle"
)

// maxDepthFlag is a pflag.Value for "--max-depth": a non-negative
// integer, where zero means "leave the configured value alone"
// instead of the usual bare-int flag's "always overrides".
type maxDepthFlag struct{ n *int }

func (f maxDepthFlag) String() string { return strconv.Itoa(*f.n) }

func (f maxDepthFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.New("max-depth must not be negative")
	}
	*f.n = n
	return nil
}

func (f maxDepthFlag) Type() string { return "int" }

var _ pflag.Value = maxDepthFlag{}

var (
	rootCmd = &cobra.Command{
		Use:          "pickle",
		Short:        "pickle",
		SilenceUsage: true,
		Long: `pickle is an embeddable, minimal command-oriented scripting
interpreter in the Tcl family. Invoked with no arguments it starts an
interactive REPL; "pickle run <script>" evaluates a file and exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(newInterp())
		},
	}

	configPath  string
	verbose     bool
	maxDepth    int
	debugTokens bool

	logger = logrus.New()
)

// Execute runs the root command, parsing os.Args.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().Var(maxDepthFlag{&maxDepth}, "max-depth", "override the configured maximum recursion depth (0 keeps it)")
	rootCmd.PersistentFlags().BoolVar(&debugTokens, "debug-tokens", false, "print the lexer's token stream of a script before \"run\" evaluates it")

	cobra.OnInitialize(func() {
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	})
	return rootCmd.Execute()
}

// newInterp builds an interpreter from the configured limits and host
// bindings, logging the limits it started with.
func newInterp() *pickle.Interp {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.WithError(err).Warn("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}
	limits := cfg.ToLimits()
	if maxDepth > 0 {
		limits.MaxDepth = maxDepth
	}

	in := pickle.NewInterpWithLimits(limits)
	bindings := &host.Bindings{
		Stdout:       os.Stdout,
		Stdin:        bufio.NewReader(os.Stdin),
		EnableExit:   cfg.Host.EnableExit,
		EnableSystem: cfg.Host.EnableSystem,
		Logger:       logger,
	}
	if err := bindings.Register(in); err != nil {
		logger.WithError(err).Warn("failed to register host commands")
	}
	logger.WithFields(logrus.Fields{
		"max_depth": limits.MaxDepth,
		"max_argc":  limits.MaxArgc,
	}).Debug("interpreter ready")
	return in
}
