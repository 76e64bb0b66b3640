// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dacolabs/confdocs/internal/cmdctx"
	"github.com/dacolabs/confdocs/internal/docgen"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confdocs",
		Short: "Keep generated configuration reference tables in sync with Go source",
		Long: `confdocs scans Go packages for annotated configuration structs and
maintains markdown reference tables inside marker-delimited regions of
documentation files.`,
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolveSources returns the directories to scan: positional arguments
// when given, the source from confdocs.yaml otherwise.
func resolveSources(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	ctx, err := cmdctx.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, cmdctx.ErrNotInitialized) {
			return nil, errors.New("no source directories: pass package paths or run confdocs init")
		}
		return nil, err
	}

	projCtx := cmdctx.From(ctx)
	if projCtx.Config.Source == "" {
		return nil, errors.New("confdocs.yaml has no source directory; pass package paths explicitly")
	}

	return []string{projCtx.Config.Source}, nil
}

// reportPending prints a line for every generation request that is still
// waiting on an unregistered dependency.
func reportPending(engine *docgen.Engine) {
	for _, req := range engine.Pending() {
		missing := engine.Missing(req.Definition)
		fmt.Printf("  skipped %s -> %s (waiting on: %s)\n",
			req.Definition.Name, req.Output.Target, strings.Join(missing, ", "))
	}
}

// flattenErrors expands a joined error into its individual messages.
func flattenErrors(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}
