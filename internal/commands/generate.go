// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/confdocs/internal/docfile"
	"github.com/dacolabs/confdocs/internal/docgen"
	"github.com/dacolabs/confdocs/internal/extract"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [dir...]",
		Short: "Generate configuration reference tables into documentation files",
		Long: `Scan Go packages for confdocs annotations and rewrite the marker region
of every documentation file the annotations point at. Text outside the
markers is left untouched.

Directories default to the source recorded in confdocs.yaml.`,
		Example: `  # Scan the configured source directory
  confdocs generate

  # Scan specific packages
  confdocs generate ./internal/config ./internal/server`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args)
		},
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dirs, err := resolveSources(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("Generating documentation from %d package(s)...\n", len(dirs))

	var errors []string
	updatedCount := 0

	update := func(target, content string) error {
		if err := docfile.Update(target, content); err != nil {
			return err
		}
		fmt.Printf("  %s\n", target)
		updatedCount++
		return nil
	}

	engine := docgen.NewEngine(update)
	parser := extract.NewParser()

	for _, dir := range dirs {
		decls, parseErr := parser.ParseDir(dir)
		if parseErr != nil {
			errors = append(errors, flattenErrors(parseErr)...)
		}
		for _, decl := range decls {
			if procErr := engine.Process(decl); procErr != nil {
				errors = append(errors, flattenErrors(procErr)...)
			}
		}
	}

	reportPending(engine)

	fmt.Printf("\nSuccessfully updated %d documentation file(s)\n", updatedCount)

	if len(errors) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range errors {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("failed to process %d item(s)", len(errors))
	}

	return nil
}
