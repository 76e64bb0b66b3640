// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"

	"github.com/dacolabs/confdocs/internal/docfile"
	"github.com/dacolabs/confdocs/internal/docgen"
	"github.com/dacolabs/confdocs/internal/extract"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir...]",
		Short: "Verify documentation files are up to date",
		Long: `Regenerate every requested documentation file in memory and compare the
result against the file on disk, printing a unified diff for each file
that would change. Exits non-zero when any file is out of date.

Directories default to the source recorded in confdocs.yaml.`,
		Example: `  # Check the configured source directory
  confdocs check

  # Check specific packages
  confdocs check ./internal/config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	dirs, err := resolveSources(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("Checking documentation for %d package(s)...\n", len(dirs))

	var errors []string
	var drifted []string

	update := func(target, content string) error {
		want, err := docfile.Preview(target, content)
		if err != nil {
			return err
		}

		current := ""
		if raw, readErr := os.ReadFile(target); readErr == nil { //nolint:gosec // target comes from an annotation
			current = string(raw)
		}

		if current == want {
			fmt.Printf("  %s up to date\n", target)
			return nil
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(current),
			B:        difflib.SplitLines(want),
			FromFile: target,
			ToFile:   target + " (regenerated)",
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("failed to diff %s: %w", target, err)
		}

		fmt.Print(diff)
		drifted = append(drifted, target)
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

	if len(errors) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range errors {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("failed to process %d item(s)", len(errors))
	}

	if len(drifted) > 0 {
		return fmt.Errorf("%d documentation file(s) out of date, run confdocs generate", len(drifted))
	}

	fmt.Printf("\nAll documentation up to date\n")
	return nil
}
