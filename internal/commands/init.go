// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/confdocs/internal/cmdctx"
	"github.com/dacolabs/confdocs/internal/config"
	"github.com/dacolabs/confdocs/internal/prompts"
	"github.com/spf13/cobra"
)

type initOptions struct {
	source         string
	createDir      bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new confdocs project",
		Long: `Initialize a new confdocs project with a confdocs.yaml configuration file.
The source directory it records is scanned by generate and check when no
package paths are given on the command line.`,
		Example: `  # Interactive mode
  confdocs init

  # Non-interactive
  confdocs init --source ./internal/config --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Directory scanned for annotated config structs")
	cmd.Flags().BoolVar(&opts.createDir, "create-source", false, "Create the source directory when it does not exist")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --source)")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, cmdctx.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("confdocs.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.source == "" {
			return errors.New("non-interactive mode requires --source")
		}
	} else {
		if err := prompts.RunInitForm(&opts.source, &opts.createDir); err != nil {
			return err
		}
	}

	sourceDir := opts.source
	if !filepath.IsAbs(sourceDir) {
		sourceDir = filepath.Join(cwd, sourceDir)
	}

	if _, err := os.Stat(sourceDir); os.IsNotExist(err) {
		if !opts.createDir {
			return fmt.Errorf("source directory not found: %s", opts.source)
		}
		if err := os.MkdirAll(sourceDir, 0o750); err != nil {
			return fmt.Errorf("failed to create source directory: %w", err)
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Source:  opts.source,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: cmdctx.ConfigFileName},
		{Label: "Source", Value: opts.source},
	}, "✓ Project initialized")

	return nil
}
