// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"os"

	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(source *string, createDir *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Source directory to scan").
				Description("Go package directory with annotated config structs").
				Placeholder("./internal/config").
				Validate(requiredValidator("source directory")).
				Value(source),
		),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("If the source directory does not exist").
				Options(
					huh.NewOption("Create it", true),
					huh.NewOption("Abort", false),
				).
				Height(3).
				Value(createDir),
		).WithHideFunc(func() bool {
			_, err := os.Stat(*source)
			return err == nil
		}),
	).WithTheme(Theme()).Run()
}
