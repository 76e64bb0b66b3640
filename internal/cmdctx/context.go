// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package cmdctx provides project context loading for CLI commands.
package cmdctx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/confdocs/internal/config"
)

var (
	// ErrNotInitialized indicates no confdocs.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a confdocs project (confdocs.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the name of the confdocs configuration file.
const ConfigFileName = "confdocs.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the loaded project configuration.
type Context struct {
	// Config is the parsed confdocs.yaml.
	Config *config.Config
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the project Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	projCtx := &Context{
		Config: cfg,
	}

	return context.WithValue(ctx, contextKey{}, projCtx), nil
}

// From extracts the project Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if projCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return projCtx
	}
	return nil
}
