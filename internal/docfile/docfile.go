// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package docfile maintains the marker-delimited region of a
// documentation file that generated reference content lives in. Text
// outside the markers is never touched.
package docfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// The markers are markdown comments and render invisibly. They are
// matched literally, anywhere in the file.
const (
	StartMarker = "[//]: # (CONFIG_DOCS_START)"
	EndMarker   = "[//]: # (CONFIG_DOCS_END)"
)

// Splice returns existing with the marker region's content replaced by
// content, padded with one blank line on each side. When either marker
// is missing, the markers and content are appended after the existing
// text instead. Splicing the same content twice returns the same bytes.
func Splice(existing, content string) string {
	start := strings.Index(existing, StartMarker)
	end := strings.Index(existing, EndMarker)
	if start < 0 || end < 0 {
		return existing + "\n" + StartMarker + "\n\n" + content + "\n\n" + EndMarker
	}

	head := existing[:start+len(StartMarker)]
	tail := existing[end:]
	return head + "\n\n" + content + "\n\n" + tail
}

// Preview returns the full file content Update would write for target.
// A missing file previews as just the markers around content.
func Preview(target, content string) (string, error) {
	existing := StartMarker + "\n\n" + EndMarker

	raw, err := os.ReadFile(target) //nolint:gosec // target comes from an annotation
	switch {
	case err == nil:
		existing = string(raw)
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("failed to read %s: %w", target, err)
	}

	return Splice(existing, content), nil
}

// Update rewrites the file at target with its marker region replaced by
// content. A missing file is created holding only the markers and
// content; a missing parent directory is an error.
func Update(target, content string) error {
	updated, err := Preview(target, content)
	if err != nil {
		return err
	}

	if err := os.WriteFile(target, []byte(updated), 0o644); err != nil { //nolint:gosec // docs are world-readable
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
