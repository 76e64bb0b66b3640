// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package record defines the metadata model for configuration records:
// the fields captured from an annotated struct declaration, the case
// styles applied to their names, and the generation requests that attach
// a record to a documentation file.
package record

import (
	"fmt"
	"strings"
)

// Field describes a single field of a configuration record.
type Field struct {
	Name     string // declared field name, or the rename override
	TypeName string // declared type as written, e.g. "db.Config" or "*time.Duration"
	Doc      string // doc comment collapsed to a single line, if any
	Attrs    Attrs  // parsed annotation attributes
	Group    string // owning record's name; rewritten when flattened into another record
}

// RefName returns the registry name a field's type refers to: the
// declared type with pointer markers stripped, collapsed to its last
// dot-separated segment.
func (f Field) RefName() string {
	name := strings.TrimLeft(f.TypeName, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Attrs carries a field's annotation attributes. Flatten and the two
// default forms drive rendering; the rest are captured metadata.
type Attrs struct {
	Flatten     bool   // splice the referenced record's fields in place
	Required    bool   // explicit required flag
	Skip        bool   // explicit skip flag
	HasDefault  bool   // a default literal is present, even when empty
	Default     string // default literal text
	DefaultExpr string // default expression text; empty means absent
	Rename      string // explicit name override
	Long        string // long flag override
	Short       string // short flag, exactly one character
	Env         string // environment variable override
}

// HasAnyDefault reports whether the field carries a default literal or a
// default expression. A field with either is documented as not required.
func (a Attrs) HasAnyDefault() bool {
	return a.HasDefault || a.DefaultExpr != ""
}

// DefaultText returns the Default column text: the literal when present,
// otherwise the expression, otherwise "-".
func (a Attrs) DefaultText() string {
	if a.HasDefault {
		return a.Default
	}
	if a.DefaultExpr != "" {
		return a.DefaultExpr
	}
	return "-"
}

// Definition is a configuration record as registered: its unique name,
// its fields in declaration order, and the case style applied to field
// names when its documentation is rendered.
type Definition struct {
	Name      string
	Fields    []Field
	CaseStyle CaseStyle
}

// Format selects the table layout of a generated reference.
type Format string

// Supported table layouts.
const (
	FormatFlat    Format = "flat"    // one table with a Group column
	FormatGrouped Format = "grouped" // one titled section per group
)

// ParseFormat maps an annotation value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatFlat, FormatGrouped:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format: %s", s)
}

// Output names the documentation file a record's reference is written to
// and the layout used inside the marker region.
type Output struct {
	Target string
	Format Format
}

// Request pairs a definition with the output it was declared with.
// Queued requests keep the definition exactly as captured at declaration
// time.
type Request struct {
	Definition Definition
	Output     Output
}
