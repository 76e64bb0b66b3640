// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package record

import "github.com/iancoleman/strcase"

// CaseStyle is a field-name transformation applied when a record's
// documentation is rendered. The zero value applies no transformation.
type CaseStyle string

// Supported case styles. Spellings match the annotation values.
const (
	CaseNone           CaseStyle = ""
	CaseSnake          CaseStyle = "snake_case"
	CaseCamel          CaseStyle = "camelCase"
	CasePascal         CaseStyle = "PascalCase"
	CaseKebab          CaseStyle = "kebab-case"
	CaseScreamingSnake CaseStyle = "SCREAMING_SNAKE_CASE"
	CaseScreamingKebab CaseStyle = "SCREAMING-KEBAB-CASE"
)

// ParseCaseStyle maps an annotation value to a CaseStyle. Unrecognized
// values fall back to CaseNone and field names are kept as declared.
func ParseCaseStyle(s string) CaseStyle {
	switch CaseStyle(s) {
	case CaseSnake, CaseCamel, CasePascal, CaseKebab, CaseScreamingSnake, CaseScreamingKebab:
		return CaseStyle(s)
	}
	return CaseNone
}

// Apply transforms a field name according to the style. Every style must
// be idempotent: names pass through Apply once when a record is flattened
// into another and again at render time.
func (c CaseStyle) Apply(name string) string {
	switch c {
	case CaseSnake:
		return strcase.ToSnake(name)
	case CaseCamel:
		return strcase.ToLowerCamel(name)
	case CasePascal:
		return strcase.ToCamel(name)
	case CaseKebab:
		return strcase.ToKebab(name)
	case CaseScreamingSnake:
		return strcase.ToScreamingSnake(name)
	case CaseScreamingKebab:
		return strcase.ToScreamingKebab(name)
	}
	return name
}
