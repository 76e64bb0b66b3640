// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package render turns expanded record definitions into GitHub-flavored
// markdown reference tables.
package render

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/dacolabs/confdocs/internal/record"
)

var (
	flatHeader    = []string{"Field Name", "Type", "Required", "Default", "Details", "Group"}
	groupedHeader = []string{"Field Name", "Type", "Required", "Default", "Details"}
)

// Table renders a definition in the given layout. The definition is
// expected to be fully expanded already; a flatten marker left on a
// field renders as an ordinary row. The result carries no trailing
// newline.
func Table(def record.Definition, format record.Format) (string, error) {
	switch format {
	case record.FormatFlat:
		return flatTable(def), nil
	case record.FormatGrouped:
		return groupedTable(def), nil
	}
	return "", fmt.Errorf("unknown output format: %s", format)
}

// flatTable renders all fields as one table with a Group column.
func flatTable(def record.Definition) string {
	rows := make([][]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		rows = append(rows, append(row(f, def.CaseStyle), f.Group))
	}
	return markdownTable(flatHeader, rows)
}

// groupedTable renders one titled section per group. Sections appear in
// the order their group is first seen in the field list.
func groupedTable(def record.Definition) string {
	grouped := make(map[string][]record.Field)
	var order []string
	for _, f := range def.Fields {
		if _, seen := grouped[f.Group]; !seen {
			order = append(order, f.Group)
		}
		grouped[f.Group] = append(grouped[f.Group], f)
	}

	sections := make([]string, 0, len(order))
	for _, group := range order {
		rows := make([][]string, 0, len(grouped[group]))
		for _, f := range grouped[group] {
			rows = append(rows, row(f, def.CaseStyle))
		}
		heading := fmt.Sprintf("## %s Configuration", group)
		sections = append(sections, heading+"\n\n"+markdownTable(groupedHeader, rows))
	}
	return strings.Join(sections, "\n\n")
}

// row derives the rendered cells for one field, without the Group
// column. A field counts as required exactly when it carries neither a
// default literal nor a default expression.
func row(f record.Field, style record.CaseStyle) []string {
	required := "Yes"
	if f.Attrs.HasAnyDefault() {
		required = "No"
	}
	return []string{style.Apply(f.Name), f.TypeName, required, f.Attrs.DefaultText(), f.Doc}
}

// markdownTable renders a padded GitHub-flavored markdown table with no
// trailing newline.
func markdownTable(header []string, rows [][]string) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("|")
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.AppendBulk(rows)
	table.Render()
	return strings.TrimRight(sb.String(), "\n")
}
