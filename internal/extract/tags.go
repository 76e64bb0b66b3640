// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package extract

import (
	"fmt"
	"go/ast"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/dacolabs/confdocs/internal/record"
)

// parseFieldTag parses a field's annotation attributes from its struct
// tag. The confdocs tag's first element is the rename override, the
// rest are bare options; a default literal counts as present even when
// it is empty.
func parseFieldTag(field *ast.Field) (record.Attrs, error) {
	var attrs record.Attrs
	if field.Tag == nil {
		return attrs, nil
	}
	tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))

	if conf, ok := tag.Lookup("confdocs"); ok {
		parts := strings.Split(conf, ",")
		attrs.Rename = parts[0]
		for _, opt := range parts[1:] {
			switch opt {
			case "flatten":
				attrs.Flatten = true
			case "required":
				attrs.Required = true
			case "skip":
				attrs.Skip = true
			default:
				if strings.Contains(opt, "=") {
					return record.Attrs{}, fmt.Errorf("confdocs tag option %q takes no value, use a dedicated tag", opt)
				}
				return record.Attrs{}, fmt.Errorf("unknown confdocs tag option %q", opt)
			}
		}
	}

	if def, ok := tag.Lookup("default"); ok {
		attrs.HasDefault = true
		attrs.Default = def
	}
	attrs.DefaultExpr = tag.Get("defaultExpr")
	attrs.Env = tag.Get("env")
	attrs.Long = tag.Get("long")

	if short, ok := tag.Lookup("short"); ok {
		if utf8.RuneCountInString(short) != 1 {
			return record.Attrs{}, fmt.Errorf("short flag must be a single character, got %q", short)
		}
		attrs.Short = short
	}

	return attrs, nil
}
