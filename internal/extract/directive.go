// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package extract

import (
	"errors"
	"fmt"
	"go/ast"
	"strings"

	"github.com/dacolabs/confdocs/internal/record"
)

const directivePrefix = "confdocs:"

// declDirectives is the directive set parsed from one declaration's doc
// comment.
type declDirectives struct {
	register  bool
	generate  bool
	output    record.Output
	caseStyle record.CaseStyle
}

type directiveArg struct {
	key   string
	value string
}

// parseDirectives scans a doc comment group for confdocs directives and
// reports whether any were found. Lines with a space between the
// comment markers and the prefix are ordinary prose, not directives.
// An unknown case style falls back to no transformation; everything
// else unknown or malformed is an error.
func parseDirectives(cg *ast.CommentGroup) (declDirectives, bool, error) {
	var drv declDirectives
	if cg == nil {
		return drv, false, nil
	}

	found := false
	for _, c := range cg.List {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok {
			continue
		}
		text, ok = strings.CutPrefix(text, directivePrefix)
		if !ok {
			continue
		}

		verb, rest, _ := strings.Cut(text, " ")
		args, err := parseDirectiveArgs(rest)
		if err != nil {
			return declDirectives{}, false, err
		}

		switch verb {
		case "register":
			if drv.register {
				return declDirectives{}, false, errors.New("duplicate register directive")
			}
			drv.register = true
			for _, a := range args {
				switch a.key {
				case "case":
					drv.caseStyle = record.ParseCaseStyle(a.value)
				default:
					return declDirectives{}, false, fmt.Errorf("unknown register directive argument %q", a.key)
				}
			}

		case "generate":
			if drv.generate {
				return declDirectives{}, false, errors.New("duplicate generate directive")
			}
			drv.generate = true
			drv.output.Format = record.FormatFlat
			for _, a := range args {
				switch a.key {
				case "target":
					drv.output.Target = a.value
				case "format":
					format, err := record.ParseFormat(a.value)
					if err != nil {
						return declDirectives{}, false, err
					}
					drv.output.Format = format
				case "case":
					drv.caseStyle = record.ParseCaseStyle(a.value)
				default:
					return declDirectives{}, false, fmt.Errorf("unknown generate directive argument %q", a.key)
				}
			}
			if drv.output.Target == "" {
				return declDirectives{}, false, errors.New("generate directive requires target=<path>")
			}

		default:
			return declDirectives{}, false, fmt.Errorf("unknown confdocs directive %q", verb)
		}
		found = true
	}

	return drv, found, nil
}

// parseDirectiveArgs splits "key=value key2=value2" into ordered pairs.
// Values cannot contain spaces.
func parseDirectiveArgs(s string) ([]directiveArg, error) {
	var args []directiveArg
	for _, word := range strings.Fields(s) {
		key, value, ok := strings.Cut(word, "=")
		if !ok {
			return nil, fmt.Errorf("malformed directive argument %q, want key=value", word)
		}
		args = append(args, directiveArg{key: key, value: value})
	}
	return args, nil
}
