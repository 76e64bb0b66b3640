// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package extract scans Go source for confdocs annotations and turns
// annotated struct declarations into generation declarations.
//
// A struct opts in through doc-comment directives, written flush
// against the comment markers the way go:generate is:
//
//	//confdocs:register case=kebab-case
//	//confdocs:generate target=docs/config.md format=grouped
//	type ServerConfig struct {
//		// Address the server listens on.
//		Host string `confdocs:"host" default:"localhost" env:"HOST"`
//		DB   DBConfig `confdocs:",flatten"`
//	}
//
// The confdocs tag holds the rename override and bare options; defaults
// and flag metadata live in the dedicated default, defaultExpr, env,
// long, and short tags.
package extract

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"

	"github.com/dacolabs/confdocs/internal/docgen"
	"github.com/dacolabs/confdocs/internal/record"
)

// Parser extracts annotated configuration structs from Go packages.
type Parser struct {
	fset *token.FileSet
}

// NewParser creates a parser. One parser may scan several directories.
func NewParser() *Parser {
	return &Parser{fset: token.NewFileSet()}
}

// ParseDir scans all Go files in a directory and returns the
// declarations of its annotated structs in deterministic source order:
// files by name, declarations by position. A structural error drops its
// declaration and is reported with its source position; clean sibling
// declarations are still returned, with all errors joined.
func (p *Parser) ParseDir(dir string) ([]docgen.Declaration, error) {
	pkgs, err := parser.ParseDir(p.fset, dir, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", dir, err)
	}

	type sourceFile struct {
		name string
		file *ast.File
	}
	var files []sourceFile
	for name, pkg := range pkgs {
		if strings.HasSuffix(name, "_test") {
			continue
		}
		for filename, file := range pkg.Files {
			if strings.HasSuffix(filename, "_test.go") {
				continue
			}
			files = append(files, sourceFile{name: filename, file: file})
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	var decls []docgen.Declaration
	var errs []error
	for _, sf := range files {
		for _, d := range sf.file.Decls {
			genDecl, ok := d.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := typeSpec.Doc
				if doc == nil {
					doc = genDecl.Doc
				}
				drv, found, err := parseDirectives(doc)
				if err != nil {
					errs = append(errs, p.errAt(typeSpec.Pos(), err))
					continue
				}
				if !found {
					continue
				}

				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok {
					errs = append(errs, p.errAt(typeSpec.Pos(), errors.New("confdocs directives require a struct type")))
					continue
				}

				def, err := p.parseStruct(typeSpec.Name.Name, structType)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				def.CaseStyle = drv.caseStyle

				decl := docgen.Declaration{Definition: def, Register: drv.register}
				if drv.generate {
					out := drv.output
					decl.Output = &out
				}
				decls = append(decls, decl)
			}
		}
	}

	return decls, errors.Join(errs...)
}

// parseStruct captures a struct's exported fields in declaration order.
// Embedded and unexported fields are skipped.
func (p *Parser) parseStruct(name string, st *ast.StructType) (record.Definition, error) {
	def := record.Definition{Name: name}
	if st.Fields == nil {
		return def, nil
	}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue
		}

		attrs, err := parseFieldTag(field)
		if err != nil {
			return record.Definition{}, p.errAt(field.Pos(), err)
		}

		exported := make([]string, 0, len(field.Names))
		for _, ident := range field.Names {
			if ident.IsExported() {
				exported = append(exported, ident.Name)
			}
		}
		if attrs.Rename != "" && len(exported) > 1 {
			return record.Definition{}, p.errAt(field.Pos(), errors.New("rename cannot apply to a multi-name field"))
		}

		doc := fieldDoc(field)
		typeName := typeToString(field.Type)
		for _, fieldName := range exported {
			f := record.Field{
				Name:     fieldName,
				TypeName: typeName,
				Doc:      doc,
				Attrs:    attrs,
				Group:    name,
			}
			if attrs.Rename != "" {
				f.Name = attrs.Rename
			}
			def.Fields = append(def.Fields, f)
		}
	}

	return def, nil
}

func (p *Parser) errAt(pos token.Pos, err error) error {
	return fmt.Errorf("%s: %w", p.fset.Position(pos), err)
}

// fieldDoc merges a field's doc comment and inline comment into a
// single line. Tables cannot hold newlines, so runs of whitespace
// collapse to one space.
func fieldDoc(field *ast.Field) string {
	doc := commentText(field.Doc)
	inline := commentText(field.Comment)
	switch {
	case doc == "":
		return inline
	case inline == "":
		return doc
	}
	return doc + " " + inline
}

func commentText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.Join(strings.Fields(cg.Text()), " ")
}

// typeToString renders an AST type expression the way it was declared.
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		return "[]" + typeToString(t.Elt)
	case *ast.MapType:
		return "map[" + typeToString(t.Key) + "]" + typeToString(t.Value)
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.InterfaceType:
		return "interface{}"
	default:
		return "unknown"
	}
}
