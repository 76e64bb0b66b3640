// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/confdocs/internal/record"
)

func writeSource(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600))
}

func TestParser_ParseDir_Register(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "config.go", "package conf\n\n"+
		"//confdocs:register\n"+
		"type DatabaseConfig struct {\n"+
		"\t// Database host.\n"+
		"\tDbHost string `confdocs:\"db_host\" env:\"DB_HOST\" long:\"db-host\"`\n"+
		"\tDbPort int `default:\"5432\"` // Database port\n"+
		"\tTimeout string `defaultExpr:\"defaultTimeout()\" short:\"t\"`\n"+
		"\tPool PoolConfig `confdocs:\",flatten\"`\n"+
		"\tLegacy string `confdocs:\",required,skip\"`\n"+
		"\tEmptyDefault string `default:\"\"`\n"+
		"\tinternal string\n"+
		"}\n")

	decls, err := NewParser().ParseDir(dir)
	require.NoError(t, err)
	require.Len(t, decls, 1)

	decl := decls[0]
	assert.True(t, decl.Register)
	assert.Nil(t, decl.Output)

	def := decl.Definition
	assert.Equal(t, "DatabaseConfig", def.Name)
	assert.Equal(t, record.CaseNone, def.CaseStyle)
	require.Len(t, def.Fields, 6)

	host := def.Fields[0]
	assert.Equal(t, "db_host", host.Name)
	assert.Equal(t, "string", host.TypeName)
	assert.Equal(t, "Database host.", host.Doc)
	assert.Equal(t, "db_host", host.Attrs.Rename)
	assert.Equal(t, "DB_HOST", host.Attrs.Env)
	assert.Equal(t, "db-host", host.Attrs.Long)
	assert.Equal(t, "DatabaseConfig", host.Group)
	assert.False(t, host.Attrs.HasAnyDefault())

	port := def.Fields[1]
	assert.Equal(t, "DbPort", port.Name)
	assert.Equal(t, "Database port", port.Doc)
	assert.True(t, port.Attrs.HasDefault)
	assert.Equal(t, "5432", port.Attrs.Default)

	timeout := def.Fields[2]
	assert.Equal(t, "defaultTimeout()", timeout.Attrs.DefaultExpr)
	assert.Equal(t, "t", timeout.Attrs.Short)

	pool := def.Fields[3]
	assert.Equal(t, "Pool", pool.Name)
	assert.Equal(t, "PoolConfig", pool.TypeName)
	assert.True(t, pool.Attrs.Flatten)

	legacy := def.Fields[4]
	assert.True(t, legacy.Attrs.Required)
	assert.True(t, legacy.Attrs.Skip)

	empty := def.Fields[5]
	assert.True(t, empty.Attrs.HasDefault)
	assert.Equal(t, "", empty.Attrs.Default)
}

func TestParser_ParseDir_Generate(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "config.go", "package conf\n\n"+
		"//confdocs:generate target=docs/config.md format=grouped case=kebab-case\n"+
		"type AppConfig struct {\n"+
		"\tPort int `default:\"8080\"`\n"+
		"}\n")

	decls, err := NewParser().ParseDir(dir)
	require.NoError(t, err)
	require.Len(t, decls, 1)

	decl := decls[0]
	assert.False(t, decl.Register)
	require.NotNil(t, decl.Output)
	assert.Equal(t, "docs/config.md", decl.Output.Target)
	assert.Equal(t, record.FormatGrouped, decl.Output.Format)
	assert.Equal(t, record.CaseKebab, decl.Definition.CaseStyle)
}

func TestParser_ParseDir_RegisterAndGenerate(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "config.go", "package conf\n\n"+
		"//confdocs:register\n"+
		"//confdocs:generate target=docs/server.md\n"+
		"type ServerConfig struct {\n"+
		"\tHost string\n"+
		"}\n")

	decls, err := NewParser().ParseDir(dir)
	require.NoError(t, err)
	require.Len(t, decls, 1)

	decl := decls[0]
	assert.True(t, decl.Register)
	require.NotNil(t, decl.Output)
	assert.Equal(t, record.FormatFlat, decl.Output.Format)
}

func TestParser_ParseDir_UnknownCaseStyleMeansNone(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "config.go", "package conf\n\n"+
		"//confdocs:register case=kebabcase\n"+
		"type ServerConfig struct{}\n")

	decls, err := NewParser().ParseDir(dir)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, record.CaseNone, decls[0].Definition.CaseStyle)
}

func TestParser_ParseDir_SourceOrder(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.go", "package conf\n\n"+
		"//confdocs:register\n"+
		"type Charlie struct{}\n")
	writeSource(t, dir, "a.go", "package conf\n\n"+
		"//confdocs:register\n"+
		"type Bravo struct{}\n\n"+
		"//confdocs:register\n"+
		"type Alpha struct{}\n")

	decls, err := NewParser().ParseDir(dir)
	require.NoError(t, err)
	require.Len(t, decls, 3)

	var names []string
	for _, decl := range decls {
		names = append(names, decl.Definition.Name)
	}
	assert.Equal(t, []string{"Bravo", "Alpha", "Charlie"}, names)
}

func TestParser_ParseDir_IgnoresUnannotated(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "config.go", "package conf\n\n"+
		"// Plain prose, not a directive.\n"+
		"type Plain struct {\n"+
		"\tHost string `confdocs:\"host\"`\n"+
		"}\n\n"+
		"// confdocs:register\n"+
		"type SpacedOut struct{}\n")

	decls, err := NewParser().ParseDir(dir)
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestParser_ParseDir_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name: "directive on non-struct",
			src: "package conf\n\n" +
				"//confdocs:register\n" +
				"type Port int\n",
			wantErr: "confdocs directives require a struct type",
		},
		{
			name: "unknown directive",
			src: "package conf\n\n" +
				"//confdocs:publish target=docs/x.md\n" +
				"type A struct{}\n",
			wantErr: "unknown confdocs directive",
		},
		{
			name: "unknown generate argument",
			src: "package conf\n\n" +
				"//confdocs:generate target=docs/x.md style=wide\n" +
				"type A struct{}\n",
			wantErr: "unknown generate directive argument",
		},
		{
			name: "missing target",
			src: "package conf\n\n" +
				"//confdocs:generate format=flat\n" +
				"type A struct{}\n",
			wantErr: "generate directive requires target",
		},
		{
			name: "unknown format",
			src: "package conf\n\n" +
				"//confdocs:generate target=docs/x.md format=wide\n" +
				"type A struct{}\n",
			wantErr: "unknown format",
		},
		{
			name: "malformed argument",
			src: "package conf\n\n" +
				"//confdocs:generate docs/x.md\n" +
				"type A struct{}\n",
			wantErr: "malformed directive argument",
		},
		{
			name: "duplicate generate",
			src: "package conf\n\n" +
				"//confdocs:generate target=docs/x.md\n" +
				"//confdocs:generate target=docs/y.md\n" +
				"type A struct{}\n",
			wantErr: "duplicate generate directive",
		},
		{
			name: "multi-character short flag",
			src: "package conf\n\n" +
				"//confdocs:register\n" +
				"type A struct {\n" +
				"\tHost string `short:\"ho\"`\n" +
				"}\n",
			wantErr: "short flag must be a single character",
		},
		{
			name: "unknown tag option",
			src: "package conf\n\n" +
				"//confdocs:register\n" +
				"type A struct {\n" +
				"\tDB PoolConfig `confdocs:\",flaten\"`\n" +
				"}\n",
			wantErr: "unknown confdocs tag option",
		},
		{
			name: "tag option with value",
			src: "package conf\n\n" +
				"//confdocs:register\n" +
				"type A struct {\n" +
				"\tPort int `confdocs:\",default=8080\"`\n" +
				"}\n",
			wantErr: "takes no value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSource(t, dir, "config.go", tt.src)

			decls, err := NewParser().ParseDir(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "config.go:")
			assert.Empty(t, decls)
		})
	}
}

func TestParser_ParseDir_KeepsSiblingsOnError(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "config.go", "package conf\n\n"+
		"//confdocs:register\n"+
		"type Broken int\n\n"+
		"//confdocs:register\n"+
		"type Healthy struct {\n"+
		"\tPort int `default:\"8080\"`\n"+
		"}\n")

	decls, err := NewParser().ParseDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confdocs directives require a struct type")
	require.Len(t, decls, 1)
	assert.Equal(t, "Healthy", decls[0].Definition.Name)
}

func TestParser_ParseDir_BadSource(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "config.go", "package conf\n\nfunc {\n")

	_, err := NewParser().ParseDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
