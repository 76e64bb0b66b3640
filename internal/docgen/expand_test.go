// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/confdocs/internal/record"
	"github.com/dacolabs/confdocs/internal/registry"
)

func TestResolvable(t *testing.T) {
	defs := registry.NewDefinitions()
	defs.Put(record.Definition{Name: "DatabaseConfig"})

	tests := []struct {
		name string
		def  record.Definition
		want bool
	}{
		{
			name: "no flatten fields",
			def: record.Definition{
				Name:   "ServerConfig",
				Fields: []record.Field{{Name: "port", TypeName: "int"}},
			},
			want: true,
		},
		{
			name: "flatten reference registered",
			def: record.Definition{
				Name: "AppConfig",
				Fields: []record.Field{
					{Name: "database", TypeName: "DatabaseConfig", Attrs: record.Attrs{Flatten: true}},
				},
			},
			want: true,
		},
		{
			name: "qualified flatten reference registered",
			def: record.Definition{
				Name: "AppConfig",
				Fields: []record.Field{
					{Name: "database", TypeName: "*config.DatabaseConfig", Attrs: record.Attrs{Flatten: true}},
				},
			},
			want: true,
		},
		{
			name: "flatten reference missing",
			def: record.Definition{
				Name: "AppConfig",
				Fields: []record.Field{
					{Name: "cache", TypeName: "CacheConfig", Attrs: record.Attrs{Flatten: true}},
				},
			},
			want: false,
		},
		{
			name: "one missing among registered",
			def: record.Definition{
				Name: "AppConfig",
				Fields: []record.Field{
					{Name: "database", TypeName: "DatabaseConfig", Attrs: record.Attrs{Flatten: true}},
					{Name: "cache", TypeName: "CacheConfig", Attrs: record.Attrs{Flatten: true}},
				},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolvable(defs, tt.def))
		})
	}
}

func TestExpand_SplicesReferencedFields(t *testing.T) {
	defs := registry.NewDefinitions()
	defs.Put(record.Definition{
		Name: "DatabaseConfig",
		Fields: []record.Field{
			{Name: "DbHost", TypeName: "string", Doc: "Database host", Group: "DatabaseConfig"},
			{
				Name:     "DbPort",
				TypeName: "int",
				Doc:      "Database port",
				Attrs:    record.Attrs{HasDefault: true, Default: "5432"},
				Group:    "DatabaseConfig",
			},
		},
	})

	def := record.Definition{
		Name:      "AppConfig",
		CaseStyle: record.CaseKebab,
		Fields: []record.Field{
			{Name: "database", TypeName: "DatabaseConfig", Attrs: record.Attrs{Flatten: true}, Group: "AppConfig"},
			{
				Name:     "Port",
				TypeName: "int",
				Doc:      "Server port",
				Attrs:    record.Attrs{HasDefault: true, Default: "8080"},
				Group:    "AppConfig",
			},
		},
	}

	got := Expand(defs, def)

	require.Len(t, got.Fields, 3)
	assert.Equal(t, "db-host", got.Fields[0].Name)
	assert.Equal(t, "DatabaseConfig", got.Fields[0].Group)
	assert.Equal(t, "Database host", got.Fields[0].Doc)
	assert.Equal(t, "db-port", got.Fields[1].Name)
	assert.Equal(t, "5432", got.Fields[1].Attrs.Default)

	// The record's own field keeps its declared name until render time.
	assert.Equal(t, "Port", got.Fields[2].Name)
	assert.Equal(t, "AppConfig", got.Fields[2].Group)
}

func TestExpand_MissingReferencePlaceholder(t *testing.T) {
	defs := registry.NewDefinitions()

	def := record.Definition{
		Name: "AppConfig",
		Fields: []record.Field{
			{Name: "database", TypeName: "db.Config", Attrs: record.Attrs{Flatten: true}, Group: "AppConfig"},
		},
	}

	got := Expand(defs, def)

	require.Len(t, got.Fields, 1)
	assert.Equal(t, "database", got.Fields[0].Name)
	assert.Equal(t, "Note: This field is flattened from db.Config (not registered)", got.Fields[0].Doc)
	assert.Equal(t, "AppConfig", got.Fields[0].Group)
}

func TestExpand_OneLevelOnly(t *testing.T) {
	defs := registry.NewDefinitions()
	defs.Put(record.Definition{
		Name: "PoolConfig",
		Fields: []record.Field{
			{Name: "size", TypeName: "int", Group: "PoolConfig"},
		},
	})
	defs.Put(record.Definition{
		Name: "DatabaseConfig",
		Fields: []record.Field{
			{Name: "host", TypeName: "string", Group: "DatabaseConfig"},
			{Name: "pool", TypeName: "PoolConfig", Attrs: record.Attrs{Flatten: true}, Group: "DatabaseConfig"},
		},
	})

	def := record.Definition{
		Name: "AppConfig",
		Fields: []record.Field{
			{Name: "database", TypeName: "DatabaseConfig", Attrs: record.Attrs{Flatten: true}, Group: "AppConfig"},
		},
	}

	got := Expand(defs, def)

	// DatabaseConfig's own flatten field is copied in untouched, not
	// expanded into PoolConfig's fields.
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "host", got.Fields[0].Name)
	assert.Equal(t, "pool", got.Fields[1].Name)
	assert.True(t, got.Fields[1].Attrs.Flatten)
	assert.Equal(t, "DatabaseConfig", got.Fields[1].Group)
}

func TestExpand_NoFlattensReturnsSameFields(t *testing.T) {
	defs := registry.NewDefinitions()

	def := record.Definition{
		Name:      "ServerConfig",
		CaseStyle: record.CaseSnake,
		Fields: []record.Field{
			{Name: "Host", TypeName: "string", Group: "ServerConfig"},
			{Name: "Port", TypeName: "int", Group: "ServerConfig"},
		},
	}

	got := Expand(defs, def)

	assert.Equal(t, def.Name, got.Name)
	assert.Equal(t, def.CaseStyle, got.CaseStyle)
	assert.Equal(t, def.Fields, got.Fields)
}
