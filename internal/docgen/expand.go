// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package docgen

import (
	"fmt"

	"github.com/dacolabs/confdocs/internal/record"
	"github.com/dacolabs/confdocs/internal/registry"
)

// Resolvable reports whether every flatten reference of def is
// registered. A definition without flatten fields is always resolvable.
func Resolvable(defs *registry.Definitions, def record.Definition) bool {
	for _, f := range def.Fields {
		if f.Attrs.Flatten && !defs.Has(f.RefName()) {
			return false
		}
	}
	return true
}

// Expand replaces each flatten field of def with the fields of the
// record it references, one level deep. Spliced-in fields keep their
// captured attributes, carry the referenced record's name as their
// group, and have def's case style applied to their names ahead of
// render time. Fields copied in are not expanded further even when they
// are flatten fields themselves.
//
// A flatten field whose reference is not registered is kept as a single
// placeholder row noting the missing record, so a forced render still
// documents every declared field.
func Expand(defs *registry.Definitions, def record.Definition) record.Definition {
	expanded := record.Definition{
		Name:      def.Name,
		CaseStyle: def.CaseStyle,
		Fields:    make([]record.Field, 0, len(def.Fields)),
	}

	for _, f := range def.Fields {
		if !f.Attrs.Flatten {
			expanded.Fields = append(expanded.Fields, f)
			continue
		}

		nested, ok := defs.Get(f.RefName())
		if !ok {
			placeholder := f
			placeholder.Doc = fmt.Sprintf("Note: This field is flattened from %s (not registered)", f.TypeName)
			expanded.Fields = append(expanded.Fields, placeholder)
			continue
		}

		for _, nf := range nested.Fields {
			spliced := nf
			spliced.Name = def.CaseStyle.Apply(nf.Name)
			spliced.Group = nested.Name
			expanded.Fields = append(expanded.Fields, spliced)
		}
	}

	return expanded
}
