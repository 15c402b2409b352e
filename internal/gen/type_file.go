package gen

import (
	"fmt"
	"strings"

	"github.com/anchorkit/idlgen/internal/idl"
	"github.com/anchorkit/idlgen/internal/ts"
)

const fileHeader = "// Code generated by idlgen. DO NOT EDIT."

// recordField is a fully mapped record field: its native TypeScript type
// and the serde expression that encodes it.
type recordField struct {
	Name   string
	Native string
	Serde  string
}

// renderTypeDef renders the declaration file of a single user defined
// type: the native TypeScript declaration plus the serde combinator that
// encodes it.
func renderTypeDef(m *ts.Mapper, target string, def idl.TypeDef) (string, error) {
	switch e := def.Enum.(type) {
	case idl.ScalarEnum:
		return renderScalarEnumDef(m, target, def.Name, e)
	case idl.DataEnum:
		return renderDataEnumDef(m, target, def.Name, e)
	}

	return renderRecordDef(m, target, def)
}

func renderRecordDef(m *ts.Mapper, target string, def idl.TypeDef) (string, error) {
	fields, err := mapRecordFields(m, def.Name, def.Fields)
	if err != nil {
		return "", err
	}

	var w tsWriter
	writeHeader(&w, m, target, ts.PackageBeet)

	writeRecordType(&w, def.Name, fields)
	w.WriteNewLine()

	writeArgsStruct(&w, def.Name, ts.SerdeName(def.Name), fields, m.Fixable())
	return w.String(), nil
}

func renderScalarEnumDef(m *ts.Mapper, target string, name string, enum idl.ScalarEnum) (string, error) {
	serde, err := m.MapSerde(enum, name)
	if err != nil {
		return "", fmt.Errorf(`failed to map enum "%s": %w`, name, err)
	}

	var w tsWriter
	writeHeader(&w, m, target)

	w.WriteLine(fmt.Sprintf("export enum %s {", name))
	w.Indent()

	for _, v := range enum.Variants {
		w.WriteLine(v + ",")
	}

	w.DeIndent()
	w.WriteLine("}")
	w.WriteNewLine()

	w.WriteLine(fmt.Sprintf("export const %s = %s", ts.SerdeName(name), serde))
	return w.String(), nil
}

// renderDataEnumDef composes a data enum from per variant field mappings:
// the mapper itself only handles the variant fields, the union type and
// the dataEnum combinator are assembled here.
func renderDataEnumDef(m *ts.Mapper, target string, name string, enum idl.DataEnum) (string, error) {
	type variant struct {
		Name    string
		Fields  []recordField
		Fixable bool
	}

	variants := make([]variant, 0, len(enum.Variants))

	for _, v := range enum.Variants {
		fields, err := mapRecordFields(m, fmt.Sprintf("%s.%s", name, v.Name), v.Fields)
		if err != nil {
			return "", err
		}

		// A throwaway clone tells us whether this variant alone is
		// variable length; the shared mapper's flag spans all variants.
		probe := m.Clone()
		if _, err := probe.MapSerdeFields(v.Fields); err != nil {
			return "", err
		}

		variants = append(variants, variant{Name: v.Name, Fields: fields, Fixable: probe.Fixable()})
	}

	var w tsWriter
	writeHeader(&w, m, target, ts.PackageBeet)

	w.WriteLine(fmt.Sprintf("export type %s =", name))
	w.Indent()

	for _, v := range variants {
		members := make([]string, 0, len(v.Fields)+1)
		members = append(members, fmt.Sprintf("__kind: '%s'", v.Name))

		for _, f := range v.Fields {
			members = append(members, fmt.Sprintf("%s: %s", f.Name, f.Native))
		}

		w.WriteLine(fmt.Sprintf("| { %s }", strings.Join(members, "; ")))
	}

	w.DeIndent()
	w.WriteNewLine()

	w.WriteLine(fmt.Sprintf("export const %s = beet.dataEnum<%s>([", ts.SerdeName(name), name))
	w.Indent()

	for _, v := range variants {
		w.WriteLine("[")
		w.Indent()
		w.WriteLine(fmt.Sprintf("'%s',", v.Name))

		structType := "BeetArgsStruct"
		if v.Fixable {
			structType = "FixableBeetArgsStruct"
		}

		w.WriteLine(fmt.Sprintf("new beet.%s<any>(", structType))
		w.Indent()
		w.WriteLine("[")
		w.Indent()

		for _, f := range v.Fields {
			w.WriteLine(fmt.Sprintf("['%s', %s],", f.Name, f.Serde))
		}

		w.DeIndent()
		w.WriteLine("],")
		w.WriteLine(fmt.Sprintf("'%s.%s'", name, v.Name))
		w.DeIndent()
		w.WriteLine("),")
		w.DeIndent()
		w.WriteLine("],")
	}

	w.DeIndent()
	w.WriteLine("])")
	return w.String(), nil
}

func mapRecordFields(m *ts.Mapper, owner string, fields []idl.Field) ([]recordField, error) {
	out := make([]recordField, 0, len(fields))

	for _, f := range fields {
		native, err := m.Map(f.Type, f.Name)
		if err != nil {
			return nil, fmt.Errorf(`failed to map field "%s" of "%s": %w`, f.Name, owner, err)
		}

		serde, err := m.MapSerde(f.Type, f.Name)
		if err != nil {
			return nil, fmt.Errorf(`failed to map field "%s" of "%s": %w`, f.Name, owner, err)
		}

		out = append(out, recordField{Name: f.Name, Native: native, Serde: serde})
	}

	return out, nil
}

// writeHeader renders the generated file marker and the import block. It
// must run after every mapping call for the file, since the imports are
// accumulated as a side effect of mapping.
func writeHeader(w *tsWriter, m *ts.Mapper, target string, force ...ts.Package) {
	w.WriteLine(fileHeader)
	w.WriteNewLine()

	for _, imp := range m.Imports(target, force...) {
		w.WriteLine(imp)
	}

	w.WriteNewLine()
}

func writeRecordType(w *tsWriter, name string, fields []recordField) {
	w.WriteLine(fmt.Sprintf("export type %s = {", name))
	w.Indent()

	for _, f := range fields {
		w.WriteLine(fmt.Sprintf("%s: %s", f.Name, f.Native))
	}

	w.DeIndent()
	w.WriteLine("}")
}

func writeArgsStruct(w *tsWriter, typeName string, serdeName string, fields []recordField, fixable bool) {
	structType := "BeetArgsStruct"
	if fixable {
		structType = "FixableBeetArgsStruct"
	}

	w.WriteLine(fmt.Sprintf("export const %s = new beet.%s<%s>(", serdeName, structType, typeName))
	w.Indent()
	w.WriteLine("[")
	w.Indent()

	for _, f := range fields {
		w.WriteLine(fmt.Sprintf("['%s', %s],", f.Name, f.Serde))
	}

	w.DeIndent()
	w.WriteLine("],")
	w.WriteLine(fmt.Sprintf("'%s'", typeName))
	w.DeIndent()
	w.WriteLine(")")
}
