package ts

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/anchorkit/idlgen/internal/idl"
)

// nativeFallback is the degraded native type used for table entries that
// are recognized but carry no native type of their own.
const nativeFallback = "any"

// Options carries the immutable lookup tables a mapper is constructed with.
type Options struct {
	Logger *zap.Logger

	// AccountPaths maps account record names to the generated file that
	// declares them. TypePaths does the same for other user defined types.
	AccountPaths map[string]string
	TypePaths    map[string]string

	// Aliases maps a type name to the primitive it stands for. Aliases win
	// over AccountPaths and TypePaths when a defined reference is resolved.
	Aliases map[string]idl.Primitive

	// ForceFixable marks a top level serde expression as variable length
	// regardless of what the traversal would infer.
	ForceFixable func(idl.Type) bool

	// Table overrides the primary type table. Defaults to DefaultTable().
	Table map[string]TypeEntry
}

// Mapper translates schema type expressions into TypeScript types and beet
// serde combinator expressions. As a side effect of every mapping call it
// accumulates the imports the generated file needs and whether any mapped
// encoding is variable length.
//
// A single mapper must not be used from more than one goroutine; use Clone
// to generate multiple files concurrently.
type Mapper struct {
	logger       *zap.Logger
	table        map[string]TypeEntry
	accountPaths map[string]string
	typePaths    map[string]string
	aliases      map[string]idl.Primitive
	forceFixable func(idl.Type) bool

	usedPackages map[Package]bool
	localImports map[string]map[string]bool
	fixable      bool
	scalarEnums  map[string][]string
}

func New(o Options) *Mapper {
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	table := o.Table
	if table == nil {
		table = DefaultTable()
	}

	m := &Mapper{
		logger:       logger,
		table:        table,
		accountPaths: o.AccountPaths,
		typePaths:    o.TypePaths,
		aliases:      o.Aliases,
		forceFixable: o.ForceFixable,
	}

	m.Reset()
	return m
}

// Reset clears all state accumulated by previous mapping calls. The lookup
// tables are kept.
func (m *Mapper) Reset() {
	m.usedPackages = make(map[Package]bool)
	m.localImports = make(map[string]map[string]bool)
	m.fixable = false
	m.scalarEnums = make(map[string][]string)
}

// Clone returns a mapper that shares the immutable lookup tables but owns
// fresh accumulation state. Distinct clones are safe to use from concurrent
// goroutines.
func (m *Mapper) Clone() *Mapper {
	clone := &Mapper{
		logger:       m.logger,
		table:        m.table,
		accountPaths: m.accountPaths,
		typePaths:    m.typePaths,
		aliases:      m.aliases,
		forceFixable: m.forceFixable,
	}

	clone.Reset()
	return clone
}

// Map translates a type expression into the TypeScript type the generated
// declaration uses for it. The name is only used for diagnostics and for
// naming enums; enum expressions cannot be mapped without one.
func (m *Mapper) Map(ty idl.Type, name string) (string, error) {
	switch t := ty.(type) {
	case idl.Primitive:
		return m.mapPrimitive(t)

	case idl.Option:
		inner, err := m.Map(t.Inner, name)
		if err != nil {
			return "", err
		}

		entry, err := m.compoundEntry(keyOption)
		if err != nil {
			return "", err
		}

		m.usePackage(entry.NativePkg)
		return fmt.Sprintf("%s.%s<%s>", entry.NativePkg.Alias(), entry.Native, inner), nil

	case idl.Vec:
		inner, err := m.Map(t.Inner, name)
		if err != nil {
			return "", err
		}

		return inner + "[]", nil

	case idl.Array:
		inner, err := m.Map(t.Inner, name)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s[] /* size: %d */", inner, t.Len), nil

	case idl.Defined:
		if alias, ok := m.aliases[string(t)]; ok {
			return m.mapPrimitive(alias)
		}

		path, ok := m.resolvePath(string(t))
		if !ok {
			return "", mapErrorf(ErrUnknownType, `unknown type "%s" referenced by "%s"`, t, name)
		}

		m.importLocal(path, string(t))
		return string(t), nil

	case idl.ScalarEnum:
		if name == "" {
			return "", mapErrorf(ErrMissingName, "cannot map an enum without a name")
		}

		if err := m.registerScalarEnum(name, t.Variants); err != nil {
			return "", err
		}

		return name, nil

	case idl.DataEnum:
		// Data enums are declared as their own generated types; fields can
		// only refer to them through a defined reference.
		return "", mapErrorf(ErrUnsupportedType, `data enum "%s" must be referenced as a defined type`, name)
	}

	return "", mapErrorf(ErrUnsupportedType, "unhandled type expression %T", ty)
}

// MapSerde translates a type expression into the beet combinator expression
// that encodes and decodes values of that type.
func (m *Mapper) MapSerde(ty idl.Type, name string) (string, error) {
	if m.forceFixable != nil && m.forceFixable(ty) {
		m.fixable = true
	}

	return m.mapSerde(ty, name)
}

func (m *Mapper) mapSerde(ty idl.Type, name string) (string, error) {
	switch t := ty.(type) {
	case idl.Primitive:
		return m.mapSerdePrimitive(t)

	case idl.Option:
		inner, err := m.mapSerde(t.Inner, name)
		if err != nil {
			return "", err
		}

		entry, err := m.compoundEntry(keyOption)
		if err != nil {
			return "", err
		}

		// An absent value always makes the overall size variable.
		m.fixable = true
		m.usePackage(entry.SerdePkg)
		return fmt.Sprintf("%s.%s(%s)", entry.SerdePkg.Alias(), entry.Serde, inner), nil

	case idl.Vec:
		inner, err := m.mapSerde(t.Inner, name)
		if err != nil {
			return "", err
		}

		entry, err := m.compoundEntry(keyArray)
		if err != nil {
			return "", err
		}

		m.fixable = true
		m.usePackage(entry.SerdePkg)
		return fmt.Sprintf("%s.%s(%s)", entry.SerdePkg.Alias(), entry.Serde, inner), nil

	case idl.Array:
		inner, err := m.mapSerde(t.Inner, name)
		if err != nil {
			return "", err
		}

		// An array of fixed size elements is itself fixed size, so the
		// flag comes from the table entry instead of being forced.
		entry, err := m.compoundEntry(keyFixedSizeArray)
		if err != nil {
			return "", err
		}

		m.usePackage(entry.SerdePkg)
		m.fixable = m.fixable || entry.Fixable
		return fmt.Sprintf("%s.%s(%s, %d)", entry.SerdePkg.Alias(), entry.Serde, inner, t.Len), nil

	case idl.Defined:
		if alias, ok := m.aliases[string(t)]; ok {
			return m.mapSerdePrimitive(alias)
		}

		path, ok := m.resolvePath(string(t))
		if !ok {
			return "", mapErrorf(ErrUnknownType, `unknown type "%s" referenced by "%s"`, t, name)
		}

		serdeName := SerdeName(string(t))
		m.importLocal(path, serdeName)
		return serdeName, nil

	case idl.ScalarEnum:
		if name == "" {
			return "", mapErrorf(ErrMissingName, "cannot map an enum without a name")
		}

		if err := m.registerScalarEnum(name, t.Variants); err != nil {
			return "", err
		}

		entry, err := m.compoundEntry(keyFixedScalarEnum)
		if err != nil {
			return "", err
		}

		m.usePackage(entry.SerdePkg)
		return fmt.Sprintf("%s.%s(%s)", entry.SerdePkg.Alias(), entry.Serde, name), nil

	case idl.DataEnum:
		return "", mapErrorf(ErrUnsupportedType, `data enum "%s" must be referenced as a defined type`, name)
	}

	return "", mapErrorf(ErrUnsupportedType, "unhandled type expression %T", ty)
}

// MappedField pairs a field name with its mapped serde expression.
type MappedField struct {
	Name  string
	Serde string
}

// MapSerdeFields maps a record's fields or an instruction's argument list
// in declaration order.
func (m *Mapper) MapSerdeFields(fields []idl.Field) ([]MappedField, error) {
	out := make([]MappedField, 0, len(fields))

	for _, f := range fields {
		expr, err := m.MapSerde(f.Type, f.Name)
		if err != nil {
			return nil, fmt.Errorf(`failed to map field "%s": %w`, f.Name, err)
		}

		out = append(out, MappedField{Name: f.Name, Serde: expr})
	}

	return out, nil
}

// CheckPrimitive verifies that a primitive key can be mapped at all. It is
// the same check both mapping operations run; callers can use it to
// validate a schema before generating anything.
func (m *Mapper) CheckPrimitive(p idl.Primitive) error {
	if _, ok := m.table[string(p)]; !ok {
		return mapErrorf(ErrUnsupportedType, `type "%s" is not supported by the primary type table`, p)
	}

	return nil
}

// Fixable reports whether any expression mapped since the last Reset used
// a variable length encoding.
func (m *Mapper) Fixable() bool {
	return m.fixable
}

// compoundEntry looks up the table entry behind a compound type expression.
// A custom table that lacks one cannot encode that shape at all.
func (m *Mapper) compoundEntry(key string) (TypeEntry, error) {
	entry, ok := m.table[key]
	if !ok {
		return TypeEntry{}, mapErrorf(ErrUnsupportedType, `type "%s" is not supported by the primary type table`, key)
	}

	return entry, nil
}

func (m *Mapper) mapPrimitive(p idl.Primitive) (string, error) {
	entry, ok := m.table[string(p)]
	if !ok {
		return "", mapErrorf(ErrUnsupportedType, `type "%s" is not supported by the primary type table`, p)
	}

	if entry.Native == "" {
		m.logger.Warn("primary type table entry has no native type, falling back",
			zap.String("type", string(p)),
			zap.String("fallback", nativeFallback))
		return nativeFallback, nil
	}

	if entry.NativePkg != "" {
		m.usePackage(entry.NativePkg)
		return fmt.Sprintf("%s.%s", entry.NativePkg.Alias(), entry.Native), nil
	}

	return entry.Native, nil
}

func (m *Mapper) mapSerdePrimitive(p idl.Primitive) (string, error) {
	entry, ok := m.table[string(p)]
	if !ok {
		return "", mapErrorf(ErrUnsupportedType, `type "%s" is not supported by the primary type table`, p)
	}

	m.usePackage(entry.SerdePkg)
	m.fixable = m.fixable || entry.Fixable
	return fmt.Sprintf("%s.%s", entry.SerdePkg.Alias(), entry.Serde), nil
}

func (m *Mapper) registerScalarEnum(name string, variants []string) error {
	if prior, ok := m.scalarEnums[name]; ok {
		if !slices.Equal(prior, variants) {
			return mapErrorf(
				ErrConflictingEnumDefinition,
				`enum "%s" was first defined with variants [%s] and redefined with [%s]`,
				name, strings.Join(prior, ", "), strings.Join(variants, ", "),
			)
		}

		return nil
	}

	m.scalarEnums[name] = variants
	return nil
}

func (m *Mapper) resolvePath(name string) (string, bool) {
	if path, ok := m.accountPaths[name]; ok {
		return path, true
	}

	if path, ok := m.typePaths[name]; ok {
		return path, true
	}

	return "", false
}

func (m *Mapper) usePackage(p Package) {
	if p != "" {
		m.usedPackages[p] = true
	}
}

func (m *Mapper) importLocal(path string, symbol string) {
	symbols, ok := m.localImports[path]
	if !ok {
		symbols = make(map[string]bool)
		m.localImports[path] = symbols
	}

	symbols[symbol] = true
}
