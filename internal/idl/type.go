package idl

// Type is one node of the recursive description of a data shape. The
// implementations form a closed set so that mapping code can dispatch on
// them with an exhaustive type switch.
type Type interface {
	typeNode()
}

// Primitive is an opaque key into the primary type table, e.g. "u64".
type Primitive string

// Defined is a reference to a user defined type or an account by name.
type Defined string

// Option wraps an inner type whose value may be absent.
type Option struct {
	Inner Type
}

// Vec wraps an inner type into a dynamically sized sequence.
type Vec struct {
	Inner Type
}

// Array wraps an inner type into a sequence with a compile time known
// element count.
type Array struct {
	Inner Type
	Len   int
}

// ScalarEnum is an ordered list of variant names without payloads.
type ScalarEnum struct {
	Variants []string
}

// DataEnumVariant is a single variant of a data enum together with the
// fields it carries.
type DataEnumVariant struct {
	Name   string
	Fields []Field
}

// DataEnum is an ordered list of variants, each carrying its own field list.
type DataEnum struct {
	Variants []DataEnumVariant
}

func (Primitive) typeNode()  {}
func (Defined) typeNode()    {}
func (Option) typeNode()     {}
func (Vec) typeNode()        {}
func (Array) typeNode()      {}
func (ScalarEnum) typeNode() {}
func (DataEnum) typeNode()   {}

// Walk calls fn for ty and for every type expression nested in it.
func Walk(ty Type, fn func(Type)) {
	fn(ty)

	switch t := ty.(type) {
	case Option:
		Walk(t.Inner, fn)
	case Vec:
		Walk(t.Inner, fn)
	case Array:
		Walk(t.Inner, fn)
	case DataEnum:
		for _, v := range t.Variants {
			for _, f := range v.Fields {
				Walk(f.Type, fn)
			}
		}
	}
}
