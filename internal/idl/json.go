package idl

import (
	"encoding/json"
	"fmt"
)

const (
	kindStruct = "struct"
	kindEnum   = "enum"
)

func (f *Field) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name string          `json:"name"`
		Type json.RawMessage `json:"type"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ty, err := parseType(raw.Type)
	if err != nil {
		return fmt.Errorf(`failed to parse the type of field "%s": %w`, raw.Name, err)
	}

	f.Name = raw.Name
	f.Type = ty
	return nil
}

func (d *TypeDef) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name string `json:"name"`
		Type struct {
			Kind     string            `json:"kind"`
			Fields   []Field           `json:"fields"`
			Variants []json.RawMessage `json:"variants"`
		} `json:"type"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Name = raw.Name

	switch raw.Type.Kind {
	case kindStruct:
		d.Fields = raw.Type.Fields
	case kindEnum:
		e, err := parseEnum(raw.Type.Variants)
		if err != nil {
			return fmt.Errorf(`failed to parse enum type "%s": %w`, raw.Name, err)
		}

		d.Enum = e
	default:
		return fmt.Errorf(`unsupported kind "%s" for type "%s"`, raw.Type.Kind, raw.Name)
	}

	return nil
}

// parseType decodes one type expression from its IDL wire shape. A plain
// string is a primitive; objects are told apart by the single property
// they carry.
func parseType(data []byte) (Type, error) {
	var key string
	if err := json.Unmarshal(data, &key); err == nil {
		return Primitive(key), nil
	}

	var node struct {
		Defined  *string           `json:"defined"`
		Option   json.RawMessage   `json:"option"`
		Vec      json.RawMessage   `json:"vec"`
		Array    []json.RawMessage `json:"array"`
		Kind     string            `json:"kind"`
		Variants []json.RawMessage `json:"variants"`
	}

	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to unmarshal type expression: %w", err)
	}

	switch {
	case node.Defined != nil:
		return Defined(*node.Defined), nil

	case node.Option != nil:
		inner, err := parseType(node.Option)
		if err != nil {
			return nil, err
		}

		return Option{Inner: inner}, nil

	case node.Vec != nil:
		inner, err := parseType(node.Vec)
		if err != nil {
			return nil, err
		}

		return Vec{Inner: inner}, nil

	case node.Array != nil:
		if len(node.Array) != 2 {
			return nil, fmt.Errorf("an array type needs an element type and a size, got %d elements", len(node.Array))
		}

		inner, err := parseType(node.Array[0])
		if err != nil {
			return nil, err
		}

		var size int
		if err := json.Unmarshal(node.Array[1], &size); err != nil {
			return nil, fmt.Errorf("failed to parse array size: %w", err)
		}

		return Array{Inner: inner, Len: size}, nil

	case node.Kind == kindEnum:
		return parseEnum(node.Variants)
	}

	return nil, fmt.Errorf("unrecognized type expression %s", string(data))
}

// parseEnum decodes an enum body. An enum whose variants all carry no
// fields is a scalar enum; one payload field anywhere makes it a data enum.
func parseEnum(variants []json.RawMessage) (Type, error) {
	names := make([]string, 0, len(variants))
	dataVariants := make([]DataEnumVariant, 0, len(variants))
	hasFields := false

	for _, raw := range variants {
		var v struct {
			Name   string  `json:"name"`
			Fields []Field `json:"fields"`
		}

		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("failed to parse enum variant: %w", err)
		}

		if len(v.Fields) > 0 {
			hasFields = true
		}

		names = append(names, v.Name)
		dataVariants = append(dataVariants, DataEnumVariant{Name: v.Name, Fields: v.Fields})
	}

	if hasFields {
		return DataEnum{Variants: dataVariants}, nil
	}

	return ScalarEnum{Variants: names}, nil
}
