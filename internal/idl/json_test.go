package idl

import (
	"encoding/json"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestParsePrimitive(t *testing.T) {
	ty, err := parseType([]byte(`"u64"`))
	assert.NoError(t, err)
	assert.Equal(t, Primitive("u64"), ty)
}

func TestParseDefined(t *testing.T) {
	ty, err := parseType([]byte(`{"defined": "Foo"}`))
	assert.NoError(t, err)
	assert.Equal(t, Defined("Foo"), ty)
}

func TestParseOption(t *testing.T) {
	ty, err := parseType([]byte(`{"option": "u32"}`))
	assert.NoError(t, err)
	assert.Equal(t, Option{Inner: Primitive("u32")}, ty)
}

func TestParseVec(t *testing.T) {
	ty, err := parseType([]byte(`{"vec": {"defined": "Foo"}}`))
	assert.NoError(t, err)
	assert.Equal(t, Vec{Inner: Defined("Foo")}, ty)
}

func TestParseArray(t *testing.T) {
	ty, err := parseType([]byte(`{"array": ["u8", 32]}`))
	assert.NoError(t, err)
	assert.Equal(t, Array{Inner: Primitive("u8"), Len: 32}, ty)
}

func TestParseArrayMissingSize(t *testing.T) {
	_, err := parseType([]byte(`{"array": ["u8"]}`))
	assert.Error(t, err)
}

func TestParseNestedType(t *testing.T) {
	ty, err := parseType([]byte(`{"option": {"vec": {"array": ["u8", 4]}}}`))
	assert.NoError(t, err)
	assert.Equal(t, Option{Inner: Vec{Inner: Array{Inner: Primitive("u8"), Len: 4}}}, ty)
}

func TestParseScalarEnum(t *testing.T) {
	ty, err := parseType([]byte(`{"kind": "enum", "variants": [{"name": "Red"}, {"name": "Green"}]}`))
	assert.NoError(t, err)
	assert.Equal(t, ScalarEnum{Variants: []string{"Red", "Green"}}, ty)
}

func TestParseDataEnum(t *testing.T) {
	data := `{
		"kind": "enum",
		"variants": [
			{"name": "None"},
			{"name": "Some", "fields": [{"name": "value", "type": "u64"}]}
		]
	}`

	ty, err := parseType([]byte(data))
	assert.NoError(t, err)
	assert.Equal(t, DataEnum{
		Variants: []DataEnumVariant{
			{Name: "None", Fields: nil},
			{Name: "Some", Fields: []Field{{Name: "value", Type: Primitive("u64")}}},
		},
	}, ty)
}

func TestParseUnrecognizedType(t *testing.T) {
	_, err := parseType([]byte(`{"tuple": ["u8"]}`))
	assert.Error(t, err)
}

func TestUnmarshalTypeDefStruct(t *testing.T) {
	data := `{
		"name": "Point",
		"type": {
			"kind": "struct",
			"fields": [
				{"name": "x", "type": "u16"},
				{"name": "y", "type": "u16"}
			]
		}
	}`

	var def TypeDef
	assert.NoError(t, json.Unmarshal([]byte(data), &def))
	assert.Equal(t, "Point", def.Name)
	assert.False(t, def.IsEnum())
	assert.Equal(t, []Field{
		{Name: "x", Type: Primitive("u16")},
		{Name: "y", Type: Primitive("u16")},
	}, def.Fields)
}

func TestUnmarshalTypeDefEnum(t *testing.T) {
	data := `{
		"name": "Color",
		"type": {
			"kind": "enum",
			"variants": [{"name": "Red"}, {"name": "Green"}]
		}
	}`

	var def TypeDef
	assert.NoError(t, json.Unmarshal([]byte(data), &def))
	assert.Equal(t, "Color", def.Name)
	assert.True(t, def.IsEnum())
	assert.Equal(t, ScalarEnum{Variants: []string{"Red", "Green"}}, def.Enum)
}

func TestUnmarshalTypeDefUnsupportedKind(t *testing.T) {
	var def TypeDef
	assert.Error(t, json.Unmarshal([]byte(`{"name": "X", "type": {"kind": "union"}}`), &def))
}

func TestUnmarshalIdl(t *testing.T) {
	data := `{
		"version": "0.1.0",
		"name": "vault",
		"instructions": [
			{
				"name": "deposit",
				"accounts": [
					{"name": "vault", "isMut": true, "isSigner": false},
					{"name": "owner", "isMut": false, "isSigner": true}
				],
				"args": [{"name": "amount", "type": "u64"}]
			}
		],
		"accounts": [
			{
				"name": "Vault",
				"type": {
					"kind": "struct",
					"fields": [{"name": "balance", "type": "u64"}]
				}
			}
		],
		"types": [],
		"metadata": {"address": "F1pS1dAb"}
	}`

	var program Idl
	assert.NoError(t, json.Unmarshal([]byte(data), &program))

	assert.Equal(t, "vault", program.Name)
	assert.Len(t, program.Instructions, 1)
	assert.Equal(t, "deposit", program.Instructions[0].Name)
	assert.True(t, program.Instructions[0].Accounts[0].IsMut)
	assert.True(t, program.Instructions[0].Accounts[1].IsSigner)
	assert.Equal(t, Primitive("u64"), program.Instructions[0].Args[0].Type)
	assert.Equal(t, "F1pS1dAb", program.Metadata.Address)
}
