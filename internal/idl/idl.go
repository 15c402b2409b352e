package idl

import (
	"encoding/json"
	"fmt"
	"os"
)

// Idl is the interface description of a whole program: its instructions,
// account records and user defined types.
type Idl struct {
	Version      string        `json:"version"`
	Name         string        `json:"name"`
	Instructions []Instruction `json:"instructions"`
	Accounts     []TypeDef     `json:"accounts"`
	Types        []TypeDef     `json:"types"`
	Errors       []Error       `json:"errors"`
	Metadata     Metadata      `json:"metadata"`
}

type Metadata struct {
	Address string `json:"address"`
}

type Instruction struct {
	Name     string               `json:"name"`
	Accounts []InstructionAccount `json:"accounts"`
	Args     []Field              `json:"args"`
}

type InstructionAccount struct {
	Name     string `json:"name"`
	IsMut    bool   `json:"isMut"`
	IsSigner bool   `json:"isSigner"`
}

// Field is a named member of a record, a data enum variant or an
// instruction argument list.
type Field struct {
	Name string
	Type Type
}

// TypeDef is a named user defined type. Record definitions have `Fields`
// set; enum definitions have `Enum` set to a ScalarEnum or a DataEnum.
type TypeDef struct {
	Name   string
	Fields []Field
	Enum   Type
}

// IsEnum reports whether the definition declares an enum rather than a
// record.
func (d *TypeDef) IsEnum() bool {
	return d.Enum != nil
}

type Error struct {
	Code int    `json:"code"`
	Name string `json:"name"`
	Msg  string `json:"msg"`
}

// Read loads and decodes an IDL file.
func Read(filePath string) (*Idl, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read IDL file "%s": %w`, filePath, err)
	}

	var program Idl
	if err := json.Unmarshal(data, &program); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal IDL file "%s": %w`, filePath, err)
	}

	return &program, nil
}

// EachField calls fn for every field declared anywhere in the IDL: record
// and account fields, data enum variant fields and instruction arguments.
// The owner passed to fn identifies the declaring definition for error
// messages.
func (i *Idl) EachField(fn func(owner string, f Field)) {
	for _, def := range i.Accounts {
		eachDefField(def, fn)
	}

	for _, def := range i.Types {
		eachDefField(def, fn)
	}

	for _, ix := range i.Instructions {
		for _, f := range ix.Args {
			fn(ix.Name, f)
		}
	}
}

func eachDefField(def TypeDef, fn func(owner string, f Field)) {
	for _, f := range def.Fields {
		fn(def.Name, f)
	}

	if e, ok := def.Enum.(DataEnum); ok {
		for _, v := range e.Variants {
			for _, f := range v.Fields {
				fn(fmt.Sprintf("%s.%s", def.Name, v.Name), f)
			}
		}
	}
}
