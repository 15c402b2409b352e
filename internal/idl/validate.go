package idl

import "fmt"

// Validate checks the IDL for internal consistency before any code is
// generated: every declaration must be named, type and account names must
// be unique and every defined reference must resolve to a declared type,
// account or alias.
func Validate(program *Idl, aliases map[string]Primitive) error {
	known := make(map[string]bool)

	for _, def := range program.Accounts {
		if def.Name == "" {
			return fmt.Errorf("account definition without a name")
		}

		if known[def.Name] {
			return fmt.Errorf(`duplicate definition of type "%s"`, def.Name)
		}

		known[def.Name] = true
	}

	for _, def := range program.Types {
		if def.Name == "" {
			return fmt.Errorf("type definition without a name")
		}

		if known[def.Name] {
			return fmt.Errorf(`duplicate definition of type "%s"`, def.Name)
		}

		known[def.Name] = true
	}

	for _, ix := range program.Instructions {
		if ix.Name == "" {
			return fmt.Errorf("instruction without a name")
		}
	}

	for name := range aliases {
		known[name] = true
	}

	var err error

	program.EachField(func(owner string, f Field) {
		if err != nil {
			return
		}

		Walk(f.Type, func(ty Type) {
			if err != nil {
				return
			}

			if d, ok := ty.(Defined); ok && !known[string(d)] {
				err = fmt.Errorf(`unknown type "%s" referenced by "%s"`, d, owner)
			}
		})
	})

	return err
}
