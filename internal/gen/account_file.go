package gen

import (
	"fmt"

	"github.com/anchorkit/idlgen/internal/idl"
	"github.com/anchorkit/idlgen/internal/ts"
)

// renderAccountDef renders the declaration file of an account record: the
// account data type, its serde struct and a helper that decodes the data
// out of raw account info.
func renderAccountDef(m *ts.Mapper, target string, def idl.TypeDef) (string, error) {
	fields, err := mapRecordFields(m, def.Name, def.Fields)
	if err != nil {
		return "", err
	}

	serdeName := ts.SerdeName(def.Name)

	var w tsWriter
	writeHeader(&w, m, target, ts.PackageBeet, ts.PackageWeb3)

	writeRecordType(&w, def.Name, fields)
	w.WriteNewLine()

	writeArgsStruct(&w, def.Name, serdeName, fields, m.Fixable())
	w.WriteNewLine()

	w.WriteLine(fmt.Sprintf(
		"export function %sFromAccountInfo(info: web3.AccountInfo<Buffer>, offset = 0): %s {",
		ts.FirstLower(def.Name), def.Name,
	))
	w.Indent()
	w.WriteLine(fmt.Sprintf("return %s.deserialize(info.data, offset)[0]", serdeName))
	w.DeIndent()
	w.WriteLine("}")

	return w.String(), nil
}
