package gen

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"github.com/anchorkit/idlgen/internal/idl"
	"github.com/anchorkit/idlgen/internal/ts"
)

// renderInstruction renders the declaration file of a single instruction:
// the argument type, the serde struct that prepends the instruction
// discriminator, and a builder that assembles the transaction instruction
// from its accounts and args.
func renderInstruction(m *ts.Mapper, target string, ix idl.Instruction, programAddress string) (string, error) {
	args, err := mapRecordFields(m, ix.Name, ix.Args)
	if err != nil {
		return "", err
	}

	argsType := ts.FirstUpper(ix.Name) + "InstructionArgs"
	accountsType := ts.FirstUpper(ix.Name) + "InstructionAccounts"
	structName := ts.FirstLower(ix.Name) + "Struct"
	discriminatorName := ts.FirstLower(ix.Name) + "InstructionDiscriminator"

	var w tsWriter
	writeHeader(&w, m, target, ts.PackageBeet, ts.PackageWeb3)

	if len(args) > 0 {
		writeRecordType(&w, argsType, args)
		w.WriteNewLine()
	}

	writeInstructionStruct(&w, structName, argsType, discriminatorName, args, m.Fixable())
	w.WriteNewLine()

	writeAccountsType(&w, accountsType, ix.Accounts)
	w.WriteNewLine()

	w.WriteLine(fmt.Sprintf("export const %s = [%s]", discriminatorName, discriminatorList(ix.Name)))
	w.WriteNewLine()

	writeCreateInstruction(&w, ix, argsType, accountsType, structName, discriminatorName, programAddress, len(args) > 0)
	return w.String(), nil
}

func writeInstructionStruct(
	w *tsWriter,
	structName string,
	argsType string,
	discriminatorName string,
	args []recordField,
	fixable bool,
) {
	structType := "BeetArgsStruct"
	if fixable {
		structType = "FixableBeetArgsStruct"
	}

	typeParam := "{ instructionDiscriminator: number[] }"
	if len(args) > 0 {
		typeParam = fmt.Sprintf("%s & { instructionDiscriminator: number[] }", argsType)
	}

	w.WriteLine(fmt.Sprintf("export const %s = new beet.%s<%s>(", structName, structType, typeParam))
	w.Indent()
	w.WriteLine("[")
	w.Indent()
	w.WriteLine("['instructionDiscriminator', beet.uniformFixedSizeArray(beet.u8, 8)],")

	for _, f := range args {
		w.WriteLine(fmt.Sprintf("['%s', %s],", f.Name, f.Serde))
	}

	w.DeIndent()
	w.WriteLine("],")
	w.WriteLine(fmt.Sprintf("'%s'", argsType))
	w.DeIndent()
	w.WriteLine(")")
}

func writeAccountsType(w *tsWriter, accountsType string, accounts []idl.InstructionAccount) {
	w.WriteLine(fmt.Sprintf("export type %s = {", accountsType))
	w.Indent()

	for _, a := range accounts {
		w.WriteLine(fmt.Sprintf("%s: web3.PublicKey", a.Name))
	}

	w.DeIndent()
	w.WriteLine("}")
}

func writeCreateInstruction(
	w *tsWriter,
	ix idl.Instruction,
	argsType string,
	accountsType string,
	structName string,
	discriminatorName string,
	programAddress string,
	hasArgs bool,
) {
	w.WriteLine(fmt.Sprintf("export function create%sInstruction(", ts.FirstUpper(ix.Name)))
	w.Indent()
	w.WriteLine(fmt.Sprintf("accounts: %s,", accountsType))

	if hasArgs {
		w.WriteLine(fmt.Sprintf("args: %s,", argsType))
	}

	if programAddress != "" {
		w.WriteLine(fmt.Sprintf("programId = new web3.PublicKey('%s')", programAddress))
	} else {
		w.WriteLine("programId: web3.PublicKey")
	}

	w.DeIndent()
	w.WriteLine("): web3.TransactionInstruction {")
	w.Indent()

	w.WriteLine(fmt.Sprintf("const [data] = %s.serialize({", structName))
	w.Indent()
	w.WriteLine(fmt.Sprintf("instructionDiscriminator: %s,", discriminatorName))

	if hasArgs {
		w.WriteLine("...args,")
	}

	w.DeIndent()
	w.WriteLine("})")
	w.WriteNewLine()

	w.WriteLine("const keys: web3.AccountMeta[] = [")
	w.Indent()

	for _, a := range ix.Accounts {
		w.WriteLine("{")
		w.Indent()
		w.WriteLine(fmt.Sprintf("pubkey: accounts.%s,", a.Name))
		w.WriteLine(fmt.Sprintf("isWritable: %t,", a.IsMut))
		w.WriteLine(fmt.Sprintf("isSigner: %t,", a.IsSigner))
		w.DeIndent()
		w.WriteLine("},")
	}

	w.DeIndent()
	w.WriteLine("]")
	w.WriteNewLine()

	w.WriteLine("return new web3.TransactionInstruction({ programId, keys, data })")
	w.DeIndent()
	w.WriteLine("}")
}

// discriminatorList renders the eight byte instruction discriminator as a
// TypeScript number list. The bytes are the leading eight bytes of
// sha256("global:<snake_case_name>"), matching what the on-chain program
// expects in front of the instruction data.
func discriminatorList(name string) string {
	hash := sha256.Sum256([]byte("global:" + snakeCase(name)))

	parts := make([]string, 8)
	for i := 0; i < 8; i += 1 {
		parts[i] = strconv.Itoa(int(hash[i]))
	}

	return strings.Join(parts, ", ")
}

func snakeCase(s string) string {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i += 1 {
		c := s[i]

		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}

			c += 'a' - 'A'
		}

		out = append(out, c)
	}

	return string(out)
}
