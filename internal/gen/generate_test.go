package gen

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/anchorkit/idlgen/internal/config"
	"github.com/anchorkit/idlgen/internal/idl"
	"github.com/anchorkit/idlgen/internal/ts"
)

func newTestProgram() *idl.Idl {
	return &idl.Idl{
		Version: "0.1.0",
		Name:    "vault",
		Types: []idl.TypeDef{
			{
				Name: "Point",
				Fields: []idl.Field{
					{Name: "x", Type: idl.Primitive("u16")},
					{Name: "y", Type: idl.Primitive("u16")},
				},
			},
			{
				Name: "Color",
				Enum: idl.ScalarEnum{Variants: []string{"Red", "Green"}},
			},
		},
		Accounts: []idl.TypeDef{
			{
				Name: "Vault",
				Fields: []idl.Field{
					{Name: "owner", Type: idl.Primitive("publicKey")},
					{Name: "balance", Type: idl.Primitive("u64")},
				},
			},
		},
		Instructions: []idl.Instruction{
			{
				Name: "deposit",
				Accounts: []idl.InstructionAccount{
					{Name: "vault", IsMut: true},
					{Name: "owner", IsSigner: true},
				},
				Args: []idl.Field{
					{Name: "amount", Type: idl.Primitive("u64")},
				},
			},
		},
		Metadata: idl.Metadata{Address: "F1pS1dAbTest111"},
	}
}

func newTestMapper(program *idl.Idl) *ts.Mapper {
	return ts.New(ts.Options{
		AccountPaths: accountPaths(program),
		TypePaths:    typePaths(program),
	})
}

func TestRenderRecordDef(t *testing.T) {
	program := newTestProgram()
	def := program.Types[0]

	content, err := renderTypeDef(newTestMapper(program), typeDefPath(def), def)
	assert.NoError(t, err)

	assert.Equal(t, `// Code generated by idlgen. DO NOT EDIT.

import * as beet from '@metaplex-foundation/beet'

export type Point = {
  x: number
  y: number
}

export const pointBeet = new beet.BeetArgsStruct<Point>(
  [
    ['x', beet.u16],
    ['y', beet.u16],
  ],
  'Point'
)
`, content)
}

func TestRenderScalarEnumDef(t *testing.T) {
	program := newTestProgram()
	def := program.Types[1]

	content, err := renderTypeDef(newTestMapper(program), typeDefPath(def), def)
	assert.NoError(t, err)

	assert.Equal(t, `// Code generated by idlgen. DO NOT EDIT.

import * as beet from '@metaplex-foundation/beet'

export enum Color {
  Red,
  Green,
}

export const colorBeet = beet.fixedScalarEnum(Color)
`, content)
}

func TestRenderRecordDefFixable(t *testing.T) {
	program := newTestProgram()
	def := idl.TypeDef{
		Name: "Profile",
		Fields: []idl.Field{
			{Name: "name", Type: idl.Primitive("string")},
		},
	}

	content, err := renderTypeDef(newTestMapper(program), "types/Profile.ts", def)
	assert.NoError(t, err)

	assert.Contains(t, content, "new beet.FixableBeetArgsStruct<Profile>(")
	assert.Contains(t, content, "['name', beet.utf8String],")
}

func TestRenderRecordDefWithReference(t *testing.T) {
	program := newTestProgram()
	def := idl.TypeDef{
		Name: "Wrapper",
		Fields: []idl.Field{
			{Name: "point", Type: idl.Defined("Point")},
		},
	}

	content, err := renderTypeDef(newTestMapper(program), "types/Wrapper.ts", def)
	assert.NoError(t, err)

	assert.Contains(t, content, "import { Point, pointBeet } from './Point'")
	assert.Contains(t, content, "point: Point")
	assert.Contains(t, content, "['point', pointBeet],")
}

func TestRenderDataEnumDef(t *testing.T) {
	program := newTestProgram()
	def := idl.TypeDef{
		Name: "Shape",
		Enum: idl.DataEnum{
			Variants: []idl.DataEnumVariant{
				{Name: "Circle", Fields: []idl.Field{{Name: "radius", Type: idl.Primitive("u64")}}},
				{Name: "Label", Fields: []idl.Field{{Name: "text", Type: idl.Primitive("string")}}},
			},
		},
	}

	content, err := renderTypeDef(newTestMapper(program), "types/Shape.ts", def)
	assert.NoError(t, err)

	assert.Contains(t, content, "export type Shape =")
	assert.Contains(t, content, "| { __kind: 'Circle'; radius: beet.bignum }")
	assert.Contains(t, content, "| { __kind: 'Label'; text: string }")
	assert.Contains(t, content, "export const shapeBeet = beet.dataEnum<Shape>([")

	// The circle variant is fixed size, the label variant is not.
	assert.Contains(t, content, "new beet.BeetArgsStruct<any>(")
	assert.Contains(t, content, "new beet.FixableBeetArgsStruct<any>(")
	assert.Contains(t, content, "'Shape.Circle'")
	assert.Contains(t, content, "'Shape.Label'")
}

func TestRenderAccountDef(t *testing.T) {
	program := newTestProgram()
	def := program.Accounts[0]

	content, err := renderAccountDef(newTestMapper(program), accountDefPath(def), def)
	assert.NoError(t, err)

	assert.Contains(t, content, "import * as beet from '@metaplex-foundation/beet'")
	assert.Contains(t, content, "import * as beetSolana from '@metaplex-foundation/beet-solana'")
	assert.Contains(t, content, "import * as web3 from '@solana/web3.js'")
	assert.Contains(t, content, "export type Vault = {")
	assert.Contains(t, content, "owner: web3.PublicKey")
	assert.Contains(t, content, "balance: beet.bignum")
	assert.Contains(t, content, "['owner', beetSolana.publicKey],")
	assert.Contains(t, content, "new beet.BeetArgsStruct<Vault>(")
	assert.Contains(t, content, "export function vaultFromAccountInfo(info: web3.AccountInfo<Buffer>, offset = 0): Vault {")
	assert.Contains(t, content, "return vaultBeet.deserialize(info.data, offset)[0]")
}

func TestRenderInstruction(t *testing.T) {
	program := newTestProgram()
	ix := program.Instructions[0]

	content, err := renderInstruction(newTestMapper(program), instructionPath(ix), ix, program.Metadata.Address)
	assert.NoError(t, err)

	assert.Contains(t, content, "export type DepositInstructionArgs = {")
	assert.Contains(t, content, "amount: beet.bignum")
	assert.Contains(t, content, "export const depositStruct = new beet.BeetArgsStruct<DepositInstructionArgs & { instructionDiscriminator: number[] }>(")
	assert.Contains(t, content, "['instructionDiscriminator', beet.uniformFixedSizeArray(beet.u8, 8)],")
	assert.Contains(t, content, "['amount', beet.u64],")
	assert.Contains(t, content, "export type DepositInstructionAccounts = {")
	assert.Contains(t, content, "vault: web3.PublicKey")
	assert.Contains(t, content, "export const depositInstructionDiscriminator = [")
	assert.Contains(t, content, "export function createDepositInstruction(")
	assert.Contains(t, content, "programId = new web3.PublicKey('F1pS1dAbTest111')")
	assert.Contains(t, content, "pubkey: accounts.vault,")
	assert.Contains(t, content, "isWritable: true,")
	assert.Contains(t, content, "return new web3.TransactionInstruction({ programId, keys, data })")
}

func TestRenderInstructionWithoutArgs(t *testing.T) {
	program := newTestProgram()
	ix := idl.Instruction{
		Name: "close",
		Accounts: []idl.InstructionAccount{
			{Name: "vault", IsMut: true},
		},
	}

	content, err := renderInstruction(newTestMapper(program), "instructions/close.ts", ix, "")
	assert.NoError(t, err)

	assert.NotContains(t, content, "export type CloseInstructionArgs = {")
	assert.Contains(t, content, "new beet.BeetArgsStruct<{ instructionDiscriminator: number[] }>(")
	assert.Contains(t, content, "programId: web3.PublicKey")
	assert.NotContains(t, content, "...args,")
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "deposit", snakeCase("deposit"))
	assert.Equal(t, "create_vault_account", snakeCase("createVaultAccount"))
}

func TestGenerateCode(t *testing.T) {
	workingDir := t.TempDir()

	cfg := config.Config{
		Version: 1,
		Out:     config.Out{Path: "generated"},
	}

	err := GenerateCode(cfg, workingDir, newTestProgram(), nil, zap.NewNop())
	assert.NoError(t, err)

	for _, f := range []string{
		"types/Point.ts",
		"types/Color.ts",
		"accounts/Vault.ts",
		"instructions/deposit.ts",
	} {
		_, err := os.Stat(filepath.Join(workingDir, "generated", f))
		assert.NoError(t, err, f)
	}
}

func TestGenerateCodeUnsupportedPrimitive(t *testing.T) {
	program := &idl.Idl{
		Types: []idl.TypeDef{
			{Name: "Bad", Fields: []idl.Field{{Name: "x", Type: idl.Primitive("u4096")}}},
		},
	}

	err := GenerateCode(config.Config{Out: config.Out{Path: "generated"}}, t.TempDir(), program, nil, zap.NewNop())
	assert.ErrorContains(t, err, `"u4096"`)
	assert.ErrorContains(t, err, `"Bad"`)
}
