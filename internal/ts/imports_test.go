package ts

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/anchorkit/idlgen/internal/idl"
)

func TestImports(t *testing.T) {
	m := newTestMapper()

	_, err := m.MapSerde(idl.Primitive("u64"), "amount")
	assert.NoError(t, err)

	_, err = m.MapSerde(idl.Defined("Foo"), "foo")
	assert.NoError(t, err)

	_, err = m.Map(idl.Defined("Foo"), "foo")
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"import * as beet from '@metaplex-foundation/beet'",
		"import { Foo, fooBeet } from '../types/Foo'",
	}, m.Imports("instructions/transfer.ts"))
}

func TestImportsSameDirectory(t *testing.T) {
	m := newTestMapper()

	_, err := m.Map(idl.Defined("Foo"), "foo")
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"import { Foo } from './Foo'",
	}, m.Imports("types/Bar.ts"))
}

func TestImportsForcedPackages(t *testing.T) {
	m := newTestMapper()

	_, err := m.MapSerde(idl.Primitive("publicKey"), "owner")
	assert.NoError(t, err)

	// The forced web3 package shows up even though no mapped type used it;
	// forcing the already used beet-solana package does not duplicate it.
	assert.Equal(t, []string{
		"import * as beetSolana from '@metaplex-foundation/beet-solana'",
		"import * as web3 from '@solana/web3.js'",
	}, m.Imports("accounts/Escrow.ts", PackageWeb3, PackageBeetSolana))
}

func TestRelativeModule(t *testing.T) {
	assert.Equal(t, "../types/Foo", relativeModule("instructions/transfer.ts", "types/Foo.ts"))
	assert.Equal(t, "./Foo", relativeModule("types/Bar.ts", "types/Foo.ts"))
	assert.Equal(t, "./types/Foo", relativeModule("index.ts", "types/Foo.ts"))
	assert.Equal(t, "../../types/Foo", relativeModule("a/b/c.ts", "types/Foo.ts"))
}
