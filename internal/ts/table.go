package ts

// TypeEntry describes how one primary type table key maps to TypeScript:
// the native type it declares, the serde combinator that encodes it and
// whether that combinator produces a variable length ("fixable") encoding.
//
// Native may be empty for entries that are only usable on the serde side.
// NativePkg is set when the native type has to be qualified with a package
// alias, e.g. `beet.bignum` or `web3.PublicKey`.
type TypeEntry struct {
	Native    string
	NativePkg Package
	Serde     string
	SerdePkg  Package
	Fixable   bool
}

// Keys of the compound combinator entries of the beet table. These are not
// schema primitives; the mapper resolves them internally when it maps
// option, vec, array and scalar enum expressions.
const (
	keyArray           = "array"
	keyFixedSizeArray  = "uniformFixedSizeArray"
	keyOption          = "coption"
	keyFixedScalarEnum = "fixedScalarEnum"
)

// BeetTable is the partial primary type table exported by beet.
var BeetTable = map[string]TypeEntry{
	"u8":  {Native: "number", Serde: "u8", SerdePkg: PackageBeet},
	"u16": {Native: "number", Serde: "u16", SerdePkg: PackageBeet},
	"u32": {Native: "number", Serde: "u32", SerdePkg: PackageBeet},
	"i8":  {Native: "number", Serde: "i8", SerdePkg: PackageBeet},
	"i16": {Native: "number", Serde: "i16", SerdePkg: PackageBeet},
	"i32": {Native: "number", Serde: "i32", SerdePkg: PackageBeet},

	"u64":  {Native: "bignum", NativePkg: PackageBeet, Serde: "u64", SerdePkg: PackageBeet},
	"u128": {Native: "bignum", NativePkg: PackageBeet, Serde: "u128", SerdePkg: PackageBeet},
	"u256": {Native: "bignum", NativePkg: PackageBeet, Serde: "u256", SerdePkg: PackageBeet},
	"u512": {Native: "bignum", NativePkg: PackageBeet, Serde: "u512", SerdePkg: PackageBeet},
	"i64":  {Native: "bignum", NativePkg: PackageBeet, Serde: "i64", SerdePkg: PackageBeet},
	"i128": {Native: "bignum", NativePkg: PackageBeet, Serde: "i128", SerdePkg: PackageBeet},
	"i256": {Native: "bignum", NativePkg: PackageBeet, Serde: "i256", SerdePkg: PackageBeet},
	"i512": {Native: "bignum", NativePkg: PackageBeet, Serde: "i512", SerdePkg: PackageBeet},

	"bool": {Native: "boolean", Serde: "bool", SerdePkg: PackageBeet},

	// Strings and byte blobs are inherently variable length.
	"string": {Native: "string", Serde: "utf8String", SerdePkg: PackageBeet, Fixable: true},
	"bytes":  {Native: "Uint8Array", Serde: "bytes", SerdePkg: PackageBeet, Fixable: true},

	keyArray:           {Serde: "array", SerdePkg: PackageBeet, Fixable: true},
	keyFixedSizeArray:  {Serde: "uniformFixedSizeArray", SerdePkg: PackageBeet},
	keyOption:          {Native: "COption", NativePkg: PackageBeet, Serde: "coption", SerdePkg: PackageBeet, Fixable: true},
	keyFixedScalarEnum: {Serde: "fixedScalarEnum", SerdePkg: PackageBeet},
}

// BeetSolanaTable is the partial primary type table exported by beet-solana.
var BeetSolanaTable = map[string]TypeEntry{
	"publicKey": {Native: "PublicKey", NativePkg: PackageWeb3, Serde: "publicKey", SerdePkg: PackageBeetSolana},
}

// DefaultTable returns the union of the beet and beet-solana tables.
func DefaultTable() map[string]TypeEntry {
	table := make(map[string]TypeEntry, len(BeetTable)+len(BeetSolanaTable))

	for key, entry := range BeetTable {
		table[key] = entry
	}

	for key, entry := range BeetSolanaTable {
		table[key] = entry
	}

	return table
}
