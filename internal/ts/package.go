package ts

// Package identifies an npm package the generated code imports from.
type Package string

const (
	PackageBeet       Package = "@metaplex-foundation/beet"
	PackageBeetSolana Package = "@metaplex-foundation/beet-solana"
	PackageWeb3       Package = "@solana/web3.js"
)

var packageAliases = map[Package]string{
	PackageBeet:       "beet",
	PackageBeetSolana: "beetSolana",
	PackageWeb3:       "web3",
}

// Alias returns the canonical import alias the generated code uses for
// the package.
func (p Package) Alias() string {
	if alias, ok := packageAliases[p]; ok {
		return alias
	}

	return string(p)
}
