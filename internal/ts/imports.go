package ts

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/anchorkit/idlgen/internal/maps"
)

// Imports renders the import statements the generated file at targetPath
// needs: one namespace import per used package and one named import per
// referenced local file, with the declaring path rewritten relative to the
// target file. Packages listed in force are included even when no mapped
// type used them.
func (m *Mapper) Imports(targetPath string, force ...Package) []string {
	pkgs := maps.Keys(m.usedPackages)

	for _, p := range force {
		if !m.usedPackages[p] {
			pkgs = append(pkgs, p)
		}
	}

	slices.Sort(pkgs)

	lines := make([]string, 0, len(pkgs)+len(m.localImports))

	for _, p := range pkgs {
		lines = append(lines, fmt.Sprintf("import * as %s from '%s'", p.Alias(), p))
	}

	paths := maps.Keys(m.localImports)
	slices.Sort(paths)

	for _, p := range paths {
		symbols := maps.Keys(m.localImports[p])
		slices.Sort(symbols)

		lines = append(lines, fmt.Sprintf(
			"import { %s } from '%s'",
			strings.Join(symbols, ", "),
			relativeModule(targetPath, p),
		))
	}

	return lines
}

// UsedPackages returns the packages recorded as used since the last Reset,
// in a stable order.
func (m *Mapper) UsedPackages() []Package {
	pkgs := maps.Keys(m.usedPackages)
	slices.Sort(pkgs)
	return pkgs
}

// LocalImports returns the symbols that must be imported from each
// declaring file, keyed by the declaring path, with sorted symbol lists.
func (m *Mapper) LocalImports() map[string][]string {
	out := make(map[string][]string, len(m.localImports))

	for p, symbols := range m.localImports {
		names := maps.Keys(symbols)
		slices.Sort(names)
		out[p] = names
	}

	return out
}

// relativeModule turns a declaring path into the module specifier the
// target file uses to import from it: relative to the target's directory
// and without the file extension.
func relativeModule(targetPath string, declPath string) string {
	target := path.Dir(targetPath)
	decl := strings.TrimSuffix(declPath, path.Ext(declPath))

	prefix := ""
	for target != "." && target != "/" && !strings.HasPrefix(decl, target+"/") {
		target = path.Dir(target)
		prefix += "../"
	}

	if target != "." && target != "/" {
		decl = decl[len(target)+1:]
	}

	if prefix == "" {
		prefix = "./"
	}

	return prefix + decl
}
