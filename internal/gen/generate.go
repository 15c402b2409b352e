package gen

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/anchorkit/idlgen/internal/config"
	"github.com/anchorkit/idlgen/internal/idl"
	"github.com/anchorkit/idlgen/internal/ts"
)

const (
	dirTypes        = "types"
	dirAccounts     = "accounts"
	dirInstructions = "instructions"
)

// GenerateCode writes the TypeScript client for the program under the
// configured output directory: one file per user defined type, account
// and instruction. Each file is rendered with its own mapper clone, so
// the files are generated concurrently.
func GenerateCode(
	cfg config.Config,
	workingDir string,
	program *idl.Idl,
	aliases map[string]idl.Primitive,
	logger *zap.Logger,
) error {
	mapper := ts.New(ts.Options{
		Logger:       logger,
		AccountPaths: accountPaths(program),
		TypePaths:    typePaths(program),
		Aliases:      aliases,
		ForceFixable: forceFixablePredicate(cfg),
	})

	if err := checkPrimitives(mapper, program); err != nil {
		return err
	}

	outDir := filepath.Join(workingDir, cfg.Out.Path)

	var g errgroup.Group

	for _, def := range program.Types {
		def := def
		target := typeDefPath(def)

		g.Go(func() error {
			content, err := renderTypeDef(mapper.Clone(), target, def)
			if err != nil {
				return fmt.Errorf(`failed to generate type "%s": %w`, def.Name, err)
			}

			return writeFile(logger, outDir, target, content)
		})
	}

	for _, def := range program.Accounts {
		def := def
		target := accountDefPath(def)

		g.Go(func() error {
			content, err := renderAccountDef(mapper.Clone(), target, def)
			if err != nil {
				return fmt.Errorf(`failed to generate account "%s": %w`, def.Name, err)
			}

			return writeFile(logger, outDir, target, content)
		})
	}

	for _, ix := range program.Instructions {
		ix := ix
		target := instructionPath(ix)

		g.Go(func() error {
			content, err := renderInstruction(mapper.Clone(), target, ix, program.Metadata.Address)
			if err != nil {
				return fmt.Errorf(`failed to generate instruction "%s": %w`, ix.Name, err)
			}

			return writeFile(logger, outDir, target, content)
		})
	}

	return g.Wait()
}

// checkPrimitives pre-validates every primitive key used anywhere in the
// IDL against the primary type table, so an unsupported type fails the run
// before any file is written.
func checkPrimitives(mapper *ts.Mapper, program *idl.Idl) error {
	var err error

	program.EachField(func(owner string, f idl.Field) {
		if err != nil {
			return
		}

		idl.Walk(f.Type, func(ty idl.Type) {
			if err != nil {
				return
			}

			if p, ok := ty.(idl.Primitive); ok {
				if checkErr := mapper.CheckPrimitive(p); checkErr != nil {
					err = fmt.Errorf(`in "%s": %w`, owner, checkErr)
				}
			}
		})
	})

	return err
}

func typeDefPath(def idl.TypeDef) string {
	return path.Join(dirTypes, def.Name+".ts")
}

func accountDefPath(def idl.TypeDef) string {
	return path.Join(dirAccounts, def.Name+".ts")
}

func instructionPath(ix idl.Instruction) string {
	return path.Join(dirInstructions, ix.Name+".ts")
}

func typePaths(program *idl.Idl) map[string]string {
	paths := make(map[string]string, len(program.Types))

	for _, def := range program.Types {
		paths[def.Name] = typeDefPath(def)
	}

	return paths
}

func accountPaths(program *idl.Idl) map[string]string {
	paths := make(map[string]string, len(program.Accounts))

	for _, def := range program.Accounts {
		paths[def.Name] = accountDefPath(def)
	}

	return paths
}

func forceFixablePredicate(cfg config.Config) func(idl.Type) bool {
	if len(cfg.ForceFixable) == 0 {
		return nil
	}

	return func(ty idl.Type) bool {
		if d, ok := ty.(idl.Defined); ok {
			return slices.Contains(cfg.ForceFixable, string(d))
		}

		return false
	}
}

func writeFile(logger *zap.Logger, outDir string, target string, content string) error {
	filePath := filepath.Join(outDir, filepath.FromSlash(target))

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return err
	}

	logger.Info("generated file", zap.String("path", target))
	return nil
}
