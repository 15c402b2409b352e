package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/anchorkit/idlgen/internal/config"
	"github.com/anchorkit/idlgen/internal/gen"
	"github.com/anchorkit/idlgen/internal/idl"
)

const configFile = "idlgen.yaml"

type Settings struct {
	WorkingDir string
	Logger     *zap.Logger
}

func Run(s Settings) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := config.Read(filepath.Join(s.WorkingDir, configFile))
	if err != nil {
		return err
	}

	program, err := idl.Read(filepath.Join(s.WorkingDir, cfg.Idl.Path))
	if err != nil {
		return err
	}

	if cfg.Debug {
		logger.Debug("loaded IDL", zap.String("dump", spew.Sdump(program)))
	}

	aliases := make(map[string]idl.Primitive, len(cfg.Aliases))
	for name, key := range cfg.Aliases {
		aliases[name] = idl.Primitive(key)
	}

	if err := idl.Validate(program, aliases); err != nil {
		return fmt.Errorf(`invalid IDL "%s": %w`, cfg.Idl.Path, err)
	}

	return gen.GenerateCode(*cfg, s.WorkingDir, program, aliases, logger)
}
