package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version int `yaml:"version"`
	Idl     Idl `yaml:"idl"`
	Out     Out `yaml:"out"`

	// Aliases maps a type name to the primitive it stands for wherever it
	// is referenced.
	Aliases map[string]string `yaml:"aliases"`

	// ForceFixable lists defined type names whose serde is treated as
	// variable length even when the traversal would infer a fixed size.
	ForceFixable []string `yaml:"forceFixable"`

	Debug bool `yaml:"debug"`
}

type Idl struct {
	Path string `yaml:"path"`
}

type Out struct {
	Path string `yaml:"path"`
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	return &config, nil
}
