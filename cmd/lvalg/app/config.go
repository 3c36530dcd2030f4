package app

import (
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"
)

// Config is the YAML config file. Unset fields keep the flag defaults.
type Config struct {
	LogLevel *string `json:"logLevel,omitempty"`
	Names    *string `json:"names,omitempty"`
	Directed *bool   `json:"directed,omitempty"`
	Seed     *int64  `json:"seed,omitempty"`
}

func ReadConfig(fs vfs.FileSystem, path string) (*Config, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	var cfg Config
	if err = yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return &cfg, nil
}
