package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/level"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a Config from a YAML file. Fields the file leaves out keep their Default values.
func LoadFromFile(path string, opts LoadOptions) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		resolver := NewPathResolver(filepath.Dir(path))
		if err := config.ResolvePaths(resolver); err != nil {
			return nil, fmt.Errorf("resolving paths: %w", err)
		}
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

// SaveToFile saves a Config to a YAML file
func SaveToFile(config *Config, path string) error {
	NewMetadataCollector().PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths resolves all relative paths in the config to absolute paths
func (c *Config) ResolvePaths(resolver *PathResolver) error {
	if c.Level.Path != "" {
		c.Level.Path = resolver.ResolvePath(c.Level.Path)
	}
	if c.Render.Palette.FromFile != "" {
		c.Render.Palette.FromFile = resolver.ResolvePath(c.Render.Palette.FromFile)
	}
	return nil
}

func (c *Config) TraceParams() laser.TraceParams {
	return laser.TraceParams{MaxBounces: c.Trace.MaxBounces, MaxDistance: c.Trace.MaxDistance}
}

func (c *Config) RotationMode() (level.RotationMode, error) {
	return level.ParseRotationMode(c.Rotation.Mode)
}
