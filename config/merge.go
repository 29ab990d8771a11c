package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergePalette merges colors from a JSON file with inline colors. Inline colors win.
func (p *Palette) MergePalette() error {
	if p.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(p.FromFile)
	if err != nil {
		return fmt.Errorf("reading palette file: %w", err)
	}

	var fileColors map[string]string
	if err := json.Unmarshal(data, &fileColors); err != nil {
		return fmt.Errorf("parsing palette file: %w", err)
	}

	if p.Inline == nil {
		p.Inline = make(map[string]string)
	}
	for name, color := range fileColors {
		if _, exists := p.Inline[name]; !exists {
			p.Inline[name] = color
		}
	}

	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *Config) LoadAndMerge() error {
	if err := c.Render.Palette.MergePalette(); err != nil {
		return fmt.Errorf("merging palette: %w", err)
	}
	return nil
}
