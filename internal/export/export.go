// Package export reads and writes site configurations as YAML files and
// renders them for review.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/sitewizard/internal/logger"
	"github.com/mark3labs/sitewizard/internal/site"
)

// FileName returns the file name used for cfg: the slug of its name, or
// "unnamed-site" when the name has no usable characters.
func FileName(cfg site.Config) string {
	name := slug.Make(cfg.Name)
	if name == "" {
		name = "unnamed-site"
	}
	return name + ".yml"
}

// Marshal renders cfg as YAML with selectors in field order.
func Marshal(cfg site.Config) ([]byte, error) {
	if cfg.Selectors == nil {
		cfg.Selectors = site.NewSelectorMap()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes cfg to dir and returns the path of the written file.
func Save(dir string, cfg site.Config) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(cfg))
	logger.Debug("Writing site config to %s", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// Load reads a configuration written by Save. Settings missing from the
// file keep the defaults of site.NewConfig.
func Load(path string) (site.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return site.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := site.NewConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return site.Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Selectors == nil {
		cfg.Selectors = site.NewSelectorMap()
	}
	return cfg, nil
}
