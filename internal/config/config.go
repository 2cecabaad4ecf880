// Package config loads the tabsblock user configuration from
// $XDG_CONFIG_HOME/tabsblock/config.yaml.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tabsblock/internal/block"
)

// DirEnv overrides the config directory (for testing).
const DirEnv = "TABSBLOCK_CONFIG_DIR"

// Config is the on-disk configuration. Pointer fields distinguish "unset"
// from an explicit zero value.
type Config struct {
	Variant      string `yaml:"variant"`
	Authoring    *bool  `yaml:"authoring"`
	DocumentsDir string `yaml:"documents_dir"`
	Document     string `yaml:"document"`
	LogFile      string `yaml:"log_file"`
	Verbose      bool   `yaml:"verbose"`
}

// LoadResult carries the loaded config and any non-fatal warnings.
type LoadResult struct {
	Config   Config
	Warnings []string
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		Variant:   string(block.VariantModern),
		Authoring: boolPtr(true),
		Document:  "untitled",
	}
}

// AuthoringEnabled returns the effective start mode.
func (c Config) AuthoringEnabled() bool {
	return c.Authoring == nil || *c.Authoring
}

// BlockVariant returns Variant as a block.Variant.
func (c Config) BlockVariant() block.Variant {
	return block.Variant(c.Variant)
}

func configDir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "tabsblock"), nil
}

// Path returns the full path to config.yaml.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config, logging warnings with the standard logger.
func Load() Config {
	result := LoadWithWarnings()
	for _, warning := range result.Warnings {
		log.Printf("Warning: %s", warning)
	}
	return result.Config
}

// LoadWithWarnings reads the config file. A missing file yields defaults with
// no warnings; an unreadable or corrupt file yields defaults with a warning.
func LoadWithWarnings() LoadResult {
	p, err := Path()
	if err != nil {
		return LoadResult{
			Config:   Defaults(),
			Warnings: []string{"could not determine config path: " + err.Error()},
		}
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return LoadResult{Config: Defaults()}
	}
	if err != nil {
		return LoadResult{
			Config:   Defaults(),
			Warnings: []string{"could not read config file: " + err.Error()},
		}
	}
	return Parse(b)
}

// Parse decodes YAML bytes and fills unset fields from Defaults.
func Parse(b []byte) LoadResult {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return LoadResult{
			Config:   Defaults(),
			Warnings: []string{fmt.Sprintf("config file corrupt (using defaults): %v", err)},
		}
	}

	var warnings []string
	defaults := Defaults()

	c.Variant = strings.ToLower(strings.TrimSpace(c.Variant))
	switch block.Variant(c.Variant) {
	case block.VariantModern, block.VariantClassic:
	case "":
		c.Variant = defaults.Variant
	default:
		warnings = append(warnings, fmt.Sprintf("unknown variant %q (using %s)", c.Variant, defaults.Variant))
		c.Variant = defaults.Variant
	}
	if c.Authoring == nil {
		c.Authoring = boolPtr(*defaults.Authoring)
	}
	if strings.TrimSpace(c.Document) == "" {
		c.Document = defaults.Document
	}
	c.DocumentsDir = strings.TrimSpace(c.DocumentsDir)
	c.LogFile = strings.TrimSpace(c.LogFile)

	return LoadResult{Config: c, Warnings: warnings}
}

func boolPtr(b bool) *bool {
	return &b
}
