package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kridha-admin/stydev/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file read from the project root.
const FileName = ".stydev.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .stydev.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .stydev.yaml from projectPath.
// Returns DefaultConfig if the file does not exist or is empty.
func (l *YAMLLoader) Load(projectPath string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return resolvePaths(domain.DefaultConfig(), projectPath), nil
		}
		return domain.Config{}, err
	}

	// Decode over the defaults so omitted keys keep their default values.
	// Unknown keys are rejected to catch typos.
	cfg := domain.DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return resolvePaths(cfg, projectPath), nil
}

// resolvePaths anchors relative file locations at the project directory.
func resolvePaths(cfg domain.Config, projectPath string) domain.Config {
	if cfg.Registry.Source == "" {
		cfg.Registry.Source = domain.RegistrySourceDir
	}
	cfg.Registry.Dir = anchor(projectPath, cfg.Registry.Dir)
	cfg.Registry.SQLitePath = anchor(projectPath, cfg.Registry.SQLitePath)
	cfg.History.Path = anchor(projectPath, cfg.History.Path)
	return cfg
}

func anchor(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
