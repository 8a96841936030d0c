// Package config reads the optional paper.yaml project file.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/paper/pkg/errors"
	"github.com/go-drift/paper/pkg/theme"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project file looked up in the module root.
const FileName = "paper.yaml"

// Config represents the optional paper.yaml configuration.
//
//	theme:
//	  file: design/theme.yaml
//	  schema: v2
//	  dark: true
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig selects the theme a project builds with.
type ThemeConfig struct {
	// Name labels the theme in output. Defaults to the module name.
	Name string `yaml:"name,omitempty"`
	// File is an override file, relative to the project root.
	File   string `yaml:"file,omitempty"`
	Schema string `yaml:"schema,omitempty"`
	Dark   *bool  `yaml:"dark,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Name       string
	// ThemeFile is the absolute path of the override file, or empty.
	ThemeFile string
	// Override holds the schema and brightness set in paper.yaml.
	Override theme.Override
}

// LoadOptional reads paper.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &errors.PaperError{Op: "config.Load", Kind: errors.KindConfig, Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.PaperError{Op: "config.Load", Kind: errors.KindParsing, Path: path, Err: err}
	}
	return &cfg, nil
}

// Resolve loads paper.yaml (if present) from the project at dir and fills
// in defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Theme.Name)
	if name == "" {
		name = defaultName(modulePath, dir)
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Name:       name,
	}
	if f := strings.TrimSpace(cfg.Theme.File); f != "" {
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		r.ThemeFile = f
	}
	if s := strings.TrimSpace(cfg.Theme.Schema); s != "" {
		v, err := theme.ParseSchemaVersion(s)
		if err != nil {
			return nil, &errors.PaperError{Op: "config.Resolve", Kind: errors.KindConfig, Path: filepath.Join(dir, FileName), Err: err}
		}
		r.Override.Schema = &v
	}
	r.Override.Dark = cfg.Theme.Dark
	return r, nil
}

// FindProjectRoot walks up from dir to find go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultName is the last element of the module path without its major
// version suffix, falling back to the directory name.
func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "paper"
	}
	return base
}
