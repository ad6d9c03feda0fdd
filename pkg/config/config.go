// Package config loads the optional ribbon.yaml that configures ribbonctl and
// hosts bootstrapping a ribbon from a directory of declarations.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/ribbon/pkg/resolve"
	"github.com/go-drift/ribbon/pkg/ribbon"
)

// FileName is the configuration file looked up in a project directory.
const FileName = "ribbon.yaml"

// DefaultSchema is assumed when the file omits schema.
const DefaultSchema = "v1.0.0"

// DefaultDeclarationsDir holds the declaration files relative to the root.
const DefaultDeclarationsDir = "ribbons"

// Config represents the optional ribbon.yaml configuration.
type Config struct {
	Schema       string             `yaml:"schema,omitempty"`
	Ribbon       RibbonConfig       `yaml:"ribbon"`
	Declarations DeclarationsConfig `yaml:"declarations"`
	Images       map[string]string  `yaml:"images,omitempty"`
	Log          LogConfig          `yaml:"log"`
}

// RibbonConfig contains core settings.
type RibbonConfig struct {
	TabPrefix string `yaml:"tabPrefix,omitempty"`
	MaxDepth  int    `yaml:"maxDepth,omitempty"`
	// Preload lists tab ids created eagerly at startup.
	Preload []string `yaml:"preload,omitempty"`
	// Contextual lists tab ids registered as contextual tabs.
	Contextual []string `yaml:"contextual,omitempty"`
}

// DeclarationsConfig locates the declaration files.
type DeclarationsConfig struct {
	Dir string `yaml:"dir,omitempty"`
	Ext string `yaml:"ext,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	Schema     string
	TabPrefix  string
	MaxDepth   int
	Preload    []string
	Contextual []string
	// DeclDir is slash-separated and relative to Root.
	DeclDir string
	DeclExt string
	// Images maps image keys to slash-separated paths relative to Root.
	Images  map[string]string
	Verbose bool
}

// LoadOptional reads ribbon.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads ribbon.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	schema, err := validateSchema(cfg.Schema)
	if err != nil {
		return nil, err
	}

	prefix := strings.TrimSpace(cfg.Ribbon.TabPrefix)
	if prefix == "" {
		prefix = ribbon.DefaultTabPrefix
	}

	maxDepth := cfg.Ribbon.MaxDepth
	switch {
	case maxDepth < 0:
		return nil, fmt.Errorf("ribbon.maxDepth must not be negative (got %d)", maxDepth)
	case maxDepth == 0:
		maxDepth = ribbon.DefaultMaxDepth
	}

	declDir := strings.TrimSpace(cfg.Declarations.Dir)
	if declDir == "" {
		declDir = DefaultDeclarationsDir
	}
	declDir, err = relative("declarations.dir", declDir)
	if err != nil {
		return nil, err
	}

	ext := strings.TrimSpace(cfg.Declarations.Ext)
	if ext == "" {
		ext = resolve.DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	imgs := make(map[string]string, len(cfg.Images))
	for key, p := range cfg.Images {
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("images contains an empty key")
		}
		rel, err := relative("images."+key, p)
		if err != nil {
			return nil, err
		}
		imgs[key] = rel
	}

	return &Resolved{
		Root:       dir,
		Schema:     schema,
		TabPrefix:  prefix,
		MaxDepth:   maxDepth,
		Preload:    ids(cfg.Ribbon.Preload),
		Contextual: ids(cfg.Ribbon.Contextual),
		DeclDir:    declDir,
		DeclExt:    ext,
		Images:     imgs,
		Verbose:    cfg.Log.Verbose,
	}, nil
}

// FindRoot walks up from dir to the nearest directory holding ribbon.yaml.
// It returns dir itself when no ancestor has one.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for cur := abs; ; {
		if _, err := os.Stat(filepath.Join(cur, FileName)); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return abs, nil
		}
		cur = parent
	}
}

func validateSchema(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSchema, nil
	}
	v := s
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("schema %q is not a semantic version", s)
	}
	if major := semver.Major(v); major != "v1" {
		return "", fmt.Errorf("schema %s is not supported (want v1.x)", major)
	}
	return semver.Canonical(v), nil
}

// relative validates p as a path inside the root and returns it slash-separated.
func relative(field, p string) (string, error) {
	p = strings.TrimSpace(p)
	if filepath.IsAbs(p) {
		return "", fmt.Errorf("%s must be relative to the config directory (got %q)", field, p)
	}
	clean := filepath.ToSlash(filepath.Clean(p))
	if !fs.ValidPath(clean) {
		return "", fmt.Errorf("%s escapes the config directory (got %q)", field, p)
	}
	return clean, nil
}

func ids(in []string) []string {
	var out []string
	seen := make(map[string]bool, len(in))
	for _, id := range in {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
