// Package config loads the server's yaml configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pattyshack/gt/parseutil"
	"gopkg.in/yaml.v3"

	"github.com/pattyshack/ddlog-lsp/grammar"
)

type Log struct {
	// commonlog verbosity.  0 logs errors only.
	Verbosity int `yaml:"verbosity"`

	// Empty means stderr.
	File string `yaml:"file"`
}

type Diagnostics struct {
	Enabled        bool `yaml:"enabled"`
	MaxPerDocument int  `yaml:"max_per_document"`
}

type Workspace struct {
	Watch bool `yaml:"watch"`

	// file extension -> grammar id.  Entries merge with the defaults; an
	// empty grammar id removes the extension.
	Extensions map[string]string `yaml:"extensions"`
}

type Config struct {
	Log         Log         `yaml:"log"`
	Diagnostics Diagnostics `yaml:"diagnostics"`
	Workspace   Workspace   `yaml:"workspace"`

	grammars map[string]grammar.Grammar
}

func Default() *Config {
	extensions := map[string]string{}
	grammars := map[string]grammar.Grammar{}
	for _, g := range grammar.Grammars {
		extensions[g.Extension()] = g.String()
		grammars[g.Extension()] = g
	}

	return &Config{
		Log: Log{
			Verbosity: 1,
		},
		Diagnostics: Diagnostics{
			Enabled:        true,
			MaxPerDocument: 100,
		},
		Workspace: Workspace{
			Watch:      true,
			Extensions: extensions,
		},
		grammars: grammars,
	}
}

// Load reads the configuration at path.  An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes content over the defaults.  Unknown keys are errors.
func Parse(content []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	err := decoder.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	emitter := &parseutil.Emitter{}
	if cfg.Log.Verbosity < 0 {
		emitter.EmitErrors(fmt.Errorf("negative log verbosity"))
	}
	if cfg.Diagnostics.MaxPerDocument < 0 {
		emitter.EmitErrors(fmt.Errorf("negative max_per_document"))
	}

	exts := make([]string, 0, len(cfg.Workspace.Extensions))
	for ext := range cfg.Workspace.Extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	cfg.grammars = map[string]grammar.Grammar{}
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			emitter.EmitErrors(fmt.Errorf("extension %q must start with '.'", ext))
			continue
		}

		id := cfg.Workspace.Extensions[ext]
		if id == "" {
			continue
		}

		g, err := grammar.FromId(id)
		if err != nil {
			emitter.EmitErrors(fmt.Errorf("extension %s: %w", ext, err))
			continue
		}
		cfg.grammars[ext] = g
	}

	if !emitter.HasErrors() {
		return nil
	}
	return errors.Join(emitter.Errors()...)
}

func (cfg *Config) GrammarForPath(path string) (grammar.Grammar, bool) {
	g, ok := cfg.grammars[filepath.Ext(path)]
	return g, ok
}

// Extensions returns the configured extensions in sorted order.
func (cfg *Config) Extensions() []string {
	exts := make([]string, 0, len(cfg.grammars))
	for ext := range cfg.grammars {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
