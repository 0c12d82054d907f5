package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bediger4000/gokilo/highlighter"
)

// SyntaxConfig describes a user defined filetype. Keywords get the
// first keyword color, Types the second.
type SyntaxConfig struct {
	Filetype  string   `yaml:"filetype"`
	Filematch []string `yaml:"filematch"`
	Keywords  []string `yaml:"keywords"`
	Types     []string `yaml:"types"`
	Comment   string   `yaml:"comment"`
	Numbers   bool     `yaml:"numbers"`
	Strings   bool     `yaml:"strings"`
}

// Config is the contents of the configuration file.
type Config struct {
	LogFile string         `yaml:"log_file"`
	Syntax  []SyntaxConfig `yaml:"syntax"`
}

// DefaultPath is where the configuration lives when no --config
// flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gokilo", "config.yaml")
}

// Load reads the YAML file at path. A missing file is only an
// error when mustExist is set.
func Load(path string, mustExist bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for i, s := range cfg.Syntax {
		if s.Filetype == "" {
			return nil, fmt.Errorf("config %s: syntax entry %d has no filetype", path, i)
		}
		if len(s.Filematch) == 0 {
			return nil, fmt.Errorf("config %s: syntax %q has no filematch", path, s.Filetype)
		}
	}
	return cfg, nil
}

// Syntaxes converts the configured filetypes into highlighter rules.
func (c *Config) Syntaxes() []highlighter.Syntax {
	var out []highlighter.Syntax
	for _, s := range c.Syntax {
		words := append([]string(nil), s.Keywords...)
		for _, t := range s.Types {
			words = append(words, t+"|")
		}
		syn := highlighter.Syntax{
			Filetype:         s.Filetype,
			Filematch:        s.Filematch,
			Keywords:         highlighter.Keywords(words...),
			HighlightNumbers: s.Numbers,
			HighlightStrings: s.Strings,
		}
		if s.Comment != "" {
			syn.SingleLineComment = []byte(s.Comment)
		}
		out = append(out, syn)
	}
	return out
}

// Database returns the built in syntaxes with the configured ones
// layered on top.
func (c *Config) Database() *highlighter.Database {
	db := highlighter.Builtin()
	for _, s := range c.Syntaxes() {
		db.Add(s)
	}
	return db
}
