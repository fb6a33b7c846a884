// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package config loads numeral set definitions from yaml files.
package config

import (
	"io"
	"os"
	"sort"

	"github.com/avdva/numeral"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultSet is the name of the set used when none is given.
const DefaultSet = "decimal"

// SetDef describes a numeral set.
type SetDef struct {
	Decimal  string   `yaml:"decimal"`
	Negative string   `yaml:"negative"`
	Symbols  []string `yaml:"symbols"`
}

// Config is a collection of named numeral set definitions.
type Config struct {
	Sets map[string]SetDef `yaml:"sets"`
}

var presets = map[string]SetDef{
	"decimal": {Decimal: ".", Negative: "-", Symbols: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
	"binary":  {Decimal: ".", Negative: "-", Symbols: []string{"0", "1"}},
	"octal":   {Decimal: ".", Negative: "-", Symbols: []string{"0", "1", "2", "3", "4", "5", "6", "7"}},
	"hex": {Decimal: ".", Negative: "-", Symbols: []string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d", "e", "f"},
	},
	"ternary-words": {Decimal: "point", Negative: "minus", Symbols: []string{"zero", "one", "two"}},
}

// Load reads a config from a yaml file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	defer f.Close()
	return Read(f)
}

// Read reads a yaml config.
func Read(r io.Reader) (*Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "config: decoding yaml")
	}
	return &c, nil
}

// NumeralSet builds the numeral set with given name.
// Sets from the config take precedence over built-in presets.
// A nil config only knows presets.
func (c *Config) NumeralSet(name string) (*numeral.NumeralSet, error) {
	def, found := c.lookup(name)
	if !found {
		return nil, errors.Errorf("config: unknown numeral set %q", name)
	}
	set, err := numeral.NewNumeralSet(def.Decimal, def.Negative, def.Symbols...)
	if err != nil {
		return nil, errors.Wrapf(err, "config: set %q", name)
	}
	return set, nil
}

func (c *Config) lookup(name string) (SetDef, bool) {
	if c != nil {
		if def, found := c.Sets[name]; found {
			return def, true
		}
	}
	def, found := presets[name]
	return def, found
}

// Names returns sorted names of all known sets.
func (c *Config) Names() []string {
	seen := make(map[string]struct{}, len(presets))
	for name := range presets {
		seen[name] = struct{}{}
	}
	if c != nil {
		for name := range c.Sets {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
