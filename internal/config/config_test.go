// Copyright 2020 Aleksandr Demakin. All rights reserved.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avdva/numeral"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
sets:
  words:
    decimal: point
    negative: minus
    symbols: [zero, one, two]
  decimal:
    decimal: ","
    negative: "~"
    symbols: ["0", "1", "2", "3", "4", "5", "6", "7", "8", "9"]
  broken:
    decimal: "."
    negative: "-"
    symbols: ["a", "ab"]
`

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(testYAML))
	require.NoError(t, err)
	require.Len(t, c.Sets, 3)

	set, err := c.NumeralSet("words")
	require.NoError(t, err)
	assert.Equal(t, []string{"zero", "one", "two"}, set.Symbols())
	assert.Equal(t, "point", set.Decimal())

	n, err := set.New("minusonepointtwo")
	require.NoError(t, err)
	assert.Equal(t, "minusonepointtwo", n.String())

	// config overrides the preset.
	set, err = c.NumeralSet("decimal")
	require.NoError(t, err)
	assert.Equal(t, ",", set.Decimal())

	_, err = c.NumeralSet("broken")
	assert.True(t, errors.Is(err, numeral.ErrDuplicateOrAmbiguousSymbol))

	_, err = c.NumeralSet("missing")
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	var c *Config
	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			set, err := c.NumeralSet(name)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, set.Radix(), 2)
		})
	}
	set, err := c.NumeralSet(DefaultSet)
	require.NoError(t, err)
	assert.Equal(t, 10, set.Radix())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, c.Names(), "words")
	assert.Contains(t, c.Names(), "hex")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadEmpty(t *testing.T) {
	c, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.Sets)
}
