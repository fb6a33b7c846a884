// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numconv

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/avdva/numeral"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	decimalSet = numeral.MustNumeralSet(".", "-", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	binarySet  = numeral.MustNumeralSet(".", "-", "0", "1")
	hexSet     = numeral.MustNumeralSet(".", "-", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d", "e", "f")
	wordsSet   = numeral.MustNumeralSet("point", "minus", "zero", "one", "two")
)

func TestConvert(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		from, to *numeral.NumeralSet
		s        string
		places   int
		result   string
	}{
		{decimalSet, hexSet, "255", 0, "ff"},
		{decimalSet, hexSet, "-4096", 0, "-1000"},
		{decimalSet, binarySet, "0.5", 4, "0.1"},
		{decimalSet, binarySet, "-2.5", 3, "-10.1"},
		{decimalSet, binarySet, "0.1", 4, "0.0001"},
		{decimalSet, wordsSet, "10", 0, "onezeroone"},
		{decimalSet, wordsSet, "0.5", 3, "zeropointoneoneone"},
		{decimalSet, decimalSet, "1.2345", 2, "1.23"},
		{hexSet, decimalSet, "ff.8", 3, "255.5"},
		{binarySet, hexSet, "11111111", 0, "ff"},
		{wordsSet, decimalSet, "minusonepointone", 4, "-1.3333"},
		{decimalSet, binarySet, "0", 4, "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n := numeral.MustNumber(test.s, test.from)
			result, err := Convert(n, test.to, test.places)
			if a.NoError(err) {
				a.Equal(test.result, result.String())
				a.Same(test.to, result.NumeralSet())
			}
			a.Equal(numeral.MustNumber(test.s, test.from).String(), n.String())
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := r.Int63n(1<<40) - 1<<39
		n := numeral.MustNumber(strconv.FormatInt(v, 10), decimalSet)
		h, err := Convert(n, hexSet, 0)
		require.NoError(t, err)
		assert.Equal(t, strconv.FormatInt(v, 16), h.String())
		back, err := Convert(h, decimalSet, 0)
		require.NoError(t, err)
		assert.True(t, back.Equal(n), "%d", v)
	}
}

func TestToDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		set    *numeral.NumeralSet
		s      string
		places int32
		result string
	}{
		{decimalSet, "-123.456", 2, "-123.45"},
		{decimalSet, "-123.456", 3, "-123.456"},
		{hexSet, "ff", 0, "255"},
		{binarySet, "0.1", 3, "0.5"},
		{binarySet, "0.011", 1, "0.3"},
		{wordsSet, "minusonepointone", 4, "-1.3333"},
		{wordsSet, "zero", 4, "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := ToDecimal(numeral.MustNumber(test.s, test.set), test.places)
			if a.NoError(err) {
				a.Equal(test.result, d.String())
			}
		})
	}
}

func TestToDecimalNegativePlaces(t *testing.T) {
	_, err := ToDecimal(numeral.MustNumber("123.5", decimalSet), -1)
	assert.True(t, errors.Is(err, numeral.ErrInvalidPrecision), "%v", err)
}

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		d      string
		set    *numeral.NumeralSet
		places int
		result string
	}{
		{"255", hexSet, 0, "ff"},
		{"-2.5", binarySet, 4, "-10.1"},
		{"0", binarySet, 4, "0"},
		{"-0.000", decimalSet, 4, "0"},
		{"0.1", binarySet, 4, "0.0001"},
		{"3.14159", decimalSet, 2, "3.14"},
		{"4", wordsSet, 2, "oneone"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n, err := FromDecimal(decimal.RequireFromString(test.d), test.set, test.places)
			if a.NoError(err) {
				a.Equal(test.result, n.String())
			}
		})
	}
	_, err := FromDecimal(decimal.Zero, decimalSet, -1)
	a.True(errors.Is(err, numeral.ErrInvalidPrecision))
}

func TestFromDecimalTooFewSymbols(t *testing.T) {
	a := assert.New(t)
	sets := []*numeral.NumeralSet{
		numeral.MustNumeralSet(".", "-"),
		numeral.MustNumeralSet(".", "-", "0"),
	}
	for i, set := range sets {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			for _, d := range []string{"0", "7", "-2.5"} {
				_, err := FromDecimal(decimal.RequireFromString(d), set, 4)
				a.True(errors.Is(err, numeral.ErrTooFewSymbols), "%s: %v", d, err)
			}
		})
	}
	_, err := FromDecimal(decimal.NewFromInt(1), nil, 4)
	a.True(errors.Is(err, numeral.ErrNoNumeralSet))
}

func TestDecimalRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		d := decimal.New(r.Int63n(1<<40)-1<<39, -int32(r.Intn(5)))
		n, err := FromDecimal(d, decimalSet, 5)
		require.NoError(t, err)
		assert.Equal(t, d.String(), n.String())
		back, err := ToDecimal(n, 5)
		require.NoError(t, err)
		assert.True(t, back.Equal(d), "%s", d)
	}
}

func TestFixed(t *testing.T) {
	a := assert.New(t)
	f, err := ToFixed(numeral.MustNumber("-1.5", decimalSet))
	a.NoError(err)
	a.Equal("-1.5", f.String())

	f, err = ToFixed(numeral.MustNumber("0.1", binarySet))
	a.NoError(err)
	a.Equal("0.5", f.String())

	_, err = ToFixed(numeral.MustNumber("100000000000000000000", decimalSet))
	a.True(errors.Is(err, ErrNotRepresentable), "%v", err)

	n, err := FromFixed(fixed.NewS("-3.25"), binarySet, 4)
	a.NoError(err)
	a.Equal("-11.01", n.String())

	_, err = FromFixed(fixed.NaN, decimalSet, 4)
	a.True(errors.Is(err, ErrNotRepresentable))
}
