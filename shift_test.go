// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShift(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s, right, left string
	}{
		{"0", "0", "0"},
		{"1", "10", "0.1"},
		{"12.5", "125", "1.25"},
		{"-0.01", "-0.1", "-0.001"},
		{"100", "1000", "10"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n := dec(test.s)
			n.ShiftRight()
			a.Equal(test.right, n.String())
			n = dec(test.s)
			n.ShiftLeft()
			a.Equal(test.left, n.String())
		})
	}
	w := words("onepointtwo")
	w.ShiftRight()
	a.Equal("onetwo", w.String())
}

func TestShiftToZero(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s      string
		result string
		shifts int
	}{
		{"0", "0", 0},
		{"100", "100", 0},
		{"1.25", "125", 2},
		{"-0.001", "-1", 3},
		{"1.500", "15", 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n := dec(test.s)
			a.Equal(test.shifts, n.ShiftToZero())
			a.Equal(test.result, n.String())
			a.Equal(0, n.FracDigits())
			for j := 0; j < test.shifts; j++ {
				n.ShiftLeft()
			}
			a.True(n.Equal(dec(test.s)))
		})
	}
}

func TestShiftMatchesMul(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	ten := dec("10")
	for i := 0; i < 100; i++ {
		s := randomDecimal(r)
		n, m := dec(s), dec(s)
		n.ShiftRight()
		require.NoError(t, m.Mul(ten))
		assert.True(t, n.Equal(m), s)
		n.ShiftLeft()
		assert.True(t, n.Equal(dec(s)), s)
	}
}

func TestTruncate(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s      string
		places int
		result string
	}{
		{"3.14159", 2, "3.14"},
		{"3.14159", 0, "3"},
		{"3.14159", 10, "3.14159"},
		{"-0.5", 0, "0"},
		{"-2.999", 1, "-2.9"},
		{"0.001", 2, "0"},
		{"120", 0, "120"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n := dec(test.s)
			if a.NoError(n.Truncate(test.places)) {
				a.Equal(test.result, n.String())
				a.True(n.FracDigits() <= test.places)
			}
		})
	}
	n := dec("1.5")
	a.True(errors.Is(n.Truncate(-1), ErrInvalidPrecision))
	a.Equal("1.5", n.String())
	z := dec("-0.5")
	a.NoError(z.Truncate(0))
	a.True(z.IsPositive())
}
