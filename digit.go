// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"github.com/avdva/numeral/internal/mathutil"

	"github.com/pkg/errors"
)

// Digit is a single mutable symbol of a numeral set.
// Carry and borrow flags are set, if the digit wrapped past the alphabet boundary.
type Digit interface {
	// Symbol returns current symbol.
	Symbol() string
	// SetValue changes current symbol.
	SetValue(symbol string) error
	// Cmp compares the digit with a symbol.
	// Returns -1 if d < symbol, 0 if d == symbol, 1 if d > symbol
	Cmp(symbol string) (int, error)
	// Add adds a symbol to the digit.
	Add(symbol string) (carry bool, err error)
	// Sub subtracts a symbol from the digit.
	Sub(symbol string) (borrow bool, err error)
	// AddOne increments the digit.
	AddOne() (carry bool)
	// SubOne decrements the digit.
	SubOne() (borrow bool)
}

// NewDigit returns a digit, which uses set's arithmetic matrix for all operations.
func NewDigit(set *NumeralSet, symbol string) (Digit, error) {
	if err := checkDigitSet(set); err != nil {
		return nil, err
	}
	d := &matrixDigit{set: set}
	if err := d.SetValue(symbol); err != nil {
		return nil, err
	}
	return d, nil
}

// NewWalkingDigit returns a digit, which walks the alphabet for every operation.
// It is slow, but it does not depend on the matrix, and serves as a reference.
func NewWalkingDigit(set *NumeralSet, symbol string) (Digit, error) {
	if err := checkDigitSet(set); err != nil {
		return nil, err
	}
	d := &walkingDigit{set: set}
	if err := d.SetValue(symbol); err != nil {
		return nil, err
	}
	return d, nil
}

func checkDigitSet(set *NumeralSet) error {
	if set == nil {
		return ErrNoNumeralSet
	}
	if set.Radix() < 2 {
		return ErrTooFewSymbols
	}
	return nil
}

type matrixDigit struct {
	set *NumeralSet
	pos int
}

func (d *matrixDigit) Symbol() string {
	return d.set.Matrix().symbols[d.pos]
}

func (d *matrixDigit) SetValue(symbol string) error {
	pos, err := d.set.Matrix().position(symbol)
	if err != nil {
		return err
	}
	d.pos = pos
	return nil
}

func (d *matrixDigit) Cmp(symbol string) (int, error) {
	m := d.set.Matrix()
	pos, err := m.position(symbol)
	if err != nil {
		return 0, err
	}
	return int(m.cmp[d.pos][pos]), nil
}

func (d *matrixDigit) Add(symbol string) (bool, error) {
	m := d.set.Matrix()
	pos, err := m.position(symbol)
	if err != nil {
		return false, err
	}
	return d.apply(m.add[d.pos][pos]), nil
}

func (d *matrixDigit) Sub(symbol string) (bool, error) {
	m := d.set.Matrix()
	pos, err := m.position(symbol)
	if err != nil {
		return false, err
	}
	return d.apply(m.sub[d.pos][pos]), nil
}

func (d *matrixDigit) AddOne() bool {
	return d.apply(d.set.Matrix().add[d.pos][1])
}

func (d *matrixDigit) SubOne() bool {
	return d.apply(d.set.Matrix().sub[d.pos][1])
}

func (d *matrixDigit) apply(c cell) bool {
	d.pos = c.res
	return c.flag
}

type walkingDigit struct {
	set    *NumeralSet
	symbol string
}

func (d *walkingDigit) Symbol() string {
	return d.symbol
}

func (d *walkingDigit) SetValue(symbol string) error {
	if walkFind(d.set.Symbols(), symbol) < 0 {
		return errors.Wrapf(ErrInvalidSymbol, "unknown symbol %q", symbol)
	}
	d.symbol = symbol
	return nil
}

func (d *walkingDigit) Cmp(symbol string) (int, error) {
	symbols := d.set.Symbols()
	if walkFind(symbols, symbol) < 0 {
		return 0, errors.Wrapf(ErrInvalidSymbol, "unknown symbol %q", symbol)
	}
	return walkCmp(symbols, d.symbol, symbol), nil
}

func (d *walkingDigit) Add(symbol string) (bool, error) {
	return d.walk(symbol, walkAdd)
}

func (d *walkingDigit) Sub(symbol string) (bool, error) {
	return d.walk(symbol, walkSub)
}

func (d *walkingDigit) AddOne() bool {
	symbols := d.set.Symbols()
	pos, carry := walkAdd(walkFind(symbols, d.symbol), 1, len(symbols))
	d.symbol = symbols[pos]
	return carry
}

func (d *walkingDigit) SubOne() bool {
	symbols := d.set.Symbols()
	pos, borrow := walkSub(walkFind(symbols, d.symbol), 1, len(symbols))
	d.symbol = symbols[pos]
	return borrow
}

func (d *walkingDigit) walk(symbol string, fn func(pos, steps, n int) (int, bool)) (bool, error) {
	symbols := d.set.Symbols()
	steps := walkFind(symbols, symbol)
	if steps < 0 {
		return false, errors.Wrapf(ErrInvalidSymbol, "unknown symbol %q", symbol)
	}
	pos, flag := fn(walkFind(symbols, d.symbol), steps, len(symbols))
	d.symbol = symbols[pos]
	return flag, nil
}

// walkFind returns the number of successor steps from zero to symbol, or -1.
func walkFind(symbols []string, symbol string) int {
	for i, s := range symbols {
		if s == symbol {
			return i
		}
	}
	return -1
}

// walkAdd moves pos forward by steps successors and reports whether it passed the last symbol.
func walkAdd(pos, steps, n int) (int, bool) {
	var carry bool
	for i := 0; i < steps; i++ {
		var wrapped bool
		pos, wrapped = mathutil.WrapInc(pos, n)
		carry = carry || wrapped
	}
	return pos, carry
}

// walkSub moves pos backward by steps predecessors and reports whether it passed zero.
func walkSub(pos, steps, n int) (int, bool) {
	var borrow bool
	for i := 0; i < steps; i++ {
		var wrapped bool
		pos, wrapped = mathutil.WrapDec(pos, n)
		borrow = borrow || wrapped
	}
	return pos, borrow
}

// walkCmp walks from zero; the symbol met first is the smaller one.
func walkCmp(symbols []string, a, b string) int {
	if a == b {
		return 0
	}
	for _, s := range symbols {
		switch s {
		case a:
			return -1
		case b:
			return 1
		}
	}
	return 0
}
