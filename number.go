// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"sync"

	"github.com/avdva/numeral/internal/mathutil"

	"github.com/pkg/errors"
)

// Number is a signed arbitrary-precision number over a numeral set.
// Digits are stored least significant first. The units anchor marks the digit
// with magnitude radix^0: digits above it are whole digits, digits below are fractional.
// The sign is kept apart from the digits, zero is always positive.
//
// Mutating methods are serialized with a per-number lock.
// A Number must not be copied after first use.
type Number struct {
	mu    sync.Mutex
	set   *NumeralSet
	reg   register
	units int // index of the units digit in reg.
	neg   bool
}

// NewNumber parses text and returns a number over given numeral set.
func NewNumber(text string, set *NumeralSet) (*Number, error) {
	if err := checkDigitSet(set); err != nil {
		return nil, err
	}
	n := &Number{set: set}
	if err := n.SetValue(text); err != nil {
		return nil, err
	}
	return n, nil
}

// MustNumber is like NewNumber, but panics on error.
func MustNumber(text string, set *NumeralSet) *Number {
	n, err := NewNumber(text, set)
	if err != nil {
		panic(err)
	}
	return n
}

// NewZero returns a zero number over given numeral set.
func NewZero(set *NumeralSet) (*Number, error) {
	if err := checkDigitSet(set); err != nil {
		return nil, err
	}
	return newZero(set), nil
}

func newZero(set *NumeralSet) *Number {
	n := &Number{set: set}
	n.reg.pushBack(0)
	return n
}

// newDigitNumber returns a single-digit number with digit value d.
func newDigitNumber(set *NumeralSet, d int) *Number {
	n := newZero(set)
	n.reg.set(0, d)
	return n
}

// SetValue parses text and replaces the number's value.
// On error the value is not changed.
func (n *Number) SetValue(text string) error {
	reg, units, neg, err := parse(text, n.set)
	if err != nil {
		return errors.Wrap(err, "parsing failed")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reg, n.units, n.neg = reg, units, neg
	n.trim()
	return nil
}

// NumeralSet returns the numeral set of the number.
func (n *Number) NumeralSet() *NumeralSet {
	return n.set
}

// Clone returns a deep copy of the number.
func (n *Number) Clone() *Number {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.clone()
}

func (n *Number) clone() *Number {
	return &Number{
		set:   n.set,
		reg:   n.reg.clone(),
		units: n.units,
		neg:   n.neg,
	}
}

func (n *Number) assign(other *Number) {
	n.reg, n.units, n.neg = other.reg, other.units, other.neg
}

func (n *Number) setZero() {
	n.reg.reset()
	n.reg.pushBack(0)
	n.units, n.neg = 0, false
}

// operand checks x's numeral set and returns its snapshot.
func (n *Number) operand(x *Number) (*Number, error) {
	if x == nil {
		return nil, ErrNoNumeralSet
	}
	if !n.set.IsCompatible(x.set) {
		return nil, ErrIncompatibleNumeralSet
	}
	return x.Clone(), nil
}

// lo returns the position of the least significant digit.
func (n *Number) lo() int {
	return -n.units
}

// hi returns the position of the most significant digit.
func (n *Number) hi() int {
	return n.reg.len() - 1 - n.units
}

// digit returns the digit value at position p. Positions out of range hold zeros.
func (n *Number) digit(p int) int {
	i := p + n.units
	if i < 0 || i >= n.reg.len() {
		return 0
	}
	return n.reg.at(i)
}

func (n *Number) setDigit(p, v int) {
	n.ensure(p)
	n.reg.set(p+n.units, v)
}

// ensure grows the register with zeros, so that position p exists.
func (n *Number) ensure(p int) {
	for p > n.hi() {
		n.growMostSignificant()
	}
	for p < n.lo() {
		n.growLeastSignificant()
	}
}

func (n *Number) growMostSignificant() {
	n.reg.pushBack(0)
}

func (n *Number) growLeastSignificant() {
	n.reg.pushFront(0)
	n.units++
}

// trim removes leading zeros and trailing fractional zeros.
// The units digit is never removed. A zero number becomes positive.
func (n *Number) trim() {
	for n.reg.len()-1 > n.units && n.reg.at(n.reg.len()-1) == 0 {
		n.reg.popBack()
	}
	for n.units > 0 && n.reg.at(0) == 0 {
		n.reg.popFront()
		n.units--
	}
	if n.neg && n.isZero() {
		n.neg = false
	}
}

func (n *Number) isZero() bool {
	for i := 0; i < n.reg.len(); i++ {
		if n.reg.at(i) != 0 {
			return false
		}
	}
	return true
}

// highestWhole returns the position of the most significant non-zero whole digit, or 0.
func (n *Number) highestWhole() int {
	for p := n.hi(); p > 0; p-- {
		if n.digit(p) != 0 {
			return p
		}
	}
	return 0
}

// cmpMagnitude compares absolute values of a and b.
// Returns -1 if |a| < |b|, 0 if |a| == |b|, 1 if |a| > |b|
func cmpMagnitude(a, b *Number, m *Matrix) int {
	ha, hb := a.highestWhole(), b.highestWhole()
	if ha != hb {
		return mathutil.Cmp(ha, hb)
	}
	low := mathutil.MinInt(a.lo(), b.lo())
	for p := ha; p >= low; p-- {
		if c := m.cmp[a.digit(p)][b.digit(p)]; c != 0 {
			return int(c)
		}
	}
	return 0
}

func cmpSigned(a, b *Number, m *Matrix) int {
	if a.neg != b.neg {
		if a.neg {
			return -1
		}
		return 1
	}
	c := cmpMagnitude(a, b, m)
	if a.neg {
		return -c
	}
	return c
}

// Cmp compares two numbers.
// Returns -1 if n < x, 0 if n == x, 1 if n > x
func (n *Number) Cmp(x *Number) (int, error) {
	x, err := n.operand(x)
	if err != nil {
		return 0, errors.Wrap(err, "cmp")
	}
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	return cmpSigned(n, x, m), nil
}

// CmpMagnitude compares absolute values of two numbers.
// Returns -1 if |n| < |x|, 0 if |n| == |x|, 1 if |n| > |x|
func (n *Number) CmpMagnitude(x *Number) (int, error) {
	x, err := n.operand(x)
	if err != nil {
		return 0, errors.Wrap(err, "cmp")
	}
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	return cmpMagnitude(n, x, m), nil
}

// Equal returns true, if both numbers have compatible numeral sets and equal values.
func (n *Number) Equal(x *Number) bool {
	c, err := n.Cmp(x)
	return err == nil && c == 0
}

// Sign returns -1 if n < 0, 0 if n == 0, 1 if n > 0.
func (n *Number) Sign() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	switch {
	case n.isZero():
		return 0
	case n.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true if all digits are zeros.
func (n *Number) IsZero() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.isZero()
}

// IsPositive returns true for non-negative numbers.
func (n *Number) IsPositive() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return !n.neg
}

// Neg flips the sign of a non-zero number.
func (n *Number) Neg() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.isZero() {
		n.neg = !n.neg
	}
}

// Abs makes the number positive.
func (n *Number) Abs() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.neg = false
}

// WholeDigits returns the number of digits at and above the units anchor.
func (n *Number) WholeDigits() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hi() + 1
}

// FracDigits returns the number of digits below the units anchor.
func (n *Number) FracDigits() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.units
}

// DigitAt returns the symbol at position pos, where 0 is the units digit,
// positive positions are whole digits, and negative are fractional.
// Positions out of range hold the zero symbol.
func (n *Number) DigitAt(pos int) string {
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	return m.symbols[n.digit(pos)]
}
