// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"math"

	"github.com/avdva/numeral/internal/mathutil"

	"github.com/pkg/errors"
)

// divide returns a/b truncated to 'places' fractional digits. Operands are not modified.
//
// Both operands are shifted to whole numbers first: a/b = (a'/b') * radix^k, where k is
// the difference of the shift counts. The dividend's digits are then brought down one by one
// into a segment, and each quotient digit is the number of times the divisor fits into it.
// After the dividend is exhausted, zeros are brought down until the segment becomes zero,
// or enough fractional digits are produced.
func divide(a, b *Number, places int, m *Matrix) (*Number, error) {
	if b.isZero() {
		return nil, ErrDivideByZero
	}
	a, b = a.clone(), b.clone()
	a.trim()
	b.trim()
	neg := a.neg != b.neg
	a.neg, b.neg = false, false
	k := b.shiftToZero() - a.shiftToZero()
	fracPlaces := math.MaxInt
	if places <= math.MaxInt-k {
		fracPlaces = mathutil.MaxInt(places+k, 0)
	}

	radix := m.Radix()
	quo := newZero(a.set)
	segment := newZero(a.set)
	var steps int // fractional digits of a'/b' produced so far.
	for p := a.hi(); ; p-- {
		if p < 0 {
			if segment.isZero() || steps >= fracPlaces {
				break
			}
			steps++
		}
		segment.shiftRight()
		segment.setDigit(0, a.digit(p))
		var count int
		for cmpMagnitude(segment, b, m) >= 0 {
			if err := decrement(segment, b, m); err != nil {
				return nil, err
			}
			count++
		}
		if count >= radix {
			return nil, errors.Wrapf(ErrInvariantViolation, "quotient digit %d exceeds radix", count)
		}
		segment.trim()
		quo.shiftRight()
		quo.setDigit(0, count)
	}
	for ; steps > 0; steps-- {
		quo.shiftLeft()
	}
	for ; k > 0; k-- {
		quo.shiftRight()
	}
	for ; k < 0; k++ {
		quo.shiftLeft()
	}
	quo.truncate(places)
	quo.neg = neg
	quo.trim()
	return quo, nil
}

// Div sets n to n/x, truncated to 'places' fractional digits.
// The precision is mandatory: quotients like 1/3 never terminate.
func (n *Number) Div(x *Number, places int) error {
	if places < 0 {
		return errors.Wrapf(ErrInvalidPrecision, "div: %d places", places)
	}
	x, err := n.operand(x)
	if err != nil {
		return errors.Wrap(err, "div")
	}
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	quo, err := divide(n, x, places, m)
	if err != nil {
		return errors.Wrap(err, "div")
	}
	n.assign(quo)
	return nil
}

// DivString parses text and divides n by it.
func (n *Number) DivString(text string, places int) error {
	x, err := NewNumber(text, n.set)
	if err != nil {
		return err
	}
	return n.Div(x, places)
}
