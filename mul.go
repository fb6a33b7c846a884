// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"github.com/pkg/errors"
)

// multiply returns a*b. Operands are not modified.
func multiply(a, b *Number, m *Matrix) *Number {
	a, b = a.clone(), b.clone()
	a.trim()
	b.trim()
	shifts := a.shiftToZero() + b.shiftToZero()
	sum := newZero(a.set)
	for i := 0; i <= a.hi(); i++ {
		da := a.digit(i)
		if da == 0 {
			continue
		}
		for j := 0; j <= b.hi(); j++ {
			db := b.digit(j)
			if db == 0 {
				continue
			}
			lo, hi := m.product(da, db)
			if lo != 0 {
				sum.addAt(i+j, lo, m)
			}
			if hi != 0 {
				sum.addAt(i+j+1, hi, m)
			}
		}
	}
	for ; shifts > 0; shifts-- {
		sum.shiftLeft()
	}
	sum.neg = a.neg != b.neg
	sum.trim()
	return sum
}

// Mul sets n to n*x.
func (n *Number) Mul(x *Number) error {
	x, err := n.operand(x)
	if err != nil {
		return errors.Wrap(err, "mul")
	}
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	n.assign(multiply(n, x, m))
	return nil
}

// MulString parses text and multiplies n by it.
func (n *Number) MulString(text string) error {
	x, err := NewNumber(text, n.set)
	if err != nil {
		return err
	}
	return n.Mul(x)
}
