// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"github.com/pkg/errors"
)

// increment adds |x| to |n| in place, ignoring signs.
func increment(n, x *Number, m *Matrix) {
	for p := x.lo(); p <= x.hi(); p++ {
		if d := x.digit(p); d != 0 {
			n.addAt(p, d, m)
		}
	}
}

// addAt adds digit value d at position p, growing n and propagating the carry as needed.
func (n *Number) addAt(p, d int, m *Matrix) {
	n.ensure(p)
	for {
		i := p + n.units
		c := m.add[n.reg.at(i)][d]
		n.reg.set(i, c.res)
		if !c.flag {
			return
		}
		p, d = p+1, 1
		n.ensure(p)
	}
}

// decrement subtracts |x| from |n| in place, ignoring signs.
// |n| must be >= |x|.
func decrement(n, x *Number, m *Matrix) error {
	for p := x.lo(); p <= x.hi(); p++ {
		if d := x.digit(p); d != 0 {
			if err := n.subAt(p, d, m); err != nil {
				return err
			}
		}
	}
	return nil
}

// subAt subtracts digit value d at position p, propagating the borrow.
func (n *Number) subAt(p, d int, m *Matrix) error {
	n.ensure(p)
	for {
		i := p + n.units
		c := m.sub[n.reg.at(i)][d]
		n.reg.set(i, c.res)
		if !c.flag {
			return nil
		}
		p, d = p+1, 1
		if p > n.hi() {
			return errors.Wrap(ErrInvariantViolation, "borrow past the most significant digit")
		}
	}
}

// add sets n to n+x. x must not be n.
func (n *Number) add(x *Number, m *Matrix) error {
	if n.neg == x.neg {
		// v1+v2
		// or -v1+(-v2) = -(v1+v2)
		increment(n, x, m)
		n.trim()
		return nil
	}
	switch cmpMagnitude(n, x, m) {
	case 0:
		n.setZero()
		return nil
	case 1: // the sign of n stays
		if err := decrement(n, x, m); err != nil {
			return err
		}
	default: // the sign of x wins
		r := x.clone()
		if err := decrement(r, n, m); err != nil {
			return err
		}
		n.assign(r)
	}
	n.trim()
	return nil
}

// Add sets n to n+x.
func (n *Number) Add(x *Number) error {
	x, err := n.operand(x)
	if err != nil {
		return errors.Wrap(err, "add")
	}
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.add(x, m)
}

// Sub sets n to n-x. x is not modified.
func (n *Number) Sub(x *Number) error {
	x, err := n.operand(x)
	if err != nil {
		return errors.Wrap(err, "sub")
	}
	if !x.isZero() {
		x.neg = !x.neg // v1-v2 = v1+(-v2)
	}
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.add(x, m)
}

// AddString parses text and adds it to n.
func (n *Number) AddString(text string) error {
	x, err := NewNumber(text, n.set)
	if err != nil {
		return err
	}
	return n.Add(x)
}

// SubString parses text and subtracts it from n.
func (n *Number) SubString(text string) error {
	x, err := NewNumber(text, n.set)
	if err != nil {
		return err
	}
	return n.Sub(x)
}

// AddOne sets n to n+1.
func (n *Number) AddOne() error {
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.add(newDigitNumber(n.set, 1), m)
}

// SubOne sets n to n-1.
func (n *Number) SubOne() error {
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	one := newDigitNumber(n.set, 1)
	one.neg = true
	return n.add(one, m)
}
