// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

// shiftRight moves the units anchor one digit towards the least significant end,
// multiplying n by the radix.
func (n *Number) shiftRight() {
	if n.units == 0 {
		n.growLeastSignificant()
	}
	n.units--
}

// shiftLeft moves the units anchor one digit towards the most significant end,
// dividing n by the radix.
func (n *Number) shiftLeft() {
	if n.units == n.reg.len()-1 {
		n.growMostSignificant()
	}
	n.units++
}

// shiftToZero shifts n right until it has no fractional digits.
// Returns the number of shifts.
func (n *Number) shiftToZero() int {
	var count int
	for n.units > 0 {
		n.shiftRight()
		count++
	}
	return count
}

func (n *Number) truncate(places int) {
	for n.units > places {
		n.reg.popFront()
		n.units--
	}
}

// ShiftRight multiplies n by the radix.
func (n *Number) ShiftRight() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shiftRight()
	n.trim()
}

// ShiftLeft divides n by the radix.
func (n *Number) ShiftLeft() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shiftLeft()
	n.trim()
}

// ShiftToZero multiplies n by the radix until it has no fractional digits.
// Returns the number of shifts, so that the operation can be undone with ShiftLeft.
func (n *Number) ShiftToZero() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.trim()
	return n.shiftToZero()
}

// Truncate removes fractional digits, so that at most 'places' of them remain.
// The units digit is never removed.
func (n *Number) Truncate(places int) error {
	if places < 0 {
		return ErrInvalidPrecision
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.truncate(places)
	n.trim()
	return nil
}
