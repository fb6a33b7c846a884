// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import "unsafe"

// WrapInc returns the successor of position i in a cyclic sequence of length n.
// The second result is true, if the successor wrapped around to 0.
func WrapInc(i, n int) (int, bool) {
	i++
	if i >= n {
		return 0, true
	}
	return i, false
}

// WrapDec returns the predecessor of position i in a cyclic sequence of length n.
// The second result is true, if the predecessor wrapped around to n-1.
func WrapDec(i, n int) (int, bool) {
	if i == 0 {
		return n - 1, true
	}
	return i - 1, false
}

// Complement returns the position which is as far from the end of
// a sequence of length n, as i is from its beginning.
func Complement(i, n int) int {
	return n - 1 - i
}

// Cmp compares two ints.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func Cmp(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// MaxInt returns the largest of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinInt returns the smallest of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
