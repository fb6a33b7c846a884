// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"sync"

	"github.com/pkg/errors"
)

type cell struct {
	res  int
	flag bool // carry for addition, borrow for subtraction.
}

// Matrix holds precomputed results of all single-digit additions, subtractions and comparisons
// for an alphabet. Every entry is produced by the walking digit algorithm.
// A Matrix is read-only after construction.
type Matrix struct {
	symbols []string
	index   map[string]int
	add     [][]cell
	sub     [][]cell
	cmp     [][]int8

	productsOnce sync.Once
	products     [][][2]int // lo and hi digits of a*b.
}

func newMatrix(symbols []string) *Matrix {
	n := len(symbols)
	m := &Matrix{
		symbols: append([]string(nil), symbols...),
		index:   make(map[string]int, n),
		add:     make([][]cell, n),
		sub:     make([][]cell, n),
		cmp:     make([][]int8, n),
	}
	for a := 0; a < n; a++ {
		m.index[m.symbols[a]] = a
		m.add[a] = make([]cell, n)
		m.sub[a] = make([]cell, n)
		m.cmp[a] = make([]int8, n)
		for b := 0; b < n; b++ {
			res, carry := walkAdd(a, b, n)
			m.add[a][b] = cell{res: res, flag: carry}
			res, borrow := walkSub(a, b, n)
			m.sub[a][b] = cell{res: res, flag: borrow}
			m.cmp[a][b] = int8(walkCmp(m.symbols, m.symbols[a], m.symbols[b]))
		}
	}
	return m
}

// Radix returns the number of symbols the matrix was built for.
func (m *Matrix) Radix() int {
	return len(m.symbols)
}

func (m *Matrix) position(symbol string) (int, error) {
	i, found := m.index[symbol]
	if !found {
		return -1, errors.Wrapf(ErrInvalidSymbol, "unknown symbol %q", symbol)
	}
	return i, nil
}

func (m *Matrix) positions(a, b string) (int, int, error) {
	i, err := m.position(a)
	if err != nil {
		return -1, -1, err
	}
	j, err := m.position(b)
	if err != nil {
		return -1, -1, err
	}
	return i, j, nil
}

// Add returns a+b and the carry flag.
func (m *Matrix) Add(a, b string) (result string, carry bool, err error) {
	i, j, err := m.positions(a, b)
	if err != nil {
		return "", false, err
	}
	c := m.add[i][j]
	return m.symbols[c.res], c.flag, nil
}

// Sub returns a-b and the borrow flag.
func (m *Matrix) Sub(a, b string) (result string, borrow bool, err error) {
	i, j, err := m.positions(a, b)
	if err != nil {
		return "", false, err
	}
	c := m.sub[i][j]
	return m.symbols[c.res], c.flag, nil
}

// Cmp compares two symbols.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (m *Matrix) Cmp(a, b string) (int, error) {
	i, j, err := m.positions(a, b)
	if err != nil {
		return 0, err
	}
	return int(m.cmp[i][j]), nil
}

// product returns the two-digit product of digit values a and b.
// The table is built on first use by adding a to itself b times.
func (m *Matrix) product(a, b int) (lo, hi int) {
	m.productsOnce.Do(m.buildProducts)
	p := m.products[a][b]
	return p[0], p[1]
}

func (m *Matrix) buildProducts() {
	n := len(m.symbols)
	m.products = make([][][2]int, n)
	for a := 0; a < n; a++ {
		m.products[a] = make([][2]int, n)
		for b := 0; b < n; b++ {
			var lo, hi int
			for k := 0; k < b; k++ {
				c := m.add[lo][a]
				lo = c.res
				if c.flag {
					// (n-1)^2 < n^2, so hi never overflows.
					hi = m.add[hi][1].res
				}
			}
			m.products[a][b] = [2]int{lo, hi}
		}
	}
}
