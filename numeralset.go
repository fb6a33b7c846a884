// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package numeral implements arbitrary-precision arithmetic over user-defined alphabets.
//
// A NumeralSet defines an ordered list of digit symbols, where the first symbol
// stands for zero, the second for one, and so on, plus a decimal and a negative symbol.
// Numbers built over a numeral set are sequences of such symbols, and all arithmetic
// is done symbol by symbol with the help of precomputed lookup tables.
//
//	set, _ := numeral.NewNumeralSet(".", "-", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
//	n, _ := set.New("10")
//	_ = n.DivString("3", 4) // n is "3.3333" now
package numeral

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/avdva/numeral/internal/mathutil"

	"github.com/pkg/errors"
)

// NumeralSet is an ordered alphabet of digit symbols.
// Symbols can only be added, never removed. Every addition rebuilds the arithmetic matrix.
// NumeralSet is safe for concurrent use.
type NumeralSet struct {
	mu       sync.RWMutex
	symbols  []string
	index    map[string]int
	matrix   *Matrix
	decimal  string
	negative string
}

type token struct {
	text string
	pos  int
}

// NewNumeralSet returns a numeral set with given decimal and negative symbols and initial digit symbols.
// symbols[0] is the zero symbol, symbols[1] is the one symbol, etc.
func NewNumeralSet(decimal, negative string, symbols ...string) (*NumeralSet, error) {
	if len(decimal) == 0 || len(negative) == 0 {
		return nil, errors.Wrap(ErrDuplicateOrAmbiguousSymbol, "empty decimal or negative symbol")
	}
	if overlaps(decimal, negative) {
		return nil, errors.Wrapf(ErrDuplicateOrAmbiguousSymbol, "decimal symbol %q overlaps negative symbol %q", decimal, negative)
	}
	ns := &NumeralSet{
		index:    make(map[string]int, len(symbols)),
		decimal:  decimal,
		negative: negative,
	}
	for _, s := range symbols {
		if err := ns.addSymbol(s); err != nil {
			return nil, err
		}
	}
	ns.matrix = newMatrix(ns.symbols)
	return ns, nil
}

// MustNumeralSet is like NewNumeralSet, but panics on error.
func MustNumeralSet(decimal, negative string, symbols ...string) *NumeralSet {
	ns, err := NewNumeralSet(decimal, negative, symbols...)
	if err != nil {
		panic(err)
	}
	return ns
}

// AddSymbol appends a new digit symbol to the alphabet.
// The symbol must be non-empty, and must not be a substring or a superstring
// of any other digit symbol, the decimal symbol, or the negative symbol.
func (ns *NumeralSet) AddSymbol(s string) error {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if err := ns.addSymbol(s); err != nil {
		return err
	}
	ns.matrix = newMatrix(ns.symbols)
	return nil
}

func (ns *NumeralSet) addSymbol(s string) error {
	if len(s) == 0 {
		return errors.Wrap(ErrDuplicateOrAmbiguousSymbol, "empty symbol")
	}
	if _, found := ns.index[s]; found {
		return errors.Wrapf(ErrDuplicateOrAmbiguousSymbol, "symbol %q is already registered", s)
	}
	for _, existing := range ns.symbols {
		if overlaps(s, existing) {
			return errors.Wrapf(ErrDuplicateOrAmbiguousSymbol, "symbol %q overlaps %q", s, existing)
		}
	}
	for _, reserved := range [...]string{ns.decimal, ns.negative} {
		if overlaps(s, reserved) {
			return errors.Wrapf(ErrDuplicateOrAmbiguousSymbol, "symbol %q overlaps reserved symbol %q", s, reserved)
		}
	}
	ns.index[s] = len(ns.symbols)
	ns.symbols = append(ns.symbols, s)
	return nil
}

func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Radix returns the number of digit symbols.
func (ns *NumeralSet) Radix() int {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return len(ns.symbols)
}

// Symbols returns a copy of the digit symbols.
func (ns *NumeralSet) Symbols() []string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return append([]string(nil), ns.symbols...)
}

// Symbol returns the symbol for digit value i.
func (ns *NumeralSet) Symbol(i int) (string, error) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	if i < 0 || i >= len(ns.symbols) {
		return "", errors.Wrapf(ErrInvalidSymbol, "no symbol for value %d", i)
	}
	return ns.symbols[i], nil
}

// Index returns the digit value of a symbol.
func (ns *NumeralSet) Index(symbol string) (int, error) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	i, found := ns.index[symbol]
	if !found {
		return -1, errors.Wrapf(ErrInvalidSymbol, "unknown symbol %q", symbol)
	}
	return i, nil
}

// Zero returns the zero symbol.
func (ns *NumeralSet) Zero() (string, error) {
	return ns.symbolAt(0)
}

// One returns the one symbol.
func (ns *NumeralSet) One() (string, error) {
	return ns.symbolAt(1)
}

func (ns *NumeralSet) symbolAt(i int) (string, error) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	if len(ns.symbols) < 2 {
		return "", ErrTooFewSymbols
	}
	return ns.symbols[i], nil
}

// Decimal returns the decimal symbol.
func (ns *NumeralSet) Decimal() string {
	return ns.decimal
}

// Negative returns the negative symbol.
func (ns *NumeralSet) Negative() string {
	return ns.negative
}

// Complement returns the symbol, which is as many steps away from the last symbol,
// as the given one is from zero.
func (ns *NumeralSet) Complement(symbol string) (string, error) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	i, found := ns.index[symbol]
	if !found {
		return "", errors.Wrapf(ErrInvalidSymbol, "unknown symbol %q", symbol)
	}
	return ns.symbols[mathutil.Complement(i, len(ns.symbols))], nil
}

// Matrix returns the arithmetic matrix for the current alphabet.
// The matrix is immutable, adding a symbol replaces it.
func (ns *NumeralSet) Matrix() *Matrix {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.matrix
}

// IsCompatible returns true, if both sets have the same symbols in the same order,
// and the same decimal and negative symbols.
func (ns *NumeralSet) IsCompatible(other *NumeralSet) bool {
	if ns == other {
		return true
	}
	if ns == nil || other == nil {
		return false
	}
	if ns.decimal != other.decimal || ns.negative != other.negative {
		return false
	}
	s1, s2 := ns.Symbols(), other.Symbols()
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			return false
		}
	}
	return true
}

// Parse splits text into known symbols.
// At each position the first matching symbol in registration order wins,
// digit symbols are tested before the decimal and negative symbols.
// Unknown runs are split into single characters.
// If leftToRight is false, text is tokenized from its end.
// Tokens are always returned in text order.
func (ns *NumeralSet) Parse(text string, leftToRight bool) []string {
	tokens := ns.tokenize(text, leftToRight)
	result := make([]string, len(tokens))
	for i, t := range tokens {
		result[i] = t.text
	}
	return result
}

func (ns *NumeralSet) tokenize(text string, leftToRight bool) []token {
	ns.mu.RLock()
	known := make([]string, 0, len(ns.symbols)+2)
	known = append(append(known, ns.symbols...), ns.decimal, ns.negative)
	ns.mu.RUnlock()

	var tokens []token
	if leftToRight {
		for pos := 0; pos < len(text); {
			t := matchPrefix(text[pos:], known)
			tokens = append(tokens, token{text: t, pos: pos})
			pos += len(t)
		}
		return tokens
	}
	for end := len(text); end > 0; {
		t := matchSuffix(text[:end], known)
		end -= len(t)
		tokens = append(tokens, token{text: t, pos: end})
	}
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return tokens
}

func matchPrefix(s string, known []string) string {
	for _, k := range known {
		if strings.HasPrefix(s, k) {
			return k
		}
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

func matchSuffix(s string, known []string) string {
	for _, k := range known {
		if strings.HasSuffix(s, k) {
			return k
		}
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[len(s)-size:]
}

// New returns a number for given text over this numeral set.
func (ns *NumeralSet) New(text string) (*Number, error) {
	return NewNumber(text, ns)
}
