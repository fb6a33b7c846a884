// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// parse converts text into a register. Returns the register, the index of its units digit, and the sign.
func parse(text string, set *NumeralSet) (reg register, units int, neg bool, err error) {
	if set == nil {
		return reg, 0, false, ErrNoNumeralSet
	}
	if len(text) == 0 {
		return reg, 0, false, ErrEmptyInput
	}
	m := set.Matrix()
	var whole, frac []int
	seenDecimal := false
	for i, t := range set.tokenize(text, true) {
		switch t.text {
		case set.negative:
			if i != 0 {
				return reg, 0, false, newSymbolError("unexpected negative symbol", t.text, t.pos+1)
			}
			neg = true
		case set.decimal:
			if seenDecimal {
				return reg, 0, false, newSymbolError("unexpected decimal symbol", t.text, t.pos+1)
			}
			seenDecimal = true
		default:
			pos, found := m.index[t.text]
			if !found {
				return reg, 0, false, newSymbolError("unexpected symbol", t.text, t.pos+1)
			}
			if seenDecimal {
				frac = append(frac, pos)
			} else {
				whole = append(whole, pos)
			}
		}
	}
	if len(whole)+len(frac) == 0 {
		return reg, 0, false, ErrEmptyInput
	}
	for i := len(frac) - 1; i >= 0; i-- {
		reg.pushBack(frac[i])
	}
	if len(whole) == 0 { // like ".5"
		reg.pushBack(0)
	}
	for i := len(whole) - 1; i >= 0; i-- {
		reg.pushBack(whole[i])
	}
	return reg, len(frac), neg, nil
}

// String returns the number as a sequence of symbols.
// Leading zeros and trailing fractional zeros are omitted,
// the decimal symbol is written only if there are fractional digits.
func (n *Number) String() string {
	m := n.set.Matrix()
	n.mu.Lock()
	defer n.mu.Unlock()
	var builder strings.Builder
	n.toStringsBuilder(&builder, m)
	return builder.String()
}

func (n *Number) toStringsBuilder(builder *strings.Builder, m *Matrix) {
	if n.neg && !n.isZero() {
		builder.WriteString(n.set.negative)
	}
	for p := n.highestWhole(); p >= 0; p-- {
		builder.WriteString(m.symbols[n.digit(p)])
	}
	lowest := 0
	for p := n.lo(); p < 0; p++ {
		if n.digit(p) != 0 {
			lowest = p
			break
		}
	}
	if lowest == 0 {
		return
	}
	builder.WriteString(n.set.decimal)
	for p := -1; p >= lowest; p-- {
		builder.WriteString(m.symbols[n.digit(p)])
	}
}

// GoString returns debug string representation.
func (n *Number) GoString() string {
	s := n.String()
	n.mu.Lock()
	defer n.mu.Unlock()
	return s + fmt.Sprintf(" {whole: %d, frac: %d, neg: %v}", n.hi()+1, n.units, n.neg)
}

// MarshalText returns the number's symbols.
func (n *Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText parses text into a number. The number must already have a numeral set.
func (n *Number) UnmarshalText(data []byte) error {
	if n.set == nil {
		return ErrNoNumeralSet
	}
	return n.SetValue(string(data))
}

// MarshalJSON marshals the number as a json string.
func (n *Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON unmarshals a json string into the number. The number must already have a numeral set.
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "json")
	}
	return n.UnmarshalText([]byte(s))
}
