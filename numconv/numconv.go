// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package numconv converts numbers between numeral sets, and to and from
// shopspring/decimal and robaho/fixed values.
package numconv

import (
	"strings"

	"github.com/avdva/numeral"

	"github.com/pkg/errors"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// FixedPlaces is the number of decimal places in a fixed.Fixed value.
const FixedPlaces = 7

// ErrNotRepresentable is returned when a value does not fit the target type.
var ErrNotRepresentable = errors.New("numconv: value is not representable")

// Convert returns n expressed in numeral set 'to'.
// Whole digits are converted exactly. The fraction is converted
// with at most 'places' digits of the target set, truncated.
// All arithmetic is done by the numeral engine in the target set.
func Convert(n *numeral.Number, to *numeral.NumeralSet, places int) (*numeral.Number, error) {
	from := n.NumeralSet()
	if from.IsCompatible(to) {
		result := n.Clone()
		if err := result.Truncate(places); err != nil {
			return nil, err
		}
		return result, nil
	}
	values, base, err := digitValues(from.Radix(), to)
	if err != nil {
		return nil, err
	}
	src := n.Clone()
	acc, err := horner(src, from, 0, src.WholeDigits(), values, base)
	if err != nil {
		return nil, err
	}
	if frac := src.FracDigits(); frac > 0 {
		num, err := horner(src, from, -frac, frac, values, base)
		if err != nil {
			return nil, err
		}
		den := values[1].Clone()
		for i := 0; i < frac; i++ {
			if err := den.Mul(base); err != nil {
				return nil, err
			}
		}
		if err := num.Div(den, places); err != nil {
			return nil, err
		}
		if err := acc.Add(num); err != nil {
			return nil, err
		}
	}
	if src.Sign() < 0 {
		acc.Neg()
	}
	return acc, nil
}

// digitValues returns numbers 0..radix-1 and radix itself in the target set.
func digitValues(radix int, to *numeral.NumeralSet) (values []*numeral.Number, base *numeral.Number, err error) {
	cur, err := numeral.NewZero(to)
	if err != nil {
		return nil, nil, err
	}
	values = make([]*numeral.Number, radix)
	for i := range values {
		values[i] = cur.Clone()
		if err := cur.AddOne(); err != nil {
			return nil, nil, err
		}
	}
	return values, cur, nil
}

// horner evaluates 'count' digits of src starting at position 'lowest' as a whole number in the target set.
func horner(src *numeral.Number, from *numeral.NumeralSet, lowest, count int, values []*numeral.Number, base *numeral.Number) (*numeral.Number, error) {
	acc := values[0].Clone()
	for p := lowest + count - 1; p >= lowest; p-- {
		v, err := from.Index(src.DigitAt(p))
		if err != nil {
			return nil, err
		}
		if err := acc.Mul(base); err != nil {
			return nil, err
		}
		if err := acc.Add(values[v]); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// ToDecimal returns n as a decimal. Whole digits are converted exactly,
// the fraction is truncated to 'places' decimal places.
func ToDecimal(n *numeral.Number, places int32) (decimal.Decimal, error) {
	if places < 0 {
		return decimal.Zero, errors.Wrapf(numeral.ErrInvalidPrecision, "to decimal: %d places", places)
	}
	set := n.NumeralSet()
	src := n.Clone()
	radix := decimal.NewFromInt(int64(set.Radix()))
	digitAt := func(p int) (decimal.Decimal, error) {
		v, err := set.Index(src.DigitAt(p))
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(int64(v)), nil
	}
	result := decimal.Zero
	for p := src.WholeDigits() - 1; p >= 0; p-- {
		d, err := digitAt(p)
		if err != nil {
			return decimal.Zero, err
		}
		result = result.Mul(radix).Add(d)
	}
	if frac := src.FracDigits(); frac > 0 {
		num, den := decimal.Zero, decimal.NewFromInt(1)
		for p := -1; p >= -frac; p-- {
			d, err := digitAt(p)
			if err != nil {
				return decimal.Zero, err
			}
			num = num.Mul(radix).Add(d)
			den = den.Mul(radix)
		}
		q, _ := num.QuoRem(den, places)
		result = result.Add(q)
	}
	if src.Sign() < 0 {
		result = result.Neg()
	}
	return result, nil
}

// FromDecimal returns d as a number over given set, with at most 'places' fractional digits.
func FromDecimal(d decimal.Decimal, set *numeral.NumeralSet, places int) (*numeral.Number, error) {
	if places < 0 {
		return nil, numeral.ErrInvalidPrecision
	}
	if set == nil {
		return nil, numeral.ErrNoNumeralSet
	}
	if set.Radix() < 2 {
		return nil, numeral.ErrTooFewSymbols
	}
	radix := decimal.NewFromInt(int64(set.Radix()))
	abs := d.Abs()
	intPart := abs.Truncate(0)
	fracPart := abs.Sub(intPart)

	var whole []string
	for !intPart.IsZero() {
		q, r := intPart.QuoRem(radix, 0)
		s, err := set.Symbol(int(r.IntPart()))
		if err != nil {
			return nil, err
		}
		whole = append(whole, s)
		intPart = q
	}
	if len(whole) == 0 {
		zero, err := set.Zero()
		if err != nil {
			return nil, err
		}
		whole = append(whole, zero)
	}

	var builder strings.Builder
	if d.Sign() < 0 {
		builder.WriteString(set.Negative())
	}
	for i := len(whole) - 1; i >= 0; i-- {
		builder.WriteString(whole[i])
	}
	if places > 0 && !fracPart.IsZero() {
		builder.WriteString(set.Decimal())
		for i := 0; i < places && !fracPart.IsZero(); i++ {
			fracPart = fracPart.Mul(radix)
			digit := fracPart.Truncate(0)
			fracPart = fracPart.Sub(digit)
			s, err := set.Symbol(int(digit.IntPart()))
			if err != nil {
				return nil, err
			}
			builder.WriteString(s)
		}
	}
	return numeral.NewNumber(builder.String(), set)
}

// ToFixed returns n as a fixed-point value with FixedPlaces decimal places.
func ToFixed(n *numeral.Number) (fixed.Fixed, error) {
	d, err := ToDecimal(n, FixedPlaces)
	if err != nil {
		return fixed.NaN, err
	}
	f := fixed.NewS(d.Truncate(FixedPlaces).String())
	if f.IsNaN() {
		return fixed.NaN, errors.Wrapf(ErrNotRepresentable, "%s as fixed", d.String())
	}
	return f, nil
}

// FromFixed returns f as a number over given set, with at most 'places' fractional digits.
func FromFixed(f fixed.Fixed, set *numeral.NumeralSet, places int) (*numeral.Number, error) {
	if f.IsNaN() {
		return nil, errors.Wrap(ErrNotRepresentable, "NaN")
	}
	d, err := decimal.NewFromString(f.String())
	if err != nil {
		return nil, errors.Wrap(err, "fixed")
	}
	return FromDecimal(d, set, places)
}
