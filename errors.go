// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSymbol is returned when a token is not a digit, decimal or negative symbol
	// of a numeral set, or is misplaced in a literal.
	ErrInvalidSymbol = errors.New("numeral: invalid symbol")
	// ErrDuplicateOrAmbiguousSymbol is returned when registering a symbol would make parsing ambiguous.
	ErrDuplicateOrAmbiguousSymbol = errors.New("numeral: duplicate or ambiguous symbol")
	// ErrIncompatibleNumeralSet is returned when numbers from different numeral sets are combined.
	ErrIncompatibleNumeralSet = errors.New("numeral: incompatible numeral sets")
	// ErrDivideByZero is returned when the divisor is zero.
	ErrDivideByZero = errors.New("numeral: division by zero")
	// ErrInvariantViolation signals an internal consistency failure. It is never caused by bad input.
	ErrInvariantViolation = errors.New("numeral: invariant violation")
	// ErrEmptyInput is returned for literals without any digit.
	ErrEmptyInput = errors.New("numeral: empty input")
	// ErrTooFewSymbols is returned when a numeral set has less than two symbols.
	ErrTooFewSymbols = errors.New("numeral: numeral set needs at least two symbols")
	// ErrInvalidPrecision is returned for a negative number of decimal places.
	ErrInvalidPrecision = errors.New("numeral: invalid precision")
	// ErrNoNumeralSet is returned when a Number without a numeral set is unmarshaled.
	ErrNoNumeralSet = errors.New("numeral: number has no numeral set")
)

// SymbolError describes a token, which could not be parsed.
type SymbolError struct {
	// Pos is the 1-based byte position of the token.
	Pos int
	// Token is the offending text.
	Token string
	msg   string
}

func newSymbolError(msg, token string, pos int) *SymbolError {
	return &SymbolError{Pos: pos, Token: token, msg: msg}
}

func (se *SymbolError) Error() string {
	return fmt.Sprintf("%s %q at pos %d", se.msg, se.Token, se.Pos)
}

// Unwrap returns ErrInvalidSymbol.
func (se *SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}
