// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

import (
	"math/rand"
	"strings"
)

var (
	decimalSet = MustNumeralSet(".", "-", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	wordsSet   = MustNumeralSet("point", "minus", "zero", "one", "two")
)

func dec(s string) *Number {
	return MustNumber(s, decimalSet)
}

func words(s string) *Number {
	return MustNumber(s, wordsSet)
}

// randomDecimal returns a random signed base-10 literal with up to 6 whole and 3 fractional digits.
func randomDecimal(r *rand.Rand) string {
	var b strings.Builder
	if r.Intn(2) == 0 {
		b.WriteByte('-')
	}
	whole := r.Intn(6) + 1
	for i := 0; i < whole; i++ {
		b.WriteByte(byte('0' + r.Intn(10)))
	}
	if frac := r.Intn(4); frac > 0 {
		b.WriteByte('.')
		for i := 0; i < frac; i++ {
			b.WriteByte(byte('0' + r.Intn(10)))
		}
	}
	return b.String()
}
