// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numconv

import (
	"fmt"

	"github.com/avdva/numeral"
)

func ExampleConvert() {
	dec := numeral.MustNumeralSet(".", "-", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	bin := numeral.MustNumeralSet(".", "-", "0", "1")
	n := numeral.MustNumber("-6.75", dec)
	b, err := Convert(n, bin, 8)
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	d, err := ToDecimal(b, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// -110.11
	// -6.75
}
