package decimal_test

import (
	"fmt"

	"github.com/moneyfx/money/decimal"
)

func ExampleParse() {
	d, err := decimal.Parse[decimal.Bankers]("-123.4500")
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.Scale(), d.Prec())
	// Output: -123.4500 4 7
}

func ExampleNew() {
	fmt.Println(decimal.New[decimal.Plain](3250, 2))
	fmt.Println(decimal.New[decimal.Plain](1, -200))
	// Output:
	// 32.50 <nil>
	// 0 converting coefficient: decimal overflow
}

func ExampleDecimal_Quo() {
	two := decimal.MustParse[decimal.Down]("2")
	three := decimal.MustParse[decimal.Down]("3")
	fmt.Println(two.Quo(three))
	fmt.Println(two.Quo(decimal.Zero[decimal.Down]()))
	// Output:
	// 0.66666666666666666666666666666666666666 <nil>
	// 0 computing [2 / 0]: division by zero
}

func ExampleDecimal_Rem() {
	d := decimal.MustParse[decimal.Bankers]("-37.50")
	e := decimal.MustParse[decimal.Bankers]("5")
	fmt.Println(d.Rem(e))
	// Output: -2.50 <nil>
}

func ExampleDecimal_Round() {
	d := decimal.MustParse[decimal.Bankers]("2.345")
	e := decimal.MustParse[decimal.Plain]("2.345")
	fmt.Println(d.Round(2), e.Round(2))
	fmt.Println(d.Ceil(1), d.Floor(1), d.Trunc(0))
	// Output:
	// 2.34 2.35
	// 2.4 2.3 2
}

func ExampleMulWith() {
	price := decimal.MustParse[decimal.Plain]("19.99")
	qty := decimal.MustParse[decimal.Bankers]("3")
	fmt.Println(decimal.MulWith(price, qty))
	// Output: 59.97 <nil>
}

func ExampleDecimal_Format() {
	d := decimal.MustParse[decimal.Bankers]("0.0655")
	fmt.Printf("%v %.2f %k %.1k %q\n", d, d, d, d, d)
	// Output: 0.0655 0.07 6.55% 6.6% "0.0655"
}
