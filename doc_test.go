package money_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/moneyfx/money"
	"github.com/moneyfx/money/decimal"
)

// BTC tags amounts in bitcoins.
type BTC struct{}

var btc = money.MustNewCurrency("BTC", 8, "₿")

func (BTC) Currency() money.Currency { return btc }

func TaxAmount[C money.Unit](priceAfterTax money.Money[C], taxRate money.Decimal) (money.Money[C], money.Money[C], error) {
	// Price
	taxRate, err := taxRate.Add(decimal.One[decimal.Bankers]())
	if err != nil {
		return money.Money[C]{}, money.Money[C]{}, err
	}
	priceBeforeTax, err := priceAfterTax.Quo(taxRate)
	if err != nil {
		return money.Money[C]{}, money.Money[C]{}, err
	}
	priceBeforeTax = priceBeforeTax.RoundToCurr()

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return money.Money[C]{}, money.Money[C]{}, err
	}
	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := money.MustParse[money.USD]("10")
	vatRate := decimal.MustParse[decimal.Bankers]("0.065")

	priceBeforeTax, vatAmount, err := TaxAmount(priceAfterTax, vatRate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT %k           = %v\n", vatRate, vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)
	// Output:
	// Price (before tax) = USD 9.39
	// VAT 6.5%           = USD 0.61
	// Price (after tax)  = USD 10.00
}

// In this example, a custom currency is declared and used like an ISO one.
func Example_customCurrency() {
	m := money.FromMinorUnits[BTC](3000)
	fmt.Println(m)
	fmt.Println(m.MinorUnits())
	fmt.Printf("%q\n", m.Formatted(money.StyleSymbol, language.AmericanEnglish))
	// Output:
	// BTC 0.00003000
	// 3000 true
	// "₿0.00003000"
}

func ExampleFromMinorUnits() {
	fmt.Println(money.FromMinorUnits[money.USD](3250))
	fmt.Println(money.FromMinorUnits[money.JPY](2170))
	fmt.Println(money.FromMinorUnits[money.OMR](-1))
	// Output:
	// USD 32.50
	// JPY 2170
	// OMR -0.001
}

func ExampleParse() {
	fmt.Println(money.Parse[money.USD]("32.5"))
	fmt.Println(money.Parse[money.USD]("1.2345"))
	// Output:
	// USD 32.50 <nil>
	// USD 1.2345 <nil>
}

func ExampleMoney_MinorUnits() {
	fmt.Println(money.MustParse[money.USD]("32.505").MinorUnits())
	fmt.Println(money.MustParse[money.USD]("32.515").MinorUnits())
	fmt.Println(money.MustParse[money.JPY]("2170.5").MinorUnits())
	// Output:
	// 3250 true
	// 3252 true
	// 2170 true
}

func ExampleMoney_Split() {
	m := money.MustParse[money.USD]("1.01")
	fmt.Println(m.Split(5))
	fmt.Println(m.Split(3))
	fmt.Println(m.Split(1))
	// Output:
	// [USD 0.21 USD 0.20 USD 0.20 USD 0.20 USD 0.20] <nil>
	// [USD 0.34 USD 0.34 USD 0.33] <nil>
	// [USD 1.01] <nil>
}

func ExampleMoney_Rem() {
	m := money.MustParse[money.USD]("-37.50")
	fmt.Println(m.Rem(money.MustParse[money.USD]("5")))
	// Output: USD -2.50 <nil>
}

func ExampleMoney_RoundToCurr() {
	fmt.Println(money.MustParse[money.USD]("2.345").RoundToCurr())
	fmt.Println(money.MustParse[money.OMR]("2.3455").RoundToCurr())
	fmt.Println(money.MustParse[money.JPY]("2.5").RoundToCurr())
	// Output:
	// USD 2.34
	// OMR 2.346
	// JPY 2
}

func ExampleMoney_Format() {
	m := money.MustParse[money.USD]("-123.456")
	fmt.Printf("%v\n", m)
	fmt.Printf("%f\n", m)
	fmt.Printf("%.2f\n", m)
	fmt.Printf("%d\n", m)
	fmt.Printf("%c\n", m)
	// Output:
	// USD -123.456
	// -123.456
	// -123.46
	// -12346
	// USD
}

func ExampleMoney_Formatted() {
	m := money.MustParse[money.EUR]("1234.5")
	fmt.Printf("%q\n", m.Formatted(money.StyleSymbol, language.AmericanEnglish))
	fmt.Printf("%q\n", m.Formatted(money.StyleCode, language.AmericanEnglish))
	fmt.Printf("%q\n", m.Neg().Formatted(money.StyleAccounting, language.AmericanEnglish))
	fmt.Printf("%q\n", m.Formatted(money.StyleSymbol, language.German))
	// Output:
	// "€1,234.50"
	// "EUR\u00a01,234.50"
	// "(€1,234.50)"
	// "1.234,50\u00a0€"
}

func ExampleConvert() {
	gbp := money.FromInt64[money.GBP](100)
	rate := decimal.MustParse[decimal.Bankers]("1.2")
	fmt.Println(money.Convert[money.EUR](gbp, rate))
	// Output: EUR 120.00 <nil>
}

func ExampleExchange() {
	q := money.MustParseQuote("1.2", "0.2")
	c, err := money.Exchange[money.EUR](q, money.FromInt64[money.GBP](100))
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Commission)
	fmt.Println(c.Counter)
	fmt.Println(c.Counter.RoundToCurr())
	// Output:
	// GBP 0.200
	// EUR 119.7600
	// EUR 119.76
}

func ExampleExchangeQuote_Inv() {
	q := money.MustParseQuote("1.25", "0.5")
	fmt.Println(q.Inv())
	// Output: 0.8 (0.5%) <nil>
}

func ExampleNewCurrency() {
	c, err := money.NewCurrency("ETH", 18, "Ξ")
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Code(), c.Scale(), c.IsISO())
	fmt.Println(c.Symbol())
	// Output:
	// ETH 18 false
	// Ξ true
}

func ExampleParseCurr() {
	fmt.Println(money.ParseCurr("usd"))
	fmt.Println(money.ParseCurr("392"))
	// Output:
	// USD <nil>
	// JPY <nil>
}

func ExampleCurrency_Num() {
	fmt.Println(money.CurrencyOf[money.USD]().Num())
	fmt.Println(btc.Num() == "")
	// Output:
	// 840
	// true
}

func ExampleCurrency_FormatValue() {
	jpy := money.CurrencyOf[money.JPY]()
	fmt.Println(jpy.FormatValue(decimal.MustParse[decimal.Bankers]("2170.5"), money.StyleSymbol, "en_US"))
	// Output: ¥2,170 <nil>
}

func ExampleRegistry_With() {
	r, err := money.ISORegistry().With(btc)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Lookup("btc"))
	fmt.Println(r.Len() - money.ISORegistry().Len())
	// Output:
	// BTC true
	// 1
}
