/*
Package money implements monetary values whose currency is part of their type.
It builds on the [decimal] package, which provides exact base-10 arithmetic
with a rounding policy fixed by a type parameter.

# Features

  - Immutable monetary values, safe for concurrent use by multiple goroutines
  - Amounts in different currencies cannot be mixed: the mistake fails to compile
  - ISO 4217 currencies and custom currencies, such as cryptocurrencies
  - Conversion between currencies with explicit exchange rates and commissions
  - Splitting of amounts without losing minor units
  - Locale-aware formatting based on CLDR data

# Representation

[Money] is parameterized by a currency tag: a zero-size type implementing
[Unit], such as [USD] or [JPY]. The tag returns a [Currency] descriptor
with the code, the scale of the minor unit and an optional symbol.
Tags of ISO 4217 currencies are generated from a CSV table; other currencies
are declared by the user:

	type BTC struct{}

	var btc = money.MustNewCurrency("BTC", 8, "₿")

	func (BTC) Currency() money.Currency { return btc }

The value itself is a [Decimal], a 38-digit decimal that rounds half to even.
Values keep all their digits: rounding to the scale of the currency happens
only when formatting or converting to minor units, see [Money.RoundToCurr]
and [Money.MinorUnits].

# Currency Lookup

Codes coming from outside the program, such as configuration files or
database columns, are resolved through a [Registry]. [ISORegistry] holds the
static ISO 4217 table; [Registry.With] adds custom currencies to it.

# Conversion

[Convert] multiplies an amount by a rate supplied by the caller. An
[ExchangeQuote] adds a commission, charged on the base amount:

	commission = commissionPercent / 100 * base
	counter    = ((1 - commissionPercent / 100) * base) * rate

[Exchange] returns both parts of the computation as a [Conversion].
The package never fetches rates itself: package quotes defines the Source
interface for collaborators that do, and an in-memory table of quotes.

# Formatting

[Money.String] and the [fmt] verbs produce machine-oriented text, such as
"USD 32.50". [Money.Formatted] and [Currency.FormatValue] render values for
a locale: the locale supplies separators, digits and the position of the symbol,
the currency supplies its code, scale and symbol.

# Errors

Arithmetic errors, such as division by zero or exceeding the exponent range,
are returned as errors wrapping the sentinels of the [decimal] package.
Must variants of constructors panic instead.
*/
package money
