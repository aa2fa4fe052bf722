package money

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/moneyfx/money/decimal"
)

// Style selects how a monetary value is rendered by [Currency.NumberFormatter].
type Style uint8

const (
	// StyleSymbol renders the value with the currency symbol: $1,234.50.
	StyleSymbol Style = iota
	// StyleCode renders the value with the currency code: USD 1,234.50.
	StyleCode
	// StyleDecimal renders the number without the currency: 1,234.50.
	StyleDecimal
	// StyleAccounting is like StyleSymbol but encloses negative values
	// in parentheses: ($1,234.50).
	StyleAccounting
)

var styleNames = [...]string{
	StyleSymbol:     "symbol",
	StyleCode:       "code",
	StyleDecimal:    "decimal",
	StyleAccounting: "accounting",
}

// String implements the [fmt.Stringer] interface.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseStyle converts the name of a style, as returned by [Style.String], to a style.
func ParseStyle(s string) (Style, error) {
	for i, name := range styleNames {
		if strings.EqualFold(s, name) {
			return Style(i), nil //nolint:gosec
		}
	}
	return 0, fmt.Errorf("parsing style %q: unknown style", s)
}

// numberSymbols holds the number formatting conventions of a locale.
type numberSymbols struct {
	digits    [10]string
	minus     string
	decimal   string
	group     string
	primary   int  // size of the group next to the decimal separator
	secondary int  // size of the other groups
	minGroup  int  // minimum number of digits in the leftmost group
	suffix    bool // currency symbol follows the number
}

var symbolsCache sync.Map // language.Tag -> *numberSymbols

// symbolsOf returns the number symbols of a locale.
// The symbols are derived from the CLDR data of golang.org/x/text by
// formatting sample numbers and are cached per tag.
func symbolsOf(tag language.Tag) *numberSymbols {
	if s, ok := symbolsCache.Load(tag); ok {
		return s.(*numberSymbols) //nolint:forcetypeassert
	}
	s, _ := symbolsCache.LoadOrStore(tag, probeSymbols(tag))
	return s.(*numberSymbols) //nolint:forcetypeassert
}

func probeSymbols(tag language.Tag) *numberSymbols {
	p := message.NewPrinter(tag)
	ns := &numberSymbols{primary: 3, secondary: 3, minGroup: 1, suffix: symbolFollows(tag)}

	isDigit := make(map[rune]bool, 10)
	for i := range ns.digits {
		ns.digits[i] = p.Sprint(number.Decimal(i))
		for _, r := range ns.digits[i] {
			isDigit[r] = true
		}
	}

	// runs splits a sample into digit run lengths and the separators between them.
	runs := func(sample string) (lens []int, seps []string) {
		var sep strings.Builder
		n := 0
		for _, r := range sample {
			switch {
			case isDigit[r]:
				if sep.Len() > 0 {
					if n > 0 {
						lens = append(lens, n)
						seps = append(seps, sep.String())
					}
					sep.Reset()
					n = 0
				}
				n++
			case unicode.Is(unicode.Cf, r):
				// bidi marks
			default:
				sep.WriteRune(r)
			}
		}
		return append(lens, n), seps
	}

	ns.minus = strings.TrimFunc(p.Sprint(number.Decimal(-1)), func(r rune) bool {
		return isDigit[r] || unicode.Is(unicode.Cf, r)
	})
	if ns.minus == "" {
		ns.minus = "-"
	}

	lens, seps := runs(p.Sprint(number.Decimal(1234567.5, number.Scale(1))))
	switch len(seps) {
	case 0:
		ns.decimal = "."
		ns.primary = 0
	case 1:
		ns.decimal = seps[0]
		ns.primary = 0
	default:
		ns.group = seps[0]
		ns.decimal = seps[len(seps)-1]
		groups := lens[:len(lens)-1]
		ns.primary = groups[len(groups)-1]
		ns.secondary = ns.primary
		if len(groups) > 2 {
			ns.secondary = groups[len(groups)-2]
		}
		if _, seps := runs(p.Sprint(number.Decimal(1234.5, number.Scale(1)))); len(seps) < 2 {
			ns.minGroup = 2
		}
	}
	return ns
}

// symbolFollows reports whether the currency symbol is written after the
// number in the given locale.
func symbolFollows(tag language.Tag) bool {
	base, _ := tag.Base()
	switch base.String() {
	case "bg", "cs", "da", "de", "el", "es", "et", "fi", "fr", "hr", "hu",
		"it", "lt", "lv", "nb", "no", "pl", "ro", "ru", "sk", "sl", "sr",
		"sv", "uk", "vi":
		return true
	case "pt":
		region, _ := tag.Region()
		return region.String() == "PT"
	}
	return false
}

// formatNumber renders a non-negative plain decimal string, such as "1234.50",
// with the separators and digits of the locale.
func (ns *numberSymbols) formatNumber(plain string) string {
	intPart, fracPart, _ := strings.Cut(plain, ".")

	var b strings.Builder
	n := len(intPart)
	grouped := ns.group != "" && ns.primary > 0 && n >= ns.primary+ns.minGroup
	for i := 0; i < n; i++ {
		if grouped && i > 0 {
			// distance from the current digit to the decimal separator
			rest := n - i
			switch {
			case rest == ns.primary:
				b.WriteString(ns.group)
			case rest > ns.primary && ns.secondary > 0 && (rest-ns.primary)%ns.secondary == 0:
				b.WriteString(ns.group)
			}
		}
		b.WriteString(ns.digits[intPart[i]-'0'])
	}
	if fracPart != "" {
		b.WriteString(ns.decimal)
		for i := 0; i < len(fracPart); i++ {
			b.WriteString(ns.digits[fracPart[i]-'0'])
		}
	}
	return b.String()
}

// localSymbol returns the symbol used for the currency in the given locale.
// A symbol defined by the descriptor always wins. ISO currencies without
// a symbol use the one of the locale, other currencies use their code.
func (c Currency) localSymbol(tag language.Tag) string {
	if s, ok := c.Symbol(); ok {
		return s
	}
	if c.IsISO() {
		if u, err := currency.ParseISO(c.Code()); err == nil {
			return message.NewPrinter(tag).Sprint(currency.Symbol(u))
		}
	}
	return c.Code()
}

// nbsp separates the number from a currency code or a suffixed symbol.
const nbsp = "\u00a0"

// NumberFormatter returns a function that renders decimals as amounts
// in the currency, using the number conventions of the locale.
//
// The locale supplies the grouping and decimal separators, the digits and
// the position of the symbol. The currency supplies its code, scale and symbol:
// formatting a JPY amount for a German locale yields German separators with
// the yen symbol and no fractional digits.
//
// Values are rounded half to even to the scale of the currency and
// padded with zeros.
// The returned function is safe for concurrent use.
func (c Currency) NumberFormatter(style Style, tag language.Tag) func(decimal.Decimal[decimal.Bankers]) string {
	ns := symbolsOf(tag)
	var sym string
	switch style {
	case StyleSymbol, StyleAccounting:
		sym = c.localSymbol(tag)
	case StyleCode:
		sym = c.Code()
	}
	// alphabetic symbols, such as codes, are kept apart from the number
	sep := ""
	if sym != "" {
		if r := []rune(sym); ns.suffix || unicode.IsLetter(r[len(r)-1]) {
			sep = nbsp
		}
	}
	scale := c.Scale()

	return func(d decimal.Decimal[decimal.Bankers]) string {
		d = d.Round(scale).Pad(scale)
		num := ns.formatNumber(d.Abs().String())

		var b strings.Builder
		neg := d.IsNeg()
		paren := neg && style == StyleAccounting
		switch {
		case paren:
			b.WriteString("(")
		case neg:
			b.WriteString(ns.minus)
		}
		switch {
		case sym == "":
			b.WriteString(num)
		case ns.suffix:
			b.WriteString(num)
			b.WriteString(sep)
			b.WriteString(sym)
		default:
			b.WriteString(sym)
			b.WriteString(sep)
			b.WriteString(num)
		}
		if paren {
			b.WriteString(")")
		}
		return b.String()
	}
}

// FormatValue renders the value as an amount in the currency for the locale
// identified by a BCP 47 tag, such as "en-US" or "de_CH".
// The result is deterministic given the value, currency, style and locale.
//
// FormatValue returns an error if the locale identifier is malformed.
// See also method [Currency.NumberFormatter].
func (c Currency) FormatValue(value decimal.Decimal[decimal.Bankers], style Style, localeID string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(localeID, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("formatting %v %v: parsing locale %q: %w", c, value, localeID, err)
	}
	return c.NumberFormatter(style, tag)(value), nil
}
