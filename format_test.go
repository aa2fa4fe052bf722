package money

import (
	"sync"
	"testing"

	"golang.org/x/text/language"
)

func TestStyle(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		tests := []struct {
			style Style
			want  string
		}{
			{StyleSymbol, "symbol"},
			{StyleCode, "code"},
			{StyleDecimal, "decimal"},
			{StyleAccounting, "accounting"},
			{Style(9), "Style(9)"},
		}
		for _, tt := range tests {
			if got := tt.style.String(); got != tt.want {
				t.Errorf("Style(%d).String() = %q, want %q", uint8(tt.style), got, tt.want)
			}
		}
	})

	t.Run("parse", func(t *testing.T) {
		for _, s := range []Style{StyleSymbol, StyleCode, StyleDecimal, StyleAccounting} {
			got, err := ParseStyle(s.String())
			if err != nil || got != s {
				t.Errorf("ParseStyle(%q) = %v, %v, want %v", s.String(), got, err, s)
			}
		}
		if got, err := ParseStyle("CODE"); err != nil || got != StyleCode {
			t.Errorf("ParseStyle(\"CODE\") = %v, %v, want %v", got, err, StyleCode)
		}
		if _, err := ParseStyle("fancy"); err == nil {
			t.Errorf("ParseStyle(\"fancy\") did not fail")
		}
	})
}

func TestCurrency_NumberFormatter(t *testing.T) {
	tests := []struct {
		curr  Currency
		style Style
		tag   language.Tag
		value string
		want  string
	}{
		// en-US
		{usd, StyleSymbol, language.AmericanEnglish, "1234.5", "$1,234.50"},
		{usd, StyleCode, language.AmericanEnglish, "1234.5", "USD\u00a01,234.50"},
		{usd, StyleDecimal, language.AmericanEnglish, "1234.5", "1,234.50"},
		{usd, StyleAccounting, language.AmericanEnglish, "-1234.5", "($1,234.50)"},
		{usd, StyleAccounting, language.AmericanEnglish, "1234.5", "$1,234.50"},
		{usd, StyleSymbol, language.AmericanEnglish, "-1234.5", "-$1,234.50"},
		{usd, StyleSymbol, language.AmericanEnglish, "0", "$0.00"},
		{usd, StyleSymbol, language.AmericanEnglish, "999.999", "$1,000.00"},
		{usd, StyleSymbol, language.AmericanEnglish, "1234567.891", "$1,234,567.89"},
		{usd, StyleSymbol, language.AmericanEnglish, "0.125", "$0.12"},
		{usd, StyleSymbol, language.AmericanEnglish, "0.135", "$0.14"},
		{eur, StyleSymbol, language.AmericanEnglish, "12.3", "€12.30"},
		{jpy, StyleSymbol, language.AmericanEnglish, "2170.5", "¥2,170"},
		{omr, StyleDecimal, language.AmericanEnglish, "1.5", "1.500"},
		// de
		{eur, StyleSymbol, language.German, "1234.5", "1.234,50\u00a0€"},
		{eur, StyleCode, language.German, "1234.5", "1.234,50\u00a0EUR"},
		{eur, StyleSymbol, language.German, "-1234.5", "-1.234,50\u00a0€"},
		{jpy, StyleSymbol, language.German, "2170", "2.170\u00a0¥"},
		{usd, StyleDecimal, language.German, "1234567.5", "1.234.567,50"},
		// custom currencies
		{currBTC, StyleSymbol, language.AmericanEnglish, "0.00003", "₿0.00003000"},
		{currBTC, StyleCode, language.AmericanEnglish, "1", "BTC\u00a01.00000000"},
		{MustNewCurrency("PTS", 0, ""), StyleSymbol, language.AmericanEnglish, "1500", "PTS\u00a01,500"},
	}
	for _, tt := range tests {
		got := tt.curr.NumberFormatter(tt.style, tt.tag)(dec(tt.value))
		if got != tt.want {
			t.Errorf("%v.NumberFormatter(%v, %v)(%v) = %q, want %q", tt.curr, tt.style, tt.tag, tt.value, got, tt.want)
		}
	}
}

func TestCurrency_NumberFormatter_Concurrent(t *testing.T) {
	f := eur.NumberFormatter(StyleSymbol, language.French)
	want := f(dec("1234.5"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := f(dec("1234.5")); got != want {
				t.Errorf("concurrent call = %q, want %q", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestCurrency_FormatValue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr   Currency
			style  Style
			locale string
			value  string
			want   string
		}{
			{usd, StyleSymbol, "en-US", "1234.5", "$1,234.50"},
			{usd, StyleSymbol, "en_US", "1234.5", "$1,234.50"},
			{eur, StyleSymbol, "de-DE", "1234.5", "1.234,50\u00a0€"},
			{jpy, StyleCode, "de", "2170", "2.170\u00a0JPY"},
		}
		for _, tt := range tests {
			got, err := tt.curr.FormatValue(dec(tt.value), tt.style, tt.locale)
			if err != nil {
				t.Errorf("%v.FormatValue(%v, %v, %q) failed: %v", tt.curr, tt.value, tt.style, tt.locale, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.FormatValue(%v, %v, %q) = %q, want %q", tt.curr, tt.value, tt.style, tt.locale, got, tt.want)
			}
			again, _ := tt.curr.FormatValue(dec(tt.value), tt.style, tt.locale)
			if again != got {
				t.Errorf("%v.FormatValue(%v, %v, %q) is not deterministic: %q, %q", tt.curr, tt.value, tt.style, tt.locale, got, again)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, locale := range []string{"", "abcdefghij"} {
			if _, err := usd.FormatValue(dec("1"), StyleSymbol, locale); err == nil {
				t.Errorf("FormatValue(1, symbol, %q) did not fail", locale)
			}
		}
	})
}
