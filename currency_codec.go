package money

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
)

// decode resolves a persisted code through [ParseCurr].
func (c *Currency) decode(code, from string) error {
	d, err := ParseCurr(code)
	if err != nil {
		return fmt.Errorf("decoding currency from %s: %w", from, err)
	}
	*c = d
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The currency is encoded as a JSON string holding its code, for example "EUR".
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Code())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON null leaves the currency unchanged.
func (c *Currency) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("decoding currency from JSON: %w", err)
	}
	return c.decode(code, "JSON")
}

// AppendText implements the [encoding.TextAppender] interface.
func (c Currency) AppendText(b []byte) ([]byte, error) {
	return append(b, c.Code()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Currency) MarshalText() ([]byte, error) {
	return c.AppendText(nil)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *Currency) UnmarshalText(text []byte) error {
	return c.decode(string(text), "text")
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The binary form is the text form.
func (c Currency) MarshalBinary() ([]byte, error) {
	return c.AppendText(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
func (c *Currency) UnmarshalBinary(data []byte) error {
	return c.decode(string(data), "binary")
}

// BSON element types, see https://bsonspec.org/spec.html.
const (
	bsonTypeString byte = 0x02
	bsonTypeNull   byte = 0x0A
)

// MarshalBSONValue implements the ValueMarshaler interface of the MongoDB driver.
// The currency is encoded as a BSON string.
func (c Currency) MarshalBSONValue() (typ byte, data []byte, err error) {
	return bsonTypeString, appendBSONString(nil, c.Code()), nil
}

// UnmarshalBSONValue implements the ValueUnmarshaler interface of the MongoDB driver.
// A BSON null leaves the currency unchanged.
func (c *Currency) UnmarshalBSONValue(typ byte, data []byte) error {
	switch typ {
	case bsonTypeNull:
		return nil
	case bsonTypeString:
		code, err := readBSONString(data)
		if err != nil {
			return fmt.Errorf("decoding currency from BSON: %w", err)
		}
		return c.decode(code, "BSON")
	default:
		return fmt.Errorf("decoding currency from BSON: %w: element type %#02x", errInvalidCurrency, typ)
	}
}

// readBSONString reads a length-prefixed, null-terminated string.
func readBSONString(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: %d bytes is too short for a string", errInvalidCurrency, len(data))
	}
	n := int64(binary.LittleEndian.Uint32(data))
	body := data[4:]
	if n < 1 || n > int64(len(body)) {
		return "", fmt.Errorf("%w: string length %d out of range", errInvalidCurrency, n)
	}
	if body[n-1] != 0 {
		return "", fmt.Errorf("%w: string is not null-terminated", errInvalidCurrency)
	}
	return string(body[:n-1]), nil
}

func appendBSONString(b []byte, s string) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s)+1)) //nolint:gosec
	b = append(b, s...)
	return append(b, 0)
}

// Scan implements the [sql.Scanner] interface.
// Columns must hold a code; use [NullCurrency] for nullable columns.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return c.decode(v, "SQL")
	case []byte:
		return c.decode(string(v), "SQL")
	case nil:
		return fmt.Errorf("decoding currency from SQL: %w: NULL, use %T", errInvalidCurrency, NullCurrency{})
	default:
		return fmt.Errorf("decoding currency from SQL: %w: unsupported type %T", errInvalidCurrency, value)
	}
}

// Value implements the [driver.Valuer] interface.
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The verbs %c, %s and %v print the code, %q prints it quoted.
// Width and the '-' flag pad the result.
func (c Currency) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'c', 'C', 's', 'S', 'v', 'V':
		text = c.Code()
	case 'q', 'Q':
		text = strconv.Quote(c.Code())
	default:
		fmt.Fprintf(state, "%%!%c(money.Currency=%s)", verb, c.Code())
		return
	}
	width, _ := state.Width()
	if state.Flag('-') {
		width = -width
	}
	fmt.Fprintf(state, "%*s", width, text)
}

// NullCurrency is a currency that may be null, for nullable SQL columns and
// JSON fields. The zero value is null.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
func (n *NullCurrency) Scan(value any) error {
	*n = NullCurrency{}
	if value == nil {
		return nil
	}
	if err := n.Currency.Scan(value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// MarshalJSON implements the [json.Marshaler] interface.
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (n *NullCurrency) UnmarshalJSON(data []byte) error {
	*n = NullCurrency{}
	if string(data) == "null" {
		return nil
	}
	if err := n.Currency.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
