package decimal

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
)

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal[P]) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse[P](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", d, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (d Decimal[P]) AppendText(text []byte) ([]byte, error) {
	return append(text, d.String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal[P]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted strings and bare JSON numbers are accepted; null is a no-op.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal[P]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	var err error
	*d, err = Parse[P](string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", d, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The decimal is encoded as a JSON string to avoid precision loss in
// decoders that use binary floating-point numbers.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal[P]) MarshalJSON() ([]byte, error) {
	s := d.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// BSON strings, doubles, 32-bit and 64-bit integers are supported.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (d *Decimal[P]) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 1:
		if len(data) < 8 {
			err = fmt.Errorf("%w: invalid data length %v", ErrInvalidDecimal, len(data))
			break
		}
		*d, err = NewFromFloat64[P](math.Float64frombits(binary.LittleEndian.Uint64(data)))
	case 2:
		var s string
		s, err = parseBSONString(data)
		if err == nil {
			*d, err = Parse[P](s)
		}
	case 10:
		// null, do nothing
	case 16:
		if len(data) < 4 {
			err = fmt.Errorf("%w: invalid data length %v", ErrInvalidDecimal, len(data))
			break
		}
		*d = NewFromInt64[P](int64(int32(binary.LittleEndian.Uint32(data)))) //nolint:gosec
	case 18:
		if len(data) < 8 {
			err = fmt.Errorf("%w: invalid data length %v", ErrInvalidDecimal, len(data))
			break
		}
		*d = NewFromInt64[P](int64(binary.LittleEndian.Uint64(data))) //nolint:gosec
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, d, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// The decimal is always encoded as a BSON string.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (d Decimal[P]) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, bsonString(d.String()), nil
}

// parseBSONString parses a little-endian length-prefixed, null-terminated BSON string.
func parseBSONString(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("%w: invalid data length %v", ErrInvalidDecimal, len(data))
	}
	l := int(int32(binary.LittleEndian.Uint32(data))) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return "", fmt.Errorf("%w: invalid string length %v", ErrInvalidDecimal, l)
	}
	if data[l+4-1] != 0 {
		return "", fmt.Errorf("%w: invalid null terminator %v", ErrInvalidDecimal, data[l+4-1])
	}
	return string(data[4 : l+4-1]), nil
}

// bsonString returns s encoded as a BSON string.
func bsonString(s string) []byte {
	l := len(s) + 1
	data := make([]byte, 4+l)
	binary.LittleEndian.PutUint32(data, uint32(l)) //nolint:gosec
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal[P]) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse[P](value)
	case []byte:
		*d, err = Parse[P](string(value))
	case int64:
		*d = NewFromInt64[P](value)
	case float64:
		*d, err = NewFromFloat64[P](value)
	case nil:
		err = fmt.Errorf("%T does not support null values", d)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, d, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The decimal is stored as a string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal[P]) Value() (driver.Value, error) {
	return d.String(), nil
}
