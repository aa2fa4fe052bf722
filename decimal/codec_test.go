package decimal

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"testing"
)

func TestDecimal_MarshalJSON(t *testing.T) {
	type payload struct {
		Amount Decimal[Bankers]  `json:"amount"`
		Rate   *Decimal[Bankers] `json:"rate,omitempty"`
	}
	rate := MustParse[Bankers]("1.2")
	got, err := json.Marshal(payload{Amount: MustParse[Bankers]("-12.50"), Rate: &rate})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	want := `{"amount":"-12.50","rate":"1.2"}`
	if string(got) != want {
		t.Errorf("json.Marshal = %s, want %s", got, want)
	}
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			data string
			want string
		}{
			{`"1.50"`, "1.50"},
			{`1.5`, "1.5"},
			{`-0.001`, "-0.001"},
			{`"1e3"`, "1000"},
			{`null`, "7"},
		}
		for _, tt := range tests {
			got := MustParse[Bankers]("7")
			err := got.UnmarshalJSON([]byte(tt.data))
			if err != nil {
				t.Errorf("UnmarshalJSON(%s) failed: %v", tt.data, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %q, want %q", tt.data, s, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{`""`, `"abc"`, `true`, `"NaN"`, `{}`}
		for _, data := range tests {
			var got Decimal[Bankers]
			if err := json.Unmarshal([]byte(data), &got); err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", data)
			}
		}
	})
}

func TestDecimal_Text(t *testing.T) {
	d := MustParse[Up]("-3.140")
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	if string(text) != "-3.140" {
		t.Errorf("MarshalText() = %q, want %q", text, "-3.140")
	}
	got, err := d.AppendText([]byte("x="))
	if err != nil {
		t.Fatalf("AppendText() failed: %v", err)
	}
	if string(got) != "x=-3.140" {
		t.Errorf("AppendText() = %q, want %q", got, "x=-3.140")
	}
	var e Decimal[Up]
	if err := e.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
	}
	if e.CmpTotal(d) != 0 {
		t.Errorf("UnmarshalText(%q) = %q, want %q", text, e, d)
	}
	if err := e.UnmarshalText([]byte("1,5")); err == nil {
		t.Errorf("UnmarshalText(\"1,5\") did not fail")
	}
}

func TestDecimal_BSON(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		d := MustParse[Bankers]("-123.4500")
		typ, data, err := d.MarshalBSONValue()
		if err != nil {
			t.Fatalf("MarshalBSONValue() failed: %v", err)
		}
		if typ != 2 {
			t.Errorf("MarshalBSONValue() type = %v, want 2", typ)
		}
		var got Decimal[Bankers]
		if err := got.UnmarshalBSONValue(typ, data); err != nil {
			t.Fatalf("UnmarshalBSONValue(%v, %v) failed: %v", typ, data, err)
		}
		if got.CmpTotal(d) != 0 {
			t.Errorf("UnmarshalBSONValue(%v, %v) = %q, want %q", typ, data, got, d)
		}
	})

	t.Run("numbers", func(t *testing.T) {
		double := make([]byte, 8)
		binary.LittleEndian.PutUint64(double, math.Float64bits(2.5))
		int32v := make([]byte, 4)
		binary.LittleEndian.PutUint32(int32v, uint32(0xFFFFFFFE))
		int64v := make([]byte, 8)
		binary.LittleEndian.PutUint64(int64v, 1234567890123)

		tests := []struct {
			typ  byte
			data []byte
			want string
		}{
			{1, double, "2.5"},
			{16, int32v, "-2"},
			{18, int64v, "1234567890123"},
			{10, nil, "0"},
		}
		for _, tt := range tests {
			var got Decimal[Bankers]
			if err := got.UnmarshalBSONValue(tt.typ, tt.data); err != nil {
				t.Errorf("UnmarshalBSONValue(%v, %v) failed: %v", tt.typ, tt.data, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("UnmarshalBSONValue(%v, %v) = %q, want %q", tt.typ, tt.data, s, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			typ  byte
			data []byte
		}{
			{1, []byte{1, 2}},
			{2, []byte{5, 0, 0, 0, '1', '.', '5'}},
			{2, []byte{4, 0, 0, 0, '1', '.', '5', 1}},
			{2, bsonString("x")},
			{16, []byte{1}},
			{18, []byte{1, 2, 3}},
			{19, bytes.Repeat([]byte{0}, 16)},
		}
		for _, tt := range tests {
			var got Decimal[Bankers]
			if err := got.UnmarshalBSONValue(tt.typ, tt.data); err == nil {
				t.Errorf("UnmarshalBSONValue(%v, %v) did not fail", tt.typ, tt.data)
			}
		}
	})
}

func TestDecimal_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"1.50", "1.50"},
			{[]byte("-2"), "-2"},
			{int64(42), "42"},
			{0.25, "0.25"},
		}
		for _, tt := range tests {
			var got Decimal[Bankers]
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, s, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, true, "x", math.NaN()}
		for _, value := range tests {
			var got Decimal[Bankers]
			if err := got.Scan(value); err == nil {
				t.Errorf("Scan(%v) did not fail", value)
			}
		}
	})
}

func TestDecimal_Value(t *testing.T) {
	d := MustParse[Bankers]("0.10")
	got, err := d.Value()
	if err != nil {
		t.Fatalf("%q.Value() failed: %v", d, err)
	}
	if got != "0.10" {
		t.Errorf("%q.Value() = %v, want %q", d, got, "0.10")
	}
}
