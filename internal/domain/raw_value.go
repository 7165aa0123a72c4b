package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type RawValueKind int

const (
	KindMissing RawValueKind = iota
	KindNumber
	KindText
	KindBoolean
)

func (k RawValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	default:
		return "missing"
	}
}

// RawValue is a single cell as it arrived from an untyped table. Exactly one
// of Number, Text or Bool is meaningful, selected by Kind. Source holds the
// cell text for csv cells that were typed as a number or boolean.
type RawValue struct {
	Kind   RawValueKind
	Number float64
	Text   string
	Bool   bool
	Source string
}

func Missing() RawValue {
	return RawValue{Kind: KindMissing}
}

func NumberValue(f float64) RawValue {
	if math.IsNaN(f) {
		return Missing()
	}
	return RawValue{Kind: KindNumber, Number: f}
}

func TextValue(s string) RawValue {
	return RawValue{Kind: KindText, Text: s}
}

func BoolValue(b bool) RawValue {
	return RawValue{Kind: KindBoolean, Bool: b}
}

// tokens read as "no value" when they show up in a csv cell
var missingTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"#N/A": true,
	"#NA":  true,
	"NAN":  true,
	"-NAN": true,
	"NULL": true,
	"NONE": true,
	"<NA>": true,
}

// ParseCell infers the variant of a csv cell
func ParseCell(s string) RawValue {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)
	if missingTokens[upper] {
		return Missing()
	}
	var v RawValue
	switch {
	case upper == "TRUE":
		v = BoolValue(true)
	case upper == "FALSE":
		v = BoolValue(false)
	default:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsInf(f, 0) {
			return TextValue(s)
		}
		v = NumberValue(f)
	}
	v.Source = s
	return v
}

// FromInterface maps a decoded json value onto a RawValue. Anything that is
// not a scalar ends up as text.
func FromInterface(v interface{}) RawValue {
	switch t := v.(type) {
	case nil:
		return Missing()
	case bool:
		return BoolValue(t)
	case float64:
		return NumberValue(t)
	case float32:
		return NumberValue(float64(t))
	case int:
		return NumberValue(float64(t))
	case int64:
		return NumberValue(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return TextValue(t.String())
		}
		return NumberValue(f)
	case string:
		return TextValue(t)
	case RawValue:
		return t
	default:
		return TextValue(fmt.Sprintf("%v", t))
	}
}

func (v RawValue) IsMissing() bool {
	return v.Kind == KindMissing
}

// String renders the value the way it would appear in a table cell
func (v RawValue) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindText:
		return v.Text
	case KindBoolean:
		if v.Bool {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// Literal is the cell as it was written. Identifiers such as tickers use it
// so "0700" does not come back as "700".
func (v RawValue) Literal() string {
	if v.Source != "" && v.Kind != KindMissing && v.Kind != KindText {
		return strings.TrimSpace(v.Source)
	}
	return v.String()
}

func (v RawValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		if math.IsInf(v.Number, 0) || math.IsNaN(v.Number) {
			return []byte("null"), nil
		}
		return json.Marshal(v.Number)
	case KindText:
		return json.Marshal(v.Text)
	case KindBoolean:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

func (v *RawValue) UnmarshalJSON(b []byte) error {
	var i interface{}
	if err := json.Unmarshal(b, &i); err != nil {
		return fmt.Errorf("failed to decode cell: %w", err)
	}
	*v = FromInterface(i)
	return nil
}
