package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexKind records how a FlexValue was represented on the wire.
type FlexKind int

const (
	FlexAbsent FlexKind = iota
	FlexString
	FlexNumber
)

// FlexValue holds a JSON scalar that the Catalog API sends either as a string
// or as a number, keeping the original representation.
type FlexValue struct {
	kind FlexKind
	str  string
	num  float64
}

// StringValue returns a FlexValue holding s as a string.
func StringValue(s string) FlexValue {
	return FlexValue{kind: FlexString, str: s}
}

// NumberValue returns a FlexValue holding n as a number.
func NumberValue(n float64) FlexValue {
	return FlexValue{kind: FlexNumber, num: n}
}

// Kind reports the representation of the value.
func (v FlexValue) Kind() FlexKind { return v.kind }

// IsZero reports whether the value was absent or null.
func (v FlexValue) IsZero() bool { return v.kind == FlexAbsent }

// IsString reports whether the value is the string s.
func (v FlexValue) IsString(s string) bool {
	return v.kind == FlexString && v.str == s
}

// IsNumber reports whether the value is the number n.
func (v FlexValue) IsNumber(n float64) bool {
	return v.kind == FlexNumber && v.num == n
}

// Float returns the numeric value, parsing strings when needed.
func (v FlexValue) Float() (float64, bool) {
	switch v.kind {
	case FlexNumber:
		return v.num, true
	case FlexString:
		f, err := strconv.ParseFloat(v.str, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// String renders the value for display. Absent values render empty.
func (v FlexValue) String() string {
	switch v.kind {
	case FlexString:
		return v.str
	case FlexNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// UnmarshalJSON accepts strings, numbers and null.
func (v *FlexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = FlexValue{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*v = NumberValue(n)
		return nil
	}
}

// MarshalJSON writes the value back in its original representation.
func (v FlexValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case FlexString:
		return json.Marshal(v.str)
	case FlexNumber:
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// MarshalYAML mirrors MarshalJSON for yaml.v3.
func (v FlexValue) MarshalYAML() (any, error) {
	switch v.kind {
	case FlexString:
		return v.str, nil
	case FlexNumber:
		return v.num, nil
	default:
		return nil, nil
	}
}
