package table

import (
	"strconv"
	"strings"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	// KindAbsent marks a cell whose column did not exist in the row's
	// origin file. It is distinct from an empty string.
	KindAbsent Kind = iota
	KindString
	KindInt
	KindFloat
)

// Value is a tagged scalar cell. Each cell keeps its own kind, so a column
// merged from files with differing types stays mixed per cell rather than
// being coerced column-wide.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
}

// Absent returns the marker for a cell with no origin column.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// FromString returns a string-kinded Value.
func FromString(s string) Value {
	return Value{kind: KindString, s: s}
}

// FromInt returns an int-kinded Value.
func FromInt(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FromFloat returns a float-kinded Value.
func FromFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Infer parses raw field text into a Value, trying int first, then float,
// falling back to string. Surrounding whitespace is ignored for numeric
// detection but preserved in string values.
func Infer(text string) Value {
	trimmed := strings.TrimSpace(text)
	if trimmed != "" {
		if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return FromInt(i)
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return FromFloat(f)
		}
	}
	return FromString(text)
}

// Kind returns the Value's scalar kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether the cell is the absent marker.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Text returns the cell's textual form. Absent cells render as the empty
// string; floats use the shortest decimal form that round-trips.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return ""
	}
}

// Num returns the cell as a float64. The second result is false for absent
// and string cells.
func (v Value) Num() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Compare orders two values: numerically when both are numeric, lexically
// on their textual forms otherwise. Absent sorts as the empty string.
func Compare(a, b Value) int {
	an, aok := a.Num()
	bn, bok := b.Num()
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.Text(), b.Text())
}
