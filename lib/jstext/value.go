package jstext

import (
	"math"
	"strconv"
)

type Kind int

const (
	// KindMissing is the zero Kind: the explicit marker for a field that
	// was absent from a record. It is distinct from an explicit null.
	KindMissing Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a decoded relaxed-grammar value. Only the field matching Kind
// is meaningful.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  float64
	Str     string
	Array   []Value
	Members []Member
}

// Member is one object member; member order mirrors the source text.
type Member struct {
	Key   string
	Value Value
}

func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// Text renders a scalar value the way it would appear interpolated into a
// URL or a display line. Integral numbers drop the decimal point; missing,
// null and composite values render empty.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		if v.Number == math.Trunc(v.Number) && math.Abs(v.Number) < 1e15 {
			return strconv.FormatInt(int64(v.Number), 10)
		}
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	}
	return ""
}

// Record is one decoded object literal: its members in source order.
type Record struct {
	Members []Member
}

// Get returns the value stored under key, or a KindMissing value when the
// record has no such member.
func (r Record) Get(key string) Value {
	for _, m := range r.Members {
		if m.Key == key {
			return m.Value
		}
	}
	return Value{}
}
