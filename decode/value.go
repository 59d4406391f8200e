// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

// Package decode turns raw Photos.sqlite rows into human readable rows. A
// Catalog holds one Column per row position; every Column carries the Rule that
// maps the raw SQLite value at that position to its report label.
package decode

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Kind is the SQLite storage class of a Value.
type Kind int

// The SQLite storage classes.
const (
	Null Kind = iota
	Integer
	Real
	Text
	Blob
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "INTEGER"
	case Real:
		return "REAL"
	case Text:
		return "TEXT"
	case Blob:
		return "BLOB"
	default:
		return "NULL"
	}
}

// Value is a single cell of a Row.
type Value struct {
	Kind Kind
	Int  int64
	Real float64
	Text string
	Blob []byte
}

// Row is an ordered, fixed-arity sequence of values. Raw and decoded rows share
// this type.
type Row []Value

// NullValue is the SQL NULL.
var NullValue = Value{}

// IntValue wraps an INTEGER.
func IntValue(i int64) Value { return Value{Kind: Integer, Int: i} }

// RealValue wraps a REAL.
func RealValue(f float64) Value { return Value{Kind: Real, Real: f} }

// TextValue wraps a TEXT.
func TextValue(s string) Value { return Value{Kind: Text, Text: s} }

// BlobValue wraps a BLOB.
func BlobValue(b []byte) Value { return Value{Kind: Blob, Blob: b} }

// IsNull reports whether v is the SQL NULL.
func (v Value) IsNull() bool { return v.Kind == Null }

// Equal compares kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Integer:
		return v.Int == o.Int
	case Real:
		return v.Real == o.Real
	case Text:
		return v.Text == o.Text
	case Blob:
		return string(v.Blob) == string(o.Blob)
	}
	return true
}

// String renders the value for reports. NULL renders empty, reals always carry
// a decimal point and blobs are hex encoded.
func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return strconv.FormatInt(v.Int, 10)
	case Real:
		return formatReal(v.Real)
	case Text:
		return v.Text
	case Blob:
		return hex.EncodeToString(v.Blob)
	default:
		return ""
	}
}

// number converts numeric values to float64, others yield 0.
func (v Value) number() float64 {
	switch v.Kind {
	case Integer:
		return float64(v.Int)
	case Real:
		return v.Real
	}
	return 0
}

func formatReal(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	format := byte('f')
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Strings renders every value of the row.
func (r Row) Strings() []string {
	s := make([]string, len(r))
	for i, v := range r {
		s[i] = v.String()
	}
	return s
}
