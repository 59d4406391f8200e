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

package decode

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// UnknownPrefix is prepended to raw values that an enumeration does not know.
const UnknownPrefix = "Unknown-New-Value!: "

// A Rule maps one raw value to its decoded value. Rules are pure and must
// return NULL for NULL.
type Rule interface {
	Decode(v Value) Value
}

type identity struct{}

// Identity passes values through unchanged.
var Identity Rule = identity{}

func (identity) Decode(v Value) Value { return v }

func (identity) String() string { return "identity" }

// Ints maps integer raw values to labels.
type Ints map[int64]string

// Decode implements Rule.
func (m Ints) Decode(v Value) Value {
	return lookup(m, nil, nil, UnknownPrefix, v)
}

func (m Ints) String() string {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	var parts []string
	for _, k := range keys {
		parts = append(parts, strconv.FormatInt(k, 10))
	}
	return "enum(" + strings.Join(parts, ",") + ")"
}

// Reals maps real raw values to labels. Keys are compared exactly.
type Reals map[float64]string

// Decode implements Rule.
func (m Reals) Decode(v Value) Value {
	return lookup(nil, m, nil, UnknownPrefix, v)
}

func (m Reals) String() string {
	keys := make([]float64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	var parts []string
	for _, k := range keys {
		parts = append(parts, formatReal(k))
	}
	return "enum(" + strings.Join(parts, ",") + ")"
}

// Texts maps text raw values to labels.
type Texts map[string]string

// Decode implements Rule.
func (m Texts) Decode(v Value) Value {
	return lookup(nil, nil, m, UnknownPrefix, v)
}

func (m Texts) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, strconv.Quote(k))
	}
	sort.Strings(keys)
	return "enum(" + strings.Join(keys, ",") + ")"
}

type fallback struct {
	rule   Rule
	prefix string
}

// WithFallback replaces the "Unknown-New-Value!: " prefix of an enumeration.
// The raw value is still appended to the prefix.
func WithFallback(enum Rule, prefix string) Rule {
	switch enum.(type) {
	case Ints, Reals, Texts:
	default:
		panic(fmt.Sprintf("fallback requires an enumeration, got %T", enum))
	}
	return fallback{rule: enum, prefix: prefix}
}

func (f fallback) Decode(v Value) Value {
	switch m := f.rule.(type) {
	case Ints:
		return lookup(m, nil, nil, f.prefix, v)
	case Reals:
		return lookup(nil, m, nil, f.prefix, v)
	case Texts:
		return lookup(nil, nil, m, f.prefix, v)
	}
	return v
}

func (f fallback) String() string {
	return fmt.Sprintf("%v fallback=%q", f.rule, f.prefix)
}

// lookup matches like SQLite's CASE: integers and reals compare numerically
// but exactly, text only matches text.
func lookup(ints Ints, reals Reals, texts Texts, prefix string, v Value) Value {
	switch v.Kind {
	case Null:
		return v
	case Integer:
		if label, ok := ints[v.Int]; ok {
			return TextValue(label)
		}
		if label, ok := reals[float64(v.Int)]; ok && int64(float64(v.Int)) == v.Int {
			return TextValue(label)
		}
	case Real:
		if label, ok := reals[v.Real]; ok {
			return TextValue(label)
		}
		if v.Real == math.Trunc(v.Real) && math.Abs(v.Real) < 1<<53 {
			if label, ok := ints[int64(v.Real)]; ok {
				return TextValue(label)
			}
		}
	case Text:
		if label, ok := texts[v.Text]; ok {
			return TextValue(label)
		}
	}
	return TextValue(prefix + v.String())
}

// GreaterThan labels values by comparing them against Limit the way SQLite
// compares mixed types: text and blobs sort after every number, so any text or
// blob is greater.
type GreaterThan struct {
	Limit float64
	True  string
	False string
}

// Decode implements Rule.
func (g GreaterThan) Decode(v Value) Value {
	switch v.Kind {
	case Null:
		return v
	case Text, Blob:
		return TextValue(g.True)
	}
	if v.number() > g.Limit {
		return TextValue(g.True)
	}
	return TextValue(g.False)
}

func (g GreaterThan) String() string {
	return "threshold(>" + formatReal(g.Limit) + ")"
}
