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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{"null", NullValue},
		{"integer", IntValue(42)},
		{"real", RealValue(1.5)},
		{"text", TextValue("IMG_0001.HEIC")},
		{"blob", BlobValue([]byte{0x62, 0x70})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Identity.Decode(tt.v).Equal(tt.v))
		})
	}
}

func TestInts(t *testing.T) {
	rule := Ints{0: "A", 1: "B"}
	tests := []struct {
		name string
		v    Value
		want Value
	}{
		{"zero", IntValue(0), TextValue("A")},
		{"one", IntValue(1), TextValue("B")},
		{"unknown", IntValue(2), TextValue("Unknown-New-Value!: 2")},
		{"negative", IntValue(-1), TextValue("Unknown-New-Value!: -1")},
		{"real matches integer key", RealValue(1), TextValue("B")},
		{"real fraction", RealValue(1.5), TextValue("Unknown-New-Value!: 1.5")},
		{"text is no key", TextValue("1"), TextValue("Unknown-New-Value!: 1")},
		{"null", NullValue, NullValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.Decode(tt.v)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackEmbedsRawValue(t *testing.T) {
	rule := Ints{0: "0-No-0", 1: "1-Yes-1"}
	for _, raw := range []int64{2, 3, 7, 100, -5, 1 << 40} {
		got := rule.Decode(IntValue(raw))
		assert.Contains(t, got.Text, IntValue(raw).String())
		assert.Contains(t, got.Text, "Unknown")
	}
}

func TestReals(t *testing.T) {
	rule := Reals{1.0: "1.0", 1.1: "1.1", 1.4: "1.4"}
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"exact 1.1", RealValue(1.1), "1.1"},
		{"exact 1.4", RealValue(1.4), "1.4"},
		{"integer 1", IntValue(1), "1.0"},
		{"close but not equal", RealValue(1.1000000001), "Unknown-New-Value!: 1.1000000001"},
		{"unknown", RealValue(1.2), "Unknown-New-Value!: 1.2"},
		{"unknown integral", RealValue(2), "Unknown-New-Value!: 2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Decode(tt.v).Text)
		})
	}
	assert.True(t, rule.Decode(NullValue).IsNull())
}

func TestTexts(t *testing.T) {
	rule := Texts{"com.apple.mobileslideshow": "Photos"}
	assert.Equal(t, "Photos", rule.Decode(TextValue("com.apple.mobileslideshow")).Text)
	assert.Equal(t, "Unknown-New-Value!: com.apple.camera", rule.Decode(TextValue("com.apple.camera")).Text)
	assert.Equal(t, "Unknown-New-Value!: 3", rule.Decode(IntValue(3)).Text)
}

func TestWithFallback(t *testing.T) {
	rule := WithFallback(Ints{1: "1-Yes-1"}, "Unknown-Kind: ")
	assert.Equal(t, "1-Yes-1", rule.Decode(IntValue(1)).Text)
	assert.Equal(t, "Unknown-Kind: 9", rule.Decode(IntValue(9)).Text)
	assert.True(t, rule.Decode(NullValue).IsNull())

	assert.Panics(t, func() { WithFallback(Identity, "x") })
}

func TestGreaterThan(t *testing.T) {
	rule := GreaterThan{Limit: 0, True: "detected", False: "not detected"}
	tests := []struct {
		name string
		v    Value
		want Value
	}{
		{"positive", IntValue(12), TextValue("detected")},
		{"zero", IntValue(0), TextValue("not detected")},
		{"negative real", RealValue(-0.5), TextValue("not detected")},
		{"blob", BlobValue([]byte{1}), TextValue("detected")},
		{"empty blob", BlobValue(nil), TextValue("detected")},
		{"empty text", TextValue(""), TextValue("detected")},
		{"numeric text", TextValue("-1"), TextValue("detected")},
		{"null", NullValue, NullValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Decode(tt.v))
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NullValue, ""},
		{IntValue(-3), "-3"},
		{RealValue(1), "1.0"},
		{RealValue(1.25), "1.25"},
		{RealValue(-180), "-180.0"},
		{TextValue("a\tb"), "a\tb"},
		{BlobValue([]byte{0xde, 0xad}), "dead"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValueStringLargeReal(t *testing.T) {
	assert.Equal(t, "626227200.5", RealValue(626227200.5).String())
	assert.Equal(t, "Unknown-New-Value!: 626227200.5", Ints{}.Decode(RealValue(626227200.5)).Text)
}
