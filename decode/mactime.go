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
	"math"
	"time"
)

// MacEpochOffset is the number of seconds between the UNIX epoch and
// 2001-01-01T00:00:00Z, the Core Data reference date.
const MacEpochOffset = 978307200

// TimeLayout is the layout of decoded timestamps.
const TimeLayout = time.RFC3339

// MacAbsoluteToTime converts seconds since 2001-01-01 to a UTC time. Fractions
// are truncated towards negative infinity like SQLite's DATETIME does.
func MacAbsoluteToTime(seconds float64) time.Time {
	return time.Unix(int64(math.Floor(seconds))+MacEpochOffset, 0).UTC()
}

// MacTime decodes Mac absolute time columns.
type MacTime struct {
	// Zero, if set, is returned for a raw value of 0 instead of the reference
	// date.
	Zero string
}

// Decode implements Rule.
func (m MacTime) Decode(v Value) Value {
	switch v.Kind {
	case Integer, Real:
	default:
		// text and blobs are no timestamps, keep them visible
		return v
	}
	if m.Zero != "" && v.number() == 0 {
		return TextValue(m.Zero)
	}
	return TextValue(MacAbsoluteToTime(v.number()).Format(TimeLayout))
}

func (m MacTime) String() string {
	if m.Zero != "" {
		return "mactime(zero=" + m.Zero + ")"
	}
	return "mactime"
}
