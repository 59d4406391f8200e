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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	c, err := NewCatalog(
		Col("zAsset-Added Date", "zAsset.ZADDEDDATE", MacTime{}),
		Col("zAsset Complete", "zAsset.ZCOMPLETE", Ints{1: "1-Yes-1"}),
		Col("zAsset-Filename", "zAsset.ZFILENAME", Identity),
		Col("zDetFace-Area Points", "zDetFace.ZAREAPOINTS", GreaterThan{True: "yes", False: "no"}),
	)
	require.NoError(t, err)
	return c
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr bool
	}{
		{"valid", []Column{Col("a", "t.A", Identity), Col("b", "t.B", Identity)}, false},
		{"empty", nil, false},
		{"no header", []Column{Col("", "t.A", Identity)}, true},
		{"no expression", []Column{Col("a", "", Identity)}, true},
		{"no rule", []Column{Col("a", "t.A", nil)}, true},
		{"duplicate", []Column{Col("a", "t.A", Identity), Col("a", "t.B", Identity)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.columns...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				assert.Equal(t, len(tt.columns), c.Len())
				for i, col := range c.Columns() {
					assert.Equal(t, i, col.Position)
				}
			}
		})
	}
}

func TestColumnTable(t *testing.T) {
	assert.Equal(t, "zAsset", Col("a", "zAsset.ZUUID", Identity).Table())
	assert.Equal(t, "", Col("a", "NULL", Identity).Table())
	assert.Equal(t, "", Col("a", "length(zAsset.ZUUID)", Identity).Table())
}

func TestDecodeRow(t *testing.T) {
	c := testCatalog(t)
	raw := Row{RealValue(0), IntValue(1), TextValue("IMG_0001.HEIC"), IntValue(4)}

	decoded, err := c.DecodeRow(raw)
	require.NoError(t, err)
	assert.Len(t, decoded, c.Len())
	assert.Equal(t, Row{
		TextValue("2001-01-01T00:00:00Z"),
		TextValue("1-Yes-1"),
		TextValue("IMG_0001.HEIC"),
		TextValue("yes"),
	}, decoded)

	nulls := Row{NullValue, NullValue, NullValue, NullValue}
	decoded, err = c.DecodeRow(nulls)
	require.NoError(t, err)
	assert.Equal(t, nulls, decoded)
}

func TestDecodeRowArity(t *testing.T) {
	c := testCatalog(t)
	for _, raw := range []Row{{}, {NullValue}, make(Row, c.Len()+1)} {
		_, err := c.DecodeRow(raw)
		assert.True(t, errors.Is(err, ErrArity), "got %v", err)
	}
}

func TestDecodeAllKeepsOrder(t *testing.T) {
	c := testCatalog(t)
	var rows []Row
	for i := int64(0); i < 10; i++ {
		rows = append(rows, Row{IntValue(i * 86400), IntValue(1), TextValue("f"), NullValue})
	}
	decoded, err := c.DecodeAll(rows)
	require.NoError(t, err)
	require.Len(t, decoded, len(rows))
	for i := range decoded {
		assert.Equal(t, MacAbsoluteToTime(float64(i*86400)).Format(TimeLayout), decoded[i][0].Text)
	}

	rows = append(rows, Row{NullValue})
	_, err = c.DecodeAll(rows)
	assert.True(t, errors.Is(err, ErrArity))
}

func TestCatalogIndex(t *testing.T) {
	c := testCatalog(t)
	i, ok := c.Index("zAsset Complete")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = c.Index("missing")
	assert.False(t, ok)
	assert.Equal(t, TextValue("1-Yes-1"), c.Decode(i, IntValue(1)))
}
