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

package catalog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/photosqlite/decode"
	"github.com/forensicanalysis/photosqlite/source"
)

func TestPhotosIOS14(t *testing.T) {
	cat := PhotosIOS14()
	require.NotNil(t, cat)
	assert.Same(t, cat, PhotosIOS14())
	assert.Equal(t, AddedDate, cat.Headers()[0])
	assert.Equal(t, 1121, cat.Len())

	for _, header := range []string{AddedDate, Latitude, Longitude, Filename} {
		_, ok := cat.Index(header)
		assert.True(t, ok, header)
	}

	for i, col := range cat.Columns() {
		assert.Equal(t, i, col.Position)
		assert.True(t, source.Primary.Available(col.Table()), "unknown table of %q", col.Header)
	}
}

func decodeColumn(t *testing.T, header string, raw decode.Value) decode.Value {
	cat := PhotosIOS14()
	i, ok := cat.Index(header)
	require.True(t, ok, header)
	return cat.Decode(i, raw)
}

func TestDecodeColumns(t *testing.T) {
	tests := []struct {
		name   string
		header string
		raw    decode.Value
		want   decode.Value
	}{
		{"complete", "zAsset Complete", decode.IntValue(1), decode.TextValue("1-Yes-1")},
		{"cloud is my asset", "zAsset-Cloud is My Asset", decode.IntValue(1), decode.TextValue("1-My_Asset_in_Shared_Album-1")},
		{"unknown enum value", "zAsset-Cloud is My Asset", decode.IntValue(7), decode.TextValue("Unknown-New-Value!: 7")},
		{"enum null", "zAsset-Cloud is My Asset", decode.NullValue, decode.NullValue},
		{"prefetch never", "zAsset-Cloud Last Prefetch Date", decode.IntValue(0), decode.TextValue("0-NA-0")},
		{"prefetch", "zAsset-Cloud Last Prefetch Date", decode.RealValue(626227200), decode.TextValue("2020-11-05T00:00:00Z")},
		{"added date", AddedDate, decode.RealValue(626227200.75), decode.TextValue("2020-11-05T00:00:00Z")},
		{"added date epoch", AddedDate, decode.IntValue(0), decode.TextValue("2001-01-01T00:00:00Z")},
		{"filename", Filename, decode.TextValue("IMG_0001.HEIC"), decode.TextValue("IMG_0001.HEIC")},
		{"adjustment version", "zUnmAdj-Adjustment Format Version", decode.RealValue(1.5), decode.TextValue("1.5")},
		{"adjustment version int", "zUnmAdj-Adjustment Format Version", decode.IntValue(1), decode.TextValue("1.0")},
		{"adjustment version unknown", "zUnmAdj-Adjustment Format Version", decode.RealValue(1.6), decode.TextValue("Unknown-New-Value!: 1.6")},
		{"area points", "zDetFace-Area Points", decode.BlobValue([]byte{1, 2}), decode.TextValue("Area Points Present")},
		{"area points empty", "zDetFace-Area Points", decode.IntValue(0), decode.TextValue("No Area Points")},
		{"area points null", "zDetFace-Area Points", decode.NullValue, decode.NullValue},
		{"syndication state", "zAsset-Syndication State", decode.IntValue(8), decode.TextValue("8-SWY_Asset_Syndication_Deleted-8")},
		{"syndication state unknown", "zAsset-Syndication State", decode.IntValue(5), decode.TextValue("Unknown-Syndication-State!: 5")},
		{"codec", "zExtAttr-Codec", decode.TextValue("hvc1"), decode.TextValue("hvc1-HEVC-hvc1")},
		{"codec unknown", "zExtAttr-Codec", decode.TextValue("ap4h"), decode.TextValue("Unknown-New-Value!: ap4h")},
		{"parent album title", "ParentzGenAlbum-Title/User&System Applied", decode.TextValue("Trips"), decode.TextValue("Trips")},
		{"year highlight kind", "zHighlightYear-Kind", decode.IntValue(2), decode.TextValue("2-Year-Highlight-2")},
		{"face print data", "zDetFacePrint-Data", decode.BlobValue([]byte{1}), decode.TextValue("Face Print Data Present")},
		{"media metadata", "AAAzCldMastMedData-Data", decode.IntValue(0), decode.TextValue("No AAAzCldMastMedData-Data")},
		{"area points empty blob", "zDetFace-Area Points", decode.BlobValue([]byte{}), decode.TextValue("Area Points Present")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeColumn(t, tt.header, tt.raw)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestDecodeRowArity(t *testing.T) {
	cat := PhotosIOS14()

	row := make(decode.Row, cat.Len())
	for i := range row {
		row[i] = decode.NullValue
	}
	decoded, err := cat.DecodeRow(row)
	require.NoError(t, err)
	assert.Len(t, decoded, cat.Len())

	_, err = cat.DecodeRow(row[:cat.Len()-1])
	assert.True(t, errors.Is(err, decode.ErrArity))
}
