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

// Package catalog declares how every column of the iOS 14 asset query is
// decoded. The order of the columns is the column order of the report.
package catalog

import (
	"sync"

	"github.com/forensicanalysis/photosqlite/decode"
)

var (
	id      = decode.Identity
	mactime = decode.MacTime{}
	// Some dates are 0 when they never happened.
	zeroNA = decode.MacTime{Zero: "0-NA-0"}
	yesNo  = decode.Ints{0: "0-No-0", 1: "1-Yes-1"}
)

// A table builds the columns of one aliased table of the query. Headers are
// the alias followed by a label, so tables joined more than once under
// different aliases share their column definitions.
type table string

func (t table) col(label, column string, rule decode.Rule) decode.Column {
	return decode.Col(string(t)+"-"+label, string(t)+"."+column, rule)
}

func concat(groups ...[]decode.Column) []decode.Column {
	var all []decode.Column
	for _, group := range groups {
		all = append(all, group...)
	}
	return all
}

var (
	once   sync.Once
	photos *decode.Catalog
)

// PhotosIOS14 returns the catalog for Photos.sqlite of iOS 14. The primary and
// the syndication library share it.
func PhotosIOS14() *decode.Catalog {
	once.Do(func() {
		photos = decode.MustCatalog(concat(
			assetColumns,
			attributeColumns,
			resourceColumns,
			faceColumns,
			albumColumns,
			sharingColumns,
		)...)
	})
	return photos
}

// Column headers referenced by the report writers.
const (
	AddedDate = "zAsset-Added Date"
	Latitude  = "zAsset-Latitude"
	Longitude = "zAsset-Longitude"
	Filename  = "zAsset-Filename"
)
