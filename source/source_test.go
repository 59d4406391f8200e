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

package source_test

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/photosqlite/catalog"
	"github.com/forensicanalysis/photosqlite/decode"
	"github.com/forensicanalysis/photosqlite/internal/photostest"
	"github.com/forensicanalysis/photosqlite/source"
)

func exprs(cat *decode.Catalog) []string {
	var e []string
	for _, col := range cat.Columns() {
		e = append(e, col.Expr)
	}
	return e
}

func selectList(query string) []string {
	start := strings.Index(query, "SELECT") + len("SELECT")
	end := strings.Index(query, "\nFROM ")
	return strings.Split(query[start:end], ",")
}

func TestQueryArity(t *testing.T) {
	cat := catalog.PhotosIOS14()
	tests := []struct {
		name string
		src  source.Source
	}{
		{"primary", source.Primary},
		{"syndication", source.Syndication},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := source.Query(tt.src, cat)
			assert.Len(t, selectList(query), cat.Len())
			assert.True(t, strings.HasSuffix(query, "ORDER BY "+source.OrderBy))
		})
	}
}

func TestSyndicationSelectsNull(t *testing.T) {
	cat := catalog.PhotosIOS14()
	primary := selectList(source.Query(source.Primary, cat))
	syndication := selectList(source.Query(source.Syndication, cat))

	for i, col := range cat.Columns() {
		p := strings.TrimSpace(primary[i])
		s := strings.TrimSpace(syndication[i])
		assert.Equal(t, col.Expr, p)
		if source.Syndication.Available(col.Table()) {
			assert.Equal(t, col.Expr, s)
		} else {
			assert.Equal(t, "NULL", s, col.Header)
		}
	}

	assert.False(t, source.Syndication.Available("zGenAlbum"))
	assert.True(t, source.Syndication.Available("zAddAssetAttr"))
	assert.NotContains(t, source.Syndication.From(), "ZMOMENT")
	assert.True(t, source.Syndication.Available("SWYConverszGenAlbum"))
	assert.True(t, source.Syndication.Available("zDetFaceGroup"))
}

var aliasRe = regexp.MustCompile(`(\w+)\.\w+`)

func TestJoinOrder(t *testing.T) {
	tests := []struct {
		name string
		src  source.Source
	}{
		{"primary", source.Primary},
		{"syndication", source.Syndication},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joined := map[string]bool{"zAsset": true}
			for _, join := range tt.src.Joins {
				on := join.Clause[strings.Index(join.Clause, " ON ")+len(" ON "):]
				for _, m := range aliasRe.FindAllStringSubmatch(on, -1) {
					if m[1] != join.Alias {
						assert.True(t, joined[m[1]], "%s joins on %s before it is joined", join.Alias, m[1])
					}
				}
				assert.False(t, joined[join.Alias], "%s joined twice", join.Alias)
				joined[join.Alias] = true
			}
		})
	}
}

func TestReadOnlyURI(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute", "/data/Photos.sqlite", "file:///data/Photos.sqlite?mode=ro"},
		{"space", "/data/Media Library/Photos.sqlite", "file:///data/Media%20Library/Photos.sqlite?mode=ro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, source.ReadOnlyURI(tt.path))
		})
	}
}

func fixture(t *testing.T, src source.Source, records ...photostest.Record) string {
	path := filepath.Join(t.TempDir(), "Photos.sqlite")
	schema := photostest.ParseSchema(src.From(), exprs(catalog.PhotosIOS14())...)
	photostest.Create(t, path, schema, records...)
	return path
}

func TestFetch(t *testing.T) {
	cat := catalog.PhotosIOS14()
	path := fixture(t, source.Primary,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 626227300.0, "ZFILENAME": "IMG_0002.HEIC"}),
		photostest.Asset(map[string]interface{}{"Z_PK": 2, "ZADDEDDATE": 626227200.0, "ZFILENAME": "IMG_0001.HEIC", "ZCOMPLETE": 1}),
	)

	conn, err := source.Open(path)
	require.NoError(t, err)
	defer conn.Close()

	rows, err := source.Fetch(conn, source.Primary, cat)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	filename, _ := cat.Index(catalog.Filename)
	complete, _ := cat.Index("zAsset Complete")
	assert.Equal(t, "IMG_0001.HEIC", rows[0][filename].String())
	assert.Equal(t, "IMG_0002.HEIC", rows[1][filename].String())
	assert.Equal(t, decode.IntValue(1), rows[0][complete])
	assert.True(t, rows[1][complete].IsNull())
	for _, row := range rows {
		assert.Len(t, row, cat.Len())
	}
}

func TestFetchSyndication(t *testing.T) {
	cat := catalog.PhotosIOS14()
	path := fixture(t, source.Syndication,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 626227200.0}),
	)

	conn, err := source.Open(path)
	require.NoError(t, err)
	defer conn.Close()

	rows, err := source.Fetch(conn, source.Syndication, cat)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	album, ok := cat.Index("zGenAlbum-Title/User&System Applied")
	require.True(t, ok)
	assert.True(t, rows[0][album].IsNull())

	// the primary query needs tables the syndication library lacks
	_, err = source.Fetch(conn, source.Primary, cat)
	assert.Error(t, err)
}

func TestFetchEmpty(t *testing.T) {
	path := fixture(t, source.Primary)

	conn, err := source.Open(path)
	require.NoError(t, err)
	defer conn.Close()

	rows, err := source.Fetch(conn, source.Primary, catalog.PhotosIOS14())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFetchArity(t *testing.T) {
	path := fixture(t, source.Primary)

	conn, err := source.Open(path)
	require.NoError(t, err)
	defer conn.Close()

	// a query built for another catalog
	small := decode.MustCatalog(decode.Col("zAsset-Added Date", "zAsset.ZADDEDDATE", decode.Identity))
	rows, err := source.Fetch(conn, source.Primary, small)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = source.FetchQuery(conn, source.Query(source.Primary, catalog.PhotosIOS14()), small)
	assert.True(t, errors.Is(err, decode.ErrArity))
}

func TestOpenReadOnly(t *testing.T) {
	path := fixture(t, source.Primary,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 0}),
	)

	conn, err := source.Open(path)
	require.NoError(t, err)
	defer conn.Close()

	stmt, err := conn.Prepare("DELETE FROM ZASSET")
	if err == nil {
		_, err = stmt.Step()
		_ = stmt.Finalize()
	}
	assert.Error(t, err)

	rows, err := source.Fetch(conn, source.Primary, catalog.PhotosIOS14())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestOpenMissing(t *testing.T) {
	_, err := source.Open(filepath.Join(t.TempDir(), "missing.sqlite"))
	assert.Error(t, err)
}
