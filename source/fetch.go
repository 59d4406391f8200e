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

package source

import (
	"net/url"
	"path/filepath"
	"strings"

	"crawshaw.io/sqlite"
	"github.com/pkg/errors"

	"github.com/forensicanalysis/photosqlite/decode"
)

// Query builds the select statement for the catalog. Columns of tables the
// source does not join are selected as NULL.
func Query(src Source, cat *decode.Catalog) string {
	columns := cat.Columns()
	exprs := make([]string, len(columns))
	for i, col := range columns {
		if src.Available(col.Table()) {
			exprs[i] = col.Expr
		} else {
			exprs[i] = "NULL"
		}
	}
	return "SELECT\n    " + strings.Join(exprs, ",\n    ") + "\n" + src.From() + "\nORDER BY " + OrderBy
}

// ReadOnlyURI returns the sqlite URI that opens path without modifying it.
func ReadOnlyURI(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String()
}

// Open opens the database strictly read-only.
func Open(path string) (*sqlite.Conn, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	conn, err := sqlite.OpenConn(ReadOnlyURI(abs), sqlite.SQLITE_OPEN_READONLY|sqlite.SQLITE_OPEN_URI|sqlite.SQLITE_OPEN_NOMUTEX)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", path)
	}
	return conn, nil
}

// Fetch runs the asset query of src and returns the raw rows in query order.
func Fetch(conn *sqlite.Conn, src Source, cat *decode.Catalog) ([]decode.Row, error) {
	rows, err := FetchQuery(conn, Query(src, cat), cat)
	if err != nil {
		return nil, errors.Wrapf(err, "%s query", src.Name)
	}
	return rows, nil
}

// FetchQuery runs query and checks that it yields one column per catalog
// column.
func FetchQuery(conn *sqlite.Conn, query string, cat *decode.Catalog) ([]decode.Row, error) {
	stmt, err := conn.Prepare(query)
	if err != nil {
		return nil, errors.Wrap(err, "could not prepare")
	}

	if stmt.ColumnCount() != cat.Len() {
		_ = stmt.Finalize()
		return nil, errors.Wrapf(decode.ErrArity, "query has %d columns, catalog has %d", stmt.ColumnCount(), cat.Len())
	}

	var rows []decode.Row
	for {
		if hasRow, err := stmt.Step(); err != nil {
			_ = stmt.Finalize()
			return nil, errors.Wrap(err, "could not step")
		} else if !hasRow {
			break
		}
		rows = append(rows, readRow(stmt))
	}
	return rows, stmt.Finalize()
}

func readRow(stmt *sqlite.Stmt) decode.Row {
	row := make(decode.Row, stmt.ColumnCount())
	for i := range row {
		switch stmt.ColumnType(i) {
		case sqlite.SQLITE_INTEGER:
			row[i] = decode.IntValue(stmt.ColumnInt64(i))
		case sqlite.SQLITE_FLOAT:
			row[i] = decode.RealValue(stmt.ColumnFloat(i))
		case sqlite.SQLITE_TEXT:
			row[i] = decode.TextValue(stmt.ColumnText(i))
		case sqlite.SQLITE_BLOB:
			buf := make([]byte, stmt.ColumnLen(i))
			stmt.ColumnBytes(i, buf)
			row[i] = decode.BlobValue(buf)
		default:
			row[i] = decode.NullValue
		}
	}
	return row
}
