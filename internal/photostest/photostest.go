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

// Package photostest builds small Photos.sqlite databases for tests. The
// schema is derived from the FROM clause and the select expressions of a
// query, so every referenced table and column exists and is untyped.
package photostest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"testing"

	"crawshaw.io/sqlite"
)

var (
	tableRe  = regexp.MustCompile(`(?:FROM|JOIN) (\w+) (\w+)`)
	columnRe = regexp.MustCompile(`(\w+)\.(Z_?\w+)`)
)

// Schema maps table names to their columns.
type Schema map[string][]string

// ParseSchema collects the tables of from and the columns referenced in from
// and exprs.
func ParseSchema(from string, exprs ...string) Schema {
	tables := map[string]string{}
	for _, m := range tableRe.FindAllStringSubmatch(from, -1) {
		tables[m[2]] = m[1]
	}

	columns := map[string]map[string]bool{}
	for _, table := range tables {
		columns[table] = map[string]bool{"Z_PK": true}
	}
	for _, s := range append([]string{from}, exprs...) {
		for _, m := range columnRe.FindAllStringSubmatch(s, -1) {
			if table, ok := tables[m[1]]; ok {
				columns[table][m[2]] = true
			}
		}
	}

	schema := Schema{}
	for table, cols := range columns {
		for col := range cols {
			schema[table] = append(schema[table], col)
		}
		sort.Strings(schema[table])
	}
	return schema
}

// A Record is one row of one table.
type Record struct {
	Table  string
	Values map[string]interface{}
}

// Asset is a shorthand for a ZASSET record.
func Asset(values map[string]interface{}) Record {
	return Record{Table: "ZASSET", Values: values}
}

// Create writes a database with schema and records to path.
func Create(t testing.TB, path string, schema Schema, records ...Record) {
	t.Helper()
	conn, err := sqlite.OpenConn(path, sqlite.SQLITE_OPEN_READWRITE|sqlite.SQLITE_OPEN_CREATE)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	tables := make([]string, 0, len(schema))
	for table := range schema {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		query := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(schema[table], ", "))
		if err := exec(conn, query); err != nil {
			t.Fatal(err)
		}
	}

	for _, record := range records {
		if err := insert(conn, record); err != nil {
			t.Fatal(err)
		}
	}
}

func exec(conn *sqlite.Conn, query string, args ...interface{}) error {
	stmt, err := conn.Prepare(query)
	if err != nil {
		return err
	}
	for i, arg := range args {
		param := i + 1
		switch v := arg.(type) {
		case nil:
			stmt.BindNull(param)
		case int:
			stmt.BindInt64(param, int64(v))
		case int64:
			stmt.BindInt64(param, v)
		case float64:
			stmt.BindFloat(param, v)
		case string:
			stmt.BindText(param, v)
		case []byte:
			stmt.BindBytes(param, v)
		default:
			_ = stmt.Finalize()
			return fmt.Errorf("unsupported value %T", arg)
		}
	}
	if _, err := stmt.Step(); err != nil {
		_ = stmt.Finalize()
		return err
	}
	return stmt.Finalize()
}

func insert(conn *sqlite.Conn, record Record) error {
	columns := make([]string, 0, len(record.Values))
	for column := range record.Values {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	args := make([]interface{}, len(columns))
	marks := make([]string, len(columns))
	for i, column := range columns {
		args[i] = record.Values[column]
		marks[i] = "?"
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", record.Table, strings.Join(columns, ", "), strings.Join(marks, ", "))
	return exec(conn, query, args...)
}
