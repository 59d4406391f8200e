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
	"strings"

	"github.com/pkg/errors"
)

// ErrArity is returned when a row does not have one value per catalog column.
// The query and the catalog have drifted apart, which is not recoverable.
var ErrArity = errors.New("row arity does not match catalog")

// Column describes one position of a row.
type Column struct {
	Position int
	Header   string
	// Expr is the SQL select expression, e.g. "zAsset.ZCOMPLETE".
	Expr string
	Rule Rule
}

// Table returns the table alias of Expr, "" for expressions without one.
func (c Column) Table() string {
	i := strings.Index(c.Expr, ".")
	if i <= 0 || strings.ContainsAny(c.Expr[:i], " (") {
		return ""
	}
	return c.Expr[:i]
}

// Col is a shorthand to declare catalog columns.
func Col(header, expr string, rule Rule) Column {
	return Column{Header: header, Expr: expr, Rule: rule}
}

// A Catalog is the ordered, immutable list of columns of a row.
type Catalog struct {
	columns []Column
	headers []string
	index   map[string]int
}

// NewCatalog numbers the columns in the given order and checks them.
func NewCatalog(columns ...Column) (*Catalog, error) {
	c := &Catalog{
		columns: make([]Column, len(columns)),
		headers: make([]string, len(columns)),
		index:   map[string]int{},
	}
	for i, col := range columns {
		if col.Header == "" {
			return nil, errors.Errorf("column %d has no header", i)
		}
		if col.Expr == "" {
			return nil, errors.Errorf("column %q has no expression", col.Header)
		}
		if col.Rule == nil {
			return nil, errors.Errorf("column %q has no rule", col.Header)
		}
		if _, ok := c.index[col.Header]; ok {
			return nil, errors.Errorf("duplicate column %q", col.Header)
		}
		col.Position = i
		c.columns[i] = col
		c.headers[i] = col.Header
		c.index[col.Header] = i
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. It is meant for static
// catalogs.
func MustCatalog(columns ...Column) *Catalog {
	c, err := NewCatalog(columns...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of columns.
func (c *Catalog) Len() int { return len(c.columns) }

// Columns returns a copy of the columns.
func (c *Catalog) Columns() []Column {
	return append([]Column(nil), c.columns...)
}

// Headers returns the header labels in column order.
func (c *Catalog) Headers() []string {
	return append([]string(nil), c.headers...)
}

// Index returns the position of the column with the given header.
func (c *Catalog) Index(header string) (int, bool) {
	i, ok := c.index[header]
	return i, ok
}

// Decode applies the rule of column i to raw.
func (c *Catalog) Decode(i int, raw Value) Value {
	return c.columns[i].Rule.Decode(raw)
}

// DecodeRow decodes every value of raw with the rule at the same position.
func (c *Catalog) DecodeRow(raw Row) (Row, error) {
	if len(raw) != len(c.columns) {
		return nil, errors.Wrapf(ErrArity, "row has %d values, catalog has %d columns", len(raw), len(c.columns))
	}
	decoded := make(Row, len(raw))
	for i, v := range raw {
		decoded[i] = c.columns[i].Rule.Decode(v)
	}
	return decoded, nil
}

// DecodeAll decodes rows in order and stops at the first error.
func (c *Catalog) DecodeAll(rows []Row) ([]Row, error) {
	decoded := make([]Row, 0, len(rows))
	for n, raw := range rows {
		row, err := c.DecodeRow(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", n)
		}
		decoded = append(decoded, row)
	}
	return decoded, nil
}
