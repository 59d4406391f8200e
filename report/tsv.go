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

package report

import (
	"encoding/csv"

	"github.com/pkg/errors"
)

func (w *Writer) writeTSV(b *Bundle) error {
	name := w.TSVPath(b)
	f, err := w.create(name)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", name)
	}

	tsv := csv.NewWriter(f)
	tsv.Comma = '\t'
	records := make([][]string, 0, len(b.Rows)+1)
	records = append(records, b.Headers)
	for _, row := range b.Rows {
		records = append(records, row.Strings())
	}
	if err := tsv.WriteAll(records); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not write %s", name)
	}
	return f.Close()
}
