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
	"html/template"

	"github.com/pkg/errors"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; font-size: 13px; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 2px 6px; white-space: nowrap; }
th { background: #eee; position: sticky; top: 0; }
</style>
</head>
<body>
<h1 id="title">{{.Title}}</h1>
<p id="description">{{.Description}}</p>
<dl>
<dt>Artifact</dt><dd id="artifact">{{.Artifact}}</dd>
<dt>Source</dt><dd id="source">{{.Source}}</dd>
<dt>Rows</dt><dd id="count">{{len .Rows}}</dd>
<dt>Report ID</dt><dd id="report-id">{{.ID}}</dd>
</dl>
<table id="data">
<thead>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.String}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

func (w *Writer) writeHTML(b *Bundle) error {
	name := w.HTMLPath(b)
	f, err := w.create(name)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", name)
	}

	bundle := *b
	if bundle.Title == "" {
		bundle.Title = b.Artifact
	}
	if err := htmlTemplate.Execute(f, bundle); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not render %s", name)
	}
	return f.Close()
}
