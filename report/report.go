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

// Package report writes decoded asset rows as HTML report, TSV export, KML
// file and timeline entries.
package report

import (
	"log"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/forensicanalysis/photosqlite/decode"
)

// Output directories below the report directory.
const (
	TSVDir      = "_TSV Exports"
	KMLDir      = "_KML Exports"
	TimelineDir = "_Timeline"
)

// A Bundle holds the decoded rows of one artifact run. It is created once per
// run and emitted once.
type Bundle struct {
	ID          uuid.UUID
	Artifact    string
	Title       string
	Description string
	Category    string
	// Source is the path of the database the rows were read from.
	Source  string
	Headers []string
	Rows    []decode.Row
}

// NewBundle creates a bundle with a fresh id.
func NewBundle(artifact string, headers []string, rows []decode.Row) *Bundle {
	return &Bundle{
		ID:       uuid.New(),
		Artifact: artifact,
		Headers:  headers,
		Rows:     rows,
	}
}

// Column returns the index of header, -1 if the bundle has no such column.
func (b *Bundle) Column(header string) int {
	for i, h := range b.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// A Sink consumes bundles.
type Sink interface {
	Emit(b *Bundle) error
}

// Writer emits bundles into a report directory.
type Writer struct {
	Fs  afero.Fs
	Dir string
	// Timeline receives one entry per row if set.
	Timeline *Timeline
	KML      bool
	Logger   *log.Logger
}

// NewWriter creates a writer for the report directory dir.
func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{Fs: fs, Dir: dir, KML: true}
}

type output struct {
	name  string
	write func(*Bundle) error
}

// Emit writes all outputs of b. Every output is attempted, failures are
// collected.
func (w *Writer) Emit(b *Bundle) error {
	logger := w.logger()
	emitErr := &EmitError{Artifact: b.Artifact}

	outputs := []output{{"html", w.writeHTML}, {"tsv", w.writeTSV}}
	if w.Timeline != nil {
		outputs = append(outputs, output{"timeline", w.Timeline.Add})
	}
	if w.KML {
		outputs = append(outputs, output{"kml", w.writeKML})
	}

	for _, out := range outputs {
		if err := out.write(b); err != nil {
			logger.Printf("Could not write %s output for %s: %s", out.name, b.Artifact, err)
			emitErr.Errs = append(emitErr.Errs, err)
		}
	}
	if len(emitErr.Errs) > 0 {
		return emitErr
	}
	return nil
}

func (w *Writer) logger() *log.Logger {
	if w.Logger == nil {
		return log.Default()
	}
	return w.Logger
}

// HTMLPath returns the path of the html report of b.
func (w *Writer) HTMLPath(b *Bundle) string {
	category := b.Category
	if category == "" {
		category = "Photos"
	}
	return path.Join(w.Dir, category, fileName(b.Artifact)+".html")
}

// TSVPath returns the path of the tsv export of b.
func (w *Writer) TSVPath(b *Bundle) string {
	return path.Join(w.Dir, TSVDir, fileName(b.Artifact)+".tsv")
}

// KMLPath returns the path of the kml export of b.
func (w *Writer) KMLPath(b *Bundle) string {
	return path.Join(w.Dir, KMLDir, fileName(b.Artifact)+".kml")
}

func fileName(artifact string) string {
	return strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(artifact)
}

func (w *Writer) create(name string) (afero.File, error) {
	if err := w.Fs.MkdirAll(path.Dir(name), 0750); err != nil {
		return nil, err
	}
	return w.Fs.Create(name)
}

// EmitError lists the outputs of one bundle that could not be written.
type EmitError struct {
	Artifact string
	Errs     []error
}

func (e *EmitError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "could not emit " + e.Artifact + ": " + strings.Join(msgs, "; ")
}

// Unwrap returns the collected errors.
func (e *EmitError) Unwrap() []error {
	return e.Errs
}
