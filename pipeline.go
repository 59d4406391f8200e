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

package photosqlite

import (
	"context"
	"log"
	"path/filepath"

	"crawshaw.io/sqlite"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/forensicanalysis/photosqlite/catalog"
	"github.com/forensicanalysis/photosqlite/decode"
	"github.com/forensicanalysis/photosqlite/report"
	"github.com/forensicanalysis/photosqlite/source"
)

// State is the position of a pipeline run.
type State int

// Pipeline states. Done, NoData, Unsupported, NotFound and Failed are
// terminal.
const (
	Idle State = iota
	LocateFile
	CheckVersionSupported
	OpenReadOnly
	Fetch
	DecodeAll
	Emit
	Done
	NoData
	Unsupported
	NotFound
	Failed
)

var stateNames = [...]string{
	"Idle", "LocateFile", "CheckVersionSupported", "OpenReadOnly", "Fetch",
	"DecodeAll", "Emit", "Done", "NoData", "Unsupported", "NotFound", "Failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Input describes the acquisition a pipeline runs on.
type Input struct {
	// Fs and Root locate the database. Fs defaults to the os filesystem.
	Fs   afero.Fs
	Root string
	// Path skips the file location if set.
	Path string
	// IOSVersion is the detected version of the device.
	IOSVersion string
}

// Result is the outcome of a pipeline run.
type Result struct {
	Artifact string
	State    State
	Path     string
	Rows     int
	Bundle   *report.Bundle
}

// Opener opens a database read-only.
type Opener func(path string) (*sqlite.Conn, error)

// A Pipeline decodes the asset rows of one Photos.sqlite variant and emits
// them to a sink. It holds no state across runs.
type Pipeline struct {
	Artifact Artifact
	Catalog  *decode.Catalog
	Sink     report.Sink
	Logger   *log.Logger
	Open     Opener
}

// New creates a pipeline for artifact with the iOS 14 catalog.
func New(artifact Artifact, sink report.Sink) *Pipeline {
	return &Pipeline{
		Artifact: artifact,
		Catalog:  catalog.PhotosIOS14(),
		Sink:     sink,
		Open:     source.Open,
	}
}

func (p *Pipeline) logger() *log.Logger {
	if p.Logger == nil {
		return log.Default()
	}
	return p.Logger
}

// Run executes the pipeline once. Unsupported versions, missing databases
// and empty libraries end the run without error.
func (p *Pipeline) Run(ctx context.Context, in Input) (Result, error) { // nolint:gocyclo,funlen
	logger := p.logger()
	name := p.Artifact.Name
	result := Result{Artifact: name, State: Idle}

	fail := func(err error) (Result, error) {
		result.State = Failed
		return result, errors.Wrap(err, name)
	}

	// locate
	result.State = LocateFile
	path := in.Path
	if path == "" {
		fs := in.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		matches, err := Locate(ctx, fs, in.Root, p.Artifact.Source.Patterns)
		if err != nil {
			return fail(err)
		}
		if len(matches) == 0 {
			logger.Printf("No %s found for %s", filepath.Base(p.Artifact.Source.Title), name)
			result.State = NotFound
			return result, nil
		}
		if len(matches) > 1 {
			logger.Printf("Found %d databases for %s, using %s", len(matches), name, matches[0])
		}
		path = matches[0]
	}
	result.Path = path

	// check version
	result.State = CheckVersionSupported
	version, err := ParseVersion(in.IOSVersion)
	if err != nil {
		return fail(err)
	}
	if version.Compare(legacyVersion) < 0 {
		logger.Printf("Unsupported version for %s on iOS %s", name, in.IOSVersion)
	}
	supported, err := Supported(version, p.Artifact.RequirementsMin, p.Artifact.RequirementsMax)
	if err != nil {
		return fail(err)
	}
	if !supported {
		logger.Printf("%s requires %s <= iOS version < %s, device runs %s", name,
			p.Artifact.RequirementsMin, p.Artifact.RequirementsMax, in.IOSVersion)
		result.State = Unsupported
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	// open
	result.State = OpenReadOnly
	open := p.Open
	if open == nil {
		open = source.Open
	}
	conn, err := open(path)
	if err != nil {
		return fail(err)
	}
	defer conn.Close()

	// fetch
	result.State = Fetch
	rows, err := source.Fetch(conn, p.Artifact.Source, p.Catalog)
	if err != nil {
		return fail(err)
	}
	if len(rows) == 0 {
		logger.Printf("No data available for %s", name)
		result.State = NoData
		return result, nil
	}

	// decode
	result.State = DecodeAll
	decoded, err := p.Catalog.DecodeAll(rows)
	if err != nil {
		return fail(err)
	}
	result.Rows = len(decoded)

	// emit
	result.State = Emit
	bundle := report.NewBundle(p.Artifact.OutputName, p.Catalog.Headers(), decoded)
	bundle.Title = p.Artifact.Name
	bundle.Description = p.Artifact.Description
	bundle.Category = p.Artifact.Category
	bundle.Source = path
	result.Bundle = bundle
	if p.Sink != nil {
		if err := p.Sink.Emit(bundle); err != nil {
			return fail(err)
		}
	}

	logger.Printf("%s: %d rows from %s", name, len(decoded), path)
	result.State = Done
	return result, nil
}

// RunAll runs the pipelines concurrently, at most limit at a time if limit is
// positive. A failing pipeline does not stop the others. The results are in
// pipeline order, the error is the first one that occurred.
func RunAll(ctx context.Context, pipelines []*Pipeline, in Input, limit int) ([]Result, error) {
	results := make([]Result, len(pipelines))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range pipelines {
		i, p := i, p
		g.Go(func() error {
			result, err := p.Run(ctx, in)
			results[i] = result
			return err
		})
	}
	return results, g.Wait()
}
