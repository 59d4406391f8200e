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
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"crawshaw.io/sqlite"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/photosqlite/catalog"
	"github.com/forensicanalysis/photosqlite/internal/photostest"
	"github.com/forensicanalysis/photosqlite/report"
	"github.com/forensicanalysis/photosqlite/source"
)

const (
	primaryPath     = "private/var/mobile/Media/PhotoData/Photos.sqlite"
	syndicationPath = "private/var/mobile/Library/Photos/Libraries/Syndication.photoslibrary/database/Photos.sqlite"
)

type memorySink struct {
	mu      sync.Mutex
	bundles []*report.Bundle
}

func (s *memorySink) Emit(b *report.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles = append(s.bundles, b)
	return nil
}

func createLibrary(t *testing.T, root, name string, src source.Source, records ...photostest.Record) string {
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))

	var exprs []string
	for _, col := range catalog.PhotosIOS14().Columns() {
		exprs = append(exprs, col.Expr)
	}
	photostest.Create(t, path, photostest.ParseSchema(src.From(), exprs...), records...)
	return path
}

func testPipeline(t *testing.T, artifact string, sink report.Sink) (*Pipeline, *bytes.Buffer) {
	a, err := Lookup(artifact)
	require.NoError(t, err)
	p := New(a, sink)
	buf := &bytes.Buffer{}
	p.Logger = log.New(buf, "", 0)
	return p, buf
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	createLibrary(t, root, primaryPath, source.Primary,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 626227300.0, "ZCOMPLETE": 1, "ZCLOUDISMYASSET": 7}),
		photostest.Asset(map[string]interface{}{"Z_PK": 2, "ZADDEDDATE": 626227200.0, "ZCLOUDLASTPREFETCHDATE": 0}),
	)

	fs := afero.NewMemMapFs()
	w := report.NewWriter(fs, "report")
	p, _ := testPipeline(t, "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql", w)

	result, err := p.Run(context.Background(), Input{Fs: afero.NewOsFs(), Root: root, IOSVersion: "14.3"})
	require.NoError(t, err)
	assert.Equal(t, Done, result.State)
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, filepath.Join(root, filepath.FromSlash(primaryPath)), result.Path)

	cat := catalog.PhotosIOS14()
	rows := result.Bundle.Rows
	complete, _ := cat.Index("zAsset Complete")
	mine, _ := cat.Index("zAsset-Cloud is My Asset")
	prefetch, _ := cat.Index("zAsset-Cloud Last Prefetch Date")
	assert.Equal(t, "2020-11-05T00:00:00Z", rows[0][0].String())
	assert.Equal(t, "2020-11-05T00:01:40Z", rows[1][0].String())
	assert.Equal(t, "0-NA-0", rows[0][prefetch].String())
	assert.Equal(t, "1-Yes-1", rows[1][complete].String())
	assert.Equal(t, "Unknown-New-Value!: 7", rows[1][mine].String())

	for _, name := range []string{w.HTMLPath(result.Bundle), w.TSVPath(result.Bundle)} {
		exists, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.True(t, exists, name)
	}
}

func TestRunNoData(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
		path     string
		src      source.Source
	}{
		{"primary", "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql", primaryPath, source.Primary},
		{"syndication", "Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL", syndicationPath, source.Syndication},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			createLibrary(t, root, tt.path, tt.src)

			fs := afero.NewMemMapFs()
			p, buf := testPipeline(t, tt.artifact, report.NewWriter(fs, "report"))

			result, err := p.Run(context.Background(), Input{Root: root, IOSVersion: "14"})
			require.NoError(t, err)
			assert.Equal(t, NoData, result.State)
			assert.Equal(t, "No data available for "+tt.artifact+"\n", buf.String())

			files := 0
			require.NoError(t, afero.Walk(fs, "/", func(_ string, info os.FileInfo, err error) error {
				if err == nil && !info.IsDir() {
					files++
				}
				return nil
			}))
			assert.Equal(t, 0, files)
		})
	}
}

func TestRunVersionGate(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		wantState State
		wantOpen  bool
		wantLines int
	}{
		{"ios 13", "13", Unsupported, false, 1},
		{"ios 13.7", "13.7", Unsupported, false, 1},
		{"ios 15", "15.0", Unsupported, false, 1},
		{"legacy ios 10", "10.3.4", Unsupported, false, 2},
		{"ios 14", "14", Failed, true, 0},
		{"ios 14.8.1", "14.8.1", Failed, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/extraction/"+primaryPath, []byte("SQLite format 3"), 0644))

			sink := &memorySink{}
			p, buf := testPipeline(t, "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql", sink)
			opened := false
			p.Open = func(path string) (*sqlite.Conn, error) {
				opened = true
				return nil, errors.New("not a database")
			}

			result, err := p.Run(context.Background(), Input{Fs: fs, Root: "/extraction", IOSVersion: tt.version})
			assert.Equal(t, tt.wantState, result.State)
			assert.Equal(t, tt.wantOpen, opened)
			assert.Equal(t, tt.wantOpen, err != nil)
			assert.Empty(t, sink.bundles)
			lines := strings.Count(buf.String(), "\n")
			assert.Equal(t, tt.wantLines, lines, buf.String())
		})
	}
}

func TestRunInvalidVersion(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/extraction/"+primaryPath, nil, 0644))
	p, _ := testPipeline(t, "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql", &memorySink{})

	result, err := p.Run(context.Background(), Input{Fs: fs, Root: "/extraction", IOSVersion: "fourteen"})
	assert.Equal(t, Failed, result.State)
	assert.True(t, errors.Is(err, ErrInvalidVersion))
}

func TestRunNotFound(t *testing.T) {
	sink := &memorySink{}
	p, buf := testPipeline(t, "Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL", sink)

	result, err := p.Run(context.Background(), Input{Fs: afero.NewMemMapFs(), Root: "/extraction", IOSVersion: "14.2"})
	require.NoError(t, err)
	assert.Equal(t, NotFound, result.State)
	assert.Contains(t, buf.String(), "No Photos.sqlite found")
	assert.Empty(t, sink.bundles)
}

func TestRunOpenFailure(t *testing.T) {
	sink := &memorySink{}
	p, _ := testPipeline(t, "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql", sink)

	path := filepath.Join(t.TempDir(), "missing", "Photos.sqlite")
	result, err := p.Run(context.Background(), Input{Path: path, IOSVersion: "14.2"})
	assert.Error(t, err)
	assert.Equal(t, Failed, result.State)
	assert.Empty(t, sink.bundles)
}

func TestRunCanceled(t *testing.T) {
	root := t.TempDir()
	createLibrary(t, root, primaryPath, source.Primary)
	p, _ := testPipeline(t, "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql", &memorySink{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := p.Run(ctx, Input{Root: root, IOSVersion: "14.2"})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, Failed, result.State)
}

func TestRunAll(t *testing.T) {
	root := t.TempDir()
	createLibrary(t, root, primaryPath, source.Primary,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 1.0}),
	)
	createLibrary(t, root, syndicationPath, source.Syndication,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 2.0}),
		photostest.Asset(map[string]interface{}{"Z_PK": 2, "ZADDEDDATE": 3.0}),
	)

	sink := &memorySink{}
	var pipelines []*Pipeline
	for _, a := range Artifacts() {
		p, _ := testPipeline(t, a.Name, sink)
		pipelines = append(pipelines, p)
	}

	for _, limit := range []int{0, 1} {
		sink.bundles = nil
		results, err := RunAll(context.Background(), pipelines, Input{Root: root, IOSVersion: "14.4"}, limit)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, Done, results[0].State)
		assert.Equal(t, 1, results[0].Rows)
		assert.Equal(t, Done, results[1].State)
		assert.Equal(t, 2, results[1].Rows)
		assert.Len(t, sink.bundles, 2)
	}
}

func TestRunAllKeepsGoing(t *testing.T) {
	root := t.TempDir()
	createLibrary(t, root, syndicationPath, source.Syndication,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 2.0}),
	)
	// a primary library without the joined tables cannot be queried
	createLibrary(t, root, primaryPath, source.Source{})

	sink := &memorySink{}
	primary, _ := testPipeline(t, "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql", sink)
	syndication, _ := testPipeline(t, "Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL", sink)

	results, err := RunAll(context.Background(), []*Pipeline{primary, syndication}, Input{Root: root, IOSVersion: "14"}, 0)
	assert.Error(t, err)
	assert.Equal(t, Failed, results[0].State)
	assert.Equal(t, Done, results[1].State)
	assert.Len(t, sink.bundles, 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "CheckVersionSupported", CheckVersionSupported.String())
	assert.Equal(t, "Failed", Failed.String())
	assert.Equal(t, "Unknown", State(42).String())
}
