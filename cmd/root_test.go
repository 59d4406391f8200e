// Copyright (c) 2019 Siemens AG
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

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/photosqlite"
	"github.com/forensicanalysis/photosqlite/catalog"
	"github.com/forensicanalysis/photosqlite/internal/photostest"
	"github.com/forensicanalysis/photosqlite/report"
	"github.com/forensicanalysis/photosqlite/source"
)

func execute(t *testing.T, command *cobra.Command, args ...string) string {
	out := &bytes.Buffer{}
	command.SetOut(out)
	command.SetErr(out)
	command.SetArgs(append([]string{}, args...))
	require.NoError(t, command.Execute())
	return out.String()
}

func TestDescribe(t *testing.T) {
	out := execute(t, Describe())
	assert.Contains(t, out, `"name": "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql"`)
	assert.Contains(t, out, `"name": "Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL"`)
	assert.Contains(t, out, `"requirements_min": "14"`)
	assert.NotContains(t, out, `"source"`)

	out = execute(t, Describe(), "-a", "Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL")
	assert.NotContains(t, out, "PhDaPsql")

	command := Describe()
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"-a", "Ph94.3"})
	assert.Error(t, command.Execute())
}

func TestColumns(t *testing.T) {
	primary := execute(t, Columns())
	assert.Contains(t, primary, catalog.AddedDate)
	assert.Contains(t, primary, "zGenAlbum.")

	syndication := execute(t, Columns(), "-a", "Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL")
	assert.Contains(t, syndication, catalog.AddedDate)
	assert.Contains(t, syndication, "NULL")
	assert.NotContains(t, syndication, "zGenAlbum.")
}

func TestRequireOneExtraction(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"one", []string{dir}, false},
		{"none", nil, true},
		{"two", []string{dir, dir}, true},
		{"missing", []string{filepath.Join(dir, "missing")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireOneExtraction(nil, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("requireOneExtraction() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func createPrimary(t *testing.T, root string, records ...photostest.Record) {
	path := filepath.Join(root, "private", "var", "mobile", "Media", "PhotoData", "Photos.sqlite")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	var exprs []string
	for _, col := range catalog.PhotosIOS14().Columns() {
		exprs = append(exprs, col.Expr)
	}
	photostest.Create(t, path, photostest.ParseSchema(source.Primary.From(), exprs...), records...)
}

func Test_run(t *testing.T) {
	root := t.TempDir()
	createPrimary(t, root,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 626227200.0, "ZFILENAME": "IMG_0001.HEIC"}),
	)

	config := photosqlite.DefaultConfig()
	config.IOSVersion = "14.3"
	config.Output = filepath.Join(t.TempDir(), "report")
	config.Parallel = 1

	out := &bytes.Buffer{}
	err := run(context.Background(), afero.NewOsFs(), root, config, out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "ARTIFACT")
	assert.Contains(t, out.String(), "Done")
	assert.Contains(t, out.String(), "NotFound")

	name := "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql"
	assert.FileExists(t, filepath.Join(config.Output, "Photos-Asset-Analysis", name+".html"))
	assert.FileExists(t, filepath.Join(config.Output, report.TSVDir, name+".tsv"))
	assert.NoFileExists(t, filepath.Join(config.Output, report.KMLDir, name+".kml"))

	timeline, err := report.OpenTimeline(filepath.Join(config.Output, report.TimelineDir, report.TimelineFile))
	require.NoError(t, err)
	defer timeline.Close()
	count, err := timeline.Count(name)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func Test_runWithoutOutput(t *testing.T) {
	tests := []struct {
		name       string
		iosVersion string
		state      string
	}{
		{"empty library", "14.3", "NoData"},
		{"unsupported version", "13", "Unsupported"},
		{"legacy version", "10.3.4", "Unsupported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			createPrimary(t, root)

			config := photosqlite.DefaultConfig()
			config.IOSVersion = tt.iosVersion
			config.Output = filepath.Join(t.TempDir(), "report")

			out := &bytes.Buffer{}
			require.NoError(t, run(context.Background(), afero.NewOsFs(), root, config, out))
			assert.Contains(t, out.String(), tt.state)
			assert.NoDirExists(t, config.Output)
		})
	}
}

func Test_runWithoutTimeline(t *testing.T) {
	root := t.TempDir()
	createPrimary(t, root,
		photostest.Asset(map[string]interface{}{"Z_PK": 1, "ZADDEDDATE": 626227200.0}),
	)

	config := photosqlite.DefaultConfig()
	config.IOSVersion = "14.3"
	config.Output = filepath.Join(t.TempDir(), "report")
	config.NoTimeline = true

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), afero.NewOsFs(), root, config, out))
	assert.Contains(t, out.String(), "Done")
	assert.DirExists(t, filepath.Join(config.Output, report.TSVDir))
	assert.NoDirExists(t, filepath.Join(config.Output, report.TimelineDir))
}
