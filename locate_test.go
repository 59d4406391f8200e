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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/photosqlite/source"
)

func TestLocate(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{
		"/extraction/b/private/var/mobile/Media/PhotoData/Photos.sqlite",
		"/extraction/a/private/var/mobile/Media/PhotoData/Photos.sqlite",
		"/extraction/a/private/var/mobile/Media/PhotoData/Photos.sqlite-wal",
		"/extraction/a/private/var/mobile/Library/Photos/Libraries/Syndication.photoslibrary/database/Photos.sqlite",
		"/elsewhere/PhotoData/Photos.sqlite",
	} {
		require.NoError(t, afero.WriteFile(fs, name, nil, 0644))
	}
	require.NoError(t, fs.MkdirAll("/extraction/c/PhotoData/Photos.sqlite", 0755))

	tests := []struct {
		name     string
		root     string
		patterns []string
		want     []string
	}{
		{"primary", "/extraction", source.Primary.Patterns, []string{
			"/extraction/a/private/var/mobile/Media/PhotoData/Photos.sqlite",
			"/extraction/b/private/var/mobile/Media/PhotoData/Photos.sqlite",
		}},
		{"syndication", "/extraction", source.Syndication.Patterns, []string{
			"/extraction/a/private/var/mobile/Library/Photos/Libraries/Syndication.photoslibrary/database/Photos.sqlite",
		}},
		{"at root", "/elsewhere", source.Primary.Patterns, []string{"/elsewhere/PhotoData/Photos.sqlite"}},
		{"missing root", "/missing", source.Primary.Patterns, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(context.Background(), fs, tt.root, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateBadPattern(t *testing.T) {
	_, err := Locate(context.Background(), afero.NewMemMapFs(), "/", []string{"[a-"})
	assert.Error(t, err)
}
