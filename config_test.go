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
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "photosqlite.yml", []byte(`
output: /cases/42/report
ios_version: "14.3"
artifacts:
  - Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL
parallel: 1
no_kml: true
`), 0644))

	config, err := LoadConfig(fs, "photosqlite.yml")
	require.NoError(t, err)
	assert.Equal(t, Config{
		Output:     "/cases/42/report",
		IOSVersion: "14.3",
		Artifacts:  []string{"Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL"},
		Parallel:   1,
		NoKML:      true,
	}, config)

	_, err = LoadConfig(fs, "missing.yml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "broken.yml", []byte("output: ["), 0644))
	_, err = LoadConfig(fs, "broken.yml")
	assert.Error(t, err)
}

func TestConfigComplete(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "device.json", []byte(`{"ProductVersion": "14.1"}`), 0644))

	tests := []struct {
		name    string
		config  Config
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			"defaults",
			Config{IOSVersion: "14.2"},
			nil,
			Config{Output: "photosqlite-report", IOSVersion: "14.2", Artifacts: DefaultConfig().Artifacts},
			false,
		},
		{
			"environment",
			Config{},
			map[string]string{EnvIOSVersion: "14.5", EnvOutput: "out"},
			Config{Output: "out", IOSVersion: "14.5", Artifacts: DefaultConfig().Artifacts},
			false,
		},
		{
			"config wins over environment",
			Config{IOSVersion: "14.2", Output: "report", Artifacts: []string{"a"}},
			map[string]string{EnvIOSVersion: "14.5", EnvOutput: "out"},
			Config{Output: "report", IOSVersion: "14.2", Artifacts: []string{"a"}},
			false,
		},
		{
			"device info",
			Config{DeviceInfo: "device.json"},
			nil,
			Config{Output: "photosqlite-report", IOSVersion: "14.1", DeviceInfo: "device.json", Artifacts: DefaultConfig().Artifacts},
			false,
		},
		{
			"missing device info",
			Config{DeviceInfo: "missing.json"},
			nil,
			Config{DeviceInfo: "missing.json"},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.config
			err := config.Complete(fs, env(tt.env))
			if (err != nil) != tt.wantErr {
				t.Errorf("Complete() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.want, config)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		c := DefaultConfig()
		c.IOSVersion = "14.2"
		return c
	}
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"no version", func(c *Config) { c.IOSVersion = "" }, nil},
		{"no output", func(c *Config) { c.Output = "" }, nil},
		{"no artifacts", func(c *Config) { c.Artifacts = nil }, nil},
		{"negative parallel", func(c *Config) { c.Parallel = -1 }, nil},
		{"bad version", func(c *Config) { c.IOSVersion = "x" }, ErrInvalidVersion},
		{"unknown artifact", func(c *Config) { c.Artifacts = []string{"Ph94.3"} }, ErrUnknownArtifact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			err := c.Validate()
			if tt.name == "valid" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestConfigSelected(t *testing.T) {
	c := DefaultConfig()
	selected, err := c.Selected()
	require.NoError(t, err)
	assert.Len(t, selected, 2)

	c.Artifacts = []string{"Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL"}
	selected, err = c.Selected()
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "SyndPL", selected[0].Source.Name)

	c.Artifacts = []string{"unknown"}
	_, err = c.Selected()
	assert.Error(t, err)
}
