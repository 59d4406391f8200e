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
	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Environment variables that fill unset configuration fields.
const (
	EnvIOSVersion = "PHOTOSQLITE_IOS_VERSION"
	EnvOutput     = "PHOTOSQLITE_OUTPUT"
)

// Config configures a run over one extraction.
type Config struct {
	Output     string `yaml:"output" validate:"required"`
	IOSVersion string `yaml:"ios_version" validate:"required"`
	// DeviceInfo is a JSON file the iOS version is read from when
	// IOSVersion is not set.
	DeviceInfo string   `yaml:"device_info"`
	Artifacts  []string `yaml:"artifacts" validate:"required,min=1,dive,required"`
	// Parallel limits the number of concurrent pipelines, 0 runs all at once.
	Parallel   int  `yaml:"parallel" validate:"gte=0"`
	NoTimeline bool `yaml:"no_timeline"`
	NoKML      bool `yaml:"no_kml"`
}

// DefaultConfig runs all artifacts into photosqlite-report.
func DefaultConfig() Config {
	var names []string
	for _, a := range artifacts {
		names = append(names, a.Name)
	}
	return Config{
		Output:    "photosqlite-report",
		Artifacts: names,
	}
}

// LoadConfig reads a yaml configuration file.
func LoadConfig(fs afero.Fs, name string) (Config, error) {
	var config Config
	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return config, errors.Wrap(err, "could not read config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "could not parse config %s", name)
	}
	return config, nil
}

// Complete fills unset fields from the environment, the device info file and
// the defaults, in this order.
func (c *Config) Complete(fs afero.Fs, getenv func(string) string) error {
	if c.IOSVersion == "" {
		c.IOSVersion = getenv(EnvIOSVersion)
	}
	if c.Output == "" {
		c.Output = getenv(EnvOutput)
	}
	if c.IOSVersion == "" && c.DeviceInfo != "" {
		version, err := DetectVersion(fs, c.DeviceInfo)
		if err != nil {
			return errors.Wrap(err, "could not detect iOS version")
		}
		c.IOSVersion = version
	}
	return mergo.Merge(c, DefaultConfig())
}

// Validate checks required fields, the version format and the artifact names.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if _, err := ParseVersion(c.IOSVersion); err != nil {
		return err
	}
	for _, name := range c.Artifacts {
		if _, err := Lookup(name); err != nil {
			return err
		}
	}
	return nil
}

// Selected returns the configured artifacts.
func (c *Config) Selected() ([]Artifact, error) {
	var selected []Artifact
	for _, name := range c.Artifacts {
		a, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, a)
	}
	return selected, nil
}
