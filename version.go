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
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// ErrInvalidVersion is returned for version strings that are not dotted
// numbers.
var ErrInvalidVersion = errors.New("invalid iOS version")

// Version is a dotted iOS version like 14.2.1. Missing parts are zero.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses versions like "14", "14.2" or "14.2.1".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, errors.Wrap(ErrInvalidVersion, "empty version")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, errors.Wrapf(ErrInvalidVersion, "%q", s)
	}
	var n [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return Version{}, errors.Wrapf(ErrInvalidVersion, "%q", s)
		}
		n[i] = v
	}
	return Version{Major: n[0], Minor: n[1], Patch: n[2]}, nil
}

// Compare returns -1, 0 or 1.
func (v Version) Compare(o Version) int {
	for _, d := range [][2]int{{v.Major, o.Major}, {v.Minor, o.Minor}, {v.Patch, o.Patch}} {
		if d[0] < d[1] {
			return -1
		}
		if d[0] > d[1] {
			return 1
		}
	}
	return 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Versions below legacyVersion predate the iOS 11 Photos schema.
var legacyVersion = Version{Major: 11}

// Supported reports whether min <= v < max. Empty bounds are open.
func Supported(v Version, min, max string) (bool, error) {
	if min != "" {
		lower, err := ParseVersion(min)
		if err != nil {
			return false, err
		}
		if v.Compare(lower) < 0 {
			return false, nil
		}
	}
	if max != "" {
		upper, err := ParseVersion(max)
		if err != nil {
			return false, err
		}
		if v.Compare(upper) >= 0 {
			return false, nil
		}
	}
	return true, nil
}

// Keys that hold the iOS version in device info files of common extraction
// tools.
var versionKeys = []string{"ProductVersion", "ios_version", "device.ios_version", "Device.ProductVersion"}

// DetectVersion reads the iOS version from a JSON device info file.
func DetectVersion(fs afero.Fs, name string) (string, error) {
	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%s is not valid json", name)
	}
	for _, key := range versionKeys {
		if v := gjson.GetBytes(data, key); v.Exists() && v.String() != "" {
			return v.String(), nil
		}
	}
	return "", fmt.Errorf("no iOS version in %s", name)
}
