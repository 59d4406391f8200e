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
	"github.com/fatih/structs"
	"github.com/pkg/errors"

	"github.com/forensicanalysis/photosqlite/source"
)

// ErrUnknownArtifact is returned when an artifact name is not registered.
var ErrUnknownArtifact = errors.New("unknown artifact")

// Artifact is the registration descriptor of one pipeline. External
// orchestrators use it to decide which pipelines run on an acquisition.
type Artifact struct {
	Name            string
	Description     string
	Author          string
	Version         string
	Date            string
	RequirementsMin string
	RequirementsMax string
	Category        string
	Notes           string
	Paths           []string
	Function        string
	// OutputName is the base name of all report files.
	OutputName string

	Source source.Source `structs:"-"`
}

const (
	author   = "Scott Koenig @ScottKjr3347"
	category = "Photos-Asset-Analysis"
	notes    = "Decodes every column of the asset query. Values without a known label are reported as Unknown-New-Value!."
)

var artifacts = []Artifact{
	{
		Name:            "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql",
		Description:     "Parses iOS 14 asset records from PhotoData/Photos.sqlite including attributes, resources, faces, albums, memories and sharing data.",
		Author:          author,
		Version:         "2.0",
		Date:            "2024-04-13",
		RequirementsMin: "14",
		RequirementsMax: "15",
		Category:        category,
		Notes:           notes,
		Paths:           source.Primary.Patterns,
		Function:        "PhotosAssetAnalysisPhDaPsql",
		OutputName:      "Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql",
		Source:          source.Primary,
	},
	{
		Name:            "Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL",
		Description:     "Parses iOS 14 asset records from the Syndication.photoslibrary Photos.sqlite, the library of media shared with the user in Messages and other apps.",
		Author:          author,
		Version:         "2.0",
		Date:            "2024-04-13",
		RequirementsMin: "14",
		RequirementsMax: "15",
		Category:        category,
		Notes:           notes,
		Paths:           source.Syndication.Patterns,
		Function:        "PhotosAssetAnalysisSyndPL",
		OutputName:      "Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL",
		Source:          source.Syndication,
	},
}

// Artifacts returns all registered artifacts.
func Artifacts() []Artifact {
	return append([]Artifact(nil), artifacts...)
}

// Lookup returns the artifact with the given name.
func Lookup(name string) (Artifact, error) {
	for _, a := range artifacts {
		if a.Name == name {
			return a, nil
		}
	}
	return Artifact{}, errors.Wrapf(ErrUnknownArtifact, "%q", name)
}

// Map returns the descriptor with snake case keys, empty fields are omitted.
func (a Artifact) Map() map[string]interface{} {
	return lower(structs.Map(a)).(map[string]interface{})
}
