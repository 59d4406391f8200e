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

// Package source reads asset rows from Photos.sqlite databases. The select
// list is derived from a decode.Catalog, the FROM clause from a Source, so both
// library variants always yield rows of catalog arity ordered by the date the
// asset was added.
package source

import (
	"strings"
)

// A Join adds one aliased table to the asset query.
type Join struct {
	Alias  string
	Clause string
}

// Source describes one Photos.sqlite variant.
type Source struct {
	// Name is the short tag used in artifact names, e.g. PhDaPsql.
	Name string
	// Title is a readable name of the library.
	Title string
	// Patterns are doublestar globs, relative to the extraction root.
	Patterns []string
	Joins    []Join
}

// The asset table is always present.
const assetAlias = "zAsset"

// OrderBy sorts rows by the date the asset was added to the library.
const OrderBy = "zAsset.ZADDEDDATE"

var joins = []Join{
	{"zAddAssetAttr", "LEFT JOIN ZADDITIONALASSETATTRIBUTES zAddAssetAttr ON zAddAssetAttr.Z_PK = zAsset.ZADDITIONALATTRIBUTES"},
	{"zExtAttr", "LEFT JOIN ZEXTENDEDATTRIBUTES zExtAttr ON zExtAttr.Z_PK = zAsset.ZEXTENDEDATTRIBUTES"},
	{"zCompAssetAttr", "LEFT JOIN ZCOMPUTEDASSETATTRIBUTES zCompAssetAttr ON zCompAssetAttr.Z_PK = zAsset.ZCOMPUTEDATTRIBUTES"},
	{"zMedAnlyAstAttr", "LEFT JOIN ZMEDIAANALYSISASSETATTRIBUTES zMedAnlyAstAttr ON zMedAnlyAstAttr.Z_PK = zAsset.ZMEDIAANALYSISATTRIBUTES"},
	{"zUnmAdj", "LEFT JOIN ZUNMANAGEDADJUSTMENT zUnmAdj ON zUnmAdj.Z_PK = zAddAssetAttr.ZUNMANAGEDADJUSTMENT"},
	{"zAssetDes", "LEFT JOIN ZASSETDESCRIPTION zAssetDes ON zAssetDes.Z_PK = zAddAssetAttr.ZASSETDESCRIPTION"},
	{"zAssetAnalyState", "LEFT JOIN ZASSETANALYSISSTATE zAssetAnalyState ON zAssetAnalyState.ZASSET = zAsset.Z_PK"},
	{"zSceneP", "LEFT JOIN ZSCENEPRINT zSceneP ON zSceneP.Z_PK = zAddAssetAttr.ZSCENEPRINT"},
	{"AAAzCldMastMedData", "LEFT JOIN ZCLOUDMASTERMEDIAMETADATA AAAzCldMastMedData ON AAAzCldMastMedData.Z_PK = zAddAssetAttr.ZMEDIAMETADATA"},
	{"zPhotoAnalysisAttr", "LEFT JOIN ZPHOTOANALYSISASSETATTRIBUTES zPhotoAnalysisAttr ON zPhotoAnalysisAttr.ZASSET = zAsset.Z_PK"},
	{"zIntResou", "LEFT JOIN ZINTERNALRESOURCE zIntResou ON zIntResou.ZASSET = zAsset.Z_PK"},
	{"zCldMast", "LEFT JOIN ZCLOUDMASTER zCldMast ON zCldMast.Z_PK = zAsset.ZMASTER"},
	{"CMzCldMastMedData", "LEFT JOIN ZCLOUDMASTERMEDIAMETADATA CMzCldMastMedData ON CMzCldMastMedData.Z_PK = zCldMast.ZMEDIAMETADATA"},
	{"zCldRes", "LEFT JOIN ZCLOUDRESOURCE zCldRes ON zCldRes.ZASSET = zAsset.Z_PK"},
	{"zDetFace", "LEFT JOIN ZDETECTEDFACE zDetFace ON zDetFace.ZASSET = zAsset.Z_PK"},
	{"zPerson", "LEFT JOIN ZPERSON zPerson ON zPerson.Z_PK = zDetFace.ZPERSON"},
	{"zDetFaceGroup", "LEFT JOIN ZDETECTIONFACEGROUP zDetFaceGroup ON zDetFaceGroup.Z_PK = zDetFace.ZFACEGROUP"},
	{"zDetFacePrint", "LEFT JOIN ZFACEPRINT zDetFacePrint ON zDetFacePrint.ZFACE = zDetFace.Z_PK"},
	{"zFaceCrop", "LEFT JOIN ZFACECROP zFaceCrop ON zFaceCrop.ZPERSON = zPerson.Z_PK"},
	{"zKeywords", "LEFT JOIN Z_1KEYWORDS zKeywords ON zKeywords.Z_1ASSETATTRIBUTES = zAddAssetAttr.Z_PK"},
	{"zKeyWrd", "LEFT JOIN ZKEYWORD zKeyWrd ON zKeyWrd.Z_PK = zKeywords.Z_37KEYWORDS"},
	{"zMoment", "LEFT JOIN ZMOMENT zMoment ON zMoment.Z_PK = zAsset.ZMOMENT"},
	{"zMomentListYear", "LEFT JOIN ZMOMENTLIST zMomentListYear ON zMomentListYear.Z_PK = zMoment.ZYEARMOMENTLIST"},
	{"zMomentListMega", "LEFT JOIN ZMOMENTLIST zMomentListMega ON zMomentListMega.Z_PK = zMoment.ZMEGAMOMENTLIST"},
	{"zHighlight", "LEFT JOIN ZPHOTOSHIGHLIGHT zHighlight ON zHighlight.Z_PK = zAsset.ZHIGHLIGHTBEINGASSETS"},
	{"zHighlightParent", "LEFT JOIN ZPHOTOSHIGHLIGHT zHighlightParent ON zHighlightParent.Z_PK = zHighlight.ZPARENTPHOTOSHIGHLIGHT"},
	{"zHighlightDayGroup", "LEFT JOIN ZPHOTOSHIGHLIGHT zHighlightDayGroup ON zHighlightDayGroup.Z_PK = zAsset.ZDAYGROUPHIGHLIGHTBEINGASSETS"},
	{"zHighlightMonth", "LEFT JOIN ZPHOTOSHIGHLIGHT zHighlightMonth ON zHighlightMonth.Z_PK = zAsset.ZMONTHHIGHLIGHTBEINGKEYASSETPRIVATE"},
	{"zHighlightYear", "LEFT JOIN ZPHOTOSHIGHLIGHT zHighlightYear ON zHighlightYear.Z_PK = zAsset.ZYEARHIGHLIGHTBEINGKEYASSETPRIVATE"},
	{"zMemory", "LEFT JOIN ZMEMORY zMemory ON zMemory.ZKEYASSET = zAsset.Z_PK"},
	{"zSuggAssets", "LEFT JOIN Z_55SUGGESTIONSBEINGKEYASSETS zSuggAssets ON zSuggAssets.Z_3KEYASSETS = zAsset.Z_PK"},
	{"zSugg", "LEFT JOIN ZSUGGESTION zSugg ON zSugg.Z_PK = zSuggAssets.Z_55SUGGESTIONSBEINGKEYASSETS"},
	{"zAlbumAssets", "LEFT JOIN Z_26ASSETS zAlbumAssets ON zAlbumAssets.Z_3ASSETS = zAsset.Z_PK"},
	{"zGenAlbum", "LEFT JOIN ZGENERICALBUM zGenAlbum ON zGenAlbum.Z_PK = zAlbumAssets.Z_26ALBUMS"},
	{"ParentzGenAlbum", "LEFT JOIN ZGENERICALBUM ParentzGenAlbum ON ParentzGenAlbum.Z_PK = zGenAlbum.ZPARENTFOLDER"},
	{"zAlbumLists", "LEFT JOIN Z_2ALBUMLISTS zAlbumLists ON zAlbumLists.Z_26ALBUMS = zGenAlbum.Z_PK"},
	{"zAlbumList", "LEFT JOIN ZALBUMLIST zAlbumList ON zAlbumList.Z_PK = zAlbumLists.Z_2ALBUMLISTS"},
	{"SWYConverszGenAlbum", "LEFT JOIN ZGENERICALBUM SWYConverszGenAlbum ON SWYConverszGenAlbum.Z_PK = zAsset.ZCONVERSATION"},
	{"zCldShareAlbumInvRec", "LEFT JOIN ZCLOUDSHAREDALBUMINVITATIONRECORD zCldShareAlbumInvRec ON zCldShareAlbumInvRec.ZALBUM = zGenAlbum.Z_PK"},
	{"zShare", "LEFT JOIN ZSHARE zShare ON zShare.Z_PK = zAsset.ZMOMENTSHARE"},
	{"zSharePartic", "LEFT JOIN ZSHAREPARTICIPANT zSharePartic ON zSharePartic.ZSHARE = zShare.Z_PK"},
	{"zCldSharedComment", "LEFT JOIN ZCLOUDSHAREDCOMMENT zCldSharedComment ON zCldSharedComment.ZCOMMENTEDASSET = zAsset.Z_PK"},
	{"zCldFeedEnt", "LEFT JOIN ZCLOUDFEEDENTRY zCldFeedEnt ON zCldFeedEnt.Z_PK = zCldSharedComment.ZCLOUDFEEDCOMMENTENTRY"},
}

// The syndication library has no album, moment or sharing infrastructure.
var notSyndicated = map[string]bool{
	"zMoment":              true,
	"zMomentListYear":      true,
	"zMomentListMega":      true,
	"zHighlight":           true,
	"zHighlightParent":     true,
	"zHighlightDayGroup":   true,
	"zHighlightMonth":      true,
	"zHighlightYear":       true,
	"zMemory":              true,
	"zSuggAssets":          true,
	"zSugg":                true,
	"zAlbumAssets":         true,
	"zGenAlbum":            true,
	"ParentzGenAlbum":      true,
	"zAlbumLists":          true,
	"zAlbumList":           true,
	"zCldShareAlbumInvRec": true,
	"zShare":               true,
	"zSharePartic":         true,
	"zCldSharedComment":    true,
	"zCldFeedEnt":          true,
}

// Primary is the on-device photo library.
var Primary = Source{
	Name:     "PhDaPsql",
	Title:    "PhotoData/Photos.sqlite",
	Patterns: []string{"**/PhotoData/Photos.sqlite"},
	Joins:    joins,
}

// Syndication is the library of media shared with the user in other apps.
var Syndication = Source{
	Name:     "SyndPL",
	Title:    "Syndication.photoslibrary/database/Photos.sqlite",
	Patterns: []string{"**/Syndication.photoslibrary/database/Photos.sqlite"},
	Joins:    filterJoins(joins, notSyndicated),
}

func filterJoins(all []Join, skip map[string]bool) []Join {
	var kept []Join
	for _, j := range all {
		if !skip[j.Alias] {
			kept = append(kept, j)
		}
	}
	return kept
}

// Available reports whether the table alias is part of the query.
func (s Source) Available(alias string) bool {
	if alias == "" || alias == assetAlias {
		return true
	}
	for _, j := range s.Joins {
		if j.Alias == alias {
			return true
		}
	}
	return false
}

// From returns the FROM clause including all joins.
func (s Source) From() string {
	var b strings.Builder
	b.WriteString("FROM ZASSET zAsset")
	for _, j := range s.Joins {
		b.WriteString("\n    ")
		b.WriteString(j.Clause)
	}
	return b.String()
}
