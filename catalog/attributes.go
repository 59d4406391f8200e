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

package catalog

import "github.com/forensicanalysis/photosqlite/decode"

var attributeColumns = []decode.Column{
	// additional asset attributes
	decode.Col("zAddAssetAttr-Title-Comments via Cloud Website", "zAddAssetAttr.ZTITLE", id),
	decode.Col("zAddAssetAttr-Accessibility Description", "zAddAssetAttr.ZACCESSIBILITYDESCRIPTION", id),
	decode.Col("zAddAssetAttr-Imported by Bundle ID", "zAddAssetAttr.ZIMPORTEDBYBUNDLEIDENTIFIER", id),
	decode.Col("zAddAssetAttr-Imported By", "zAddAssetAttr.ZIMPORTEDBY", decode.Ints{
		0:  "0-Cloud-Other-0",
		1:  "1-Native-Back-Camera-1",
		2:  "2-Native-Front-Camera-2",
		3:  "3-Third-Party-App-3",
		4:  "4-StillTesting-4",
		5:  "5-PhotoBooth_PL-Asset-5",
		6:  "6-Third-Party-App-6",
		7:  "7-iCloud_Share_Link-CMMAsset-7",
		8:  "8-System-Package-App-8",
		9:  "9-Native-App-9",
		10: "10-StillTesting-10",
		11: "11-StillTesting-11",
		12: "12-SWY_Syndication_PL-12",
	}),
	decode.Col("zAddAssetAttr-Camera Captured Device", "zAddAssetAttr.ZCAMERACAPTUREDEVICE", decode.Ints{
		0: "0-Back-Camera-Other-0",
		1: "1-Front-Camera-1",
	}),
	decode.Col("zAddAssetAttr-Share Type", "zAddAssetAttr.ZSHARETYPE", decode.Ints{
		0: "0-Not_Shared-or-Shared_via_Phy_Device_StillTesting-0",
		1: "1-Shared_via_iCldPhotos_Web-or-Other_Device_StillTesting-1",
	}),
	decode.Col("zAddAssetAttr-Allowed for Analysis", "zAddAssetAttr.ZALLOWEDFORANALYSIS", decode.Ints{
		0: "0-Asset Not Allowed for Analysis-0",
		1: "1-Asset Allowed for Analysis-1",
	}),
	decode.Col("zAddAssetAttr-Destination Asset Copy State", "zAddAssetAttr.ZDESTINATIONASSETCOPYSTATE", decode.Ints{
		0: "0-No Copy-0",
		1: "1-Has A Copy-1",
		2: "2-Has A Copy-2",
	}),
	decode.Col("zAddAssetAttr-Source Asset for Duplication Scope ID", "zAddAssetAttr.ZSOURCEASSETFORDUPLICATIONSCOPEIDENTIFIER", id),
	decode.Col("zAddAssetAttr-Variation Suggestions States", "zAddAssetAttr.ZVARIATIONSUGGESTIONSTATES", decode.Ints{
		0:      "0-StillTesting-0",
		1:      "1-StillTesting-1",
		1024:   "1024-StillTesting-1024",
		524288: "524288-StillTesting-524288",
	}),
	decode.Col("zAddAssetAttr-Time Zone Name", "zAddAssetAttr.ZTIMEZONENAME", id),
	decode.Col("zAddAssetAttr-Time Zone Offset", "zAddAssetAttr.ZTIMEZONEOFFSET", id),
	decode.Col("zAddAssetAttr-Inferred Time Zone Offset", "zAddAssetAttr.ZINFERREDTIMEZONEOFFSET", id),
	decode.Col("zAddAssetAttr-EXIF-String", "zAddAssetAttr.ZEXIFTIMESTAMPSTRING", id),
	decode.Col("zAddAssetAttr-Last Viewed Date", "zAddAssetAttr.ZLASTVIEWEDDATE", mactime),
	decode.Col("zAddAssetAttr-Last Upload Attempt Date-SWY_Files", "zAddAssetAttr.ZLASTUPLOADATTEMPTDATE", mactime),
	decode.Col("zAddAssetAttr-Upload Attempts", "zAddAssetAttr.ZUPLOADATTEMPTS", id),
	decode.Col("zAddAssetAttr-Pending View Count", "zAddAssetAttr.ZPENDINGVIEWCOUNT", id),
	decode.Col("zAddAssetAttr-View Count", "zAddAssetAttr.ZVIEWCOUNT", id),
	decode.Col("zAddAssetAttr-Pending Play Count", "zAddAssetAttr.ZPENDINGPLAYCOUNT", id),
	decode.Col("zAddAssetAttr-Play Count", "zAddAssetAttr.ZPLAYCOUNT", id),
	decode.Col("zAddAssetAttr-Pending Share Count", "zAddAssetAttr.ZPENDINGSHARECOUNT", id),
	decode.Col("zAddAssetAttr-Share Count", "zAddAssetAttr.ZSHARECOUNT", id),
	decode.Col("zAddAssetAttr-Reverse Location Data", "zAddAssetAttr.ZREVERSELOCATIONDATA", decode.GreaterThan{
		True:  "Reverse Location Data Present in zAddAssetAttr",
		False: "No Reverse Location Data in zAddAssetAttr",
	}),
	decode.Col("zAddAssetAttr-Reverse Location Is Valid", "zAddAssetAttr.ZREVERSELOCATIONDATAISVALID", decode.Ints{
		0: "0-Reverse Location Not Valid-0",
		1: "1-Reverse Location Valid-1",
	}),
	decode.Col("zAddAssetAttr-Shifted Location Valid", "zAddAssetAttr.ZSHIFTEDLOCATIONISVALID", decode.Ints{
		0: "0-Shifted Location Not Valid-0",
		1: "1-Shifted Location Valid-1",
	}),
	decode.Col("zAddAssetAttr-Shifted Location Data", "zAddAssetAttr.ZSHIFTEDLOCATIONDATA", decode.GreaterThan{
		True:  "Shifted Location Data Present in zAddAssetAttr",
		False: "No Shifted Location Data in zAddAssetAttr",
	}),
	decode.Col("zAddAssetAttr-Location Hash", "zAddAssetAttr.ZLOCATIONHASH", id),
	decode.Col("zAddAssetAttr-GPS Horizontal Accuracy", "zAddAssetAttr.ZGPSHORIZONTALACCURACY", id),
	decode.Col("zAddAssetAttr-Original Hash", "zAddAssetAttr.ZORIGINALHASH", id),
	decode.Col("zAddAssetAttr-Original Stable Hash", "zAddAssetAttr.ZORIGINALSTABLEHASH", id),
	decode.Col("zAddAssetAttr-Original Filesize", "zAddAssetAttr.ZORIGINALFILESIZE", id),
	decode.Col("zAddAssetAttr-Original Height", "zAddAssetAttr.ZORIGINALHEIGHT", id),
	decode.Col("zAddAssetAttr-Original Width", "zAddAssetAttr.ZORIGINALWIDTH", id),
	decode.Col("zAddAssetAttr-Original Orientation", "zAddAssetAttr.ZORIGINALORIENTATION", decode.Ints{
		1: "1-Video-Default/Adjustment/Horizontal-Camera-(left)-1",
		2: "2-Horizontal-Camera-(right)-2",
		3: "3-Horizontal-Camera-(right)-3",
		4: "4-Horizontal-Camera-(left)-4",
		5: "5-Vertical-Camera-(top)-5",
		6: "6-Vertical-Camera-(top)-6",
		7: "7-Vertical-Camera-(bottom)-7",
		8: "8-Vertical-Camera-(bottom)-8",
	}),
	decode.Col("zAddAssetAttr-Original Resource Choice", "zAddAssetAttr.ZORIGINALRESOURCECHOICE", decode.Ints{
		0: "0-JPEG Original Resource-0",
		1: "1-RAW Original Resource-1",
	}),
	decode.Col("zAddAssetAttr-Editor Bundle ID", "zAddAssetAttr.ZEDITORBUNDLEID", id),
	decode.Col("zAddAssetAttr-Montage", "zAddAssetAttr.ZMONTAGE", id),
	decode.Col("zAddAssetAttr-Spatial Over Capture Group ID", "zAddAssetAttr.ZSPATIALOVERCAPTUREGROUPIDENTIFIER", id),
	decode.Col("zAddAssetAttr-Place Annotation Data", "zAddAssetAttr.ZPLACEANNOTATIONDATA", decode.GreaterThan{
		True:  "Place Annotation Data Present",
		False: "No Place Annotation Data",
	}),
	decode.Col("zAddAssetAttr-Distance Identity", "zAddAssetAttr.ZDISTANCEIDENTITY", id),
	decode.Col("zAddAssetAttr-Edited IPTC Attributes", "zAddAssetAttr.ZEDITEDIPTCATTRIBUTES", decode.GreaterThan{
		True:  "Edited IPTC Attributes Present",
		False: "No Edited IPTC Attributes",
	}),
	decode.Col("zAddAssetAttr-Asset Description", "zAddAssetAttr.ZASSETDESCRIPTION", id),
	decode.Col("zAddAssetAttr-PTP Trashed State", "zAddAssetAttr.ZPTPTRASHEDSTATE", decode.Ints{
		0: "0-PTP Not in Trash-0",
		1: "1-PTP In Trash-1",
	}),
	decode.Col("zAddAssetAttr-Cloud Kind Sub Type", "zAddAssetAttr.ZCLOUDKINDSUBTYPE", decode.Ints{
		0: "0-Still-Photo-0",
		1: "1-Paorama-1",
		2: "2-Live-Photo-2",
		3: "3-Screenshot-3",
	}),
	decode.Col("zAddAssetAttr-Scene Analysis Version", "zAddAssetAttr.ZSCENEANALYSISVERSION", id),
	decode.Col("zAddAssetAttr-Scene Analysis Timestamp", "zAddAssetAttr.ZSCENEANALYSISTIMESTAMP", mactime),
	decode.Col("zAddAssetAttr-Face Analysis Version", "zAddAssetAttr.ZFACEANALYSISVERSION", id),
	decode.Col("zAddAssetAttr-Face Regions", "zAddAssetAttr.ZFACEREGIONS", decode.GreaterThan{
		True:  "Face Regions Present",
		False: "No Face Regions",
	}),
	decode.Col("zAddAssetAttr-Media Metadata Type", "zAddAssetAttr.ZMEDIAMETADATATYPE", id),
	decode.Col("zAddAssetAttr-Unmanaged Adjustment= zUnmAdj-zPK", "zAddAssetAttr.ZUNMANAGEDADJUSTMENT", id),
	decode.Col("zAddAssetAttr-Scene Print= zSceneP-zPK", "zAddAssetAttr.ZSCENEPRINT", id),
	decode.Col("zAddAssetAttr-Master Fingerprint", "zAddAssetAttr.ZMASTERFINGERPRINT", id),
	decode.Col("zAddAssetAttr-Cloud Avalanche Pick Type", "zAddAssetAttr.ZCLOUDAVALANCHEPICKTYPE", avalanchePick),
	decode.Col("zAddAssetAttr-Cloud Grouping State", "zAddAssetAttr.ZCLOUDGROUPINGSTATE", decode.Ints{
		0: "0-Not-Grouped-0",
		1: "1-Grouped-1",
		2: "2-StillTesting-2",
	}),
	decode.Col("zAddAssetAttr-Cloud Recovery State", "zAddAssetAttr.ZCLOUDRECOVERYSTATE", decode.Ints{
		0: "0-Not-Recovered-0",
		1: "1-StillTesting-1",
		2: "2-StillTesting-2",
	}),
	decode.Col("zAddAssetAttr-Cloud State Correction Flags", "zAddAssetAttr.ZCLOUDSTATECORRECTIONFLAGS", decode.Ints{
		0: "0-No-Corrections-0",
		1: "1-StillTesting-1",
	}),
	decode.Col("zAddAssetAttr-Deferred Photo Identifier", "zAddAssetAttr.ZDEFERREDPHOTOIDENTIFIER", id),
	decode.Col("zAddAssetAttr-Deferred Processing Candidate Options", "zAddAssetAttr.ZDEFERREDPROCESSINGCANDIDATEOPTIONS", id),
	decode.Col("zAddAssetAttr-Syndication History", "zAddAssetAttr.ZSYNDICATIONHISTORY", decode.Ints{
		0: "0-No-Syndication-History-0",
		1: "1-StillTesting-1",
	}),
	decode.Col("zAddAssetAttr-Original Assets UUID", "zAddAssetAttr.ZORIGINALASSETSUUID", id),
	decode.Col("zAddAssetAttr-Video CP Duration Time Scale", "zAddAssetAttr.ZVIDEOCPDURATIONTIMESCALE", id),
	decode.Col("zAddAssetAttr-Media Metadata= AAAzCldMastMedData-zPK", "zAddAssetAttr.ZMEDIAMETADATA", id),
	decode.Col("zAddAssetAttr-Asset= zAsset-zPK", "zAddAssetAttr.ZASSET", id),
	decode.Col("zAddAssetAttr-zENT", "zAddAssetAttr.Z_ENT", id),
	decode.Col("zAddAssetAttr-zOPT", "zAddAssetAttr.Z_OPT", id),
	decode.Col("zAddAssetAttr-zPK", "zAddAssetAttr.Z_PK", id),

	// extended attributes, mostly EXIF
	decode.Col("zExtAttr-Camera Make", "zExtAttr.ZCAMERAMAKE", id),
	decode.Col("zExtAttr-Camera Model", "zExtAttr.ZCAMERAMODEL", id),
	decode.Col("zExtAttr-Lens Model", "zExtAttr.ZLENSMODEL", id),
	decode.Col("zExtAttr-Aperture", "zExtAttr.ZAPERTURE", id),
	decode.Col("zExtAttr-Focal Length", "zExtAttr.ZFOCALLENGTH", id),
	decode.Col("zExtAttr-Focal Length in 35MM", "zExtAttr.ZFOCALLENGTHIN35MM", id),
	decode.Col("zExtAttr-Digital Zoom Ratio", "zExtAttr.ZDIGITALZOOMRATIO", id),
	decode.Col("zExtAttr-ISO", "zExtAttr.ZISO", id),
	decode.Col("zExtAttr-Shutter Speed", "zExtAttr.ZSHUTTERSPEED", id),
	decode.Col("zExtAttr-Exposure Bias", "zExtAttr.ZEXPOSUREBIAS", id),
	decode.Col("zExtAttr-Flash Fired", "zExtAttr.ZFLASHFIRED", decode.Ints{
		0: "0-No Flash-0",
		1: "1-Flash Fired-1",
	}),
	decode.Col("zExtAttr-White Balance", "zExtAttr.ZWHITEBALANCE", decode.Ints{
		0: "0-Auto White Balance-0",
		1: "1-Manual White Balance-1",
	}),
	decode.Col("zExtAttr-Metering Mode", "zExtAttr.ZMETERINGMODE", decode.Ints{
		0: "0-Unknown-0",
		1: "1-Average-1",
		2: "2-Center-Weighted-Average-2",
		3: "3-Spot-3",
		4: "4-Multi-Spot-4",
		5: "5-Multi-Segment-5",
		6: "6-Partial-6",
	}),
	decode.Col("zExtAttr-Bit Rate", "zExtAttr.ZBITRATE", id),
	decode.Col("zExtAttr-Duration", "zExtAttr.ZDURATION", id),
	decode.Col("zExtAttr-Frame Rate", "zExtAttr.ZFRAMERATE", id),
	decode.Col("zExtAttr-Codec", "zExtAttr.ZCODEC", decode.Texts{
		"avc1": "avc1-H.264-avc1",
		"hvc1": "hvc1-HEVC-hvc1",
		"jpeg": "jpeg-JPEG-jpeg",
		"mp4v": "mp4v-MPEG-4-mp4v",
	}),
	decode.Col("zExtAttr-Date Created", "zExtAttr.ZDATECREATED", mactime),
	decode.Col("zExtAttr-Time Zone Name", "zExtAttr.ZTIMEZONENAME", id),
	decode.Col("zExtAttr-Time Zone Offset", "zExtAttr.ZTIMEZONEOFFSET", id),
	decode.Col("zExtAttr-Latitude", "zExtAttr.ZLATITUDE", id),
	decode.Col("zExtAttr-Longitude", "zExtAttr.ZLONGITUDE", id),
	decode.Col("zExtAttr-Slush Preset", "zExtAttr.ZSLUSHPRESET", id),
	decode.Col("zExtAttr-Slush Version", "zExtAttr.ZSLUSHVERSION", id),
	decode.Col("zExtAttr-Lens Make", "zExtAttr.ZLENSMAKE", id),
	decode.Col("zExtAttr-Sample Rate", "zExtAttr.ZSAMPLERATE", id),
	decode.Col("zExtAttr-Track Format", "zExtAttr.ZTRACKFORMAT", id),
	decode.Col("zExtAttr-Slush Scene Bias", "zExtAttr.ZSLUSHSCENEBIAS", id),
	decode.Col("zExtAttr-Slush Warmth Bias", "zExtAttr.ZSLUSHWARMTHBIAS", id),
	decode.Col("zExtAttr-Asset= zAsset-zPK", "zExtAttr.ZASSET", id),
	decode.Col("zExtAttr-zENT", "zExtAttr.Z_ENT", id),
	decode.Col("zExtAttr-zOPT", "zExtAttr.Z_OPT", id),
	decode.Col("zExtAttr-zPK", "zExtAttr.Z_PK", id),

	// computed and media analysis attributes
	decode.Col("zCompAssetAttr-Behavioral Score", "zCompAssetAttr.ZBEHAVIORALSCORE", id),
	decode.Col("zCompAssetAttr-Failure Score", "zCompAssetAttr.ZFAILURESCORE", id),
	decode.Col("zCompAssetAttr-Harmonious Color Score", "zCompAssetAttr.ZHARMONIOUSCOLORSCORE", id),
	decode.Col("zCompAssetAttr-Interesting Subject Score", "zCompAssetAttr.ZINTERESTINGSUBJECTSCORE", id),
	decode.Col("zCompAssetAttr-Noise Score", "zCompAssetAttr.ZNOISESCORE", id),
	decode.Col("zCompAssetAttr-Pleasant Composition Score", "zCompAssetAttr.ZPLEASANTCOMPOSITIONSCORE", id),
	decode.Col("zCompAssetAttr-Pleasant Lighting Score", "zCompAssetAttr.ZPLEASANTLIGHTINGSCORE", id),
	decode.Col("zCompAssetAttr-Sharply Focused Subject Score", "zCompAssetAttr.ZSHARPLYFOCUSEDSUBJECTSCORE", id),
	decode.Col("zCompAssetAttr-Well Timed Shot Score", "zCompAssetAttr.ZWELLTIMEDSHOTSCORE", id),
	decode.Col("zCompAssetAttr-Immersiveness Score", "zCompAssetAttr.ZIMMERSIVENESSSCORE", id),
	decode.Col("zCompAssetAttr-Interaction Score", "zCompAssetAttr.ZINTERACTIONSCORE", id),
	decode.Col("zCompAssetAttr-Intrusive Object Presence Score", "zCompAssetAttr.ZINTRUSIVEOBJECTPRESENCESCORE", id),
	decode.Col("zCompAssetAttr-Lively Color Score", "zCompAssetAttr.ZLIVELYCOLORSCORE", id),
	decode.Col("zCompAssetAttr-Low Light", "zCompAssetAttr.ZLOWLIGHT", id),
	decode.Col("zCompAssetAttr-Pleasant Camera Tilt Score", "zCompAssetAttr.ZPLEASANTCAMERATILTSCORE", id),
	decode.Col("zCompAssetAttr-Pleasant Pattern Score", "zCompAssetAttr.ZPLEASANTPATTERNSCORE", id),
	decode.Col("zCompAssetAttr-Pleasant Perspective Score", "zCompAssetAttr.ZPLEASANTPERSPECTIVESCORE", id),
	decode.Col("zCompAssetAttr-Pleasant Post Processing Score", "zCompAssetAttr.ZPLEASANTPOSTPROCESSINGSCORE", id),
	decode.Col("zCompAssetAttr-Pleasant Reflection Score", "zCompAssetAttr.ZPLEASANTREFLECTIONSSCORE", id),
	decode.Col("zCompAssetAttr-Pleasant Symmetry Score", "zCompAssetAttr.ZPLEASANTSYMMETRYSCORE", id),
	decode.Col("zCompAssetAttr-Tastefully Blurred Score", "zCompAssetAttr.ZTASTEFULLYBLURREDSCORE", id),
	decode.Col("zCompAssetAttr-Well Chosen Subject Score", "zCompAssetAttr.ZWELLCHOSENSUBJECTSCORE", id),
	decode.Col("zCompAssetAttr-Well Framed Subject Score", "zCompAssetAttr.ZWELLFRAMEDSUBJECTSCORE", id),
	decode.Col("zCompAssetAttr-Asset= zAsset-zPK", "zCompAssetAttr.ZASSET", id),
	decode.Col("zCompAssetAttr-zENT", "zCompAssetAttr.Z_ENT", id),
	decode.Col("zCompAssetAttr-zOPT", "zCompAssetAttr.Z_OPT", id),
	decode.Col("zCompAssetAttr-zPK", "zCompAssetAttr.Z_PK", id),
	decode.Col("zMedAnlyAstAttr-Media Analysis Version", "zMedAnlyAstAttr.ZMEDIAANALYSISVERSION", id),
	decode.Col("zMedAnlyAstAttr-Media Analysis Timestamp", "zMedAnlyAstAttr.ZMEDIAANALYSISTIMESTAMP", mactime),
	decode.Col("zMedAnlyAstAttr-Activity Score", "zMedAnlyAstAttr.ZACTIVITYSCORE", id),
	decode.Col("zMedAnlyAstAttr-Face Count", "zMedAnlyAstAttr.ZFACECOUNT", id),
	decode.Col("zMedAnlyAstAttr-Audio Classification", "zMedAnlyAstAttr.ZAUDIOCLASSIFICATION", decode.Ints{
		0: "0-No Audio Classification-0",
		1: "1-Speech-1",
		2: "2-Music-2",
		4: "4-Laughter-4",
		8: "8-Babble-8",
	}),
	decode.Col("zMedAnlyAstAttr-Blurriness Score", "zMedAnlyAstAttr.ZBLURRINESSSCORE", id),
	decode.Col("zMedAnlyAstAttr-Video Score", "zMedAnlyAstAttr.ZVIDEOSCORE", id),
	decode.Col("zMedAnlyAstAttr-Autoplay Suggestion Score", "zMedAnlyAstAttr.ZAUTOPLAYSUGGESTIONSCORE", id),
	decode.Col("zMedAnlyAstAttr-Exposure Score", "zMedAnlyAstAttr.ZEXPOSURESCORE", id),
	decode.Col("zMedAnlyAstAttr-Video Sticker Suggestion Score", "zMedAnlyAstAttr.ZVIDEOSTICKERSUGGESTIONSCORE", id),
	decode.Col("zMedAnlyAstAttr-Best Key Frame Time Scale", "zMedAnlyAstAttr.ZBESTKEYFRAMETIMESCALE", id),
	decode.Col("zMedAnlyAstAttr-Best Key Frame Value", "zMedAnlyAstAttr.ZBESTKEYFRAMEVALUE", id),
	decode.Col("zMedAnlyAstAttr-Best Video Range Duration Time Scale", "zMedAnlyAstAttr.ZBESTVIDEORANGEDURATIONTIMESCALE", id),
	decode.Col("zMedAnlyAstAttr-Best Video Range Duration Value", "zMedAnlyAstAttr.ZBESTVIDEORANGEDURATIONVALUE", id),
	decode.Col("zMedAnlyAstAttr-Best Video Range Start Time Scale", "zMedAnlyAstAttr.ZBESTVIDEORANGESTARTTIMESCALE", id),
	decode.Col("zMedAnlyAstAttr-Best Video Range Start Value", "zMedAnlyAstAttr.ZBESTVIDEORANGESTARTVALUE", id),
	decode.Col("zMedAnlyAstAttr-Packed Best Playback Rect", "zMedAnlyAstAttr.ZPACKEDBESTPLAYBACKRECT", id),
	decode.Col("zMedAnlyAstAttr-Color Normalization Data", "zMedAnlyAstAttr.ZCOLORNORMALIZATIONDATA", decode.GreaterThan{
		True:  "Color Normalization Data Present",
		False: "No Color Normalization Data",
	}),
	decode.Col("zMedAnlyAstAttr-Media Analysis Image Version", "zMedAnlyAstAttr.ZMEDIAANALYSISIMAGEVERSION", id),
	decode.Col("zMedAnlyAstAttr-Probable Rotation Direction", "zMedAnlyAstAttr.ZPROBABLEROTATIONDIRECTION", decode.Ints{
		0: "0-No-Rotation-0",
		1: "1-Rotate-Left-1",
		2: "2-Rotate-Right-2",
	}),
	decode.Col("zMedAnlyAstAttr-Probable Rotation Direction Confidence", "zMedAnlyAstAttr.ZPROBABLEROTATIONDIRECTIONCONFIDENCE", id),
	decode.Col("zMedAnlyAstAttr-Screen Time Device Image Data", "zMedAnlyAstAttr.ZSCREENTIMEDEVICEIMAGEDATA", decode.GreaterThan{
		True:  "Screen Time Device Image Data Present",
		False: "No Screen Time Device Image Data",
	}),
	decode.Col("zMedAnlyAstAttr-Character Recognition Attributes", "zMedAnlyAstAttr.ZCHARACTERRECOGNITIONATTRIBUTES", id),
	decode.Col("zMedAnlyAstAttr-Asset= zAsset-zPK", "zMedAnlyAstAttr.ZASSET", id),
	decode.Col("zMedAnlyAstAttr-zENT", "zMedAnlyAstAttr.Z_ENT", id),
	decode.Col("zMedAnlyAstAttr-zOPT", "zMedAnlyAstAttr.Z_OPT", id),
	decode.Col("zMedAnlyAstAttr-zPK", "zMedAnlyAstAttr.Z_PK", id),

	// photo analysis attributes
	decode.Col("zPhotoAnalysisAttr-Last Photo Analysis Date", "zPhotoAnalysisAttr.ZLASTPHOTOANALYSISDATE", mactime),
	decode.Col("zPhotoAnalysisAttr-Photo Analysis Version", "zPhotoAnalysisAttr.ZPHOTOANALYSISVERSION", id),
	decode.Col("zPhotoAnalysisAttr-Wallpaper Properties Version", "zPhotoAnalysisAttr.ZWALLPAPERPROPERTIESVERSION", id),
	decode.Col("zPhotoAnalysisAttr-Wallpaper Properties Timestamp", "zPhotoAnalysisAttr.ZWALLPAPERPROPERTIESTIMESTAMP", mactime),
	decode.Col("zPhotoAnalysisAttr-Wallpaper Properties Data", "zPhotoAnalysisAttr.ZWALLPAPERPROPERTIESDATA", decode.GreaterThan{
		True:  "Wallpaper Properties Data Present",
		False: "No Wallpaper Properties Data",
	}),
	decode.Col("zPhotoAnalysisAttr-Asset= zAsset-zPK", "zPhotoAnalysisAttr.ZASSET", id),
	decode.Col("zPhotoAnalysisAttr-zENT", "zPhotoAnalysisAttr.Z_ENT", id),
	decode.Col("zPhotoAnalysisAttr-zOPT", "zPhotoAnalysisAttr.Z_OPT", id),
	decode.Col("zPhotoAnalysisAttr-zPK", "zPhotoAnalysisAttr.Z_PK", id),

	// unmanaged adjustments
	decode.Col("zUnmAdj-Adjustment Timestamp", "zUnmAdj.ZADJUSTMENTTIMESTAMP", mactime),
	decode.Col("zUnmAdj-Adjustment Format ID", "zUnmAdj.ZADJUSTMENTFORMATIDENTIFIER", id),
	decode.Col("zUnmAdj-Adjustment Format Version", "zUnmAdj.ZADJUSTMENTFORMATVERSION", decode.Reals{
		1.0: "1.0",
		1.1: "1.1",
		1.2: "1.2",
		1.3: "1.3",
		1.4: "1.4",
		1.5: "1.5",
	}),
	decode.Col("zUnmAdj-Editor Localized Name", "zUnmAdj.ZEDITORLOCALIZEDNAME", id),
	decode.Col("zUnmAdj-Adjustment Base Image Format", "zUnmAdj.ZADJUSTMENTBASEIMAGEFORMAT", decode.Ints{
		0: "0-JPG-0",
		1: "1-HEIC-1",
	}),
	decode.Col("zUnmAdj-Adjustment Render Types", "zUnmAdj.ZADJUSTMENTRENDERTYPES", decode.Ints{
		0:    "0-Standard or Portrait with errors-0",
		1:    "1-StillTesting-Error-1",
		2:    "2-Portrait-2",
		3:    "3-StillTesting-3",
		4:    "4-StillTesting-4",
		8:    "8-StillTesting-8",
		64:   "64-Long-Exposure-64",
		128:  "128-StillTesting-128",
		1024: "1024-StillTesting-1024",
	}),
	decode.Col("zUnmAdj-Similar to Orig Adjustments Fingerprint", "zUnmAdj.ZSIMILARTOORIGINALADJUSTMENTSFINGERPRINT", id),
	decode.Col("zUnmAdj-Other Adjustments Fingerprint", "zUnmAdj.ZOTHERADJUSTMENTSFINGERPRINT", id),
	decode.Col("zUnmAdj-Adjustment Source Type", "zUnmAdj.ZADJUSTMENTSOURCETYPE", decode.Ints{
		0: "0-StillTesting-0",
		1: "1-StillTesting-1",
	}),
	decode.Col("zUnmAdj-Asset Attributes= zAddAssetAttr-zPK", "zUnmAdj.ZASSETATTRIBUTES", id),
	decode.Col("zUnmAdj-zENT", "zUnmAdj.Z_ENT", id),
	decode.Col("zUnmAdj-zOPT", "zUnmAdj.Z_OPT", id),
	decode.Col("zUnmAdj-zPK", "zUnmAdj.Z_PK", id),

	// description, analysis state and scene print
	decode.Col("zAssetDes-Long Description", "zAssetDes.ZLONGDESCRIPTION", id),
	decode.Col("zAssetDes-zPK", "zAssetDes.Z_PK", id),
	decode.Col("zAssetAnalyState-Analysis State", "zAssetAnalyState.ZANALYSISSTATE", decode.Ints{
		0: "0-Not-Analyzed-0",
		1: "1-StillTesting-1",
		2: "2-StillTesting-2",
		3: "3-StillTesting-3",
		4: "4-Analyzed-4",
	}),
	decode.Col("zAssetAnalyState-Worker Flags", "zAssetAnalyState.ZWORKERFLAGS", decode.Ints{
		0:         "0-StillTesting-0",
		1:         "1-StillTesting-1",
		2:         "2-StillTesting-2",
		4:         "4-StillTesting-4",
		16:        "16-StillTesting-16",
		1048576:   "1048576-StillTesting-1048576",
		268435456: "268435456-StillTesting-268435456",
	}),
	decode.Col("zAssetAnalyState-Worker Type", "zAssetAnalyState.ZWORKERTYPE", id),
	decode.Col("zAssetAnalyState-Ignore Until Date", "zAssetAnalyState.ZIGNOREUNTILDATE", mactime),
	decode.Col("zAssetAnalyState-Last Ignored Date", "zAssetAnalyState.ZLASTIGNOREDDATE", mactime),
	decode.Col("zAssetAnalyState-Sort Token", "zAssetAnalyState.ZSORTTOKEN", mactime),
	decode.Col("zAssetAnalyState-zPK", "zAssetAnalyState.Z_PK", id),
	decode.Col("zSceneP-Data", "zSceneP.ZDATA", decode.GreaterThan{
		True:  "Scene Print Data Present",
		False: "No Scene Print Data",
	}),
	decode.Col("zSceneP-zPK", "zSceneP.Z_PK", id),
	decode.Col("zAssetDes-Asset Attributes= zAddAssetAttr-zPK", "zAssetDes.ZASSETATTRIBUTES", id),
	decode.Col("zAssetDes-zENT", "zAssetDes.Z_ENT", id),
	decode.Col("zAssetDes-zOPT", "zAssetDes.Z_OPT", id),
	decode.Col("zAssetAnalyState-Asset UUID", "zAssetAnalyState.ZASSETUUID", id),
	decode.Col("zAssetAnalyState-Asset= zAsset-zPK", "zAssetAnalyState.ZASSET", id),
	decode.Col("zAssetAnalyState-zENT", "zAssetAnalyState.Z_ENT", id),
	decode.Col("zAssetAnalyState-zOPT", "zAssetAnalyState.Z_OPT", id),
	decode.Col("zSceneP-Additional Asset Attributes= zAddAssetAttr-zPK", "zSceneP.ZADDITIONALASSETATTRIBUTES", id),
	decode.Col("zSceneP-zENT", "zSceneP.Z_ENT", id),
	decode.Col("zSceneP-zOPT", "zSceneP.Z_OPT", id),

	// media metadata of the additional asset attributes
	decode.Col("AAAzCldMastMedData-Data", "AAAzCldMastMedData.ZDATA", decode.GreaterThan{
		True:  "AAAzCldMastMedData-Data Present",
		False: "No AAAzCldMastMedData-Data",
	}),
	decode.Col("AAAzCldMastMedData-Additional Asset Attributes= zAddAssetAttr-zPK", "AAAzCldMastMedData.ZADDITIONALASSETATTRIBUTES", id),
	decode.Col("AAAzCldMastMedData-Cloud Master= zCldMast-zPK", "AAAzCldMastMedData.ZCLOUDMASTER", id),
	decode.Col("AAAzCldMastMedData-zENT", "AAAzCldMastMedData.Z_ENT", id),
	decode.Col("AAAzCldMastMedData-zOPT", "AAAzCldMastMedData.Z_OPT", id),
	decode.Col("AAAzCldMastMedData-zPK", "AAAzCldMastMedData.Z_PK", id),
}
