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

var resourceColumns = []decode.Column{
	// internal resources, one row per stored rendition
	decode.Col("zIntResou-Local Availability", "zIntResou.ZLOCALAVAILABILITY", decode.Ints{
		-1: "(-1)-IR_Asset_Not_Avail_Locally(-1)",
		1:  "1-IR_Asset_Avail_Locally-1",
	}),
	decode.Col("zIntResou-Local Availability Target", "zIntResou.ZLOCALAVAILABILITYTARGET", decode.Ints{
		0: "0-StillTesting-0",
		1: "1-StillTesting-1",
	}),
	decode.Col("zIntResou-Cloud Local State", "zIntResou.ZCLOUDLOCALSTATE", decode.Ints{
		0: "0-IR_Asset_Not_Synced_No_IR-CldMastDateCreated-0",
		1: "1-IR_Asset_Synced_IR-CldMastDateCreated-1",
	}),
	decode.Col("zIntResou-Remote Availability", "zIntResou.ZREMOTEAVAILABILITY", decode.Ints{
		0: "0-IR_Asset-Not-Avail-Remotely-0",
		1: "1-IR_Asset_Avail-Remotely-1",
	}),
	decode.Col("zIntResou-Remote Availability Target", "zIntResou.ZREMOTEAVAILABILITYTARGET", decode.Ints{
		0: "0-StillTesting-0",
		1: "1-StillTesting-1",
	}),
	decode.Col("zIntResou-Transient Cloud Master", "zIntResou.ZTRANSIENTCLOUDMASTER", id),
	decode.Col("zIntResou-Side Car Index", "zIntResou.ZSIDECARINDEX", id),
	decode.Col("zIntResou-File ID", "zIntResou.ZFILEID", id),
	decode.Col("zIntResou-Version", "zIntResou.ZVERSION", decode.Ints{
		0: "0-IR_Asset_Standard-0",
		1: "1-StillTesting-1",
		2: "2-IR_Asset_Adjustments-Mutation-2",
		3: "3-IR_Asset_No_IR-CldMastDateCreated-3",
	}),
	decode.Col("zIntResou-Resource Type", "zIntResou.ZRESOURCETYPE", decode.Ints{
		0:  "0-Photo-0",
		1:  "1-Video-1",
		3:  "3-Live-Photo-3",
		5:  "5-Adjustement-Data-5",
		6:  "6-Screenshot-6",
		9:  "9-AlternatePhoto-3rdPartyApp-StillTesting-9",
		13: "13-Movie-13",
		14: "14-Wallpaper-14",
	}),
	decode.Col("zIntResou-Recipe ID", "zIntResou.ZRECIPEID", decode.Ints{
		0:      "0-OrigFileSize_match_FullSizeFileSize-0",
		65737:  "65737-full-JPG_Orig-ProRAW_DNG-65737",
		65739:  "65739-JPG_Large_Thumb-65739",
		65741:  "65741-Various_Asset_Types-or-Thumbs-65741",
		65743:  "65743-ResouType-Photo_5003-or-5005-JPG_Thumb-65743",
		65749:  "65749-LocalVideoKeyFrame-JPG_Thumb-65749",
		65938:  "65938-FullSizeRender-Photo-or-plist-65938",
		131081: "131081-FullSizeRender-Video-or-plist-131081",
		131272: "131272-FullSizeRender-Video_LivePhoto_Adj-Mutation-131272",
		131275: "131275-FullSizeRender-Video_LivePhoto-131275",
		131277: "131277-No-IR-Asset_LivePhoto-iCldSynced-131277",
		131475: "131475-medium-MOV_HEVC-4K-131475",
		327683: "327683-JPG-Thumb_for_3rdParty-StillTesting-327683",
		327687: "327687-WallpaperComputeResource-327687",
	}),
	decode.Col("zIntResou-Compact UTI", "zIntResou.ZCOMPACTUTI", id),
	decode.Col("zIntResou-Data Length", "zIntResou.ZDATALENGTH", id),
	decode.Col("zIntResou-Trashed State", "zIntResou.ZTRASHEDSTATE", decode.Ints{
		0: "0-Not_in_Trash-0",
		1: "1-In_Trash-1",
	}),
	decode.Col("zIntResou-Trash Date", "zIntResou.ZTRASHEDDATE", mactime),
	decode.Col("zIntResou-Fingerprint", "zIntResou.ZFINGERPRINT", id),
	decode.Col("zIntResou-Stable Hash", "zIntResou.ZSTABLEHASH", id),
	decode.Col("zIntResou-Cloud Delete State", "zIntResou.ZCLOUDDELETESTATE", decode.Ints{
		0: "0-Cloud IR Not Deleted-0",
		1: "1-Cloud IR Deleted-1",
	}),
	decode.Col("zIntResou-Cloud Source Type", "zIntResou.ZCLOUDSOURCETYPE", decode.Ints{
		0: "0-NA-0",
		1: "1-Main-Asset-Orig-Size-1",
		2: "2-Photo-with-Adjustments-2",
		3: "3-JPG-Large-Thumb-3",
		4: "4-JPG-Med-Thumb-4",
		5: "5-JPG-Small-Thumb-5",
		6: "6-Video-Med-Data-6",
		7: "7-Video-Small-Data-7",
		8: "8-MP4-Cloud-Share-8",
	}),
	decode.Col("zIntResou-Cloud Last Prefetch Date", "zIntResou.ZCLOUDLASTPREFETCHDATE", zeroNA),
	decode.Col("zIntResou-Cloud Prefetch Count", "zIntResou.ZCLOUDPREFETCHCOUNT", id),
	decode.Col("zIntResou-Cloud Master Date Created", "zIntResou.ZCLOUDMASTERDATECREATED", mactime),
	decode.Col("zIntResou-Datastore Class ID", "zIntResou.ZDATASTORECLASSID", decode.Ints{
		0: "0-LPL-Asset_CPL-Asset-0",
		1: "1-StillTesting-1",
		2: "2-Photo-Cloud-Sharing-Asset-2",
		3: "3-SWY_Syndication_Asset-3",
	}),
	decode.Col("zIntResou-Datastore Sub-Type", "zIntResou.ZDATASTORESUBTYPE", decode.Ints{
		0:  "0-No Cloud Inter Resource-0",
		1:  "1-Main-Asset-Orig-Size-1",
		2:  "2-Photo-with-Adjustments-2",
		3:  "3-JPG-Large-Thumb-3",
		4:  "4-JPG-Med-Thumb-4",
		5:  "5-JPG-Small-Thumb-5",
		6:  "6-Video-Med-Data-6",
		7:  "7-Video-Small-Data-7",
		8:  "8-MP4-Cloud-Share-8",
		9:  "9-StillTesting-9",
		10: "10-3rdParty-App_thumb-StillTesting-10",
		11: "11-StillTesting-11",
		12: "12-StillTesting-12",
		13: "13-PNG-Optimized_CPLAsset-13",
		14: "14-Wallpaper-14",
		15: "15-Has-Markup-and-Adjustments-15",
		16: "16-Video-with-Adj-RenderedPreview-16",
		17: "17-RT-Adj-17",
		18: "18-Live-Photo-Video_Optimized_CPLAsset-18",
		19: "19-Live-Photo-with-Adj-RenderedPreview-19",
		20: "20-StillTesting-20",
		21: "21-MOV-Optimized_HEVC-4K_video-21",
		22: "22-Adjust-Mutation_AAE_Asset-22",
		23: "23-StillTesting-23",
		24: "24-StillTesting-24",
		25: "25-StillTesting-25",
		26: "26-MOV-Optimized_CPLAsset-26",
		27: "27-StillTesting-27",
		28: "28-MOV-Med-hdr-Data-28",
	}),
	decode.Col("zIntResou-Datastore Key Data", "zIntResou.ZDATASTOREKEYDATA", decode.GreaterThan{
		True:  "Datastore Key Data Present",
		False: "No Datastore Key Data",
	}),
	decode.Col("zIntResou-Codec Four Char Code Name", "zIntResou.ZCODECFOURCHARCODENAME", id),
	decode.Col("zIntResou-Height", "zIntResou.ZHEIGHT", id),
	decode.Col("zIntResou-Width", "zIntResou.ZWIDTH", id),
	decode.Col("zIntResou-Unoriented Height", "zIntResou.ZUNORIENTEDHEIGHT", id),
	decode.Col("zIntResou-Unoriented Width", "zIntResou.ZUNORIENTEDWIDTH", id),
	decode.Col("zIntResou-Orientation", "zIntResou.ZORIENTATION", id),
	decode.Col("zIntResou-Quality Sort Value", "zIntResou.ZQUALITYSORTVALUE", id),
	decode.Col("zIntResou-PTP Trashed State", "zIntResou.ZPTPTRASHEDSTATE", decode.Ints{
		0: "0-PTP IntResou Not in Trash-0",
		1: "1-PTP IntResou in Trash-1",
	}),
	decode.Col("zIntResou-UTI Conformance Hint", "zIntResou.ZUTICONFORMANCEHINT", id),
	decode.Col("zIntResou-Asset= zAsset-zPK", "zIntResou.ZASSET", id),
	decode.Col("zIntResou-zENT", "zIntResou.Z_ENT", id),
	decode.Col("zIntResou-zOPT", "zIntResou.Z_OPT", id),
	decode.Col("zIntResou-zPK", "zIntResou.Z_PK", id),

	// cloud master
	decode.Col("zCldMast-Creation Date", "zCldMast.ZCREATIONDATE", mactime),
	decode.Col("zCldMast-Import Date", "zCldMast.ZIMPORTDATE", mactime),
	decode.Col("zCldMast-Cloud Local State", "zCldMast.ZCLOUDLOCALSTATE", decode.Ints{
		0: "0-Not Synced with Cloud-0",
		1: "1-Synced with Cloud-1",
	}),
	decode.Col("zCldMast-Import Session ID", "zCldMast.ZIMPORTSESSIONID", id),
	decode.Col("zCldMast-Imported By", "zCldMast.ZIMPORTEDBY", decode.Ints{
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
	decode.Col("zCldMast-Cloud Master GUID", "zCldMast.ZCLOUDMASTERGUID", id),
	decode.Col("zCldMast-UTI", "zCldMast.ZUNIFORMTYPEIDENTIFIER", id),
	decode.Col("zCldMast-Full Size JPEG Source", "zCldMast.ZFULLSIZEJPEGSOURCE", decode.Ints{
		0: "0-CldMast-JPEG-Source-Video Still-Testing-0",
		1: "1-CldMast-JPEG-Source-Other- Still-Testing-1",
	}),
	decode.Col("zCldMast-Placeholder State", "zCldMast.ZPLACEHOLDERSTATE", id),
	decode.Col("zCldMast-Media Metadata Type", "zCldMast.ZMEDIAMETADATATYPE", id),
	decode.Col("zCldMast-Media Metadata= CMzCldMastMedData-zPK", "zCldMast.ZMEDIAMETADATA", id),
	decode.Col("zCldMast-Original Orientation", "zCldMast.ZORIGINALORIENTATION", id),
	decode.Col("zCldMast-Codec Name", "zCldMast.ZCODECNAME", id),
	decode.Col("zCldMast-Video Frame Rate", "zCldMast.ZVIDEOFRAMERATE", id),
	decode.Col("zCldMast-Moment Share= zShare-zPK", "zCldMast.ZMOMENTSHARE", id),
	decode.Col("zCldMast-zENT", "zCldMast.Z_ENT", id),
	decode.Col("zCldMast-zOPT", "zCldMast.Z_OPT", id),
	decode.Col("zCldMast-zPK", "zCldMast.Z_PK", id),
	decode.Col("CMzCldMastMedData-Data", "CMzCldMastMedData.ZDATA", decode.GreaterThan{
		True:  "CldMastMedData Plist Present",
		False: "No CldMastMedData Plist",
	}),
	decode.Col("CMzCldMastMedData-Cloud Master= zCldMast-zPK", "CMzCldMastMedData.ZCLOUDMASTER", id),
	decode.Col("CMzCldMastMedData-Additional Asset Attributes= zAddAssetAttr-zPK", "CMzCldMastMedData.ZADDITIONALASSETATTRIBUTES", id),
	decode.Col("CMzCldMastMedData-zENT", "CMzCldMastMedData.Z_ENT", id),
	decode.Col("CMzCldMastMedData-zOPT", "CMzCldMastMedData.Z_OPT", id),
	decode.Col("CMzCldMastMedData-zPK", "CMzCldMastMedData.Z_PK", id),

	// cloud resources
	decode.Col("zCldRes-Cloud Last Prefetch Date", "zCldRes.ZLASTPREFETCHDATE", zeroNA),
	decode.Col("zCldRes-Cloud Prefetch Count", "zCldRes.ZPREFETCHCOUNT", id),
	decode.Col("zCldRes-Cloud Last OnDemand Download Date", "zCldRes.ZLASTONDEMANDDOWNLOADDATE", zeroNA),
	decode.Col("zCldRes-Cloud Local State", "zCldRes.ZISLOCALLYAVAILABLE", decode.Ints{
		0: "0-Not Available Locally-0",
		1: "1-Available Locally-1",
	}),
	decode.Col("zCldRes-Available", "zCldRes.ZISAVAILABLE", decode.Ints{
		0: "0-Not Available in Cloud-0",
		1: "1-Available in Cloud-1",
	}),
	decode.Col("zCldRes-Date Created", "zCldRes.ZDATECREATED", mactime),
	decode.Col("zCldRes-Type", "zCldRes.ZTYPE", decode.Ints{
		1:  "1-JPG-Thumb-1",
		2:  "2-JPG-Large-Thumb-2",
		3:  "3-JPG-Medium-3",
		4:  "4-Original-4",
		5:  "5-JPG-Full-Size-5",
		6:  "6-Video-Medium-6",
		7:  "7-Video-Full-Size-7",
		8:  "8-Live-Photo-8",
		9:  "9-Adjustment-Data-9",
		10: "10-Alternate-10",
		11: "11-Video-Key-Frame-11",
		12: "12-Video-Large-12",
		13: "13-StillTesting-13",
		14: "14-Wallpaper-14",
	}),
	decode.Col("zCldRes-Data Length", "zCldRes.ZDATALENGTH", id),
	decode.Col("zCldRes-File Size", "zCldRes.ZFILESIZE", id),
	decode.Col("zCldRes-Height", "zCldRes.ZHEIGHT", id),
	decode.Col("zCldRes-Width", "zCldRes.ZWIDTH", id),
	decode.Col("zCldRes-Fingerprint", "zCldRes.ZFINGERPRINT", id),
	decode.Col("zCldRes-Item ID", "zCldRes.ZITEMIDENTIFIER", id),
	decode.Col("zCldRes-UTI", "zCldRes.ZUNIFORMTYPEIDENTIFIER", id),
	decode.Col("zCldRes-Pruned At", "zCldRes.ZPRUNEDAT", mactime),
	decode.Col("zCldRes-File Path", "zCldRes.ZFILEPATH", id),
	decode.Col("zCldRes-Storage Class", "zCldRes.ZSTORAGECLASS", id),
	decode.Col("zCldRes-Asset= zAsset-zPK", "zCldRes.ZASSET", id),
	decode.Col("zCldRes-Cloud Master= zCldMast-zPK", "zCldRes.ZCLOUDMASTER", id),
	decode.Col("zCldRes-zENT", "zCldRes.Z_ENT", id),
	decode.Col("zCldRes-zOPT", "zCldRes.Z_OPT", id),
	decode.Col("zCldRes-zPK", "zCldRes.Z_PK", id),
}
