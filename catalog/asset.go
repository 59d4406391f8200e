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

var avalanchePick = decode.Ints{
	0:  "0-NA-Single_Asset_Burst_UUID-0_RT",
	2:  "2-Burst_Asset_Not_Selected-2",
	4:  "4-Burst_Asset_PhotosApp_Picked_KeyImage-4",
	8:  "8-Burst_Asset_Selected_for_LPL-8",
	16: "16-Top_Burst_Asset_inStack_KeyImage-16",
	32: "32-StillTesting-32",
	52: "52-Burst_Asset_Visible_LPL-52",
}

var assetColumns = []decode.Column{
	decode.Col(AddedDate, "zAsset.ZADDEDDATE", mactime),
	decode.Col("zAsset Sort Token", "zAsset.ZSORTTOKEN", id),
	decode.Col("zAsset-Date Created", "zAsset.ZDATECREATED", mactime),
	decode.Col("zAddAssetAttr-Creation Date Source", "zAddAssetAttr.ZDATECREATEDSOURCE", decode.Ints{
		0: "0-Cloud-Asset-0",
		1: "1-Local_Asset_EXIF-1",
		3: "3-Local_Asset_No_EXIF-3",
	}),
	decode.Col("zAsset-Directory-Path", "zAsset.ZDIRECTORY", id),
	decode.Col(Filename, "zAsset.ZFILENAME", id),
	decode.Col("zAddAssetAttr-Original Filename", "zAddAssetAttr.ZORIGINALFILENAME", id),
	decode.Col("zCldMast-Original Filename", "zCldMast.ZORIGINALFILENAME", id),
	decode.Col("zAsset-Modification Date", "zAsset.ZMODIFICATIONDATE", mactime),
	decode.Col("zAsset-Last Shared Date", "zAsset.ZLASTSHAREDDATE", mactime),
	decode.Col("zAsset-Trashed Date", "zAsset.ZTRASHEDDATE", mactime),
	decode.Col("zAsset-Trashed State-LocalAssetRecentlyDeleted", "zAsset.ZTRASHEDSTATE", decode.Ints{
		0: "0-zAsset-Asset Not In Trash-Recently Deleted-0",
		1: "1-zAsset-Asset In Trash-Recently Deleted-1",
	}),
	decode.Col("zAsset Complete", "zAsset.ZCOMPLETE", decode.Ints{
		1: "1-Yes-1",
	}),
	decode.Col("zAsset-Kind", "zAsset.ZKIND", decode.Ints{
		0: "0-Photo-0",
		1: "1-Video-1",
	}),
	decode.Col("zAsset-Kind-Sub-Type", "zAsset.ZKINDSUBTYPE", decode.Ints{
		0:   "0-Still-Photo-0",
		1:   "1-Paorama-1",
		2:   "2-Live-Photo-2",
		10:  "10-SpringBoard-Screenshot-10",
		100: "100-Video-100",
		101: "101-Slow-Mo-Video-101",
		102: "102-Time-lapse-Video-102",
		103: "103-Replay_Screen_Recording-103",
	}),
	decode.Col("zAsset-Playback Style", "zAsset.ZPLAYBACKSTYLE", decode.Ints{
		1: "1-Image-1",
		2: "2-Image-Animated-2",
		3: "3-Live-Photo-3",
		4: "4-Video-4",
		5: "5-Video-Looping-5",
	}),
	decode.Col("zAsset-Playback Variation", "zAsset.ZPLAYBACKVARIATION", decode.Ints{
		0: "0-No_Playback_Variation-0",
		1: "1-Playback_Var_Loop-1",
		2: "2-Playback_Var_Bounce-2",
		3: "3-Playback_Var_Long_Exposure-3",
	}),
	decode.Col("zAsset-Uniform Type ID", "zAsset.ZUNIFORMTYPEIDENTIFIER", id),
	decode.Col("zAsset-Orientation", "zAsset.ZORIENTATION", decode.Ints{
		1: "1-Video-Default/Adjustment/Horizontal-Camera-(left)-1",
		2: "2-Horizontal-Camera-(right)-2",
		3: "3-Horizontal-Camera-(right)-3",
		4: "4-Horizontal-Camera-(left)-4",
		5: "5-Vertical-Camera-(top)-5",
		6: "6-Vertical-Camera-(top)-6",
		7: "7-Vertical-Camera-(bottom)-7",
		8: "8-Vertical-Camera-(bottom)-8",
	}),
	decode.Col("zAsset-Height", "zAsset.ZHEIGHT", id),
	decode.Col("zAsset-Width", "zAsset.ZWIDTH", id),
	decode.Col("zAsset-Duration", "zAsset.ZDURATION", id),
	decode.Col("zAsset-Video Key Frame Time Scale", "zAsset.ZVIDEOKEYFRAMETIMESCALE", id),
	decode.Col("zAsset-Video Key Frame Value", "zAsset.ZVIDEOKEYFRAMEVALUE", id),
	decode.Col("zAsset-Favorite", "zAsset.ZFAVORITE", decode.Ints{
		0: "0-Asset Not Favorite-0",
		1: "1-Asset Favorite-1",
	}),
	decode.Col("zAsset-Hidden", "zAsset.ZHIDDEN", decode.Ints{
		0: "0-Asset Not Hidden-0",
		1: "1-Asset Hidden-1",
	}),
	decode.Col("zAsset-Visibility State", "zAsset.ZVISIBILITYSTATE", decode.Ints{
		0: "0-Visible-PL-CameraRoll-0",
		2: "2-Not-Visible-PL-CameraRoll-2",
	}),
	decode.Col("zAsset-Saved Asset Type", "zAsset.ZSAVEDASSETTYPE", decode.Ints{
		0:  "0-Saved-via-other-source-0",
		1:  "1-StillTesting-1",
		2:  "2-StillTesting-2",
		3:  "3-PhDaPs-Asset_or_SyndPs-Asset_NoAuto-Display-3",
		4:  "4-Photo-Cloud-Sharing-Data-Asset-4",
		5:  "5-PhotoBooth_Photo-Library-Asset-5",
		6:  "6-Cloud-Photo-Library-Asset-6",
		7:  "7-StillTesting-7",
		8:  "8-iCloudLink_CloudMasterMomentAsset-8",
		12: "12-SWY-Syndication-PL-Asset_Auto-Display_In_CameraRoll-12",
	}),
	decode.Col("zAsset-Bundle Scope", "zAsset.ZBUNDLESCOPE", decode.Ints{
		0: "0-iCldPhtos-ON-AssetNotInSharedAlbum_or_iCldPhtos-OFF-AssetOnLocalDevice-0",
		1: "1-StillTesting-1",
		2: "2-iCldPhtos-ON-AssetInCloudSharedAlbum-2",
		3: "3-iCldPhtos-ON-AssetIsInSWYConversation-3",
	}),
	decode.Col("zAsset-Avalanche UUID", "zAsset.ZAVALANCHEUUID", id),
	decode.Col("zAsset-Avalanche Pick Type-BurstAsset", "zAsset.ZAVALANCHEPICKTYPE", avalanchePick),
	decode.Col("zAsset-Deferred Processing Needed", "zAsset.ZDEFERREDPROCESSINGNEEDED", decode.Ints{
		0: "0-Not_Needed-0",
		1: "1-Needed-1",
		2: "2-StillTesting-2",
		3: "3-StillTesting-3",
	}),
	decode.Col("zAsset-Video Deferred Processing Needed", "zAsset.ZVIDEODEFERREDPROCESSINGNEEDED", yesNo),
	decode.Col("zAsset-Has Adjustments-Camera-Effects-Filters", "zAsset.ZHASADJUSTMENTS", decode.Ints{
		0: "0-No-Adjustments-0",
		1: "1-Yes-Adjustments-1",
	}),
	decode.Col("zAsset-Adjustment Timestamp", "zAsset.ZADJUSTMENTTIMESTAMP", mactime),
	decode.Col("zAsset-Analysis State Modification Date", "zAsset.ZANALYSISSTATEMODIFICATIONDATE", mactime),
	decode.Col("zAsset-Highlight Visibility Score", "zAsset.ZHIGHLIGHTVISIBILITYSCORE", id),
	decode.Col("zAsset-Depth_Type", "zAsset.ZDEPTHTYPE", decode.Ints{
		0: "0-Not_Depth_Photo-0",
		1: "1-Depth_Photo-1",
	}),
	decode.Col("zAsset-Thumbnail Index", "zAsset.ZTHUMBNAILINDEX", id),
	decode.Col(Latitude, "zAsset.ZLATITUDE", id),
	decode.Col(Longitude, "zAsset.ZLONGITUDE", id),
	decode.Col("zAsset-Location Data", "zAsset.ZLOCATIONDATA", decode.GreaterThan{
		True:  "Location Data Present in zAsset",
		False: "No Location Data in zAsset",
	}),
	decode.Col("zAsset-Packed Acceptable Crop Rect", "zAsset.ZPACKEDACCEPTABLECROPRECT", id),
	decode.Col("zAsset-Packed Badge Attributes", "zAsset.ZPACKEDBADGEATTRIBUTES", decode.Ints{
		1:      "1-No-Badges-1",
		2:      "2-Unknown-2",
		8:      "8-Unknown-8",
		16:     "16-Unknown-16",
		131073: "131073-Unknown-131073",
	}),
	decode.Col("zAsset-Cloud Asset GUID", "zAsset.ZCLOUDASSETGUID", id),
	decode.Col("zAsset-Cloud Collection GUID", "zAsset.ZCLOUDCOLLECTIONGUID", id),
	decode.Col("zAsset-Cloud is My Asset", "zAsset.ZCLOUDISMYASSET", decode.Ints{
		0: "0-Not_My_Asset_in_Shared_Album-0",
		1: "1-My_Asset_in_Shared_Album-1",
	}),
	decode.Col("zAsset-Cloud is deletable Asset", "zAsset.ZCLOUDISDELETABLE", decode.Ints{
		0: "0-No-0",
		1: "1-Yes-1",
	}),
	decode.Col("zAsset-Cloud_Local_State", "zAsset.ZCLOUDLOCALSTATE", decode.Ints{
		0: "0-Local_Asset_Not_Synced_to_Cloud-0",
		1: "1-Local_Asset_Synced_to_Cloud-1",
	}),
	decode.Col("zAsset-Cloud Placeholder Kind", "zAsset.ZCLOUDPLACEHOLDERKIND", decode.Ints{
		0: "0-Local&CloudMaster Asset-0",
		1: "1-StillTesting-1",
		2: "2-StillTesting-2",
		3: "3-JPG-Asset_Only_PhDa/Thumb/V2-3",
		4: "4-LPL-JPG-Asset_CPLAsset-OtherType-4",
		5: "5-Asset_synced_CPL_2_Device-5",
		6: "6-StillTesting-6",
		7: "7-LPL-poster-JPG-Asset_CPLAsset-MP4-7",
		8: "8-LPL-JPG_Asset_CPLAsset-LivePhoto-MOV-8",
		9: "9-CPL_MP4_Asset_Saved_2_LPL-9",
	}),
	decode.Col("zAsset-Cloud Avalanche Pick Type-BurstAsset", "zAsset.ZCLOUDAVALANCHEPICKTYPE", avalanchePick),
	decode.Col("zAsset-Cloud Last Prefetch Date", "zAsset.ZCLOUDLASTPREFETCHDATE", zeroNA),
	decode.Col("zAsset-Cloud Prefetch Count", "zAsset.ZCLOUDPREFETCHCOUNT", id),
	decode.Col("zAsset-Cloud Batch Publish Date", "zAsset.ZCLOUDBATCHPUBLISHDATE", mactime),
	decode.Col("zAsset-Cloud Server Publish Date", "zAsset.ZCLOUDSERVERPUBLISHDATE", mactime),
	decode.Col("zAsset-Cloud Download Requests", "zAsset.ZCLOUDDOWNLOADREQUESTS", id),
	decode.Col("zAsset-Cloud Batch ID", "zAsset.ZCLOUDBATCHID", id),
	decode.Col("zAsset-Cloud Delete State", "zAsset.ZCLOUDDELETESTATE", decode.Ints{
		0: "0-Cloud Not Deleted-0",
		1: "1-Cloud Deleted-1",
	}),
	decode.Col("zAsset-Cloud Owner Hashed Person ID", "zAsset.ZCLOUDOWNERHASHEDPERSONID", id),
	decode.Col("zAsset-Cloud Has Comments by Me", "zAsset.ZCLOUDHASCOMMENTSBYME", decode.Ints{
		1: "1-Yes-1",
	}),
	decode.Col("zAsset-Cloud Has Comments Conversation", "zAsset.ZCLOUDHASCOMMENTSCONVERSATION", decode.Ints{
		1: "1-Yes-1",
	}),
	decode.Col("zAsset-Cloud Has Unseen Comments", "zAsset.ZCLOUDHASUNSEENCOMMENTS", decode.Ints{
		0: "0-zAsset-No Unseen Comments-0",
		1: "1-zAsset-Unseen Comments-1",
	}),
	decode.Col("zAsset-Cloud Has Shared Album Comments", "zAsset.ZCLOUDHASSHAREDASSETCOMMENTS", yesNo),
	decode.Col("zAsset-Conversation= zGenAlbum_zPK", "zAsset.ZCONVERSATION", id),
	decode.Col("zAsset-Day Group Highlight Being Assets", "zAsset.ZDAYGROUPHIGHLIGHTBEINGASSETS", id),
	decode.Col("zAsset-Highlight Being Assets-HBA Key", "zAsset.ZHIGHLIGHTBEINGASSETS", id),
	decode.Col("zAsset-Highlight Being Extended Assets", "zAsset.ZHIGHLIGHTBEINGEXTENDEDASSETS", id),
	decode.Col("zAsset-Highlight Being Summary Assets", "zAsset.ZHIGHLIGHTBEINGSUMMARYASSETS", id),
	decode.Col("zAsset-Moment Share", "zAsset.ZMOMENTSHARE", id),
	decode.Col("zAsset-Imported Session ID", "zAsset.ZIMPORTSESSION", id),
	decode.Col("zAsset-Master= zCldMast-zPK", "zAsset.ZMASTER", id),
	decode.Col("zAsset-Extended Attributes= zExtAttr-zPK", "zAsset.ZEXTENDEDATTRIBUTES", id),
	decode.Col("zAsset-Moment Key= zMoment-zPK", "zAsset.ZMOMENT", id),
	decode.Col("zAsset-Additional Attributes= zAddAssetAttr-zPK", "zAsset.ZADDITIONALATTRIBUTES", id),
	decode.Col("zAsset-Computed Attributes= zCompAssetAttr-zPK", "zAsset.ZCOMPUTEDATTRIBUTES", id),
	decode.Col("zAsset-Media Analysis Attributes= zMedAnlyAstAttr-zPK", "zAsset.ZMEDIAANALYSISATTRIBUTES", id),
	decode.Col("zAsset-Camera Processing Adjustment State", "zAsset.ZCAMERAPROCESSINGADJUSTMENTSTATE", decode.Ints{
		0:      "0-No-Camera-Processing-0",
		1:      "1-StillTesting-1",
		2:      "2-Portrait-Lighting-2",
		4:      "4-StillTesting-4",
		8:      "8-StillTesting-8",
		16:     "16-Semantic-Style-16",
		65536:  "65536-StillTesting-65536",
		131072: "131072-StillTesting-131072",
	}),
	decode.Col("zAsset-Duplicate Asset Visibility State", "zAsset.ZDUPLICATEASSETVISIBILITYSTATE", decode.Ints{
		0: "0-No-Duplicates-0",
		1: "1-Has-Duplicate-1",
		2: "2-Is-a-Duplicate-2",
	}),
	decode.Col("zAsset-HDR Type", "zAsset.ZHDRTYPE", decode.Ints{
		0: "0-No-HDR-0",
		3: "3-HDR_Photo-3",
		4: "4-Non-HDR_Version-4",
		5: "5-HEVC_Movie_with_HDR-5",
		6: "6-Panorama-6",
		9: "9-StillTesting-9",
	}),
	decode.Col("zAsset-HDR Gain", "zAsset.ZHDRGAIN", id),
	decode.Col("zAsset-High Frame Rate State", "zAsset.ZHIGHFRAMERATESTATE", decode.Ints{
		0: "0-Normal-Frame-Rate-0",
		1: "1-High-Frame-Rate-1",
	}),
	decode.Col("zAsset-Local Resources Fidelity", "zAsset.ZLOCALRESOURCESFIDELITY", id),
	decode.Col("zAsset-Search Index Rebuild State", "zAsset.ZSEARCHINDEXREBUILDSTATE", id),
	decode.Col("zAsset-Syndication State", "zAsset.ZSYNDICATIONSTATE", decode.WithFallback(decode.Ints{
		0: "0-Local_PL_Asset_Syndication_State_Unset-0",
		1: "1-SWY_Asset_Not_Saved_to_Library-1",
		2: "2-SWY_Asset_Saved_to_Library-2",
		8: "8-SWY_Asset_Syndication_Deleted-8",
	}, "Unknown-Syndication-State!: ")),
	decode.Col("zAsset-Face Area Points", "zAsset.ZFACEAREAPOINTS", decode.GreaterThan{
		True:  "Face Area Points Detected in zAsset",
		False: "No Face Area Points in zAsset",
	}),
	decode.Col("zAsset-Face Adjustment Version", "zAsset.ZFACEADJUSTMENTVERSION", mactime),
	decode.Col("zAsset-Curation Score", "zAsset.ZCURATIONSCORE", id),
	decode.Col("zAsset-Iconic Score", "zAsset.ZICONICSCORE", id),
	decode.Col("zAsset-Overall Aesthetic Score", "zAsset.ZOVERALLAESTHETICSCORE", id),
	decode.Col("zAsset-Promotion Score", "zAsset.ZPROMOTIONSCORE", id),
	decode.Col("zAsset-Media Group UUID", "zAsset.ZMEDIAGROUPUUID", id),
	decode.Col("zAsset-Original Color Space", "zAsset.ZORIGINALCOLORSPACE", id),
	decode.Col("zAsset-Image Request Hints", "zAsset.ZIMAGEREQUESTHINTS", decode.GreaterThan{
		True:  "Image Request Hints Present",
		False: "No Image Request Hints",
	}),
	decode.Col("zAsset-Packed Preferred Crop Rect", "zAsset.ZPACKEDPREFERREDCROPRECT", id),
	decode.Col("zAsset-Video CP Duration Value", "zAsset.ZVIDEOCPDURATIONVALUE", id),
	decode.Col("zAsset-Video CP Duration Time Scale", "zAsset.ZVIDEOCPDURATIONTIMESCALE", id),
	decode.Col("zAsset-Video CP Display Value", "zAsset.ZVIDEOCPDISPLAYVALUE", id),
	decode.Col("zAsset-Video CP Display Time Scale", "zAsset.ZVIDEOCPDISPLAYTIMESCALE", id),
	decode.Col("zAsset-Video CP Visibility State", "zAsset.ZVIDEOCPVISIBILITYSTATE", decode.Ints{
		0: "0-Video-CP-Not-Visible-0",
		1: "1-Video-CP-Visible-1",
	}),
	decode.Col("zAsset-Cloud Feed Assets Entry= zCldFeedEnt-zPK", "zAsset.ZCLOUDFEEDASSETSENTRY", id),
	decode.Col("zAsset-Trashed by Participant= zSharePartic-zPK", "zAsset.ZTRASHEDBYPARTICIPANT", id),
	decode.Col("zAsset-Photo Analysis Attributes= zPhotoAnalysisAttr-zPK", "zAsset.ZPHOTOANALYSISATTRIBUTES", id),
	decode.Col("zAsset-Day Group Highlight Being Extended Assets", "zAsset.ZDAYGROUPHIGHLIGHTBEINGEXTENDEDASSETS", id),
	decode.Col("zAsset-Day Group Highlight Being Summary Assets", "zAsset.ZDAYGROUPHIGHLIGHTBEINGSUMMARYASSETS", id),
	decode.Col("zAsset-Day Group Highlight Being Key Asset Private", "zAsset.ZDAYGROUPHIGHLIGHTBEINGKEYASSETPRIVATE", id),
	decode.Col("zAsset-Day Group Highlight Being Key Asset Shared", "zAsset.ZDAYGROUPHIGHLIGHTBEINGKEYASSETSHARED", id),
	decode.Col("zAsset-Highlight Being Key Asset Private", "zAsset.ZHIGHLIGHTBEINGKEYASSETPRIVATE", id),
	decode.Col("zAsset-Highlight Being Key Asset Shared", "zAsset.ZHIGHLIGHTBEINGKEYASSETSHARED", id),
	decode.Col("zAsset-Month Highlight Being Key Asset Private", "zAsset.ZMONTHHIGHLIGHTBEINGKEYASSETPRIVATE", id),
	decode.Col("zAsset-Month Highlight Being Key Asset Shared", "zAsset.ZMONTHHIGHLIGHTBEINGKEYASSETSHARED", id),
	decode.Col("zAsset-Year Highlight Being Key Asset Private", "zAsset.ZYEARHIGHLIGHTBEINGKEYASSETPRIVATE", id),
	decode.Col("zAsset-Year Highlight Being Key Asset Shared", "zAsset.ZYEARHIGHLIGHTBEINGKEYASSETSHARED", id),
	decode.Col("zAsset-zENT", "zAsset.Z_ENT", id),
	decode.Col("zAsset-zOPT", "zAsset.Z_OPT", id),
	decode.Col("zAsset-zPK", "zAsset.Z_PK", id),
	decode.Col("zAsset-UUID = store.cloudphotodb", "zAsset.ZUUID", id),
}
