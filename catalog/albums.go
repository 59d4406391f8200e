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

var albumKind = decode.Ints{
	2:    "2-Non-Shared-Album-2",
	1505: "1505-Shared-Album-1505",
	1506: "1506-Import_Session_AssetsImportedatSameTime-1506",
	1508: "1508-My_Projects_Album_CalendarCardEct_RT-1508",
	1509: "1509-SWY_Synced_Conversation_Media-1509",
	1552: "1552-Root_Library_Folder-1552",
	3571: "3571-Progress-Sync-3571",
	3572: "3572-Progress-OTA-Restore-3572",
	3573: "3573-Progress-FS-Import-3573",
	3998: "3998-Project Root Folder-3998",
	3999: "3999-Parent_Root_for_Generic_Album-3999",
	4000: "4000-Parent_is_Folder_on_Local_Device-4000",
}

var albumColumns = concat(
	albumAssets,
	genericAlbum("zGenAlbum"),
	albumLists,
	genericAlbum("ParentzGenAlbum"),
	genericAlbum("SWYConverszGenAlbum"),
	momentColumns,
	momentList("zMomentListYear"),
	momentList("zMomentListMega"),
	highlight("zHighlight"),
	highlight("zHighlightParent"),
	highlight("zHighlightDayGroup"),
	highlight("zHighlightMonth"),
	highlight("zHighlightYear"),
	memoryColumns,
	suggestionColumns,
	keywordColumns,
)

// genericAlbum lists the ZGENERICALBUM columns under the alias t. The table
// is joined as the album of the asset, its parent folder and the SWY
// conversation.
func genericAlbum(t table) []decode.Column {
	return []decode.Column{
		t.col("Album Kind", "ZKIND", albumKind),
		t.col("Title/User&System Applied", "ZTITLE", id),
		t.col("Import Session ID", "ZIMPORTSESSIONID", id),
		t.col("Imported by Bundle Identifier", "ZIMPORTEDBYBUNDLEIDENTIFIER", id),
		t.col("Creation Date", "ZCREATIONDATE", mactime),
		t.col("Start Date", "ZSTARTDATE", mactime),
		t.col("End Date", "ZENDDATE", mactime),
		t.col("Album Trash Date", "ZTRASHEDDATE", mactime),
		t.col("Album Trashed State", "ZTRASHEDSTATE", decode.Ints{
			0: "0-Album Not in Trash-0",
			1: "1-Album in Trash-1",
		}),
		t.col("Cloud Local State", "ZCLOUDLOCALSTATE", decode.Ints{
			0: "0-iCloud Album Not Synced-0",
			1: "1-iCloud Album Synced-1",
		}),
		t.col("Cloud Delete State", "ZCLOUDDELETESTATE", decode.Ints{
			0: "0-Cloud Album Not Deleted-0",
			1: "1-Cloud Album Deleted-1",
		}),
		t.col("Cloud Creation Date", "ZCLOUDCREATIONDATE", mactime),
		t.col("Cloud Subscription Date", "ZCLOUDSUBSCRIPTIONDATE", mactime),
		t.col("Cloud Last Contribution Date", "ZCLOUDLASTCONTRIBUTIONDATE", mactime),
		t.col("Cloud Last Interesting Change Date", "ZCLOUDLASTINTERESTINGCHANGEDATE", mactime),
		t.col("Cloud Owner Hashed Person ID", "ZCLOUDOWNERHASHEDPERSONID", id),
		t.col("Cloud Owner First Name", "ZCLOUDOWNERFIRSTNAME", id),
		t.col("Cloud Owner Last Name", "ZCLOUDOWNERLASTNAME", id),
		t.col("Cloud Owner Full Name", "ZCLOUDOWNERFULLNAME", id),
		t.col("Cloud Owner Email Key", "ZCLOUDOWNEREMAILKEY", id),
		t.col("Cloud Owner Is Whitelisted", "ZCLOUDOWNERISWHITELISTED", yesNo),
		t.col("Cloud Public URL Enabled", "ZCLOUDPUBLICURLENABLED", decode.Ints{
			0: "0-iCldPL-Public URL Not Enabled-0",
			1: "1-iCldPL-Public URL Enabled-1",
		}),
		t.col("Cloud Public URL Enabled Local", "ZCLOUDPUBLICURLENABLEDLOCAL", decode.Ints{
			0: "0-iCldPL-Local-Public URL Not Enabled-0",
			1: "1-iCldPL-Local-Public URL Enabled-1",
		}),
		t.col("Public URL", "ZPUBLICURL", id),
		t.col("Cloud Multi Contributors Enabled", "ZCLOUDMULTIPLECONTRIBUTORSENABLED", decode.Ints{
			0: "0-Multi Contributors Not Enabled-0",
			1: "1-Multi Contributors Enabled-1",
		}),
		t.col("Cloud Multi Contributors Enabled Local", "ZCLOUDMULTIPLECONTRIBUTORSENABLEDLOCAL", decode.Ints{
			0: "0-Local-Multi Contributors Not Enabled-0",
			1: "1-Local-Multi Contributors Enabled-1",
		}),
		t.col("Cloud Relationship State", "ZCLOUDRELATIONSHIPSTATE", decode.Ints{
			0: "0-Album Owner-0",
			2: "2-Album Subscriber-2",
		}),
		t.col("Cloud Relationship State Local", "ZCLOUDRELATIONSHIPSTATELOCAL", decode.Ints{
			0: "0-Local-Album Owner-0",
			2: "2-Local-Album Subscriber-2",
		}),
		t.col("Cloud Notifications Enabled", "ZCLOUDNOTIFICATIONSENABLED", decode.Ints{
			0: "0-Notifications Not Enabled-0",
			1: "1-Notifications Enabled-1",
		}),
		t.col("Cloud Album Sub Type", "ZCLOUDALBUMSUBTYPE", id),
		t.col("Pinned", "ZISPINNED", decode.Ints{
			0: "0-Not Pinned-0",
			1: "1-Pinned-1",
		}),
		t.col("Is Owned", "ZISOWNED", yesNo),
		t.col("Custom Sort Key", "ZCUSTOMSORTKEY", decode.Ints{
			1: "1-zGenAlbum-Sorted_Manually-1",
			5: "5-zGenAlbum-Sorted_by_Date-5",
		}),
		t.col("Custom Sort Ascending", "ZCUSTOMSORTASCENDING", decode.Ints{
			0: "0-zGenAlbum-Sorted_Newest_First-0",
			1: "1-zGenAlbum-Sorted_Oldest_First-1",
		}),
		t.col("Is Prototype", "ZISPROTOTYPE", decode.Ints{
			0: "0-Album Not Prototype-0",
			1: "1-Album Prototype-1",
		}),
		t.col("Project Document Type", "ZPROJECTDOCUMENTTYPE", id),
		t.col("Project Render UUID", "ZPROJECTRENDERUUID", id),
		t.col("Project Data", "ZPROJECTDATA", decode.GreaterThan{
			True:  "Project Data Present",
			False: "No Project Data",
		}),
		t.col("Project Extension Data", "ZPROJECTEXTENSIONDATA", decode.GreaterThan{
			True:  "Project Extension Data Present",
			False: "No Project Extension Data",
		}),
		t.col("Custom Query Type", "ZCUSTOMQUERYTYPE", id),
		t.col("Custom Query Parameters", "ZCUSTOMQUERYPARAMETERS", decode.GreaterThan{
			True:  "Custom Query Parameters Present",
			False: "No Custom Query Parameters",
		}),
		t.col("User Query Data", "ZUSERQUERYDATA", decode.GreaterThan{
			True:  "User Query Data Present",
			False: "No User Query Data",
		}),
		t.col("Syndicate", "ZSYNDICATE", yesNo),
		t.col("Search Index Rebuild State", "ZSEARCHINDEXREBUILDSTATE", id),
		t.col("Pending Items Count", "ZPENDINGITEMSCOUNT", id),
		t.col("Pending Items Type", "ZPENDINGITEMSTYPE", decode.Ints{
			1: "1-StillTesting-1",
			2: "2-StillTesting-2",
		}),
		t.col("Has Unseen Content", "ZHASUNSEENCONTENT", decode.Ints{
			0: "0-No Unseen Content-0",
			1: "1-Unseen Content-1",
		}),
		t.col("Unseen Asset Count", "ZUNSEENASSETSCOUNT", id),
		t.col("Cached Photos Count", "ZCACHEDPHOTOSCOUNT", id),
		t.col("Cached Videos Count", "ZCACHEDVIDEOSCOUNT", id),
		t.col("Cached Count", "ZCACHEDCOUNT", id),
		t.col("Custom Key Asset= zAsset-zPK", "ZCUSTOMKEYASSET", id),
		t.col("Key Asset= zAsset-zPK", "ZKEYASSET", id),
		t.col("Secondary Key Asset= zAsset-zPK", "ZSECONDARYKEYASSET", id),
		t.col("Tertiary Key Asset= zAsset-zPK", "ZTERTIARYKEYASSET", id),
		t.col("Parent Folder= zGenAlbum-zPK", "ZPARENTFOLDER", id),
		t.col("FOK Parent Folder", "Z_FOK_PARENTFOLDER", id),
		t.col("UUID", "ZUUID", id),
		t.col("Cloud GUID", "ZCLOUDGUID", id),
		t.col("zENT", "Z_ENT", id),
		t.col("zOPT", "Z_OPT", id),
		t.col("zPK", "Z_PK", id),
	}
}

var albumAssets = []decode.Column{
	decode.Col("zAlbumAssets-Asset= zAsset-zPK", "zAlbumAssets.Z_3ASSETS", id),
	decode.Col("zAlbumAssets-Album= zGenAlbum-zPK", "zAlbumAssets.Z_26ALBUMS", id),
	decode.Col("zAlbumAssets-FOK Asset", "zAlbumAssets.Z_FOK_3ASSETS", id),
}

var albumLists = []decode.Column{
	decode.Col("zAlbumLists-Album List= zAlbumList-zPK", "zAlbumLists.Z_2ALBUMLISTS", id),
	decode.Col("zAlbumLists-Album= zGenAlbum-zPK", "zAlbumLists.Z_26ALBUMS", id),
	decode.Col("zAlbumLists-FOK Album", "zAlbumLists.Z_FOK_26ALBUMS", id),
	decode.Col("zAlbumList-Identifier", "zAlbumList.ZIDENTIFIER", decode.Ints{
		1:  "1-Root Album List-1",
		2:  "2-Project Album List-2",
		3:  "3-Import Session List-3",
		4:  "4-Top Level Folder-4",
		5:  "5-Shared Album List-5",
		9:  "9-StillTesting-9",
		10: "10-SWY Conversation List-10",
	}),
	decode.Col("zAlbumList-Needs Reordering Number", "zAlbumList.ZNEEDSREORDERINGNUMBER", id),
	decode.Col("zAlbumList-UUID", "zAlbumList.ZUUID", id),
	decode.Col("zAlbumList-zENT", "zAlbumList.Z_ENT", id),
	decode.Col("zAlbumList-zOPT", "zAlbumList.Z_OPT", id),
	decode.Col("zAlbumList-zPK", "zAlbumList.Z_PK", id),
}

var momentColumns = []decode.Column{
	decode.Col("zMoment-Title", "zMoment.ZTITLE", id),
	decode.Col("zMoment-Subtitle", "zMoment.ZSUBTITLE", id),
	decode.Col("zMoment-Start Date", "zMoment.ZSTARTDATE", mactime),
	decode.Col("zMoment-Representative Date", "zMoment.ZREPRESENTATIVEDATE", mactime),
	decode.Col("zMoment-End Date", "zMoment.ZENDDATE", mactime),
	decode.Col("zMoment-Modification Date", "zMoment.ZMODIFICATIONDATE", mactime),
	decode.Col("zMoment-Approx Latitude", "zMoment.ZAPPROXIMATELATITUDE", id),
	decode.Col("zMoment-Approx Longitude", "zMoment.ZAPPROXIMATELONGITUDE", id),
	decode.Col("zMoment-Timezone Offset", "zMoment.ZTIMEZONEOFFSET", id),
	decode.Col("zMoment-Aggregation Score", "zMoment.ZAGGREGATIONSCORE", id),
	decode.Col("zMoment-Generation Type", "zMoment.ZGENERATIONTYPE", id),
	decode.Col("zMoment-Originator State", "zMoment.ZORIGINATORSTATE", id),
	decode.Col("zMoment-Localization Version", "zMoment.ZLOCALIZATIONVERSION", id),
	decode.Col("zMoment-Processed Location", "zMoment.ZPROCESSEDLOCATION", decode.Ints{
		2: "2-No-2",
		3: "3-Has-3",
		6: "6-Yes-6",
	}),
	decode.Col("zMoment-Reverse Location Data Is Valid", "zMoment.ZREVERSELOCATIONDATAISVALID", decode.Ints{
		0: "0-Reverse Location Not Valid-0",
		1: "1-Reverse Location Valid-1",
	}),
	decode.Col("zMoment-Reverse Location Data", "zMoment.ZREVERSELOCATIONDATA", decode.GreaterThan{
		True:  "Reverse Location Data Present",
		False: "No Reverse Location Data",
	}),
	decode.Col("zMoment-Cached Count", "zMoment.ZCACHEDCOUNT", id),
	decode.Col("zMoment-Cached Photos Count", "zMoment.ZCACHEDPHOTOSCOUNT", id),
	decode.Col("zMoment-Cached Videos Count", "zMoment.ZCACHEDVIDEOSCOUNT", id),
	decode.Col("zMoment-Trashed State", "zMoment.ZTRASHEDSTATE", decode.Ints{
		0: "0-zMoment Not in Trash-0",
		1: "1-zMoment In Trash-1",
	}),
	decode.Col("zMoment-Highlight= zHighlight-zPK", "zMoment.ZHIGHLIGHT", id),
	decode.Col("zMoment-Year Moment List= zMomentListYear-zPK", "zMoment.ZYEARMOMENTLIST", id),
	decode.Col("zMoment-Mega Moment List= zMomentListMega-zPK", "zMoment.ZMEGAMOMENTLIST", id),
	decode.Col("zMoment-UUID", "zMoment.ZUUID", id),
	decode.Col("zMoment-zENT", "zMoment.Z_ENT", id),
	decode.Col("zMoment-zOPT", "zMoment.Z_OPT", id),
	decode.Col("zMoment-zPK", "zMoment.Z_PK", id),
}

// momentList lists the ZMOMENTLIST columns under the alias t, joined once for
// the year list and once for the mega moment list.
func momentList(t table) []decode.Column {
	return []decode.Column{
		t.col("Granularity Level", "ZGRANULARITYLEVEL", decode.Ints{
			1: "1-Year-1",
			2: "2-Mega-Moment-2",
		}),
		t.col("Sort Index", "ZSORTINDEX", id),
		t.col("Start Date", "ZSTARTDATE", mactime),
		t.col("Representative Date", "ZREPRESENTATIVEDATE", mactime),
		t.col("End Date", "ZENDDATE", mactime),
		t.col("Cached Count", "ZCACHEDCOUNT", id),
		t.col("Reverse Location Data Is Valid", "ZREVERSELOCATIONDATAISVALID", decode.Ints{
			0: "0-Reverse Location Not Valid-0",
			1: "1-Reverse Location Valid-1",
		}),
		t.col("Reverse Location Data Contains Location", "ZREVERSELOCATIONDATACONTAINSLOCATION", decode.Ints{
			0: "0-No Location-0",
			1: "1-Contains Location-1",
		}),
		t.col("Reverse Location Data", "ZREVERSELOCATIONDATA", decode.GreaterThan{
			True:  "Reverse Location Data Present",
			False: "No Reverse Location Data",
		}),
		t.col("UUID", "ZUUID", id),
		t.col("zENT", "Z_ENT", id),
		t.col("zOPT", "Z_OPT", id),
		t.col("zPK", "Z_PK", id),
	}
}

// highlight lists the ZPHOTOSHIGHLIGHT columns under the alias t. Highlights
// nest: a day group highlight has a parent, month and year highlights have
// the asset as their key asset.
func highlight(t table) []decode.Column {
	return []decode.Column{
		t.col("Title", "ZTITLE", id),
		t.col("Subtitle", "ZSUBTITLE", id),
		t.col("Smart Description", "ZSMARTDESCRIPTION", id),
		t.col("Verbose Smart Description", "ZVERBOSESMARTDESCRIPTION", id),
		t.col("Start Date", "ZSTARTDATE", mactime),
		t.col("Start Timezone Offset", "ZSTARTTIMEZONEOFFSET", id),
		t.col("End Date", "ZENDDATE", mactime),
		t.col("End Timezone Offset", "ZENDTIMEZONEOFFSET", id),
		t.col("Kind", "ZKIND", decode.Ints{
			0: "0-Year&Month Photo-Highlights-0",
			1: "1-Trip-Highlight-1",
			2: "2-Year-Highlight-2",
			3: "3-Month-Highlight-3",
		}),
		t.col("Type", "ZTYPE", decode.Ints{
			1: "1-Photos-Highlights-1",
			2: "2-Day-Group-2",
			3: "3-Month-3",
			4: "4-Year-4",
		}),
		t.col("Category", "ZCATEGORY", decode.Ints{
			0: "0-Past_Highlights-0",
			1: "1-Todays_Highlights-1",
			2: "2-Longest_Highlights-2",
		}),
		t.col("Mood", "ZMOOD", id),
		t.col("Is Curated", "ZISCURATED", yesNo),
		t.col("Enrichment State", "ZENRICHMENTSTATE", id),
		t.col("Enrichment Version", "ZENRICHMENTVERSION", id),
		t.col("Highlight Version", "ZHIGHLIGHTVERSION", id),
		t.col("Promotion Score", "ZPROMOTIONSCORE", id),
		t.col("Visibility State", "ZVISIBILITYSTATE", id),
		t.col("Sharing Composition", "ZSHARINGCOMPOSITION", id),
		t.col("Search Index Rebuild State", "ZSEARCHINDEXREBUILDSTATE", id),
		t.col("Assets Count", "ZASSETSCOUNT", id),
		t.col("Summary Assets Count", "ZSUMMARYASSETSCOUNT", id),
		t.col("Extended Assets Count", "ZEXTENDEDASSETSCOUNT", id),
		t.col("Day Group Assets Count", "ZDAYGROUPASSETSCOUNT", id),
		t.col("Day Group Extended Assets Count", "ZDAYGROUPEXTENDEDASSETSCOUNT", id),
		t.col("Day Group Summary Assets Count", "ZDAYGROUPSUMMARYASSETSCOUNT", id),
		t.col("Key Asset Private= zAsset-zPK", "ZKEYASSETPRIVATE", id),
		t.col("Key Asset Shared= zAsset-zPK", "ZKEYASSETSHARED", id),
		t.col("Day Group Key Asset Private= zAsset-zPK", "ZDAYGROUPKEYASSETPRIVATE", id),
		t.col("Day Group Key Asset Shared= zAsset-zPK", "ZDAYGROUPKEYASSETSHARED", id),
		t.col("Month First Asset= zAsset-zPK", "ZMONTHFIRSTASSET", id),
		t.col("Month Key Asset= zAsset-zPK", "ZMONTHKEYASSET", id),
		t.col("Year Key Asset= zAsset-zPK", "ZYEARKEYASSET", id),
		t.col("Parent Highlight= zHighlight-zPK", "ZPARENTPHOTOSHIGHLIGHT", id),
		t.col("Parent Day Group Highlight= zHighlight-zPK", "ZPARENTDAYGROUPPHOTOSHIGHLIGHT", id),
		t.col("UUID", "ZUUID", id),
		t.col("zENT", "Z_ENT", id),
		t.col("zOPT", "Z_OPT", id),
		t.col("zPK", "Z_PK", id),
	}
}

var memoryColumns = []decode.Column{
	decode.Col("zMemory-Title", "zMemory.ZTITLE", id),
	decode.Col("zMemory-Subtitle", "zMemory.ZSUBTITLE", id),
	decode.Col("zMemory-Creation Date", "zMemory.ZCREATIONDATE", mactime),
	decode.Col("zMemory-Last Viewed Date", "zMemory.ZLASTVIEWEDDATE", mactime),
	decode.Col("zMemory-Last Movie Play Date", "zMemory.ZLASTMOVIEPLAYEDDATE", mactime),
	decode.Col("zMemory-Category", "zMemory.ZCATEGORY", decode.Ints{
		3:   "3-Area-3",
		8:   "8-Trip-8",
		16:  "16-Person-16",
		17:  "17-Social-Group-17",
		18:  "18-Social-Moment-18",
		19:  "19-Seasonal-19",
		20:  "20-Day-20",
		21:  "21-Year-21",
		201: "201-Memory-Type-201",
		203: "203-Past-Supersets-203",
		204: "204-Moment-Trip-204",
		217: "217-Holiday-217",
		218: "218-Recent-Event-218",
		219: "219-Weekend-219",
		220: "220-People-220",
		221: "221-Trip-Highlight-221",
	}),
	decode.Col("zMemory-Sub Category", "zMemory.ZSUBCATEGORY", id),
	decode.Col("zMemory-Score", "zMemory.ZSCORE", id),
	decode.Col("zMemory-Favorite Memory", "zMemory.ZFAVORITE", decode.Ints{
		0: "0-Not Favorite Memory-0",
		1: "1-Favorite Memory-1",
	}),
	decode.Col("zMemory-User Created", "zMemory.ZUSERCREATED", decode.Ints{
		0: "0-Memory Not User Created-0",
		1: "1-Memory User Created-1",
	}),
	decode.Col("zMemory-Pending", "zMemory.ZPENDING", decode.Ints{
		0: "0-No-0",
		1: "1-Yes-1",
		2: "2-StillTesting-2",
	}),
	decode.Col("zMemory-Rejected", "zMemory.ZREJECTED", decode.Ints{
		0: "0-Memory Not Deleted-0",
		1: "1-Memory Deleted-1",
	}),
	decode.Col("zMemory-Notification State", "zMemory.ZNOTIFICATIONSTATE", id),
	decode.Col("zMemory-Pending Play Count", "zMemory.ZPENDINGPLAYCOUNT", id),
	decode.Col("zMemory-Play Count", "zMemory.ZPLAYCOUNT", id),
	decode.Col("zMemory-Pending Share Count", "zMemory.ZPENDINGSHARECOUNT", id),
	decode.Col("zMemory-Share Count", "zMemory.ZSHARECOUNT", id),
	decode.Col("zMemory-Pending View Count", "zMemory.ZPENDINGVIEWCOUNT", id),
	decode.Col("zMemory-View Count", "zMemory.ZVIEWCOUNT", id),
	decode.Col("zMemory-Movie Data", "zMemory.ZMOVIEDATA", decode.GreaterThan{
		True:  "Movie Data Present",
		False: "No Movie Data",
	}),
	decode.Col("zMemory-Photos Graph Data", "zMemory.ZPHOTOSGRAPHDATA", decode.GreaterThan{
		True:  "Photos Graph Data Present",
		False: "No Photos Graph Data",
	}),
	decode.Col("zMemory-Photos Graph Version", "zMemory.ZPHOTOSGRAPHVERSION", id),
	decode.Col("zMemory-Asset List Predicate", "zMemory.ZASSETLISTPREDICATE", decode.GreaterThan{
		True:  "Asset List Predicate Present",
		False: "No Asset List Predicate",
	}),
	decode.Col("zMemory-Blacklisted Feature", "zMemory.ZBLACKLISTEDFEATURE", decode.GreaterThan{
		True:  "Blacklisted Feature Present",
		False: "No Blacklisted Feature",
	}),
	decode.Col("zMemory-Key Asset= zAsset-zPK", "zMemory.ZKEYASSET", id),
	decode.Col("zMemory-UUID", "zMemory.ZUUID", id),
	decode.Col("zMemory-zENT", "zMemory.Z_ENT", id),
	decode.Col("zMemory-zOPT", "zMemory.Z_OPT", id),
	decode.Col("zMemory-zPK", "zMemory.Z_PK", id),
}

var suggestionColumns = []decode.Column{
	decode.Col("zSuggAssets-Key Asset= zAsset-zPK", "zSuggAssets.Z_3KEYASSETS", id),
	decode.Col("zSuggAssets-Suggestion= zSugg-zPK", "zSuggAssets.Z_55SUGGESTIONSBEINGKEYASSETS", id),
	decode.Col("zSugg-Title", "zSugg.ZTITLE", id),
	decode.Col("zSugg-Sub Title", "zSugg.ZSUBTITLE", id),
	decode.Col("zSugg-Creation Date", "zSugg.ZCREATIONDATE", mactime),
	decode.Col("zSugg-Activation Date", "zSugg.ZACTIVATIONDATE", mactime),
	decode.Col("zSugg-Relevant Until Date", "zSugg.ZRELEVANTUNTILDATE", mactime),
	decode.Col("zSugg-Expunge Date", "zSugg.ZEXPUNGEDATE", mactime),
	decode.Col("zSugg-Start Date", "zSugg.ZSTARTDATE", mactime),
	decode.Col("zSugg-End Date", "zSugg.ZENDDATE", mactime),
	decode.Col("zSugg-State", "zSugg.ZSTATE", decode.Ints{
		0: "0-StillTesting-0",
		1: "1-Active-1",
		2: "2-StillTesting-2",
		3: "3-Expunged-3",
		4: "4-Dismissed-4",
		5: "5-Retired-5",
	}),
	decode.Col("zSugg-Featured State", "zSugg.ZFEATUREDSTATE", decode.Ints{
		0: "0-Not Featured-0",
		1: "1-Featured-1",
	}),
	decode.Col("zSugg-Notification State", "zSugg.ZNOTIFICATIONSTATE", id),
	decode.Col("zSugg-Type", "zSugg.ZTYPE", id),
	decode.Col("zSugg-Sub Type", "zSugg.ZSUBTYPE", id),
	decode.Col("zSugg-Version", "zSugg.ZVERSION", id),
	decode.Col("zSugg-Action Data", "zSugg.ZACTIONDATA", decode.GreaterThan{
		True:  "Action Data Present",
		False: "No Action Data",
	}),
	decode.Col("zSugg-Features Data", "zSugg.ZFEATURESDATA", decode.GreaterThan{
		True:  "Features Data Present",
		False: "No Features Data",
	}),
	decode.Col("zSugg-UUID", "zSugg.ZUUID", id),
	decode.Col("zSugg-zENT", "zSugg.Z_ENT", id),
	decode.Col("zSugg-zOPT", "zSugg.Z_OPT", id),
	decode.Col("zSugg-zPK", "zSugg.Z_PK", id),
}

var keywordColumns = []decode.Column{
	decode.Col("zKeywords-Asset Attributes= zAddAssetAttr-zPK", "zKeywords.Z_1ASSETATTRIBUTES", id),
	decode.Col("zKeywords-Keyword= zKeyWrd-zPK", "zKeywords.Z_37KEYWORDS", id),
	decode.Col("zKeyWrd-Title", "zKeyWrd.ZTITLE", id),
	decode.Col("zKeyWrd-Shortcut", "zKeyWrd.ZSHORTCUT", id),
	decode.Col("zKeyWrd-UUID", "zKeyWrd.ZUUID", id),
	decode.Col("zKeyWrd-zENT", "zKeyWrd.Z_ENT", id),
	decode.Col("zKeyWrd-zOPT", "zKeyWrd.Z_OPT", id),
	decode.Col("zKeyWrd-zPK", "zKeyWrd.Z_PK", id),
}
