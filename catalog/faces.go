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

var faceColumns = []decode.Column{
	// detected faces
	decode.Col("zDetFace-Confirmed Face Crop Generation State", "zDetFace.ZCONFIRMEDFACECROPGENERATIONSTATE", decode.Ints{
		0: "0-Not Confirmed-0",
		1: "1-Confirmed-1",
	}),
	decode.Col("zDetFace-Manual", "zDetFace.ZMANUAL", decode.Ints{
		0: "0-zDetFace-Auto-Detect-0",
		1: "1-zDetFace-Manual-Detect-1",
	}),
	decode.Col("zDetFace-Detection Type", "zDetFace.ZDETECTIONTYPE", decode.Ints{
		1: "1-Person-1",
		3: "3-Cat-or-Dog-3",
		4: "4-Dog-4",
	}),
	decode.Col("zDetFace-Gender", "zDetFace.ZGENDERTYPE", decode.Ints{
		0: "0-Unknown-0",
		1: "1-Male-1",
		2: "2-Female-2",
	}),
	decode.Col("zDetFace-Age Type Estimate", "zDetFace.ZAGETYPE", decode.Ints{
		1: "1-Infant/Toddler Age Type-1",
		2: "2-Toddler/Child Age Type-2",
		3: "3-Child/YoungAdult Age Type-3",
		4: "4-YoungAdult/Adult Age Type-4",
		5: "5-Adult-5",
	}),
	decode.Col("zDetFace-Eye Makeup Type", "zDetFace.ZEYEMAKEUPTYPE", decode.Ints{
		0: "0-No-Eye-Makeup-0",
		1: "1-Eye-Makeup-1",
	}),
	decode.Col("zDetFace-Eye State", "zDetFace.ZEYESSTATE", decode.Ints{
		0: "0-Eyes-Unknown-0",
		1: "1-Eyes-Closed-1",
		2: "2-Eyes-Open-2",
	}),
	decode.Col("zDetFace-Facial Hair Type", "zDetFace.ZFACIALHAIRTYPE", decode.Ints{
		0: "0-No-Facial-Hair-0",
		1: "1-Clean-Shaven-1",
		2: "2-Beard-2",
		3: "3-Goatee-3",
		4: "4-Mustache-4",
		5: "5-Stubble-5",
	}),
	decode.Col("zDetFace-Hair Color Type", "zDetFace.ZHAIRCOLORTYPE", decode.Ints{
		0: "0-Unknown-0",
		1: "1-Black/Brown-Hair-1",
		2: "2-Brown/Blonde-Hair-2",
		3: "3-Brown/Red-Hair-3",
		4: "4-Red/White-Hair-4",
		5: "5-StillTesting-5",
		6: "6-White/Bald-Hair-6",
		7: "7-StillTesting-7",
	}),
	decode.Col("zDetFace-Glasses Type", "zDetFace.ZGLASSESTYPE", decode.Ints{
		0: "0-No-Glasses-0",
		1: "1-Eye-Glasses-1",
		2: "2-Sun-Glasses-2",
	}),
	decode.Col("zDetFace-Lip Makeup Type", "zDetFace.ZLIPMAKEUPTYPE", decode.Ints{
		0: "0-No-Lip-Makeup-0",
		1: "1-Lip-Makeup-1",
	}),
	decode.Col("zDetFace-Smile Type", "zDetFace.ZSMILETYPE", decode.Ints{
		1: "1-No-Smile-1",
		2: "2-Smile-2",
	}),
	decode.Col("zDetFace-Face Expression Type", "zDetFace.ZFACEEXPRESSIONTYPE", decode.Ints{
		0: "0-Unknown-0",
		1: "1-Neutral-1",
		2: "2-Happy-2",
		3: "3-Surprised-3",
		4: "4-Fearful-4",
		5: "5-Disgusted-5",
		6: "6-Sad-6",
		7: "7-Angry-7",
	}),
	decode.Col("zDetFace-Has Smile", "zDetFace.ZHASSMILE", yesNo),
	decode.Col("zDetFace-Is Left Eye Closed", "zDetFace.ZISLEFTEYECLOSED", yesNo),
	decode.Col("zDetFace-Is Right Eye Closed", "zDetFace.ZISRIGHTEYECLOSED", yesNo),
	decode.Col("zDetFace-Hidden/Asset Visible", "zDetFace.ZHIDDEN", decode.Ints{
		0: "0-Not Hidden-0",
		1: "1-Hidden-1",
	}),
	decode.Col("zDetFace-In Trash/Recently Deleted", "zDetFace.ZASSETVISIBLE", decode.Ints{
		0: "0-Not In Trash-0",
		1: "1-In Trash-1",
	}),
	decode.Col("zDetFace-Cloud Local State", "zDetFace.ZCLOUDLOCALSTATE", decode.Ints{
		0: "0-Not Synced with Cloud-0",
		1: "1-Synced with Cloud-1",
	}),
	decode.Col("zDetFace-Training Type", "zDetFace.ZTRAININGTYPE", id),
	decode.Col("zDetFace-Pose Yaw", "zDetFace.ZPOSEYAW", id),
	decode.Col("zDetFace-Roll", "zDetFace.ZROLL", id),
	decode.Col("zDetFace-Size", "zDetFace.ZSIZE", id),
	decode.Col("zDetFace-Cluster Sequence Number Key", "zDetFace.ZCLUSTERSEQUENCENUMBER", id),
	decode.Col("zDetFace-Blur Score", "zDetFace.ZBLURSCORE", id),
	decode.Col("zDetFace-Area Points", "zDetFace.ZAREAPOINTS", decode.GreaterThan{
		True:  "Area Points Present",
		False: "No Area Points",
	}),
	decode.Col("zDetFace-Face Print", "zDetFace.ZFACEPRINT", id),
	decode.Col("zDetFace-UUID", "zDetFace.ZUUID", id),
	decode.Col("zDetFace-Center X", "zDetFace.ZCENTERX", id),
	decode.Col("zDetFace-Center Y", "zDetFace.ZCENTERY", id),
	decode.Col("zDetFace-Left Eye X", "zDetFace.ZLEFTEYEX", id),
	decode.Col("zDetFace-Left Eye Y", "zDetFace.ZLEFTEYEY", id),
	decode.Col("zDetFace-Right Eye X", "zDetFace.ZRIGHTEYEX", id),
	decode.Col("zDetFace-Right Eye Y", "zDetFace.ZRIGHTEYEY", id),
	decode.Col("zDetFace-Mouth X", "zDetFace.ZMOUTHX", id),
	decode.Col("zDetFace-Mouth Y", "zDetFace.ZMOUTHY", id),
	decode.Col("zDetFace-Body Center X", "zDetFace.ZBODYCENTERX", id),
	decode.Col("zDetFace-Body Center Y", "zDetFace.ZBODYCENTERY", id),
	decode.Col("zDetFace-Body Height", "zDetFace.ZBODYHEIGHT", id),
	decode.Col("zDetFace-Body Width", "zDetFace.ZBODYWIDTH", id),
	decode.Col("zDetFace-Source Height", "zDetFace.ZSOURCEHEIGHT", id),
	decode.Col("zDetFace-Source Width", "zDetFace.ZSOURCEWIDTH", id),
	decode.Col("zDetFace-Yaw", "zDetFace.ZYAW", id),
	decode.Col("zDetFace-Pose Type", "zDetFace.ZPOSETYPE", id),
	decode.Col("zDetFace-Quality", "zDetFace.ZQUALITY", id),
	decode.Col("zDetFace-Quality Measure", "zDetFace.ZQUALITYMEASURE", id),
	decode.Col("zDetFace-Name Source", "zDetFace.ZNAMESOURCE", decode.Ints{
		0: "0-No Name Listed-0",
		1: "1-Face Crop-1",
		2: "2-Verified/Has-Person-URI-2",
		4: "4-Face Crop-4",
		5: "5-Confirmed/Verified-5",
	}),
	decode.Col("zDetFace-Cloud Name Source", "zDetFace.ZCLOUDNAMESOURCE", decode.Ints{
		0: "0-NA-0",
		1: "1-User Selected-1",
	}),
	decode.Col("zDetFace-Is In Trash", "zDetFace.ZISINTRASH", decode.Ints{
		0: "0-Not In Trash-0",
		1: "1-In Trash-1",
	}),
	decode.Col("zDetFace-Adjustment Version", "zDetFace.ZADJUSTMENTVERSION", mactime),
	decode.Col("zDetFace-Face Algorithm Version", "zDetFace.ZFACEALGORITHMVERSION", id),
	decode.Col("zDetFace-VU Observation ID", "zDetFace.ZVUOBSERVATIONID", id),
	decode.Col("zDetFace-Grouping Identifier", "zDetFace.ZGROUPINGIDENTIFIER", id),
	decode.Col("zDetFace-Master Identifier", "zDetFace.ZMASTERIDENTIFIER", id),
	decode.Col("zDetFace-Asset= zAsset-zPK", "zDetFace.ZASSET", id),
	decode.Col("zDetFace-Person= zPerson-zPK", "zDetFace.ZPERSON", id),
	decode.Col("zDetFace-Face Group= zDetFaceGroup-zPK", "zDetFace.ZFACEGROUP", id),
	decode.Col("zDetFace-Face Crop= zFaceCrop-zPK", "zDetFace.ZFACECROP", id),
	decode.Col("zDetFace-zENT", "zDetFace.Z_ENT", id),
	decode.Col("zDetFace-zOPT", "zDetFace.Z_OPT", id),
	decode.Col("zDetFace-zPK", "zDetFace.Z_PK", id),

	// face groups and face prints
	decode.Col("zDetFaceGroup-UUID", "zDetFaceGroup.ZUUID", id),
	decode.Col("zDetFaceGroup-Person Builder State", "zDetFaceGroup.ZPERSONBUILDERSTATE", id),
	decode.Col("zDetFaceGroup-Unnamed Face Count", "zDetFaceGroup.ZUNNAMEDFACECOUNT", id),
	decode.Col("zDetFaceGroup-Key Face= zDetFace-zPK", "zDetFaceGroup.ZKEYFACE", id),
	decode.Col("zDetFaceGroup-Associated Person= zPerson-zPK", "zDetFaceGroup.ZASSOCIATEDPERSON", id),
	decode.Col("zDetFaceGroup-zENT", "zDetFaceGroup.Z_ENT", id),
	decode.Col("zDetFaceGroup-zOPT", "zDetFaceGroup.Z_OPT", id),
	decode.Col("zDetFaceGroup-zPK", "zDetFaceGroup.Z_PK", id),
	decode.Col("zDetFacePrint-Data", "zDetFacePrint.ZDATA", decode.GreaterThan{
		True:  "Face Print Data Present",
		False: "No Face Print Data",
	}),
	decode.Col("zDetFacePrint-Face Print Version", "zDetFacePrint.ZFACEPRINTVERSION", id),
	decode.Col("zDetFacePrint-Face= zDetFace-zPK", "zDetFacePrint.ZFACE", id),
	decode.Col("zDetFacePrint-zENT", "zDetFacePrint.Z_ENT", id),
	decode.Col("zDetFacePrint-zOPT", "zDetFacePrint.Z_OPT", id),
	decode.Col("zDetFacePrint-zPK", "zDetFacePrint.Z_PK", id),

	// people
	decode.Col("zPerson-Display Name", "zPerson.ZDISPLAYNAME", id),
	decode.Col("zPerson-Full Name", "zPerson.ZFULLNAME", id),
	decode.Col("zPerson-Face Count", "zPerson.ZFACECOUNT", id),
	decode.Col("zPerson-Type", "zPerson.ZTYPE", decode.Ints{
		-1: "-1-Person-Rejected-1",
		0:  "0-Person-Unknown-0",
		1:  "1-Person-Favorite-1",
	}),
	decode.Col("zPerson-Verified Type", "zPerson.ZVERIFIEDTYPE", decode.Ints{
		-2: "-2-Not-Verified-2",
		0:  "0-Not-Verified-0",
		1:  "1-Verified-1",
		2:  "2-Verified-by-Graph-2",
	}),
	decode.Col("zPerson-Gender Type", "zPerson.ZGENDERTYPE", decode.Ints{
		0: "0-Unknown-0",
		1: "1-Male-1",
		2: "2-Female-2",
	}),
	decode.Col("zPerson-Age Type Estimate", "zPerson.ZAGETYPE", decode.Ints{
		1: "1-Infant/Toddler Age Type-1",
		2: "2-Toddler/Child Age Type-2",
		3: "3-Child/YoungAdult Age Type-3",
		4: "4-YoungAdult/Adult Age Type-4",
		5: "5-Adult-5",
	}),
	decode.Col("zPerson-Detection Type", "zPerson.ZDETECTIONTYPE", decode.Ints{
		1: "1-Person-1",
		3: "3-Cat-or-Dog-3",
		4: "4-Dog-4",
	}),
	decode.Col("zPerson-In Person Naming Model", "zPerson.ZINPERSONNAMINGMODEL", id),
	decode.Col("zPerson-Person URI", "zPerson.ZPERSONURI", id),
	decode.Col("zPerson-Contact Matching Dictionary", "zPerson.ZCONTACTMATCHINGDICTIONARY", decode.GreaterThan{
		True:  "Contact Matching Dictionary Present",
		False: "No Contact Matching Dictionary",
	}),
	decode.Col("zPerson-Merge Candidate Confidence", "zPerson.ZMERGECANDIDATECONFIDENCE", id),
	decode.Col("zPerson-Cloud Verified Type", "zPerson.ZCLOUDVERIFIEDTYPE", decode.Ints{
		0: "0-Not-Verified-0",
		1: "1-Verified-1",
		2: "2-Verified-by-Graph-2",
	}),
	decode.Col("zPerson-Cloud Local State", "zPerson.ZCLOUDLOCALSTATE", decode.Ints{
		0: "0-Not Synced with Cloud-0",
		1: "1-Synced with Cloud-1",
	}),
	decode.Col("zPerson-Cloud Delete State", "zPerson.ZCLOUDDELETESTATE", decode.Ints{
		0: "0-Not Deleted-0",
		1: "1-Deleted-1",
	}),
	decode.Col("zPerson-Person UUID", "zPerson.ZPERSONUUID", id),
	decode.Col("zPerson-Is Me Confidence", "zPerson.ZISMECONFIDENCE", id),
	decode.Col("zPerson-Keyface Pick Source", "zPerson.ZKEYFACEPICKSOURCE", decode.Ints{
		0: "0-zPerson-is-Not-Detected-0",
		1: "1-zPerson-is-Detected-1",
	}),
	decode.Col("zPerson-Manual Order", "zPerson.ZMANUALORDER", id),
	decode.Col("zPerson-Question Type", "zPerson.ZQUESTIONTYPE", id),
	decode.Col("zPerson-Suggested For Client Type", "zPerson.ZSUGGESTEDFORCLIENTTYPE", id),
	decode.Col("zPerson-Graph Verification Type", "zPerson.ZGRAPHVERIFICATIONTYPE", id),
	decode.Col("zPerson-Merge Target Person= zPerson-zPK", "zPerson.ZMERGETARGETPERSON", id),
	decode.Col("zPerson-Share Participant= zSharePartic-zPK", "zPerson.ZSHAREPARTICIPANT", id),
	decode.Col("zPerson-Associated Face Group= zDetFaceGroup-zPK", "zPerson.ZASSOCIATEDFACEGROUP", id),
	decode.Col("zPerson-Key Face= zDetFace-zPK", "zPerson.ZKEYFACE", id),
	decode.Col("zPerson-zENT", "zPerson.Z_ENT", id),
	decode.Col("zPerson-zOPT", "zPerson.Z_OPT", id),
	decode.Col("zPerson-zPK", "zPerson.Z_PK", id),

	// face crops
	decode.Col("zFaceCrop-Face Area Points", "zFaceCrop.ZRESOURCEDATA", decode.GreaterThan{
		True:  "Face Crop Resource Data Present",
		False: "No Face Crop Resource Data",
	}),
	decode.Col("zFaceCrop-State", "zFaceCrop.ZSTATE", decode.Ints{
		5: "5-StillTesting-5",
	}),
	decode.Col("zFaceCrop-Type", "zFaceCrop.ZTYPE", decode.Ints{
		1: "1-StillTesting-1",
		5: "5-StillTesting-5",
	}),
	decode.Col("zFaceCrop-Cloud Local State", "zFaceCrop.ZCLOUDLOCALSTATE", decode.Ints{
		0: "0-Not Synced with Cloud-0",
		1: "1-Synced with Cloud-1",
	}),
	decode.Col("zFaceCrop-UUID", "zFaceCrop.ZUUID", id),
	decode.Col("zFaceCrop-Invalid Merge Canidate Person UUID", "zFaceCrop.ZINVALIDMERGECANIDATEPERSONUUID", id),
	decode.Col("zFaceCrop-Asset= zAsset-zPK", "zFaceCrop.ZASSET", id),
	decode.Col("zFaceCrop-Face= zDetFace-zPK", "zFaceCrop.ZFACE", id),
	decode.Col("zFaceCrop-Person= zPerson-zPK", "zFaceCrop.ZPERSON", id),
	decode.Col("zFaceCrop-zENT", "zFaceCrop.Z_ENT", id),
	decode.Col("zFaceCrop-zOPT", "zFaceCrop.Z_OPT", id),
	decode.Col("zFaceCrop-zPK", "zFaceCrop.Z_PK", id),
}
