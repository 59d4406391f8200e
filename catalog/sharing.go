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

var sharingColumns = []decode.Column{
	// shared library or moment share
	decode.Col("zShare-Title", "zShare.ZTITLE", id),
	decode.Col("zShare-Creation Date", "zShare.ZCREATIONDATE", mactime),
	decode.Col("zShare-Start Date", "zShare.ZSTARTDATE", mactime),
	decode.Col("zShare-End Date", "zShare.ZENDDATE", mactime),
	decode.Col("zShare-Expiry Date", "zShare.ZEXPIRYDATE", mactime),
	decode.Col("zShare-Share URL", "zShare.ZSHAREURL", id),
	decode.Col("zShare-Cloud Photo Count", "zShare.ZCLOUDPHOTOCOUNT", id),
	decode.Col("zShare-Cloud Video Count", "zShare.ZCLOUDVIDEOCOUNT", id),
	decode.Col("zShare-Asset Count", "zShare.ZASSETCOUNT", id),
	decode.Col("zShare-Status", "zShare.ZSTATUS", decode.Ints{
		1: "1-Active_Share-1",
		3: "3-Not_Active_Share-3",
	}),
	decode.Col("zShare-Scope Type", "zShare.ZSCOPETYPE", decode.Ints{
		2: "2-iCloudLink-CMMoment-2",
		4: "4-iCld-Shared-Photo-Library-SPL-4",
	}),
	decode.Col("zShare-Trashed State", "zShare.ZTRASHEDSTATE", decode.Ints{
		0: "0-Not_in_Trash-0",
		1: "1-In_Trash-1",
	}),
	decode.Col("zShare-Cloud Delete State", "zShare.ZCLOUDDELETESTATE", decode.Ints{
		0: "0-Not Deleted-0",
		1: "1-Deleted-1",
	}),
	decode.Col("zShare-Originating Scope ID", "zShare.ZORIGINATINGSCOPEIDENTIFIER", id),
	decode.Col("zShare-Scope ID", "zShare.ZSCOPEIDENTIFIER", id),
	decode.Col("zShare-UUID", "zShare.ZUUID", id),
	decode.Col("zShare-Last Modified Date", "zShare.ZLASTMODIFIEDDATE", mactime),
	decode.Col("zShare-Assets Added by Camera Smart Sharing", "zShare.ZCOUNTOFASSETSADDEDBYCAMERASMARTSHARING", id),
	decode.Col("zShare-Local Publish State", "zShare.ZLOCALPUBLISHSTATE", decode.Ints{
		2: "2-Published-2",
	}),
	decode.Col("zShare-Public Permission", "zShare.ZPUBLICPERMISSION", decode.Ints{
		1: "1-Public_Premission_Denied-1",
		2: "2-Public_Premission_Granted-2",
	}),
	decode.Col("zShare-Should Notify On Upload Completion", "zShare.ZSHOULDNOTIFYONUPLOADCOMPLETION", yesNo),
	decode.Col("zShare-Should Ignore Budgets", "zShare.ZSHOULDIGNOREBUDGETS", yesNo),
	decode.Col("zShare-Preview Data", "zShare.ZPREVIEWDATA", decode.GreaterThan{
		True:  "Share Preview Data Present",
		False: "No Share Preview Data",
	}),
	decode.Col("zShare-Thumbnail Image Data", "zShare.ZTHUMBNAILIMAGEDATA", decode.GreaterThan{
		True:  "Share Thumbnail Present",
		False: "No Share Thumbnail",
	}),
	decode.Col("zShare-Rules Data", "zShare.ZRULESDATA", decode.GreaterThan{
		True:  "Share Rules Data Present",
		False: "No Share Rules Data",
	}),
	decode.Col("zShare-zENT", "zShare.Z_ENT", id),
	decode.Col("zShare-zOPT", "zShare.Z_OPT", id),
	decode.Col("zShare-zPK", "zShare.Z_PK", id),

	// share participants
	decode.Col("zSharePartic-Email Address", "zSharePartic.ZEMAILADDRESS", id),
	decode.Col("zSharePartic-Phone Number", "zSharePartic.ZPHONENUMBER", id),
	decode.Col("zSharePartic-Is Current User", "zSharePartic.ZISCURRENTUSER", decode.Ints{
		0: "0-Participant-Not_CloudStorageOwner-0",
		1: "1-Participant-Is_CloudStorageOwner-1",
	}),
	decode.Col("zSharePartic-Acceptance Status", "zSharePartic.ZACCEPTANCESTATUS", decode.Ints{
		1: "1-Invite-Pending_or_Declined-1",
		2: "2-Invite-Accepted-2",
	}),
	decode.Col("zSharePartic-Role", "zSharePartic.ZROLE", decode.Ints{
		1: "1-Participant-is-Owner-Role-1",
		2: "2-Participant-is-Invitee-Role-2",
	}),
	decode.Col("zSharePartic-Permission", "zSharePartic.ZPERMISSION", decode.Ints{
		3: "3-Participant-has-Full-Premissions-3",
	}),
	decode.Col("zSharePartic-User ID", "zSharePartic.ZUSERIDENTIFIER", id),
	decode.Col("zSharePartic-UUID", "zSharePartic.ZUUID", id),
	decode.Col("zSharePartic-Name Components", "zSharePartic.ZNAMECOMPONENTS", decode.GreaterThan{
		True:  "Name Components Present",
		False: "No Name Components",
	}),
	decode.Col("zSharePartic-Exit State", "zSharePartic.ZEXITSTATE", id),
	decode.Col("zSharePartic-Participant ID", "zSharePartic.ZPARTICIPANTID", id),
	decode.Col("zSharePartic-Share= zShare-zPK", "zSharePartic.ZSHARE", id),
	decode.Col("zSharePartic-Person= zPerson-zPK", "zSharePartic.ZPERSON", id),
	decode.Col("zSharePartic-zENT", "zSharePartic.Z_ENT", id),
	decode.Col("zSharePartic-zOPT", "zSharePartic.Z_OPT", id),
	decode.Col("zSharePartic-zPK", "zSharePartic.Z_PK", id),

	// comments and likes on shared album assets
	decode.Col("zCldSharedComment-Comment Date", "zCldSharedComment.ZCOMMENTDATE", mactime),
	decode.Col("zCldSharedComment-Comment Client Date", "zCldSharedComment.ZCOMMENTCLIENTDATE", mactime),
	decode.Col("zCldSharedComment-Comment Text", "zCldSharedComment.ZCOMMENTTEXT", id),
	decode.Col("zCldSharedComment-Commenter Hashed Person ID", "zCldSharedComment.ZCOMMENTERHASHEDPERSONID", id),
	decode.Col("zCldSharedComment-Commenter Full Name", "zCldSharedComment.ZCOMMENTERFULLNAME", id),
	decode.Col("zCldSharedComment-Commenter Email", "zCldSharedComment.ZCOMMENTEREMAIL", id),
	decode.Col("zCldSharedComment-Is a Like", "zCldSharedComment.ZISLIKE", decode.Ints{
		0: "0-Comment-0",
		1: "1-Like-1",
	}),
	decode.Col("zCldSharedComment-Is My Comment", "zCldSharedComment.ZISMYCOMMENT", decode.Ints{
		0: "0-Not My Comment-0",
		1: "1-My Comment-1",
	}),
	decode.Col("zCldSharedComment-Is Deletable", "zCldSharedComment.ZISDELETABLE", yesNo),
	decode.Col("zCldSharedComment-Comment Type", "zCldSharedComment.ZCOMMENTTYPE", id),
	decode.Col("zCldSharedComment-Cloud GUID", "zCldSharedComment.ZCLOUDGUID", id),
	decode.Col("zCldSharedComment-Commenter First Name", "zCldSharedComment.ZCOMMENTERFIRSTNAME", id),
	decode.Col("zCldSharedComment-Commenter Last Name", "zCldSharedComment.ZCOMMENTERLASTNAME", id),
	decode.Col("zCldSharedComment-Is Batch Comment", "zCldSharedComment.ZISBATCHCOMMENT", yesNo),
	decode.Col("zCldSharedComment-Is Caption", "zCldSharedComment.ZISCAPTION", yesNo),
	decode.Col("zCldSharedComment-Unseen Comment", "zCldSharedComment.ZUNSEENCOMMENT", decode.Ints{
		0: "0-Seen Comment-0",
		1: "1-Unseen Comment-1",
	}),
	decode.Col("zCldSharedComment-Commented Asset= zAsset-zPK", "zCldSharedComment.ZCOMMENTEDASSET", id),
	decode.Col("zCldSharedComment-Liked Asset= zAsset-zPK", "zCldSharedComment.ZLIKEDASSET", id),
	decode.Col("zCldSharedComment-Feed Comment Entry= zCldFeedEnt-zPK", "zCldSharedComment.ZCLOUDFEEDCOMMENTENTRY", id),
	decode.Col("zCldSharedComment-Feed Like Entry= zCldFeedEnt-zPK", "zCldSharedComment.ZCLOUDFEEDLIKECOMMENTENTRY", id),
	decode.Col("zCldSharedComment-zENT", "zCldSharedComment.Z_ENT", id),
	decode.Col("zCldSharedComment-zOPT", "zCldSharedComment.Z_OPT", id),
	decode.Col("zCldSharedComment-zPK", "zCldSharedComment.Z_PK", id),

	// shared album activity feed
	decode.Col("zCldFeedEnt-Entry Date", "zCldFeedEnt.ZENTRYDATE", mactime),
	decode.Col("zCldFeedEnt-Entry Type", "zCldFeedEnt.ZENTRYTYPE", decode.Ints{
		1: "1-Is My Shared Asset-1",
		2: "2-StillTesting-2",
		3: "3-StillTesting-3",
		4: "4-Not My Shared Asset-4",
		5: "5-Asset in Shared Album Liked-5",
	}),
	decode.Col("zCldFeedEnt-Entry Priority Number", "zCldFeedEnt.ZENTRYPRIORITYNUMBER", id),
	decode.Col("zCldFeedEnt-Entry Album GUID", "zCldFeedEnt.ZENTRYALBUMGUID", id),
	decode.Col("zCldFeedEnt-Entry Invitation Record GUID", "zCldFeedEnt.ZENTRYINVITATIONRECORDGUID", id),
	decode.Col("zCldFeedEnt-Entry Cloud Asset GUID", "zCldFeedEnt.ZENTRYCLOUDASSETGUID", id),
	decode.Col("zCldFeedEnt-Entry Is My Entry", "zCldFeedEnt.ZENTRYISMINE", decode.Ints{
		0: "0-Not My Entry-0",
		1: "1-My Entry-1",
	}),
	decode.Col("zCldFeedEnt-Entry Album= zGenAlbum-zPK", "zCldFeedEnt.ZENTRYALBUM", id),
	decode.Col("zCldFeedEnt-zENT", "zCldFeedEnt.Z_ENT", id),
	decode.Col("zCldFeedEnt-zOPT", "zCldFeedEnt.Z_OPT", id),
	decode.Col("zCldFeedEnt-zPK", "zCldFeedEnt.Z_PK", id),

	// invitations to shared albums
	decode.Col("zCldShareAlbumInvRec-Is My Invitation to Shared Album", "zCldShareAlbumInvRec.ZISMINE", decode.Ints{
		0: "0-Not_My_Invitation-0",
		1: "1-My_Invitation-1",
	}),
	decode.Col("zCldShareAlbumInvRec-Invitation State Local", "zCldShareAlbumInvRec.ZINVITATIONSTATELOCAL", decode.Ints{
		0: "0-StillTesting-0",
		1: "1-StillTesting-1",
	}),
	decode.Col("zCldShareAlbumInvRec-Invitation State/Shared Album Invite Status", "zCldShareAlbumInvRec.ZINVITATIONSTATE", decode.Ints{
		1: "1-Invite-Pending_or_Declined-1",
		2: "2-Invite-Accepted-2",
	}),
	decode.Col("zCldShareAlbumInvRec-Subscription Date", "zCldShareAlbumInvRec.ZINVITEESUBSCRIPTIONDATE", mactime),
	decode.Col("zCldShareAlbumInvRec-Invitee First Name", "zCldShareAlbumInvRec.ZINVITEEFIRSTNAME", id),
	decode.Col("zCldShareAlbumInvRec-Invitee Last Name", "zCldShareAlbumInvRec.ZINVITEELASTNAME", id),
	decode.Col("zCldShareAlbumInvRec-Invitee Full Name", "zCldShareAlbumInvRec.ZINVITEEFULLNAME", id),
	decode.Col("zCldShareAlbumInvRec-Invitee Hashed Person ID", "zCldShareAlbumInvRec.ZINVITEEHASHEDPERSONID", id),
	decode.Col("zCldShareAlbumInvRec-Invitee Email Key", "zCldShareAlbumInvRec.ZINVITEEEMAILKEY", id),
	decode.Col("zCldShareAlbumInvRec-Album GUID", "zCldShareAlbumInvRec.ZALBUMGUID", id),
	decode.Col("zCldShareAlbumInvRec-Cloud GUID", "zCldShareAlbumInvRec.ZCLOUDGUID", id),
	decode.Col("zCldShareAlbumInvRec-Invitation Sent Date", "zCldShareAlbumInvRec.ZINVITATIONSENTDATE", mactime),
	decode.Col("zCldShareAlbumInvRec-Invitee Email", "zCldShareAlbumInvRec.ZINVITEEEMAILS", id),
	decode.Col("zCldShareAlbumInvRec-Invitee Phone", "zCldShareAlbumInvRec.ZINVITEEPHONES", id),
	decode.Col("zCldShareAlbumInvRec-Invitee Is Whitelisted", "zCldShareAlbumInvRec.ZINVITEEISWHITELISTED", yesNo),
	decode.Col("zCldShareAlbumInvRec-Album= zGenAlbum-zPK", "zCldShareAlbumInvRec.ZALBUM", id),
	decode.Col("zCldShareAlbumInvRec-zENT", "zCldShareAlbumInvRec.Z_ENT", id),
	decode.Col("zCldShareAlbumInvRec-zOPT", "zCldShareAlbumInvRec.Z_OPT", id),
	decode.Col("zCldShareAlbumInvRec-zPK", "zCldShareAlbumInvRec.Z_PK", id),
}
