// Copyright (c) 2019 Siemens AG
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

// Package photosqlite decodes the asset records of Apple Photos libraries of
// iOS 14 devices into reports for investigators.
//
// Pipelines
//
// Each registered artifact is one pipeline over one library variant:
//     - Ph94.1 reads PhotoData/Photos.sqlite, the library of the device.
//     - Ph94.2 reads Syndication.photoslibrary/database/Photos.sqlite, the library of media shared with the user in other apps.
//     - Both select the same columns in the same order, tables missing in a variant are selected as NULL.
//     - Every value is decoded by the rule of its column, unknown values are reported as "Unknown-New-Value!: <raw>".
//     - Pipelines only run for 14 <= iOS version < 15 and never write to the database.
//
// Report layout
//
// An example report directory after a run:
//     photosqlite-report/
//     ├── Photos-Asset-Analysis
//     │   ├── Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql.html
//     │   └── Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL.html
//     ├── _KML Exports
//     │   └── Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql.kml
//     ├── _TSV Exports
//     │   ├── Ph94.1-iOS14_Ref_for_Asset_Analysis-PhDaPsql.tsv
//     │   └── Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL.tsv
//     └── _Timeline
//         └── tl.db
package photosqlite
