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

// Package photosqlite implements the photosqlite command line tool that
// decodes the asset records of iOS 14 Photos libraries.
//     run       Decode the Photos.sqlite asset records of an extraction
//     describe  Print the registration descriptors as json
//     columns   List the decoded columns of an artifact
//
// Usage
//
// Decode an extraction of an iOS 14.3 device
//     photosqlite run --ios-version 14.3 --output report /cases/42/extraction
// Read the version from the device info and run only the syndication library
//     photosqlite run --device-info device.json -a Ph94.2-iOS14_Ref_for_Asset_Analysis-SyndPL /cases/42/extraction
// Use a configuration file
//     photosqlite run --config photosqlite.yml /cases/42/extraction
//
// PHOTOSQLITE_IOS_VERSION and PHOTOSQLITE_OUTPUT, also read from a .env
// file, fill unset options.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/photosqlite/cmd"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "photosqlite",
		Short:        "Decode Apple Photos.sqlite asset records",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(cmd.Run(), cmd.Describe(), cmd.Columns())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
