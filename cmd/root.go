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

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/photosqlite"
	"github.com/forensicanalysis/photosqlite/catalog"
	"github.com/forensicanalysis/photosqlite/report"
)

// Run is the photosqlite run commandline subcommand
func Run() *cobra.Command {
	var configFile string
	var sequential bool
	var flags photosqlite.Config
	runCommand := &cobra.Command{
		Use:   "run <extraction>",
		Short: "Decode the Photos.sqlite asset records of an extraction",
		Args:  requireOneExtraction,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()

			config := flags
			if configFile != "" {
				fileConfig, err := photosqlite.LoadConfig(fs, configFile)
				if err != nil {
					return err
				}
				if err := mergo.Merge(&config, fileConfig); err != nil {
					return err
				}
			}
			if sequential {
				config.Parallel = 1
			}
			if err := config.Complete(fs, os.Getenv); err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), fs, args[0], config, cmd.OutOrStdout())
		},
	}
	runCommand.Flags().StringVar(&configFile, "config", "", "yaml configuration file")
	runCommand.Flags().StringVarP(&flags.Output, "output", "o", "", "report directory")
	runCommand.Flags().StringVar(&flags.IOSVersion, "ios-version", "", "iOS version of the device, e.g. 14.3")
	runCommand.Flags().StringVar(&flags.DeviceInfo, "device-info", "", "json file to read the iOS version from")
	runCommand.Flags().StringArrayVarP(&flags.Artifacts, "artifact", "a", nil, "artifact to run (repeatable), default all")
	runCommand.Flags().IntVar(&flags.Parallel, "parallel", 0, "number of concurrent pipelines, 0 for all")
	runCommand.Flags().BoolVar(&sequential, "sequential", false, "run one pipeline after another")
	runCommand.Flags().BoolVar(&flags.NoTimeline, "no-timeline", false, "do not write the timeline database")
	runCommand.Flags().BoolVar(&flags.NoKML, "no-kml", false, "do not write kml files")
	return runCommand
}

func run(ctx context.Context, fs afero.Fs, root string, config photosqlite.Config, out io.Writer) error {
	selected, err := config.Selected()
	if err != nil {
		return err
	}

	writer := report.NewWriter(fs, config.Output)
	writer.KML = !config.NoKML
	if !config.NoTimeline {
		timeline := report.NewTimeline(filepath.Join(config.Output, report.TimelineDir, report.TimelineFile))
		defer timeline.Close()
		writer.Timeline = timeline
	}

	var pipelines []*photosqlite.Pipeline
	for _, artifact := range selected {
		pipelines = append(pipelines, photosqlite.New(artifact, writer))
	}

	in := photosqlite.Input{Fs: fs, Root: root, IOSVersion: config.IOSVersion}
	results, runErr := photosqlite.RunAll(ctx, pipelines, in, config.Parallel)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ARTIFACT\tSTATE\tROWS\tSOURCE")
	for _, result := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", result.Artifact, result.State, result.Rows, result.Path)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

// Describe is the photosqlite describe commandline subcommand
func Describe() *cobra.Command {
	var names []string
	describeCommand := &cobra.Command{
		Use:   "describe",
		Short: "Print the registration descriptors as json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := lookup(names)
			if err != nil {
				return err
			}
			var descriptors []map[string]interface{}
			for _, artifact := range artifacts {
				descriptors = append(descriptors, artifact.Map())
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(descriptors)
		},
	}
	describeCommand.Flags().StringArrayVarP(&names, "artifact", "a", nil, "artifact to describe (repeatable), default all")
	return describeCommand
}

// Columns is the photosqlite columns commandline subcommand
func Columns() *cobra.Command {
	var name string
	columnsCommand := &cobra.Command{
		Use:   "columns",
		Short: "List the decoded columns of an artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := photosqlite.Lookup(name)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tHEADER\tEXPRESSION\tRULE")
			for _, col := range catalog.PhotosIOS14().Columns() {
				expr := col.Expr
				if !artifact.Source.Available(col.Table()) {
					expr = "NULL"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", col.Position, col.Header, expr, col.Rule)
			}
			return w.Flush()
		},
	}
	columnsCommand.Flags().StringVarP(&name, "artifact", "a", photosqlite.Artifacts()[0].Name, "artifact to list")
	return columnsCommand
}

func lookup(names []string) ([]photosqlite.Artifact, error) {
	if len(names) == 0 {
		return photosqlite.Artifacts(), nil
	}
	var artifacts []photosqlite.Artifact
	for _, name := range names {
		artifact, err := photosqlite.Lookup(name)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

func requireOneExtraction(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one extraction directory")
	}
	if _, err := os.Stat(args[0]); os.IsNotExist(err) {
		return errors.Wrap(os.ErrNotExist, args[0])
	}
	return nil
}
