package main

import (
	"fmt"
	"path/filepath"

	"github.com/philipparndt/gobounds/internal/config"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/boxfile"
	"github.com/philipparndt/gobounds/pkg/stl"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Display the bounding box of an STL file",
		Long:  "Show the bounding box of an STL model together with its center, dimensions, diagonal and volume.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			model, err := stl.Parse(filename)
			if err != nil {
				return fmt.Errorf("parsing STL file: %w", err)
			}

			report, err := analysis.AnalyzeModel(model)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			if report.Name == "" {
				report.Name = filepath.Base(filename)
			}

			out := cmd.OutOrStdout()
			if opts.Format == config.FormatYAML {
				var doc boxfile.Document
				doc.Add(report.Name, report.BoundingBox)
				return boxfile.Encode(out, doc)
			}

			fmt.Fprintln(out, "STL File Information")
			fmt.Fprintln(out, "====================")
			fmt.Fprintf(out, "File: %s\n", filename)
			printReport(out, report, opts.Precision)
			return nil
		},
	}
}
