package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ondeweb/material-icon-gen/normalize"
	"github.com/ondeweb/material-icon-gen/svgdoc"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file.svg>",
		Short: "Parse and normalize an SVG file and report the resulting shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := svgdoc.ReadDocument(args[0], svgdoc.WarnErrorMode)
			if err != nil {
				return err
			}
			result, discarded, err := normalize.Normalize(doc.Root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "viewBox: %s\n",
				styleValue.Render(fmt.Sprintf("%g %g %g %g",
					doc.ViewBox.X, doc.ViewBox.Y, doc.ViewBox.W, doc.ViewBox.H)))
			fmt.Fprintf(out, "shape:   %s\n", styleValue.Render(result.Kind().String()))
			fmt.Fprintf(out, "consumed candidates: %s\n",
				styleValue.Render(fmt.Sprintf("%d", len(discarded))))
			switch r := result.(type) {
			case *svgdoc.SimplePath:
				fmt.Fprintf(out, "area:    %s\n", styleValue.Render(fmt.Sprintf("%.2f", r.Area())))
			case *svgdoc.CompoundPath:
				fmt.Fprintf(out, "sub-paths (%d, by area):\n", len(r.SubPaths))
				for i, sp := range r.SubPaths {
					fmt.Fprintf(out, "  %2d: %s\n", i, styleDim.Render(fmt.Sprintf("%.2f", sp.Area())))
				}
			}
			return nil
		},
	}
	return cmd
}
