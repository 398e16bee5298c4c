package main

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ondeweb/material-icon-gen/compose"
	"github.com/ondeweb/material-icon-gen/editor"
	"github.com/ondeweb/material-icon-gen/svgdoc"
)

// waitSurface adapts the editor's callback seam to a blocking CLI:
// it records the single import outcome and signals completion.
type waitSurface struct {
	icon svgdoc.Node
	err  *editor.ImportError
	done chan struct{}
}

func newWaitSurface() *waitSurface {
	return &waitSurface{done: make(chan struct{})}
}

func (s *waitSurface) IconLoaded(icon svgdoc.Node) {
	s.icon = icon
	close(s.done)
}

func (s *waitSurface) ImportFailed(err *editor.ImportError) {
	s.err = err
	close(s.done)
}

func (s *waitSurface) RedrawRequested() {}

func newGenerateCmd() *cobra.Command {
	var (
		input      string
		output     string
		configPath string
		baseColor  string
		iconColor  string
		baseShape  string
		iconScale  float64
		shadowLen  float64
		shadowOp   float64
		noFade     bool
		size       int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a launcher icon asset archive from an SVG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := editor.Config{}
			if configPath != "" {
				var err error
				if cfg, err = editor.LoadConfig(configPath); err != nil {
					return err
				}
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &opts, baseColor, iconColor, baseShape, iconScale, shadowLen, shadowOp, noFade, size); err != nil {
				return err
			}

			surface := newWaitSurface()
			ed := editor.New(surface, charmlog.Default())
			ed.SetOptions(opts)

			ed.ImportFile(cmd.Context(), input)
			if err := waitImport(cmd.Context(), surface); err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := ed.ExportZip(f, cfg.ExportDensities()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				styleSuccess.Render("✓ wrote "+output),
				styleDim.Render(fmt.Sprintf("(%d densities + web asset)", len(cfg.ExportDensities()))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "SVG file to import (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "icons.zip", "zip archive to write")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML defaults file")
	cmd.Flags().StringVar(&baseColor, "base-color", "", "base plate color")
	cmd.Flags().StringVar(&iconColor, "icon-color", "", "icon paint color")
	cmd.Flags().StringVar(&baseShape, "shape", "", "base shape: square, rounded or circle")
	cmd.Flags().Float64Var(&iconScale, "scale", 0, "icon extent as a fraction of the canvas")
	cmd.Flags().Float64Var(&shadowLen, "shadow-length", -1, "shadow travel as a fraction of the canvas")
	cmd.Flags().Float64Var(&shadowOp, "shadow-opacity", -1, "shadow opacity, 0 disables")
	cmd.Flags().BoolVar(&noFade, "no-fade", false, "keep the shadow opacity constant")
	cmd.Flags().IntVar(&size, "size", 0, "master render size in pixels")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// applyFlags overlays explicitly set flags on the config-derived
// options.
func applyFlags(cmd *cobra.Command, o *compose.Options, baseColor, iconColor, baseShape string,
	iconScale, shadowLen, shadowOp float64, noFade bool, size int) error {
	if baseColor != "" {
		col, err := svgdoc.ParseColor(baseColor)
		if err != nil || col == nil {
			return fmt.Errorf("invalid base color %q", baseColor)
		}
		o.BaseColor = *col
	}
	if iconColor != "" {
		col, err := svgdoc.ParseColor(iconColor)
		if err != nil || col == nil {
			return fmt.Errorf("invalid icon color %q", iconColor)
		}
		o.IconColor = *col
	}
	if baseShape != "" {
		b, err := compose.ParseBaseShape(baseShape)
		if err != nil {
			return err
		}
		o.Base = b
	}
	if iconScale > 0 {
		o.IconScale = iconScale
	}
	if shadowLen >= 0 {
		o.Shadow.Length = shadowLen
	}
	if shadowOp >= 0 {
		o.Shadow.Opacity = shadowOp
	}
	if noFade {
		o.Shadow.Fade = false
	}
	if size > 0 {
		o.Size = size
	}
	return nil
}

func waitImport(ctx context.Context, s *waitSurface) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
	}
	if s.err != nil {
		return s.err
	}
	return nil
}
