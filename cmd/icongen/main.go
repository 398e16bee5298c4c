// Command icongen turns an arbitrary SVG icon into a set of Android
// launcher assets: the icon is normalized to a single shape, composed
// onto a colored base with a material long shadow, and exported as a
// zip of density-bucketed PNGs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "icongen",
		Short:        "icongen generates launcher icons from SVG files",
		Long:         `icongen imports an arbitrary SVG icon, reduces it to a single drawable shape and composes it onto a colored base with a drop shadow, ready for use as a launcher icon.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				charmlog.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInspectCmd())

	return root.ExecuteContext(ctx)
}
