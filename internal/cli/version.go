package cli

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/jrsteele09/go-colten/internal/cli.Version=...".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			banner := figure.NewFigure(app.Config.GetAppName(), "cybermedium", true)
			fmt.Fprintln(app.Out, banner.String())
			fmt.Fprintf(app.Out, "%s %s\n", app.Config.GetAppName(), Version)
			return nil
		},
	}
}
