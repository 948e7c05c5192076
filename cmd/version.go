package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ldamasio/robson/cli/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]string{
			"version":   buildinfo.Version,
			"commit":    buildinfo.Commit,
			"buildTime": buildinfo.BuildTime,
		}
		return render(cmd, payload, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "robson-go version %s\n", buildinfo.Summary())
			return err
		})
	},
}
