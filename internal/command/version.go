// Package command holds the cobra commands shared by the programs.
package command

import (
	"fmt"
	"io"

	"github.com/qdm12/deskutils/internal/models"
	"github.com/qdm12/gosplash"
	"github.com/spf13/cobra"
)

// NewVersion returns the version command printing the splash
// lines of the program followed by its version string.
func NewVersion(program string, buildInfo models.BuildInformation) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of " + program,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			stdout := cmd.OutOrStdout()
			printSplash(stdout, program, buildInfo)
			fmt.Fprintln(stdout, program+" "+buildInfo.VersionString())
		},
	}
}

func printSplash(w io.Writer, program string, buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "deskutils",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(w, line)
	}
}
