// Package bridgevote provides the bridgevote command line tool: an offline
// replay and inspection surface for the bridge voting engine.
package bridgevote

import (
	"github.com/spf13/cobra"
)

func BuildRootCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "bridgevote",
		Short: "Replay and inspect bridge voting rounds",
		Long:  ``,
	}

	cmd.AddCommand(buildReplayCmd())
	cmd.AddCommand(buildDeriveResourceCmd())

	return &cmd
}
