package bridgevote

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbridge/bridgevote/types"
)

func buildDeriveResourceCmd() *cobra.Command {
	var (
		chainID uint64
		tag     string
	)

	cmd := &cobra.Command{
		Use:   "derive-resource",
		Short: "Derive a resource ID from a chain ID and a tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := types.ParseChainID(chainID)
			if err != nil {
				return err
			}

			rID := types.DeriveResourceID(id, []byte(tag))
			fmt.Fprintln(cmd.OutOrStdout(), rID.Hex())

			return nil
		},
	}

	cmd.Flags().Uint64Var(&chainID, "chain", 0, "Bridge-local chain ID")
	cmd.Flags().StringVar(&tag, "tag", "", "Resource tag, at most 31 bytes are used")

	return cmd
}
