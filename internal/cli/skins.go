package cli

import (
	"github.com/spf13/cobra"

	"github.com/mlandau/wavetrace/pkg/skin"
)

// skinsCommand creates the skins command listing available skin names.
func (c *CLI) skinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skins",
		Short: "List available timing diagram skins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range skin.Names() {
				printDetail("%s", name)
			}
			return nil
		},
	}
}
