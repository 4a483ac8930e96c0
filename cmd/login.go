package cmd

import (
	"fmt"

	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize a full-access key via the web wallet",
	Long: `Hand off to the external tool's interactive login flow.

Opens the network's web wallet in a browser and stores a full-access key
locally once you approve. Signing keys never pass through nearctl; they
live wherever the near tool keeps them (~/.near-credentials).

Examples:
  nearctl login
  nearctl login --mainnet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.Info(fmt.Sprintf("Opening wallet login for %s...", ui.Network(cfg.NetworkID))))

		res, err := newClient().Login(cmd.Context())
		if err != nil {
			return err
		}
		if res.Stdout != "" {
			fmt.Print(res.Stdout)
		}
		fmt.Println(ui.Success("Login complete"))
		return nil
	},
}
