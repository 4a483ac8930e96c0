package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <contract-id> <method> [json-args]",
	Short: "Invoke a read-only method on a contract",
	Long: `Invoke a view method. No signer and no gas; omitted arguments
default to an empty object.

Examples:
  nearctl view ft.you.testnet ft_total_supply
  nearctl view ft.you.testnet ft_balance_of '{"account_id":"you.testnet"}'`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var jsonArgs any
		if len(args) == 3 {
			jsonArgs = args[2]
		}

		res, err := newClient().View(cmd.Context(), args[0], args[1], jsonArgs)
		if err != nil {
			return err
		}
		fmt.Print(res.Stdout)
		return nil
	},
}
