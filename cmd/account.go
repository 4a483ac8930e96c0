package cmd

import (
	"fmt"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	createMaster  string
	createBalance string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Create, inspect and delete accounts",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create <account-id>",
	Short: "Create a sub-account funded from the master account",
	Long: `Create a new account as a sub-account of the master account.

The id must be a sub-account of master (end with ".<master>"). A bare
prefix is expanded automatically: "ft" with master "you.testnet" becomes
"ft.you.testnet".

Examples:
  nearctl account create ft                      # ft.<master>
  nearctl account create nft.you.testnet --master you.testnet
  nearctl account create demo --balance 25`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		master, err := requireMaster(createMaster)
		if err != nil {
			return err
		}

		id := args[0]
		if account.ValidateID(id) != nil || !account.IsSubOf(id, master) {
			// Treat the argument as a prefix under master.
			id, err = account.Sub(args[0], master)
			if err != nil {
				return err
			}
		}

		balance := createBalance
		if balance == "" {
			balance = cfg.InitialBal
		}
		if _, err := account.ParseNEAR(balance); err != nil {
			return fmt.Errorf("initial balance: %w", err)
		}

		spin := ui.NewSpinner(fmt.Sprintf("Creating %s (%s NEAR from %s)...", id, balance, master))
		spin.Start()
		res, err := newClient().CreateAccount(cmd.Context(), id, master, balance)
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("Account %s created", ui.Acct(id))))
		if verbose && res.Stdout != "" {
			fmt.Print(res.Stdout)
		}
		return nil
	},
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete <account-id> <beneficiary-id>",
	Short: "Delete an account, sending remaining funds to a beneficiary",
	Long: `Delete an account. The remaining balance is transferred to the
beneficiary account. This is irreversible: the account's contract and
state are gone afterwards.

Examples:
  nearctl account delete ft.you.testnet you.testnet
  nearctl account delete old.you.testnet you.testnet --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, beneficiary := args[0], args[1]
		if err := account.ValidateID(id); err != nil {
			return err
		}
		if err := account.ValidateID(beneficiary); err != nil {
			return err
		}

		if !assumeYes && !ui.ConfirmDanger(fmt.Sprintf("Delete %s and send its balance to %s?", id, beneficiary)) {
			fmt.Println(ui.Warn("Aborted"))
			return nil
		}

		spin := ui.NewSpinner(fmt.Sprintf("Deleting %s...", id))
		spin.Start()
		_, err := newClient().DeleteAccount(cmd.Context(), id, beneficiary)
		spin.Stop()
		if err != nil {
			return err
		}

		// Drop any registry entry so stale deployments don't linger.
		if reg, regErr := newDeployRegistry(); regErr == nil {
			if reg.Remove(id, cfg.NetworkID) == nil {
				_ = reg.Save()
			}
		}

		fmt.Println(ui.Success(fmt.Sprintf("Account %s deleted, funds sent to %s", id, ui.Acct(beneficiary))))
		return nil
	},
}

var accountStateCmd = &cobra.Command{
	Use:   "state <account-id>",
	Short: "Show balance and storage usage for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(args[0]); err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Fetching state for %s...", args[0]))
		spin.Start()
		res, err := newClient().AccountState(cmd.Context(), args[0])
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Print(res.Stdout)
		return nil
	},
}

func init() {
	accountCreateCmd.Flags().StringVar(&createMaster, "master", "", "master account funding the new account (default: configured)")
	accountCreateCmd.Flags().StringVar(&createBalance, "balance", "", "initial balance in NEAR (default: configured)")

	accountCmd.AddCommand(accountCreateCmd, accountDeleteCmd, accountStateCmd)
}
