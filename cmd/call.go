package cmd

import (
	"fmt"
	"time"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/nearkit/nearctl/internal/nearcli"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	callSigner       string
	callGas          string
	callDeposit      string
	callDepositYocto string
)

var callCmd = &cobra.Command{
	Use:   "call <contract-id> <method> [json-args]",
	Short: "Invoke a change method on a contract",
	Long: `Invoke a state-changing method. Arguments are a single JSON object,
validated locally before the call goes out.

Examples:
  nearctl call ft.you.testnet ft_transfer \
      '{"receiver_id":"bob.testnet","amount":"100"}' \
      --signer you.testnet --deposit-yocto 1
  nearctl call ft.you.testnet storage_deposit \
      '{"account_id":"bob.testnet"}' --signer you.testnet --deposit 0.00125`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if callSigner == "" {
			return fmt.Errorf("--signer is required")
		}
		if err := account.ValidateID(callSigner); err != nil {
			return err
		}

		var jsonArgs any
		if len(args) == 3 {
			jsonArgs = args[2]
		}
		if callDeposit != "" {
			if _, err := account.ParseNEAR(callDeposit); err != nil {
				return fmt.Errorf("deposit: %w", err)
			}
		}

		spin := ui.NewSpinner(fmt.Sprintf("Calling %s.%s...", args[0], args[1]))
		spin.Start()
		res, err := newClient().Call(cmd.Context(), nearcli.CallParams{
			Contract:     args[0],
			Method:       args[1],
			Args:         jsonArgs,
			SignerID:     callSigner,
			Gas:          callGas,
			Deposit:      callDeposit,
			DepositYocto: callDepositYocto,
		})
		spin.Stop()
		if err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("%s.%s succeeded (%s)", args[0], args[1], res.Duration.Round(time.Millisecond))))
		if res.Stdout != "" {
			fmt.Print(res.Stdout)
		}
		return nil
	},
}

func init() {
	callCmd.Flags().StringVar(&callSigner, "signer", "", "account that signs the transaction (required)")
	callCmd.Flags().StringVar(&callGas, "gas", "", "attached gas units")
	callCmd.Flags().StringVar(&callDeposit, "deposit", "", "attached deposit in NEAR")
	callCmd.Flags().StringVar(&callDepositYocto, "deposit-yocto", "", "attached deposit in yoctoNEAR")
	callCmd.MarkFlagsMutuallyExclusive("deposit", "deposit-yocto")
	_ = callCmd.MarkFlagRequired("signer")
}
