package cmd

import (
	"fmt"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/nearkit/nearctl/internal/artifact"
	"github.com/nearkit/nearctl/internal/nearcli"
	"github.com/nearkit/nearctl/internal/registry"
	"github.com/nearkit/nearctl/internal/token"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	ftContract string

	ftInitOwner       string
	ftInitSupply      string
	ftInitName        string
	ftInitSymbol      string
	ftInitDecimals    uint8
	ftInitIcon        string
	ftInitDefaultMeta bool

	ftRegisterSigner string

	ftTransferSigner string
	ftTransferMemo   string
)

var ftCmd = &cobra.Command{
	Use:   "ft",
	Short: "Deploy and drive a fungible-token contract",
	Long: `Fungible-token workflow: deploy the artifact, initialize it, register
accounts for storage, then transfer and inspect balances.

A typical testnet session:
  nearctl ft deploy res/ft.wasm --contract ft.you.testnet
  nearctl ft init --contract ft.you.testnet --owner you.testnet --total-supply 1000000
  nearctl ft balance you.testnet --contract ft.you.testnet`,
}

var ftDeployCmd = &cobra.Command{
	Use:   "deploy <wasm-file>",
	Short: "Deploy a fungible-token artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(ftContract); err != nil {
			return err
		}
		info, err := artifact.Validate(args[0])
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Deploying FT contract to %s...", ftContract))
		spin.Start()
		_, err = newClient().Deploy(cmd.Context(), ftContract, info.Path)
		spin.Stop()
		if err != nil {
			return err
		}

		if err := recordDeployment(ftContract, registry.KindFT, info.Path, false); err != nil {
			fmt.Println(ui.Warn(fmt.Sprintf("deployed, but registry update failed: %v", err)))
		}
		fmt.Println(ui.Success(fmt.Sprintf("FT contract deployed to %s", ui.Acct(ftContract))))
		return nil
	},
}

var ftInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a deployed fungible-token contract",
	Long: `Call the contract's initializer. With --default-meta the contract's
built-in metadata is used (new_default_meta); otherwise metadata is
assembled from the flags and passed to new. Either way the full supply
is credited to the owner.

Total supply is a raw token amount (U128), not NEAR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(ftContract); err != nil {
			return err
		}
		if err := account.ValidateID(ftInitOwner); err != nil {
			return err
		}

		initArgs := token.FTInitArgs{
			OwnerID:     ftInitOwner,
			TotalSupply: ftInitSupply,
		}
		if !ftInitDefaultMeta {
			meta := token.DefaultFTMetadata()
			if ftInitName != "" {
				meta.Name = ftInitName
			}
			if ftInitSymbol != "" {
				meta.Symbol = ftInitSymbol
			}
			if cmd.Flags().Changed("decimals") {
				meta.Decimals = ftInitDecimals
			}
			if ftInitIcon != "" {
				meta.Icon = token.Str(ftInitIcon)
			}
			initArgs.Metadata = &meta
		}
		if err := initArgs.Validate(); err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Initializing %s (%s)...", ftContract, initArgs.InitMethod()))
		spin.Start()
		_, err := newClient().Call(cmd.Context(), nearcli.CallParams{
			Contract: ftContract,
			Method:   initArgs.InitMethod(),
			Args:     initArgs,
			SignerID: ftInitOwner,
		})
		spin.Stop()
		if err != nil {
			return err
		}

		markInitialized(ftContract, initArgs.InitMethod())

		fmt.Println(ui.Success("FT contract initialized"))
		fmt.Println(ui.KeyValueBlock("Fungible Token", [][2]string{
			{"Contract", ftContract},
			{"Owner", ftInitOwner},
			{"Total Supply", ftInitSupply},
			{"Initializer", initArgs.InitMethod()},
		}))
		return nil
	},
}

var ftBalanceCmd = &cobra.Command{
	Use:   "balance <account-id>",
	Short: "Show an account's token balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(args[0]); err != nil {
			return err
		}
		res, err := newClient().View(cmd.Context(), ftContract, "ft_balance_of",
			token.BalanceOfArgs{AccountID: args[0]})
		if err != nil {
			return err
		}
		fmt.Print(res.Stdout)
		return nil
	},
}

var ftTotalSupplyCmd = &cobra.Command{
	Use:   "total-supply",
	Short: "Show the token's total supply",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newClient().View(cmd.Context(), ftContract, "ft_total_supply", nil)
		if err != nil {
			return err
		}
		fmt.Print(res.Stdout)
		return nil
	},
}

var ftMetadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show the token's metadata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newClient().View(cmd.Context(), ftContract, "ft_metadata", nil)
		if err != nil {
			return err
		}
		fmt.Print(res.Stdout)
		return nil
	},
}

var ftRegisterCmd = &cobra.Command{
	Use:   "register <account-id>",
	Short: "Register an account with the token (storage deposit)",
	Long: `Pay the storage deposit so an account can hold a balance. The
contract refunds any unused remainder of the attached deposit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(args[0]); err != nil {
			return err
		}
		signer := ftRegisterSigner
		if signer == "" {
			signer = args[0]
		}

		spin := ui.NewSpinner(fmt.Sprintf("Registering %s with %s...", args[0], ftContract))
		spin.Start()
		_, err := newClient().Call(cmd.Context(), nearcli.CallParams{
			Contract: ftContract,
			Method:   "storage_deposit",
			Args:     token.StorageDepositArgs{AccountID: args[0]},
			SignerID: signer,
			Deposit:  token.StorageDepositAmount,
		})
		spin.Stop()
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s registered with %s", ui.Acct(args[0]), ftContract)))
		return nil
	},
}

var ftTransferCmd = &cobra.Command{
	Use:   "transfer <receiver-id> <amount>",
	Short: "Transfer tokens to a registered account",
	Long: `Transfer a raw token amount (U128) from the signer to the receiver.
The receiver must already be registered (see: nearctl ft register).
The required 1 yoctoNEAR security deposit is attached automatically.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ftTransferSigner == "" {
			return fmt.Errorf("--signer is required")
		}
		transfer := token.FTTransferArgs{
			ReceiverID: args[0],
			Amount:     args[1],
		}
		if ftTransferMemo != "" {
			transfer.Memo = token.Str(ftTransferMemo)
		}
		if err := transfer.Validate(); err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Transferring %s tokens to %s...", args[1], args[0]))
		spin.Start()
		_, err := newClient().Call(cmd.Context(), nearcli.CallParams{
			Contract:     ftContract,
			Method:       "ft_transfer",
			Args:         transfer,
			SignerID:     ftTransferSigner,
			DepositYocto: account.OneYocto().String(),
		})
		spin.Stop()
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Transferred %s tokens to %s", ui.Val(args[1]), ui.Acct(args[0]))))
		return nil
	},
}

// markInitialized stamps the registry entry with the initializer used, if
// the contract was deployed through nearctl.
func markInitialized(contract, method string) {
	reg, err := newDeployRegistry()
	if err != nil {
		return
	}
	d, err := reg.Get(contract, cfg.NetworkID)
	if err != nil {
		return
	}
	d.InitMethod = method
	reg.Record(d)
	_ = reg.Save()
}

func init() {
	ftCmd.PersistentFlags().StringVar(&ftContract, "contract", "", "fungible-token contract account id (required)")
	_ = ftCmd.MarkPersistentFlagRequired("contract")

	ftInitCmd.Flags().StringVar(&ftInitOwner, "owner", "", "account that receives the full supply and signs the init (required)")
	ftInitCmd.Flags().StringVar(&ftInitSupply, "total-supply", "", "total supply as a raw token amount (required)")
	ftInitCmd.Flags().StringVar(&ftInitName, "name", "", "token name")
	ftInitCmd.Flags().StringVar(&ftInitSymbol, "symbol", "", "token symbol")
	ftInitCmd.Flags().Uint8Var(&ftInitDecimals, "decimals", token.DefaultFTDecimals, "token decimals")
	ftInitCmd.Flags().StringVar(&ftInitIcon, "icon", "", "data-URL icon")
	ftInitCmd.Flags().BoolVar(&ftInitDefaultMeta, "default-meta", false, "use the contract's built-in metadata")
	_ = ftInitCmd.MarkFlagRequired("owner")
	_ = ftInitCmd.MarkFlagRequired("total-supply")

	ftRegisterCmd.Flags().StringVar(&ftRegisterSigner, "signer", "", "account paying the deposit (default: the account being registered)")

	ftTransferCmd.Flags().StringVar(&ftTransferSigner, "signer", "", "account sending the tokens (required)")
	ftTransferCmd.Flags().StringVar(&ftTransferMemo, "memo", "", "optional transfer memo")
	_ = ftTransferCmd.MarkFlagRequired("signer")

	ftCmd.AddCommand(ftDeployCmd, ftInitCmd, ftBalanceCmd, ftTotalSupplyCmd, ftMetadataCmd, ftRegisterCmd, ftTransferCmd)
}
