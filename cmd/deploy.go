package cmd

import (
	"fmt"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/nearkit/nearctl/internal/artifact"
	"github.com/nearkit/nearctl/internal/nearcli"
	"github.com/nearkit/nearctl/internal/registry"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	deployAccount string
	deployKind    string

	devDeployKind string
)

var deployCmd = &cobra.Command{
	Use:   "deploy <wasm-file>",
	Short: "Deploy a contract artifact to an existing account",
	Long: `Deploy a compiled contract to an account you control.

The artifact is checked locally (exists, non-empty, valid wasm header)
before anything is sent. The deployment is recorded in the local
registry on success.

Examples:
  nearctl deploy res/ft.wasm --account ft.you.testnet
  nearctl deploy res/nft.wasm --account nft.you.testnet --kind nft`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if deployAccount == "" {
			return fmt.Errorf("--account is required")
		}
		if err := account.ValidateID(deployAccount); err != nil {
			return err
		}
		info, err := artifact.Validate(args[0])
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Deploying %s (%d bytes) to %s...", info.Path, info.Size, deployAccount))
		spin.Start()
		_, err = newClient().Deploy(cmd.Context(), deployAccount, info.Path)
		spin.Stop()
		if err != nil {
			return err
		}

		if err := recordDeployment(deployAccount, deployKind, info.Path, false); err != nil {
			fmt.Println(ui.Warn(fmt.Sprintf("deployed, but registry update failed: %v", err)))
		}

		fmt.Println(ui.Success(fmt.Sprintf("Contract deployed to %s", ui.Acct(deployAccount))))
		if deployKind == registry.KindFT || deployKind == registry.KindNFT {
			fmt.Println(ui.Hint(fmt.Sprintf("Initialize it next: nearctl %s init --contract %s --owner <id>", deployKind, deployAccount)))
		}
		return nil
	},
}

var devDeployCmd = &cobra.Command{
	Use:   "dev-deploy <wasm-file>",
	Short: "Deploy to a throwaway dev account (testnet only)",
	Long: `Create a disposable dev account and deploy the artifact to it.

The generated account id is read back from neardev/dev-account.env and
printed, so the next commands can target it. Refused on mainnet.

Examples:
  nearctl dev-deploy res/ft.wasm
  nearctl dev-deploy res/nft.wasm --kind nft`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.NetworkID == "mainnet" {
			return fmt.Errorf("dev-deploy provisions throwaway accounts and is not available on mainnet")
		}
		info, err := artifact.Validate(args[0])
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Dev-deploying %s (%d bytes)...", info.Path, info.Size))
		spin.Start()
		_, err = newClient().DevDeploy(cmd.Context(), info.Path, cfg.ResolveHelperURL())
		spin.Stop()
		if err != nil {
			return err
		}

		// The dev-deploy flow writes the generated id next to the cwd.
		devID, err := nearcli.DevAccountID(".")
		if err != nil {
			return fmt.Errorf("deployed, but could not read dev account id: %w", err)
		}

		if err := recordDevDeployment(devID, devDeployKind, info.Path); err != nil {
			fmt.Println(ui.Warn(fmt.Sprintf("deployed, but registry update failed: %v", err)))
		}

		fmt.Println(ui.Success("Contract dev-deployed"))
		fmt.Println(ui.KeyValueBlock("Dev Deployment", [][2]string{
			{"Account", devID},
			{"Network", cfg.NetworkID},
			{"Artifact", info.Path},
		}))
		return nil
	},
}

func recordDeployment(accountID, kind, wasmPath string, dev bool) error {
	reg, err := newDeployRegistry()
	if err != nil {
		return err
	}
	reg.Record(&registry.Deployment{
		AccountID: accountID,
		Network:   cfg.NetworkID,
		Kind:      kind,
		WasmPath:  wasmPath,
		DevDeploy: dev,
	})
	return reg.Save()
}

func recordDevDeployment(accountID, kind, wasmPath string) error {
	return recordDeployment(accountID, kind, wasmPath, true)
}

func init() {
	deployCmd.Flags().StringVar(&deployAccount, "account", "", "account to deploy to (required)")
	deployCmd.Flags().StringVar(&deployKind, "kind", registry.KindCustom, "contract kind recorded in the registry (ft|nft|custom)")
	_ = deployCmd.MarkFlagRequired("account")

	devDeployCmd.Flags().StringVar(&devDeployKind, "kind", registry.KindCustom, "contract kind recorded in the registry (ft|nft|custom)")
}
