package cmd

import (
	"fmt"
	"strings"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/nearkit/nearctl/internal/config"
	"github.com/nearkit/nearctl/internal/secrets"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change nearctl settings",
	Long: `Settings live in config.json under the config directory
(default ~/.nearctl, override with --config or NEARCTL_CONFIG_DIR).
Node API keys are stored in the OS keychain, never in config.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nodeKey := "(not set)"
		if _, err := secrets.DefaultKeystore().Get(nodeKeyName(cfg.NetworkID)); err == nil {
			nodeKey = "(set)"
		}

		master := cfg.MasterAccount
		if master == "" {
			master = "(not set)"
		}
		fmt.Println(ui.KeyValueBlock("Configuration", [][2]string{
			{"Directory", cfg.Dir()},
			{"Network", cfg.NetworkID},
			{"Node URL", cfg.ResolveNodeURL()},
			{"Helper URL", cfg.ResolveHelperURL()},
			{"Master", master},
			{"Binary", cfg.Binary},
			{"Init Balance", cfg.InitialBal + " NEAR"},
			{"Node API Key", nodeKey},
		}))
		return nil
	},
}

var configSetNetworkCmd = &cobra.Command{
	Use:   "set-network <network-id>",
	Short: "Set the default network",
	Long: fmt.Sprintf(`Set the default network. Known networks: %s.
Unknown ids are accepted only when a custom node URL is configured.`,
		strings.Join(config.KnownNetworks(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.SetNetworkID(args[0]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default network set to %s", ui.Network(args[0]))))
		return nil
	},
}

var configSetNodeURLCmd = &cobra.Command{
	Use:   "set-node-url <url>",
	Short: "Set a custom RPC node URL (empty to reset)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.NodeURL = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		if args[0] == "" {
			fmt.Println(ui.Success(fmt.Sprintf("Node URL reset to the %s default", cfg.NetworkID)))
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("Node URL set to %s", ui.Val(args[0]))))
		}
		return nil
	},
}

var configSetMasterCmd = &cobra.Command{
	Use:   "set-master <account-id>",
	Short: "Set the master account used to fund sub-accounts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(args[0]); err != nil {
			return err
		}
		cfg.MasterAccount = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Master account set to %s", ui.Acct(args[0]))))
		return nil
	},
}

var configSetBinaryCmd = &cobra.Command{
	Use:   "set-binary <path>",
	Short: "Set the external near binary to invoke",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Binary = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Binary set to %s", ui.Val(args[0]))))
		fmt.Println(ui.Hint("Verify it works: nearctl doctor"))
		return nil
	},
}

var configSetInitialBalanceCmd = &cobra.Command{
	Use:   "set-initial-balance <near>",
	Short: "Set the default initial balance for new accounts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := account.ParseNEAR(args[0]); err != nil {
			return err
		}
		cfg.InitialBal = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default initial balance set to %s NEAR", ui.Val(args[0]))))
		return nil
	},
}

var configSetNodeKeyCmd = &cobra.Command{
	Use:   "set-node-key <api-key>",
	Short: "Store an RPC provider API key for the current network",
	Long: `Store an API key for the configured network's RPC provider in the OS
keychain. Pass an empty string to delete the stored key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ks := secrets.DefaultKeystore()
		name := nodeKeyName(cfg.NetworkID)
		if args[0] == "" {
			if err := ks.Delete(name); err != nil {
				return err
			}
			fmt.Println(ui.Success(fmt.Sprintf("Node API key for %s deleted", cfg.NetworkID)))
			return nil
		}
		if err := ks.Set(name, args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Node API key for %s stored in the keychain", cfg.NetworkID)))
		return nil
	},
}

func nodeKeyName(network string) string {
	return "node-key." + network
}

func init() {
	configCmd.AddCommand(
		configSetNetworkCmd,
		configSetNodeURLCmd,
		configSetMasterCmd,
		configSetBinaryCmd,
		configSetInitialBalanceCmd,
		configSetNodeKeyCmd,
	)
}
