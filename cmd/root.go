package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nearkit/nearctl/internal/config"
	"github.com/nearkit/nearctl/internal/logging"
	"github.com/nearkit/nearctl/internal/nearcli"
	"github.com/nearkit/nearctl/internal/registry"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/nearkit/nearctl/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir    string
	cfg       *config.Config
	verbose   bool
	testnet   bool
	mainnet   bool
	assumeYes bool

	log        *slog.Logger = logging.Discard()
	logCleanup func() error
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "nearctl",
	Short: "Deploy and drive NEAR contracts through the near CLI",
	Long: `nearctl is a checked deployment CLI wrapping the external near tool.

  Create accounts, deploy fungible-token and NFT contract artifacts,
  initialize them with typed JSON arguments, and run repeatable
  multi-step deploy plans. Every external call's exit code is checked;
  a failing step stops the run.

Global flags --testnet and --mainnet override the configured network for
a single invocation. Persist with: nearctl config set-network <id>`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if testnet {
			cfg.NetworkID = "testnet"
		}
		if mainnet {
			cfg.NetworkID = "mainnet"
		}
		if verbose {
			log, logCleanup, err = logging.Setup(cfg.DebugLogPath())
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: debug log disabled: %v\n", err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// NEARCTL_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("NEARCTL_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.nearctl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write a debug log of external invocations")
	rootCmd.PersistentFlags().BoolVar(&testnet, "testnet", false, "use testnet for this invocation")
	rootCmd.PersistentFlags().BoolVar(&mainnet, "mainnet", false, "use mainnet for this invocation")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "assume yes for all confirmation prompts")
	rootCmd.MarkFlagsMutuallyExclusive("testnet", "mainnet")

	rootCmd.AddCommand(
		loginCmd,
		accountCmd,
		deployCmd,
		devDeployCmd,
		callCmd,
		viewCmd,
		ftCmd,
		nftCmd,
		planCmd,
		registryCmd,
		configCmd,
		doctorCmd,
	)
}

// newRunner builds the exec runner from config, with debug logging wired in.
func newRunner() *nearcli.ExecRunner {
	r := nearcli.NewExecRunner(cfg.Binary)
	r.Logger = log
	return r
}

// newClient builds a client that targets the configured network.
func newClient() *nearcli.Client {
	return nearcli.NewClient(newRunner(),
		nearcli.WithNetworkID(cfg.NetworkID),
		nearcli.WithNodeURL(cfg.NodeURL),
	)
}

// newDeployRegistry opens the deployment registry, loading existing entries.
func newDeployRegistry() (*registry.Registry, error) {
	reg := registry.New(cfg.DeploymentsPath())
	if err := reg.Load(); err != nil {
		return nil, fmt.Errorf("loading deployment registry: %w", err)
	}
	return reg, nil
}

// requireMaster resolves the master account from a flag value or config.
func requireMaster(flagVal string) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}
	if cfg.MasterAccount != "" {
		return cfg.MasterAccount, nil
	}
	return "", fmt.Errorf("no master account: pass --master or run: nearctl config set-master <id>")
}
