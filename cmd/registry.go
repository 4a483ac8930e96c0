package cmd

import (
	"fmt"

	"github.com/nearkit/nearctl/internal/registry"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var registryKind string

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect deployments recorded by nearctl",
	Long: `Every successful deploy is recorded locally (account, network, kind,
artifact, initializer). The registry is informational: removing an entry
does not touch the chain.`,
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded deployments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newDeployRegistry()
		if err != nil {
			return err
		}

		var deployments []*registry.Deployment
		if registryKind != "" {
			deployments = reg.ByKind(registryKind, cfg.NetworkID)
		} else {
			deployments = reg.All()
		}
		if len(deployments) == 0 {
			fmt.Println(ui.Info("No deployments recorded yet"))
			fmt.Println(ui.Hint("Deploy something first: nearctl ft deploy <wasm> --contract <id>"))
			return nil
		}

		tbl := ui.NewTable([]ui.Column{
			{Title: "ACCOUNT", Width: 40},
			{Title: "NETWORK", Width: 10},
			{Title: "KIND", Width: 8},
			{Title: "INIT", Width: 18},
			{Title: "CREATED", Width: 20},
		})
		for _, d := range deployments {
			initMethod := d.InitMethod
			if initMethod == "" {
				initMethod = "-"
			}
			tbl.AddRow(ui.Row{d.AccountID, d.Network, d.Kind, initMethod, d.CreatedAt.Format("2006-01-02 15:04:05")})
		}
		fmt.Print(tbl.Render())
		return nil
	},
}

var registryShowCmd = &cobra.Command{
	Use:   "show [account-id]",
	Short: "Show one deployment in detail",
	Long: `Show a recorded deployment. With no argument an interactive picker
lists the registry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newDeployRegistry()
		if err != nil {
			return err
		}
		d, err := pickDeployment(reg, args)
		if err != nil || d == nil {
			return err
		}

		dev := "no"
		if d.DevDeploy {
			dev = "yes"
		}
		fmt.Println(ui.KeyValueBlock("Deployment", [][2]string{
			{"Account", d.AccountID},
			{"Network", d.Network},
			{"Kind", d.Kind},
			{"Artifact", d.WasmPath},
			{"Initializer", d.InitMethod},
			{"Dev Deploy", dev},
			{"Created", d.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		}))
		return nil
	},
}

var registryRemoveCmd = &cobra.Command{
	Use:   "remove [account-id]",
	Short: "Remove a deployment record (does not touch the chain)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newDeployRegistry()
		if err != nil {
			return err
		}
		d, err := pickDeployment(reg, args)
		if err != nil || d == nil {
			return err
		}

		if !assumeYes && !ui.Confirm(fmt.Sprintf("Remove registry entry for %s (%s)?", d.AccountID, d.Network)) {
			fmt.Println(ui.Warn("Aborted"))
			return nil
		}
		if err := reg.Remove(d.AccountID, d.Network); err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Removed %s from the registry", ui.Acct(d.AccountID))))
		return nil
	},
}

// pickDeployment resolves a deployment from the positional arg, or lets the
// user pick one interactively. A nil deployment with nil error means the
// picker was cancelled.
func pickDeployment(reg *registry.Registry, args []string) (*registry.Deployment, error) {
	if len(args) == 1 {
		return reg.Get(args[0], cfg.NetworkID)
	}

	all := reg.All()
	if len(all) == 0 {
		return nil, fmt.Errorf("registry is empty")
	}
	items := make([]ui.PickerItem, 0, len(all))
	for _, d := range all {
		items = append(items, ui.PickerItem{
			Label:    d.AccountID,
			SubLabel: fmt.Sprintf("%s %s", d.Network, d.Kind),
			Value:    d.AccountID + "@" + d.Network,
		})
	}
	picked, err := ui.PickItem("Select a deployment", items)
	if err != nil {
		return nil, err
	}
	if picked == "" {
		return nil, nil
	}
	for _, d := range all {
		if d.AccountID+"@"+d.Network == picked {
			return d, nil
		}
	}
	return nil, registry.ErrDeploymentNotFound
}

func init() {
	registryListCmd.Flags().StringVar(&registryKind, "kind", "", "filter by kind on the current network (ft|nft|custom)")
	registryCmd.AddCommand(registryListCmd, registryShowCmd, registryRemoveCmd)
}
