package cmd

import (
	"fmt"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that nearctl's environment is usable",
	Long: `Run local checks: the external near binary resolves and responds,
the config directory is writable, and the configured master account id
is well formed. Exits non-zero if any check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0

		path, err := newRunner().CheckBinary(cmd.Context())
		if err != nil {
			fmt.Println(ui.Err(fmt.Sprintf("binary %q: %v", cfg.Binary, err)))
			fmt.Println(ui.Hint("Install it with: npm install -g near-cli, or point nearctl at it: nearctl config set-binary <path>"))
			failed++
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("binary: %s", path)))
		}

		if err := cfg.Save(); err != nil {
			fmt.Println(ui.Err(fmt.Sprintf("config dir %s not writable: %v", cfg.Dir(), err)))
			failed++
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("config dir: %s", cfg.Dir())))
		}

		if cfg.MasterAccount == "" {
			fmt.Println(ui.Warn("master account not set (account create will need --master)"))
		} else if err := account.ValidateID(cfg.MasterAccount); err != nil {
			fmt.Println(ui.Err(fmt.Sprintf("master account: %v", err)))
			failed++
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("master account: %s", cfg.MasterAccount)))
		}

		fmt.Println(ui.Success(fmt.Sprintf("network: %s (%s)", cfg.NetworkID, cfg.ResolveNodeURL())))

		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		fmt.Println(ui.Success("All checks passed"))
		return nil
	},
}
