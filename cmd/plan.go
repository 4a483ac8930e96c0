package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/nearkit/nearctl/internal/plan"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var planVars []string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run and lint multi-step deploy plans",
	Long: `Deploy plans are YAML files describing a pipeline of account, deploy
and call steps. Steps run in order; the first failure stops the run and
the exit status reflects it, so a later step never fires against a
half-finished deployment.

Plan values may reference variables: {{master}} expands from the plan's
vars block or from --var master=you.testnet.`,
}

var planRunCmd = &cobra.Command{
	Use:   "run <plan-file>",
	Short: "Execute a deploy plan, stopping at the first failure",
	Long: `Execute every step of the plan in order against the configured
network. Deploy steps validate the wasm artifact locally before
uploading.

Examples:
  nearctl plan run deploy/ft-demo.yaml --var master=you.testnet
  nearctl plan run deploy/nft.yaml --testnet --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(args[0])
		if err != nil {
			return err
		}

		if verbose {
			fmt.Println(ui.Meta("Expanded plan:"))
			spew.Fdump(cmd.OutOrStdout(), p)
		}

		if destructive := destructiveLabels(p); len(destructive) > 0 && !assumeYes {
			fmt.Println(ui.Warn(fmt.Sprintf("Plan contains destructive steps: %s", strings.Join(destructive, ", "))))
			if !ui.ConfirmDanger("Run anyway?") {
				fmt.Println(ui.Warn("Aborted"))
				return nil
			}
		}

		exec := plan.NewExecutor(newClient())
		exec.OnStep = func(i, total int, s *plan.Step) {
			fmt.Printf("%s %s\n", ui.Meta(fmt.Sprintf("[%d/%d]", i+1, total)), s.Label())
		}

		run := exec.Run(cmd.Context(), p)
		printRunResult(run)
		if run.Failed() {
			last := run.Steps[len(run.Steps)-1]
			return fmt.Errorf("plan %q failed at step %q: %w", p.Name, last.Name, last.Err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Plan %q completed: %d step(s) in %s",
			p.Name, len(run.Steps), run.EndedAt.Sub(run.StartedAt).Round(time.Millisecond))))
		return nil
	},
}

var planLintCmd = &cobra.Command{
	Use:   "lint <plan-file>",
	Short: "Validate a plan without executing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(args[0])
		if err != nil {
			return err
		}

		tbl := ui.NewTable([]ui.Column{
			{Title: "#", Width: 3},
			{Title: "ACTION", Width: 16},
			{Title: "STEP", Width: 28},
			{Title: "TARGET", Width: 44},
		})
		for i, s := range p.Steps {
			tbl.AddRow(ui.Row{fmt.Sprintf("%d", i+1), s.Action(), s.Label(), s.Target()})
		}
		fmt.Print(tbl.Render())
		fmt.Println(ui.Success(fmt.Sprintf("Plan %q is valid: %d step(s)", p.Name, len(p.Steps))))
		return nil
	},
}

// loadPlan reads the plan file and overlays --var values on its vars block
// before expansion.
func loadPlan(path string) (*plan.Plan, error) {
	overrides, err := parseVarFlags(planVars)
	if err != nil {
		return nil, err
	}
	return plan.LoadWithVars(path, overrides)
}

func parseVarFlags(flags []string) (map[string]string, error) {
	vars := make(map[string]string, len(flags))
	for _, f := range flags {
		key, val, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("--var must be key=value, got %q", f)
		}
		vars[key] = val
	}
	return vars, nil
}

func destructiveLabels(p *plan.Plan) []string {
	var labels []string
	for i := range p.Steps {
		if p.Steps[i].Destructive() {
			labels = append(labels, p.Steps[i].Label())
		}
	}
	return labels
}

func printRunResult(run plan.RunResult) {
	for _, s := range run.Steps {
		if s.OK() {
			fmt.Println(ui.Success(fmt.Sprintf("%s (%s)", s.Name, s.Duration.Round(time.Millisecond))))
		} else {
			fmt.Println(ui.Err(fmt.Sprintf("%s: %v", s.Name, s.Err)))
		}
	}
}

func init() {
	planCmd.PersistentFlags().StringArrayVar(&planVars, "var", nil, "override a plan variable (key=value, repeatable)")
	planCmd.AddCommand(planRunCmd, planLintCmd)
}
