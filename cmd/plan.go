package cmd

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/output"
	"github.com/MyCarrier-DevOps/go-releaseable/pkg/releaseable"

	"github.com/spf13/cobra"
)

var flagPlanJSON bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the release steps and their commands without running them",
	Args:  cobra.NoArgs,
	RunE:  planRunE,
}

func init() {
	planCmd.Flags().BoolVar(&flagPlanJSON, "json", false, "print the plan as JSON")
	rootCmd.AddCommand(planCmd)
}

func planRunE(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	// Prepared as a dry run: no GitHub client, repository optional.
	overrides := flagOverrides(cmd.Flags())
	overrides.DryRun = releaseable.Bool(true)

	rel, err := prepare(ctx, cmd, overrides)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagPlanJSON {
		return output.WriteJSON(w, rel.Plan())
	}
	if _, err := fmt.Fprintf(w, "Release %s\n", rel.Version()); err != nil {
		return err
	}
	return output.WritePlan(w, rel.Plan())
}
