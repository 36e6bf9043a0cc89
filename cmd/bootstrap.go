package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Rebuild a child's profile from the answer event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		child, err := childID(cmd)
		if err != nil {
			return err
		}

		p, err := e.service.BootstrapProfile(cmd.Context(), child, e.cfg.FamilyID)
		if err != nil {
			return err
		}
		fmt.Printf("Rebuilt profile for %s: %d topics from %d answers across %d sessions.\n",
			child, len(p.TopicMastery), p.TotalQuestions, p.TotalQuizzes)
		return nil
	},
}
