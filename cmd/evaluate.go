package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/profile"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file.json>",
	Short: "Ingest an evaluation result from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read evaluation file: %w", err)
		}
		var eval profile.Evaluation
		if err := json.Unmarshal(raw, &eval); err != nil {
			return fmt.Errorf("decode evaluation: %w", err)
		}
		if eval.FamilyID == "" {
			eval.FamilyID = e.cfg.FamilyID
		}

		lenient, _ := cmd.Flags().GetBool("lenient")
		if lenient {
			e.service.IngestEvaluation(cmd.Context(), eval)
			return nil
		}

		p, err := e.service.ProcessEvaluation(cmd.Context(), eval)
		if err != nil {
			return err
		}
		fmt.Printf("Evaluation %s applied; %d topics tracked for %s.\n",
			eval.EvaluationID, len(p.TopicMastery), eval.ChildID)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().Bool("lenient", false, "Log and skip invalid evaluations instead of failing")
}
