package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/session"
	"github.com/abhisek/adaptiq/internal/topics"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a quiz plan without running it",
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
		subject, questions, err := composeArgs(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		p, err := e.service.Get(ctx, child)
		if err != nil {
			return err
		}
		if p == nil {
			p = mastery.NewProfile(child, e.cfg.FamilyID)
		}

		lastSession, err := e.service.LastSessionEnd(ctx, child, subject)
		if err != nil {
			return err
		}

		now := time.Now()
		rng := rand.New(rand.NewSource(now.UnixNano()))
		plan := session.BuildPlan(p, subject, questions, lastSession, true, now, rng)
		printPlan(plan)
		return nil
	},
}

func init() {
	composeCmd.Flags().String("subject", "math", "Subject to compose for")
	composeCmd.Flags().Int("questions", 10, "Number of questions")
}

func composeArgs(cmd *cobra.Command) (topics.Subject, int, error) {
	name, _ := cmd.Flags().GetString("subject")
	subject := topics.Subject(name)
	if len(topics.BySubject(subject)) == 0 {
		return "", 0, fmt.Errorf("unknown subject %q", name)
	}
	questions, _ := cmd.Flags().GetInt("questions")
	if questions < 1 {
		return "", 0, fmt.Errorf("--questions must be positive")
	}
	return subject, questions, nil
}

func printPlan(plan session.Plan) {
	if plan.ReviewMode {
		fmt.Println("Review mode: biasing toward previously solid topics after a practice gap.")
	}
	if len(plan.ProbeTopics) > 0 {
		fmt.Printf("Retention probes due: %v\n", plan.ProbeTopics)
	}
	fmt.Printf("%-4s %-24s %-8s %s\n", "#", "TOPIC", "LEVEL", "")
	for i, slot := range plan.Slots {
		marker := ""
		if slot.Probe {
			marker = "probe"
		}
		name := slot.Topic
		if t, err := topics.Get(slot.Topic); err == nil {
			name = t.Name
		}
		fmt.Printf("%-4d %-24s %-8s %s\n", i+1, name, slot.Difficulty, marker)
	}
}
