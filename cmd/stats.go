package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/mastery"
	"github.com/abhisek/adaptiq/internal/topics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a child's mastery state",
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

		p, err := e.service.Get(cmd.Context(), child)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No profile yet. Run a quiz first.")
			return nil
		}

		fmt.Printf("Child %s — %d quizzes, %d questions, %.0f%% topics mastered\n\n",
			p.ChildID, p.TotalQuizzes, p.TotalQuestions, p.MasteryPercent())

		names := make([]string, 0, len(p.TopicMastery))
		for topic := range p.TopicMastery {
			names = append(names, topic)
		}
		sort.Strings(names)

		fmt.Printf("%-24s %-9s %7s %9s %-10s %s\n", "TOPIC", "BAND", "PKNOWN", "CORRECT", "TREND", "NEXT PROBE")
		for _, topic := range names {
			tm := p.TopicMastery[topic]
			name := topic
			if t, err := topics.Get(topic); err == nil {
				name = t.Name
			}
			probeDate := "-"
			if tm.NextProbeDate != nil {
				probeDate = tm.NextProbeDate.Format("2006-01-02")
			}
			fmt.Printf("%-24s %-9s %7.2f %5d/%-3d %-10s %s\n",
				name, mastery.BandFor(tm.PKnown), tm.PKnown,
				tm.CorrectCount, tm.Attempts, tm.RecentTrend, probeDate)
		}
		return nil
	},
}
