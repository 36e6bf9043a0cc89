package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/probe"
)

var probesCmd = &cobra.Command{
	Use:   "probes",
	Short: "List retention probes due for a child",
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
			fmt.Println("No profile yet.")
			return nil
		}

		due := probe.SelectDue(p, time.Now())
		if len(due) == 0 {
			fmt.Println("No probes due.")
			return nil
		}
		for _, topic := range due {
			tm := p.TopicMastery[topic]
			fmt.Printf("%-24s due since %s (interval %dd)\n",
				topic, tm.NextProbeDate.Format("2006-01-02"), tm.ProbeIntervalDays)
		}
		return nil
	},
}
