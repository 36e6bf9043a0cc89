package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save a point-in-time snapshot of a child's profile",
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

		snap, err := e.service.SnapshotProfile(cmd.Context(), child)
		if err != nil {
			return err
		}
		fmt.Printf("Snapshot saved for %s at sequence %d.\n", child, snap.Sequence)
		return nil
	},
}
