package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset study progress (keeps your name, avatar, and settings)",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This wipes XP, streaks, achievements, and quiz history.")
			fmt.Println("Your name, avatar, and preferences are kept.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		prog, err := loadProgression(ctx, st.SnapshotRepo(), nil)
		if err != nil {
			return err
		}

		prog.Reset()
		if err := saveSnapshot(ctx, st.SnapshotRepo(), prog); err != nil {
			return fmt.Errorf("save reset state: %w", err)
		}

		fmt.Println("Progress reset. Good luck this time around.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation message")
}
