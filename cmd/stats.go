package cmd

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obrev/obrev/internal/content"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		state := prog.State()

		if !state.Onboarded {
			fmt.Println("No study data yet. Run obrev to get started.")
			return nil
		}

		fmt.Printf("%s %s\n", state.Avatar, state.DisplayName)
		fmt.Printf("Level %d — %d XP\n", state.Level(), state.XP)
		fmt.Printf("Streak: %d days\n", state.Streak)
		fmt.Printf("Quizzes taken: %d (avg %d%%)\n",
			len(state.QuizHistory), int(math.Round(state.AverageQuizScore())))
		if state.TotalTimeSpent > 0 {
			fmt.Printf("Time studied: %dm\n", state.TotalTimeSpent/60)
		}
		fmt.Printf("Achievements: %d of %d\n",
			len(state.Achievements), len(content.Achievements()))

		fmt.Println()
		fmt.Println("Module Progress")
		fmt.Println(strings.Repeat("─", 56))
		for _, m := range content.Modules() {
			pct := state.ModuleProgress[m.ID]
			done := len(state.TopicsCompleted[m.ID])
			fmt.Printf("%-40s  %3d%%  %d/%d topics\n",
				truncate(m.Title, 40), pct, done, len(m.Topics))
		}

		if n := len(state.QuizHistory); n > 0 {
			fmt.Println()
			fmt.Println("Recent Quizzes")
			fmt.Println(strings.Repeat("─", 56))
			start := n - 5
			if start < 0 {
				start = 0
			}
			for i := n - 1; i >= start; i-- {
				q := state.QuizHistory[i]
				label := q.ModuleID
				if m := content.ModuleByID(q.ModuleID); m != nil {
					label = m.Title
				}
				fmt.Printf("%s  %-36s  %3d%% (%d/%d)\n",
					q.TakenAt.Local().Format("2006-01-02"),
					truncate(label, 36), q.Score, q.CorrectAnswers, q.TotalQuestions)
			}
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
