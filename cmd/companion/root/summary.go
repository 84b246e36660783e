package root

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"sukoon/internal/datekey"
	"sukoon/internal/progress"
)

func newSummaryCmd() *cobra.Command {
	var month string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly progress summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mk := month
			if mk == "" {
				mk = datekey.MonthFromTime(time.Now())
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			todos, err := s.Todos()
			if err != nil {
				return err
			}
			shopping, err := s.ShoppingSessions()
			if err != nil {
				return err
			}
			exercise, err := s.ExerciseSessions()
			if err != nil {
				return err
			}
			notes, err := s.Notes()
			if err != nil {
				return err
			}

			sum := progress.SummarizeMonth(mk, todos, shopping, exercise, notes)

			if asJSON {
				out, err := json.MarshalIndent(sum, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
				return nil
			}

			cmd.Printf("Month %s\n", sum.Month)
			cmd.Printf("To-dos: %d added, %d completed\n", sum.TodosCreated, sum.TodosCompleted)
			if len(sum.ShoppingDaily) == 0 {
				cmd.Println("No shopping/match games played this month.")
			} else {
				cmd.Printf("Game days: %d\n", len(sum.ShoppingDaily))
				for _, d := range sum.ShoppingDaily {
					cmd.Printf("  day %2d  best score %g\n", d.Day, d.BestScore)
				}
			}
			if len(sum.ExerciseDaily) == 0 {
				cmd.Println("No exercise sessions recorded this month.")
			} else {
				cmd.Printf("Exercise days: %d\n", len(sum.ExerciseDaily))
				for _, d := range sum.ExerciseDaily {
					cmd.Printf("  day %2d  %d session(s)\n", d.Day, d.Count)
				}
			}
			if sum.Note != nil {
				cmd.Printf("Note (updated %s): %s\n", sum.Note.UpdatedAt, sum.Note.Note)
			}
			cmd.Printf("Feedback: %s\n", sum.Feedback)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month key YYYY-MM (default: current month)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw summary as JSON")
	return cmd
}
