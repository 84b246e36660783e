package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sukoon/internal/agenda"
	"sukoon/internal/datekey"
)

func newAgendaCmd() *cobra.Command {
	var date string
	var all bool

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show reminders for a day, or every reminder in calendar order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			reminders, err := s.Reminders()
			if err != nil {
				return err
			}

			if all {
				printReminders(cmd, agenda.SortAll(reminders))
				return nil
			}

			dk := date
			if dk == "" {
				dk = datekey.FromTime(time.Now())
			}
			if !datekey.Valid(dk) {
				return fmt.Errorf("date must be YYYY-MM-DD, got %q", dk)
			}
			printReminders(cmd, agenda.ForDay(reminders, dk))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day key YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&all, "all", false, "Show every reminder, sorted by date then time")
	return cmd
}

func printReminders(cmd *cobra.Command, reminders []agenda.Reminder) {
	if len(reminders) == 0 {
		cmd.Println("no reminders")
		return
	}
	for _, r := range reminders {
		cmd.Printf("%s  %-12s %-12s %s  (%s)\n", r.DateKey, r.Time, r.Category, r.Title, r.ID)
	}
}
