package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"sukoon/internal/agenda"
	"sukoon/internal/datekey"
)

func newReminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage local reminders",
	}

	var (
		timeLabel string
		category  string
		repeat    string
		date      string
	)
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !datekey.Valid(date) {
				return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			r, err := s.AddReminder(agenda.Reminder{
				Title:    args[0],
				Time:     timeLabel,
				Category: category,
				Repeat:   repeat,
				DateKey:  date,
			})
			if err != nil {
				return err
			}
			cmd.Printf("added reminder %s on %s\n", r.ID, r.DateKey)
			return nil
		},
	}
	add.Flags().StringVar(&timeLabel, "time", "", "Time label shown to the user, e.g. \"9:00 a.m.\"")
	add.Flags().StringVar(&category, "category", "Medicine", "Category (Medicine, Appointment, Exercise, Other)")
	add.Flags().StringVar(&repeat, "repeat", "Daily", "Repeat label (Daily, Weekly, Once)")
	add.Flags().StringVar(&date, "date", "", "Day key YYYY-MM-DD")
	add.MarkFlagRequired("date")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a reminder by id (no-op when the id is unknown)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.RemoveReminder(args[0]); err != nil {
				return err
			}
			cmd.Println("removed", args[0])
			return nil
		},
	}

	var (
		evID    string
		evTitle string
		evTime  string
		evDate  string
	)
	fromEvent := &cobra.Command{
		Use:   "from-event",
		Short: "Copy a community event into the reminder list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			r, err := s.AddReminder(agenda.PromoteEvent(agenda.Event{
				ID:      evID,
				Title:   evTitle,
				Time:    evTime,
				DateKey: evDate,
			}))
			if err != nil {
				return err
			}
			cmd.Printf("added event reminder %s\n", r.ID)
			return nil
		},
	}
	fromEvent.Flags().StringVar(&evID, "id", "", "Event id")
	fromEvent.Flags().StringVar(&evTitle, "title", "", "Event title")
	fromEvent.Flags().StringVar(&evTime, "time", "", "Event time label")
	fromEvent.Flags().StringVar(&evDate, "date", "", "Event day key YYYY-MM-DD")
	fromEvent.MarkFlagRequired("id")
	fromEvent.MarkFlagRequired("title")

	cmd.AddCommand(add, remove, fromEvent)
	return cmd
}
