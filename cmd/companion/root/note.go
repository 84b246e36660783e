package root

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sukoon/internal/datekey"
)

func newNoteCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Read and write the monthly doctor/family note",
	}

	set := &cobra.Command{
		Use:   "set <text>",
		Short: "Save the note for a month (overwrites any earlier note)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk := month
			if mk == "" {
				mk = datekey.MonthFromTime(time.Now())
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			if err := s.SaveNote(mk, strings.TrimSpace(strings.Join(args, " ")), time.Now()); err != nil {
				return err
			}
			cmd.Printf("note for %s saved\n", mk)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the note for a month",
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
			notes, err := s.Notes()
			if err != nil {
				return err
			}
			entry, ok := notes[mk]
			if !ok {
				return errors.New("no note for " + mk)
			}
			cmd.Printf("%s (updated %s)\n%s\n", mk, entry.UpdatedAt, entry.Note)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&month, "month", "", "Month key YYYY-MM (default: current month)")
	cmd.AddCommand(set, show)
	return cmd
}
