package root

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Log shopping/match game sessions",
	}

	logCmd := &cobra.Command{
		Use:   "log <score>",
		Short: "Record a completed game session for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("score must be a number: %w", err)
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			sess, err := s.LogShoppingSession(score, time.Now())
			if err != nil {
				return err
			}
			cmd.Printf("logged game session on %s with score %g\n", sess.DateKey, score)
			return nil
		},
	}

	cmd.AddCommand(logCmd)
	return cmd
}

func newExerciseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Log exercise sessions",
	}

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record a completed exercise session for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			sess, err := s.LogExerciseSession(time.Now())
			if err != nil {
				return err
			}
			cmd.Printf("logged exercise session on %s\n", sess.DateKey)
			return nil
		},
	}

	cmd.AddCommand(logCmd)
	return cmd
}
