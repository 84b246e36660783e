package root

import (
	"time"

	"github.com/spf13/cobra"
)

func newTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the to-do list",
	}

	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a to-do",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			todo, err := s.AddTodo(args[0], time.Now())
			if err != nil {
				return err
			}
			cmd.Printf("added %s: %s\n", todo.ID, todo.Text)
			return nil
		},
	}

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a to-do's done state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			todo, err := s.ToggleTodo(args[0], time.Now())
			if err != nil {
				return err
			}
			state := "open"
			if todo.Done {
				state = "done"
			}
			cmd.Printf("%s is now %s\n", todo.Text, state)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed to-dos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			removed, err := s.ClearCompleted()
			if err != nil {
				return err
			}
			cmd.Printf("removed %d completed to-do(s)\n", removed)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all to-dos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			todos, err := s.Todos()
			if err != nil {
				return err
			}
			if len(todos) == 0 {
				cmd.Println("no to-dos yet")
				return nil
			}
			for _, t := range todos {
				mark := " "
				if t.Done {
					mark = "x"
				}
				cmd.Printf("[%s] %s  %s\n", mark, t.ID, t.Text)
			}
			return nil
		},
	}

	cmd.AddCommand(add, done, clear, list)
	return cmd
}
