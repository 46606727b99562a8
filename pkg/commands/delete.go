package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete a list or an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDeleteList(cmd)
	addDeleteItem(cmd)

	topLevel.AddCommand(cmd)
}

func addDeleteList(topLevel *cobra.Command) {
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "list <list>",
		Short: "Delete a list and all of its items",
		Example: `
sidelist delete list Groceries
sidelist delete list 2 --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && !io.Interactive {
				return errors.New("requires a list")
			}
			return nil
		},
		ValidArgsFunction: listCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, io, func(s *sidebar) error {
				list, _, err := s.pickList(cmd, args, io)
				if err != nil {
					return err
				}
				deleted, err := s.ConfirmDeleteList(ctx(cmd), list)
				if err != nil {
					return err
				}
				if !deleted {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "kept list")
					return nil
				}
				return s.printList(cmd, -1)
			})
		},
	}

	options.InteractiveArgs(cmd, io)
	options.AddYesArg(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addDeleteItem(topLevel *cobra.Command) {
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "item <list> <item>",
		Short: "Delete one item",
		Example: `
sidelist delete item Groceries 1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 && !io.Interactive {
				return errors.New("requires a list and an item index")
			}
			return nil
		},
		ValidArgsFunction: listCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, io, func(s *sidebar) error {
				list, rest, err := s.pickList(cmd, args, io)
				if err != nil {
					return err
				}
				item, _, err := s.pickItem(cmd, list, rest, io)
				if err != nil {
					return err
				}
				if err := s.DeleteItem(ctx(cmd), list, item); err != nil {
					return err
				}
				return s.printList(cmd, list)
			})
		},
	}

	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
