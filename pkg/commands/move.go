package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
)

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "move",
		Aliases: []string{"mv"},
		Short:   "Reorder lists or the items of a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMoveList(cmd)
	addMoveItem(cmd)

	topLevel.AddCommand(cmd)
}

func addMoveList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list <list> <to>",
		Short: "Move a list to another position",
		Example: `
sidelist move list Groceries 0
sidelist move list 3 1
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: listCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, nil, func(s *sidebar) error {
				from, rest, err := s.pickList(cmd, args, nil)
				if err != nil {
					return err
				}
				to, err := options.ParseIndex(rest[0])
				if err != nil {
					return err
				}
				if err := s.MoveList(ctx(cmd), from, to); err != nil {
					return err
				}
				return s.printList(cmd, -1)
			})
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addMoveItem(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "item <list> <item> <to>",
		Short: "Move an item within its list",
		Long: `Move an item to another position within its list.

Items never move between lists.`,
		Example: `
sidelist move item Groceries 2 0
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("requires a list, an item index and a destination index")
			}
			return nil
		},
		ValidArgsFunction: listCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, nil, func(s *sidebar) error {
				list, rest, err := s.pickList(cmd, args, nil)
				if err != nil {
					return err
				}
				from, rest, err := s.pickItem(cmd, list, rest, nil)
				if err != nil {
					return err
				}
				to, err := options.ParseIndex(rest[0])
				if err != nil {
					return err
				}
				if err := s.MoveItem(ctx(cmd), list, from, to); err != nil {
					return err
				}
				return s.printList(cmd, list)
			})
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
