package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a list or an item",
		Example: `
sidelist add list Groceries
sidelist add item Groceries oat milk
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddList(cmd)
	addAddItem(cmd)

	topLevel.AddCommand(cmd)
}

func addAddList(topLevel *cobra.Command) {
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "list <name>",
		Short: "Append a new, expanded list",
		Example: `
sidelist add list Groceries
sidelist add list -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && !io.Interactive {
				return errors.New("requires a list name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, io, func(s *sidebar) error {
				var (
					i   int
					err error
				)
				if len(args) == 0 {
					i, err = s.PromptAddList(ctx(cmd))
				} else {
					i, err = s.AddList(ctx(cmd), strings.Join(args, " "))
				}
				if err != nil || i < 0 {
					return err
				}
				return s.printList(cmd, i)
			})
		},
	}

	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAddItem(topLevel *cobra.Command) {
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "item <list> <content>",
		Short: "Append an item to a list",
		Long: `Append an item to a list. The list is given by index or name.

Wiki links like [[Some Note]] or [[Some Note|label]] are kept as written.`,
		Example: `
sidelist add item 0 oat milk
sidelist add item Groceries "see [[Recipes]]"
sidelist add item -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 && !io.Interactive {
				return errors.New("requires a list and the item content")
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
				var i int
				if len(rest) == 0 {
					i, err = s.PromptAddItem(ctx(cmd), list)
				} else {
					i, err = s.AddItem(ctx(cmd), list, strings.Join(rest, " "))
				}
				if err != nil || i < 0 {
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
