package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
)

func addToggle(topLevel *cobra.Command) {
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "toggle <list>",
		Short: "Collapse or expand a list",
		Example: `
sidelist toggle Groceries
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && !io.Interactive {
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
				if _, err := s.ToggleExpanded(ctx(cmd), list); err != nil {
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
