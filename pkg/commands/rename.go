package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
)

func addRename(topLevel *cobra.Command) {
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "rename <list> <name>",
		Short: "Rename a list",
		Example: `
sidelist rename 0 Shopping
sidelist rename Groceries -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 && !io.Interactive {
				return errors.New("requires a list and its new name")
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
				var changed bool
				if len(rest) == 0 {
					changed, err = s.PromptRenameList(ctx(cmd), list)
				} else {
					changed, err = s.RenameList(ctx(cmd), list, strings.Join(rest, " "))
				}
				if err != nil {
					return err
				}
				if !changed && !output.JSON {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "name unchanged")
				}
				return s.printList(cmd, list)
			})
		},
	}

	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
