package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/collection"
	"tableflip.dev/sidelist/pkg/commands/options"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <list> <item> <content>",
		Short: "Replace the content of an item",
		Long: `Replace the content of an item.

Editing an item to empty content deletes it.`,
		Example: `
sidelist edit Groceries 0 skimmed milk
sidelist edit Groceries 1 ""
sidelist edit -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 && !io.Interactive {
				return errors.New("requires a list, an item index and the new content")
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
				item, rest, err := s.pickItem(cmd, list, rest, io)
				if err != nil {
					return err
				}
				var res collection.EditResult
				if len(rest) == 0 {
					res, err = s.PromptEditItem(ctx(cmd), list, item)
				} else {
					res, err = s.EditItem(ctx(cmd), list, item, strings.Join(rest, " "))
				}
				if err != nil {
					return err
				}
				if !output.JSON {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "item %s\n", res)
				}
				return s.printList(cmd, list)
			})
		},
	}

	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
