package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
	"tableflip.dev/sidelist/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	index := false

	cmd := &cobra.Command{
		Use:   "show [list]",
		Short: "Print the lists and their items",
		Example: `
sidelist show
sidelist show Groceries --index
sidelist show --json
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: listCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, nil, func(s *sidebar) error {
				list := -1
				if len(args) == 1 {
					var err error
					if list, _, err = s.pickList(cmd, args, nil); err != nil {
						return err
					}
				}
				r := show.Show{
					Service:   s.Service,
					List:      list,
					ShowIndex: index,
					JSON:      output.JSON,
					Out:       cmd.OutOrStdout(),
				}
				return r.Do(ctx(cmd))
			})
		},
	}

	cmd.Flags().BoolVar(&index, "index", false, "Show the indexes used to address lists and items.")
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addLists(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Print a table of the lists",
		Example: `
sidelist lists
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, nil, func(s *sidebar) error {
				r := show.Lists{Show: show.Show{
					Service: s.Service,
					List:    -1,
					JSON:    output.JSON,
					Out:     cmd.OutOrStdout(),
				}}
				return r.Do(ctx(cmd))
			})
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
