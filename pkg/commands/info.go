package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
	"tableflip.dev/sidelist/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the lists and where they are stored.",
		Example: `
sidelist info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, nil, func(s *sidebar) error {
				i := info.Info{
					Config:  s.config,
					Service: s.Service,
					Out:     cmd.OutOrStdout(),
				}
				return i.Do(ctx(cmd))
			})
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
