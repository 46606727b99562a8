package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
	runner "tableflip.dev/sidelist/pkg/runner/settings"
	"tableflip.dev/sidelist/pkg/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or change settings",
		Long: `Read or change settings.

Options: ` + strings.Join(settings.Keys(), ", ") + `.
Changing filePath switches to that file, relative to the vault.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSettingsGet(cmd)
	addSettingsSet(cmd)

	topLevel.AddCommand(cmd)
}

func settingsCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
}

func addSettingsGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get [option]",
		Short: "Print one or all settings",
		Example: `
sidelist settings get
sidelist settings get filePath
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: settingsCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, nil, func(s *sidebar) error {
				r := runner.Get{Service: s.Service, JSON: output.JSON, Out: cmd.OutOrStdout()}
				if len(args) == 1 {
					r.Key = args[0]
				}
				return r.Do(ctx(cmd))
			})
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addSettingsSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <option> <value>",
		Short: "Change a setting",
		Example: `
sidelist settings set filePath lists/sidebar.md
sidelist settings set showDividers false
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: settingsCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, nil, func(s *sidebar) error {
				r := runner.Set{Service: s.Service, Key: args[0], Value: args[1], Out: cmd.OutOrStdout()}
				return r.Do(ctx(cmd))
			})
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
