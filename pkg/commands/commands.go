package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/commands/options"
	"tableflip.dev/sidelist/pkg/printers"
)

var (
	output  = &options.OutputOptions{}
	logOpts = &options.LogOptions{}
)

func New() *cobra.Command {
	output = &options.OutputOptions{}
	logOpts = &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "sidelist",
		Short: base.Wrap80("Named lists of notes kept in one markdown file, edited from the command line or a terminal sidebar."),
		PersistentPreRun: func(*cobra.Command, []string) {
			printers.DisableColorOffTTY()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, logOpts)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addLists(topLevel)
	addAdd(topLevel)
	addRename(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addToggle(topLevel)
	addSettings(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
