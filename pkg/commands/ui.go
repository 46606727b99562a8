package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/runner/ui"
	"tableflip.dev/sidelist/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	watch := true

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the terminal sidebar",
		Long: `Open the terminal sidebar.

Drag lists and items with the mouse, or press space to pick one up, move it
with the arrow keys and press space again to drop it. Esc puts it back.
Press f to show another file from the vault.`,
		Example: `
sidelist ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg, Verbose: logOpts.Verbose, Watch: watch}
			return i.Do(ctx(cmd))
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", true, "Reload when the file or the settings are changed by another program.")
	topLevel.AddCommand(cmd)
}
