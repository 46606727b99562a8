package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set by the linker. Empty values fall back to the module build info, so a
// plain go install still reports something useful.
var (
	version string
	commit  string
	date    string
)

var versionFormats = []string{"json", "yaml"}

// buildInfo resolves the version triple, preferring linker values.
func buildInfo(read func() (*debug.BuildInfo, bool)) (v, c, d string) {
	v, c, d = version, commit, date
	if info, ok := read(); ok {
		if v == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && c == "":
				c = s.Value
			case s.Key == "vcs.time" && d == "":
				d = s.Value
			}
		}
	}
	return orElse(v, "dev"), orElse(c, "none"), orElse(d, "unknown")
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func addVersion(topLevel *cobra.Command) {
	var short bool
	format := versionFormats[0]

	cmd := &cobra.Command{
		Use:   "version",
		Short: "print the sidelist build",
		Example: `
sidelist version
sidelist version -o yaml
sidelist version --short
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			known := false
			for _, f := range versionFormats {
				known = known || f == format
			}
			if !known {
				return fmt.Errorf("unknown output format %q, want one of %v", format, versionFormats)
			}
			v, c, d := buildInfo(debug.ReadBuildInfo)
			_, err := fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, v, c, d, format))
			return err
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print the version number only.")
	cmd.Flags().StringVarP(&format, "output", "o", format, "Output format, json or yaml.")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return versionFormats, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
