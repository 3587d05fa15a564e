package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), versionString(info))
	},
}

// versionString reports the ldflags version, falling back to the module
// version `go install` records, plus the VCS revision and Go version when
// the binary carries them.
func versionString(info *debug.BuildInfo) string {
	v := version
	if info == nil {
		return "strengthmap " + v
	}
	if v == "(devel)" && info.Main.Version != "" {
		v = info.Main.Version
	}

	var rev, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	out := "strengthmap " + v
	if rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if modified == "true" {
			rev += "-dirty"
		}
		out += " (" + rev + ")"
	}
	if info.GoVersion != "" {
		out += " " + info.GoVersion
	}
	return out
}
