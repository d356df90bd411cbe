package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ssidorov-gg/apache-ignite/internal/update"
	"github.com/ssidorov-gg/apache-ignite/internal/version"
	"github.com/ssidorov-gg/apache-ignite/pkg/generator"
)

func init() {
	// If version wasn't set via ldflags, try to get it from Go module info.
	// This works when installed via "go install .../cmd/ignitegen@version".
	if version.Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" && info.Main.Version != "(devel)" {
				version.Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if len(setting.Value) >= 7 {
						version.Commit = setting.Value[:7]
					} else {
						version.Commit = setting.Value
					}
				case "vcs.time":
					version.Date = setting.Value
				}
			}
		}
	}
}

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
		fmt.Printf("codegen version %s\n", generator.CodegenVersion)

		if !versionCheck {
			return
		}
		info, err := update.CheckWithCache(cmd.Context())
		switch {
		case err != nil:
			fmt.Printf("update check failed: %v\n", err)
		case info.UpdateAvailable:
			fmt.Printf("\nignitegen %s is available: %s\n", info.LatestVersion, info.ReleaseURL)
		default:
			fmt.Println("\nignitegen is up to date")
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}
