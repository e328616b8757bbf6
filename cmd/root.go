package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chunk-team/chunkforge/cmd/generate"
	"github.com/chunk-team/chunkforge/cmd/watch"
)

var (
	// Version information
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"

	rootCmd = &cobra.Command{
		Use:   "chunkforge",
		Short: "Development-mode chunk runtime generator for JavaScript bundles",
		Long: `Chunkforge generates the bootstrap glue that wires compiled JavaScript
chunks into a shared development runtime: per-chunk parameters, chunk lists
and the strategy-specific runtime code.`,
		Version: version,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("chunkforge %s\n", version)
			fmt.Printf("Build time: %s\n", buildTime)
			fmt.Printf("Git commit: %s\n", gitCommit)
		},
	}
)

// SetVersion sets the version information
func SetVersion(v, bt, gc string) {
	version = v
	buildTime = bt
	gitCommit = gc
	rootCmd.Version = v
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generate.GenerateCmd)
	rootCmd.AddCommand(watch.WatchCmd)
	rootCmd.AddCommand(versionCmd)
}
