package generate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chunk-team/chunkforge/internal/build"
	"github.com/chunk-team/chunkforge/internal/config"
	"github.com/chunk-team/chunkforge/internal/utils/logger"
)

var (
	configPath   string
	manifestPath string
	verbose      bool
)

// GenerateCmd runs a single generation pass over the build manifest.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate runtime glue for every entry chunk in the manifest",
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetVerbose()
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		if manifestPath != "" {
			cfg.Manifest = manifestPath
		}

		summary, err := build.Run(cfg)
		if err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			os.Exit(1)
		}

		for _, artifact := range summary.Artifacts {
			logger.Debug("Wrote %s", artifact)
		}
	},
}

func init() {
	GenerateCmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to the project config file")
	GenerateCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Override the manifest path from the config")
	GenerateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
