package watch

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/ratelimit"

	"github.com/chunk-team/chunkforge/internal/build"
	"github.com/chunk-team/chunkforge/internal/config"
	"github.com/chunk-team/chunkforge/internal/utils/logger"
)

var (
	configPath string
	verbose    bool
)

// WatchCmd regenerates runtime glue whenever the manifest changes.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the manifest and regenerate runtime glue on change",
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetVerbose()
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		if err := run(cfg); err != nil {
			fmt.Printf("Watch failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func run(cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Manifest); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.Manifest, err)
	}

	// Editors fire bursts of events per save; the limiter caps how often a
	// burst can turn into a rebuild pass.
	limiter := ratelimit.New(cfg.WatchRate)

	rebuild(cfg)
	logger.Info("Watching %s", cfg.Manifest)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			limiter.Take()
			// Some editors replace the file on save, which drops the watch.
			if event.Op&fsnotify.Rename != 0 {
				watcher.Add(cfg.Manifest)
			}
			rebuild(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

// rebuild runs one pass, keeping the watch alive on failure so a broken
// manifest edit can be fixed without restarting.
func rebuild(cfg *config.Config) {
	if _, err := build.Run(cfg); err != nil {
		logger.Error("Generation failed: %v", err)
	}
}

func init() {
	WatchCmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to the project config file")
	WatchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
