package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/chunk-team/chunkforge/cmd"
)

// Version information set during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cmd.SetVersion(Version, BuildTime, GitCommit)

	// Set up signal handling for immediate shutdown
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalChan
		os.Exit(0)
	}()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
