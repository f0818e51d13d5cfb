package main

import (
	"fmt"
	"os"

	"github.com/dcasekit/dcase-go/cmd"
	"github.com/dcasekit/dcase-go/internal/conf"
	"github.com/dcasekit/dcase-go/internal/logging"
)

func main() {
	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Options{
		Level:      logging.ParseLevel(settings.Log.Level),
		FilePath:   settings.Log.File,
		MaxSizeMB:  settings.Log.MaxSizeMB,
		MaxBackups: settings.Log.MaxBackups,
	})
	defer logging.Close()

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
