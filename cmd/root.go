package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dcasekit/dcase-go/cmd/convert"
	"github.com/dcasekit/dcase-go/cmd/db"
	"github.com/dcasekit/dcase-go/cmd/filter"
	"github.com/dcasekit/dcase-go/cmd/inactivity"
	"github.com/dcasekit/dcase-go/cmd/probe"
	"github.com/dcasekit/dcase-go/cmd/process"
	"github.com/dcasekit/dcase-go/cmd/stats"
	"github.com/dcasekit/dcase-go/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dcase",
		Short: "DCASE annotation tooling",
	}

	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug output")

	subcommands := []*cobra.Command{
		convert.Command(settings),
		filter.Command(settings),
		stats.Command(settings),
		process.Command(settings),
		inactivity.Command(settings),
		probe.Command(settings),
		db.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}
