// Package db implements the annotation database commands.
package db

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcasekit/dcase-go/internal/annotation"
	"github.com/dcasekit/dcase-go/internal/conf"
	"github.com/dcasekit/dcase-go/internal/datastore"
)

// Command creates the db command with its import and export
// subcommands.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the annotation database",
	}
	cmd.AddCommand(importCommand(settings), exportCommand(settings))
	return cmd
}

func importCommand(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <input>...",
		Short: "Import annotation files into the database",
		Long:  "Events are keyed by content hash, re-importing a file never creates duplicates.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := datastore.Open(settings.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			total := 0
			for _, path := range args {
				c, err := annotation.Load(path, annotation.LoadOptions{
					Decimal: annotation.Decimal(settings.Annotation.Decimal),
				})
				if err != nil {
					return err
				}
				inserted, err := store.SaveCollection(c)
				if err != nil {
					return err
				}
				total += inserted
			}
			fmt.Printf("%d new events imported into %s\n", total, settings.Database.Path)
			return nil
		},
	}
	return cmd
}

func exportCommand(settings *conf.Settings) *cobra.Command {
	var query datastore.Query

	cmd := &cobra.Command{
		Use:   "export <output>",
		Short: "Export stored events to an annotation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := datastore.Open(settings.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			c, err := store.LoadCollection(query)
			if err != nil {
				return err
			}
			if err := annotation.Save(c, args[0], annotation.SaveOptions{}); err != nil {
				return err
			}
			fmt.Printf("%d events exported to %s\n", c.Len(), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&query.Filename, "file", "", "Restrict to one audio file")
	cmd.Flags().StringVar(&query.SceneLabel, "scene", "", "Restrict to one scene label")
	cmd.Flags().StringVar(&query.EventLabel, "event", "", "Restrict to one event label")
	return cmd
}
