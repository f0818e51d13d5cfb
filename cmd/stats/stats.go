// Package stats implements the annotation statistics command.
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcasekit/dcase-go/internal/annotation"
	"github.com/dcasekit/dcase-go/internal/conf"
)

// Command creates the stats command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <input>",
		Short: "Print annotation collection statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := annotation.Load(args[0], annotation.LoadOptions{
				Decimal: annotation.Decimal(settings.Annotation.Decimal),
			})
			if err != nil {
				return err
			}

			fmt.Println(c.String())
			fmt.Printf("files: %v\n", c.UniqueFiles())
			fmt.Printf("scene labels: %v\n", c.UniqueSceneLabels())

			result := c.Stats(nil, nil, nil)
			if len(result.Events) > 0 {
				fmt.Println("event labels:")
				for _, stat := range result.Events {
					fmt.Printf("  %-24s count=%-4d total=%8.2fs avg=%6.2fs\n",
						stat.Label, stat.Count, stat.TotalLength, stat.AverageLength)
				}
			}
			if len(result.Scenes) > 0 {
				fmt.Println("scene counts:")
				for _, count := range result.Scenes {
					fmt.Printf("  %-24s count=%d\n", count.Label, count.Count)
				}
			}
			if len(result.Tags) > 0 {
				fmt.Println("tag counts:")
				for _, count := range result.Tags {
					fmt.Printf("  %-24s count=%d\n", count.Label, count.Count)
				}
			}
			return nil
		},
	}
	return cmd
}
