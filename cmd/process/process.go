// Package process implements the event cleanup command.
package process

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcasekit/dcase-go/internal/annotation"
	"github.com/dcasekit/dcase-go/internal/conf"
)

// Command creates the process command.
func Command(settings *conf.Settings) *cobra.Command {
	var minLength, minGap float64
	var mapTo string
	var mapFrom []string

	cmd := &cobra.Command{
		Use:   "process <input> <output>",
		Short: "Enforce minimum event length and gap, optionally remapping labels first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := annotation.Load(args[0], annotation.LoadOptions{
				Decimal: annotation.Decimal(settings.Annotation.Decimal),
			})
			if err != nil {
				return err
			}

			if mapTo != "" {
				c = c.MapEvents(mapTo, mapFrom)
			}

			opts := annotation.ProcessOptions{}
			if cmd.Flags().Changed("min-length") {
				opts.MinimumEventLength = annotation.Float(minLength)
			}
			if cmd.Flags().Changed("min-gap") {
				opts.MinimumEventGap = annotation.Float(minGap)
			}
			out := c.ProcessEvents(opts)

			if err := annotation.Save(out, args[1], annotation.SaveOptions{}); err != nil {
				return err
			}
			fmt.Printf("%d events in, %d events out\n", c.Len(), out.Len())
			return nil
		},
	}

	cmd.Flags().Float64Var(&minLength, "min-length", 0, "Minimum event length in seconds")
	cmd.Flags().Float64Var(&minGap, "min-gap", 0, "Minimum gap between events in seconds")
	cmd.Flags().StringVar(&mapTo, "map-to", "", "Relabel events to this label before processing")
	cmd.Flags().StringSliceVar(&mapFrom, "map-from", nil, "Source labels to relabel, all when empty")
	return cmd
}
