// Package filter implements the annotation filtering command.
package filter

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcasekit/dcase-go/internal/annotation"
	"github.com/dcasekit/dcase-go/internal/conf"
)

// Command creates the filter command.
func Command(settings *conf.Settings) *cobra.Command {
	var criteria annotation.Filter
	var segStart, segStop float64
	var segFile string

	cmd := &cobra.Command{
		Use:   "filter <input> <output>",
		Short: "Filter annotation events by field values or time segment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := annotation.Load(args[0], annotation.LoadOptions{
				Decimal: annotation.Decimal(settings.Annotation.Decimal),
			})
			if err != nil {
				return err
			}

			out := c.Filter(criteria)
			if cmd.Flags().Changed("start") || cmd.Flags().Changed("stop") {
				out, err = out.FilterTimeSegment(annotation.Segment{
					Start:    segStart,
					Stop:     segStop,
					Filename: segFile,
					ZeroTime: false,
					Trim:     true,
				})
				if err != nil {
					return err
				}
			}

			if err := annotation.Save(out, args[1], annotation.SaveOptions{}); err != nil {
				return err
			}
			fmt.Printf("%d of %d events kept\n", out.Len(), c.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.Filename, "file", "", "Match a single audio file")
	cmd.Flags().StringSliceVar(&criteria.FileList, "file-list", nil, "Match any of the audio files")
	cmd.Flags().StringVar(&criteria.SceneLabel, "scene", "", "Match a scene label")
	cmd.Flags().StringSliceVar(&criteria.SceneList, "scene-list", nil, "Match any of the scene labels")
	cmd.Flags().StringVar(&criteria.EventLabel, "event", "", "Match an event label")
	cmd.Flags().StringSliceVar(&criteria.EventList, "event-list", nil, "Match any of the event labels")
	cmd.Flags().StringVar(&criteria.Tag, "tag", "", "Require a tag to be present")
	cmd.Flags().StringSliceVar(&criteria.TagList, "tag-list", nil, "Require any of the tags to be present")
	cmd.Flags().StringVar(&criteria.Identifier, "identifier", "", "Match an identifier")
	cmd.Flags().StringVar(&criteria.SourceLabel, "source", "", "Match a source label")
	cmd.Flags().Float64Var(&segStart, "start", 0, "Time segment start in seconds")
	cmd.Flags().Float64Var(&segStop, "stop", 0, "Time segment stop in seconds")
	cmd.Flags().StringVar(&segFile, "segment-file", "", "File the time segment applies to")
	return cmd
}
