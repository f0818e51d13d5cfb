// Package inactivity implements the inactivity interval derivation
// command.
package inactivity

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcasekit/dcase-go/internal/annotation"
	"github.com/dcasekit/dcase-go/internal/audioinfo"
	"github.com/dcasekit/dcase-go/internal/conf"
)

// Command creates the inactivity command.
func Command(settings *conf.Settings) *cobra.Command {
	var label string
	var sourceLabels []string
	var audioDir string

	cmd := &cobra.Command{
		Use:   "inactivity <input> <output>",
		Short: "Derive inactivity intervals between annotated events",
		Long:  "Merge annotated activity per file and emit the gaps between activity as events. With an audio directory, file durations are probed from the audio headers so trailing silence is covered.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := annotation.Load(args[0], annotation.LoadOptions{
				Decimal: annotation.Decimal(settings.Annotation.Decimal),
			})
			if err != nil {
				return err
			}

			opts := annotation.EventInactivityOptions{
				EventLabel:   label,
				SourceLabels: sourceLabels,
			}
			if audioDir == "" {
				audioDir = settings.Annotation.AudioDir
			}
			if audioDir != "" {
				durations, err := audioinfo.DurationList(audioDir, c.UniqueFiles())
				if err != nil {
					return err
				}
				opts.DurationList = durations
			}

			out := c.EventInactivity(opts)
			if err := annotation.Save(out, args[1], annotation.SaveOptions{}); err != nil {
				return err
			}
			fmt.Printf("%d inactivity intervals written to %s\n", out.Len(), args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "inactivity", "Event label for the produced intervals")
	cmd.Flags().StringSliceVar(&sourceLabels, "source-labels", nil, "Event labels counted as activity, all when empty")
	cmd.Flags().StringVar(&audioDir, "audio-dir", "", "Directory holding the audio files for duration probing")
	return cmd
}
