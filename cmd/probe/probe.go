// Package probe implements the audio header inspection command.
package probe

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcasekit/dcase-go/internal/audioinfo"
	"github.com/dcasekit/dcase-go/internal/conf"
)

// Command creates the probe command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <audiofile>...",
		Short: "Print audio file header information",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				info, err := audioinfo.Probe(path)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %d Hz, %d ch, %d bit, %.3f s\n",
					path, info.SampleRate, info.NumChannels, info.BitDepth, info.Duration())
			}
			return nil
		},
	}
	return cmd
}
