// Package convert implements the annotation format conversion command.
package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcasekit/dcase-go/internal/annotation"
	"github.com/dcasekit/dcase-go/internal/conf"
)

// Command creates the convert command.
func Command(settings *conf.Settings) *cobra.Command {
	var fields []string
	var csvHeader bool

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert an annotation file between formats",
		Long:  "Load an annotation file and save it in the format the output extension implies (txt, ann, csv, yaml, gob).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var headerOpt *bool
			if cmd.Flags().Changed("csv-header") {
				headerOpt = &csvHeader
			}
			c, err := annotation.Load(args[0], loadOptions(settings, fields, headerOpt))
			if err != nil {
				return err
			}
			if err := annotation.Save(c, args[1], annotation.SaveOptions{
				Fields:    fields,
				CSVHeader: headerOpt,
			}); err != nil {
				return err
			}
			fmt.Printf("%d events written to %s\n", c.Len(), args[1])
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Explicit column-to-field mapping")
	cmd.Flags().BoolVar(&csvHeader, "csv-header", true, "Read/write a CSV header row")
	return cmd
}

func loadOptions(settings *conf.Settings, fields []string, csvHeader *bool) annotation.LoadOptions {
	opts := annotation.LoadOptions{
		Fields:    fields,
		CSVHeader: csvHeader,
		Decimal:   annotation.Decimal(settings.Annotation.Decimal),
	}
	if settings.Annotation.Delimiter != "" {
		opts.Delimiter = rune(settings.Annotation.Delimiter[0])
	}
	return opts
}
