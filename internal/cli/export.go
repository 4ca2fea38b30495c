package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/export"
	"github.com/calpick/calpick/internal/preset"
	"github.com/calpick/calpick/internal/selection"
	"github.com/calpick/calpick/internal/ui"
)

var (
	exportOutFlag     string
	exportSummaryFlag string
	exportPresetFlag  string
)

var exportCmd = &cobra.Command{
	Use:   "export [start [end]]",
	Short: "Export a date range as an iCalendar file",
	Long: `Export a range as an all-day iCalendar event, for importing into a
calendar application. A single date exports a one-day event; --preset
exports a named preset's range instead of explicit dates. The payload
goes to stdout unless --output names a file.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := nowFunc()

		var rng selection.DateRange
		switch {
		case exportPresetFlag != "":
			if len(args) > 0 {
				return handleErrorMsg("bad_arguments",
					"--preset and explicit dates are mutually exclusive", "")
			}
			p, err := preset.Lookup(exportPresetFlag)
			if err != nil {
				return handleError("unknown_preset", err, "")
			}
			r := p.Resolve(now)
			rng = selection.DateRange{Start: r.Start, End: r.End}

		case len(args) == 0:
			return handleErrorMsg("bad_arguments",
				"export needs a start date, or --preset", "")

		default:
			start, err := dates.ParseDateArg(args[0], now)
			if err != nil {
				return handleError("invalid_date", err, "use YYYY-MM-DD, today, yesterday, or tomorrow")
			}
			end := start
			if len(args) == 2 {
				end, err = dates.ParseDateArg(args[1], now)
				if err != nil {
					return handleError("invalid_date", err, "use YYYY-MM-DD, today, yesterday, or tomorrow")
				}
			}
			rng = selection.DateRange{Start: start, End: end}
		}

		ev := export.Event{
			Summary: exportSummaryFlag,
			Range:   rng,
			Now:     now,
		}

		if exportOutFlag == "" || exportOutFlag == "-" {
			if err := export.WriteICS(os.Stdout, ev); err != nil {
				return handleError("export_failed", err, "")
			}
			return nil
		}

		f, err := os.Create(exportOutFlag)
		if err != nil {
			return handleError("write_failed", err, "")
		}
		defer f.Close()

		if err := export.WriteICS(f, ev); err != nil {
			return handleError("export_failed", err, "")
		}
		if !isJSONOutput() {
			fmt.Println(ui.Successf("wrote %s", exportOutFlag))
		} else {
			outputSuccess(map[string]string{"path": exportOutFlag}, nil)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutFlag, "output", "o", "", "Write to a file instead of stdout")
	exportCmd.Flags().StringVar(&exportSummaryFlag, "summary", "", "Event title")
	exportCmd.Flags().StringVar(&exportPresetFlag, "preset", "", "Export a preset's range, e.g. last-7-days")
	rootCmd.AddCommand(exportCmd)
}
