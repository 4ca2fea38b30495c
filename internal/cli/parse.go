package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/format"
)

var parseAtFlag string

// parseData is the JSON shape for a parsed date.
type parseData struct {
	Date      string `json:"date"`
	Formatted string `json:"formatted"`
	Timestamp string `json:"timestamp,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse a typed date",
	Long: `Parse free-text input the same way the picker's entry field does:
against the configured pattern (YYYY-MM-DD by default) or the relative
keywords today, yesterday, and tomorrow. With --at, a time of day in
24-hour H:MM form is attached to the parsed date.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings()
		if err != nil {
			return handleError("invalid_config", err, "")
		}

		now := nowFunc()
		day, ok := dates.ResolveRelativeKeyword(args[0], now)
		if !ok {
			day, ok = format.ParseUserInput(args[0], settings.pattern)
		}
		if !ok {
			return handleErrorMsg("unparseable",
				fmt.Sprintf("%q does not match %s", args[0], settings.pattern),
				"check the pattern, or use today/yesterday/tomorrow")
		}

		data := parseData{Date: day.Format(dates.DateLayout)}

		if parseAtFlag != "" {
			tv, ok := dates.ParseTime(parseAtFlag)
			if !ok {
				return handleErrorMsg("invalid_time",
					fmt.Sprintf("%q is not a valid time of day", parseAtFlag),
					"use 24-hour H:MM, e.g. 9:30 or 17:05")
			}
			data.Timestamp = dates.Combine(day, tv).Format("2006-01-02T15:04:05Z07:00")
		}

		out := settings.output.Apply(day)
		data.Formatted = out.Text

		if isJSONOutput() {
			outputSuccess(data, nil)
			return nil
		}
		if data.Timestamp != "" {
			fmt.Println(data.Timestamp)
			return nil
		}
		fmt.Println(data.Formatted)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseAtFlag, "at", "", "Time of day to attach (24-hour H:MM)")
	rootCmd.AddCommand(parseCmd)
}
