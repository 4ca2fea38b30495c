package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/selection"
	"github.com/calpick/calpick/internal/tui"
	"github.com/calpick/calpick/internal/ui"
)

var pickRange bool

var pickCmd = &cobra.Command{
	Use:   "pick [date] | pick --range [start end]",
	Short: "Pick a date or date range",
	Long: `Pick a date interactively, or non-interactively from arguments.

With no arguments, opens the calendar picker (requires a terminal).
With arguments, commits them directly: one date in single mode, a start
and end in range mode. Dates are YYYY-MM-DD or the keywords today,
yesterday, tomorrow.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings()
		if err != nil {
			return handleError("invalid_config", err, "")
		}

		if len(args) == 0 {
			return runInteractivePick(settings)
		}
		return runDirectPick(settings, args)
	},
}

func runInteractivePick(settings resolvedSettings) error {
	if !ui.IsInteractive() {
		return handleErrorMsg("not_a_terminal",
			"interactive pick requires a terminal",
			"pass dates as arguments instead, e.g. 'calpick pick today'")
	}

	mode := selection.Single
	if pickRange {
		mode = selection.Range
	}
	result, err := tui.Run(tui.Options{
		Config: selection.Config{
			Mode:        mode,
			Constraints: settings.constraints,
			Format:      settings.output,
		},
		WeekStart:      settings.weekStart,
		Pattern:        settings.pattern,
		Now:            nowFunc(),
		DisablePresets: !getConfig().PresetsEnabled(),
	})
	if err != nil {
		return handleError("picker_failed", err, "")
	}
	if !result.Accepted {
		return handleErrorMsg("cancelled", "no date selected", "")
	}
	printCommit(result.Commit)
	return nil
}

func runDirectPick(settings resolvedSettings, args []string) error {
	now := nowFunc()

	if pickRange {
		if len(args) != 2 {
			return handleErrorMsg("bad_arguments",
				"range pick takes a start and an end date", "")
		}
	} else if len(args) != 1 {
		return handleErrorMsg("bad_arguments",
			"single pick takes exactly one date", "")
	}

	days := make([]selection.Commit, 0, 1)
	mode := selection.Single
	if pickRange {
		mode = selection.Range
	}
	engine, err := selection.New(selection.Config{
		Mode:        mode,
		Constraints: settings.constraints,
		Format:      settings.output,
		OnChange:    func(c selection.Commit) { days = append(days, c) },
	})
	if err != nil {
		return handleError("invalid_config", err, "")
	}

	for _, arg := range args {
		day, err := dates.ParseDateArg(arg, now)
		if err != nil {
			return handleError("invalid_date", err, "use YYYY-MM-DD, today, yesterday, or tomorrow")
		}
		if engine.IsDisabled(day) {
			return handleErrorMsg("date_disabled",
				fmt.Sprintf("%s is not selectable", day.Format(dates.DateLayout)), "")
		}
		engine.Pick(day)
	}

	if len(days) == 0 {
		return handleErrorMsg("no_selection", "nothing was committed", "")
	}
	printCommit(days[len(days)-1])
	return nil
}

func printCommit(c selection.Commit) {
	if isJSONOutput() {
		outputSuccess(commitData(c), nil)
		return
	}
	fmt.Println(commitText(c))
}

func init() {
	pickCmd.Flags().BoolVarP(&pickRange, "range", "r", false, "Pick a start and end date")
	rootCmd.AddCommand(pickCmd)
}
