package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/grid"
	"github.com/calpick/calpick/internal/ui"
)

// gridCell is the JSON shape for one calendar cell.
type gridCell struct {
	Date     string `json:"date"`
	InMonth  bool   `json:"in_month"`
	Weekday  string `json:"weekday"`
	Disabled bool   `json:"disabled"`
	Today    bool   `json:"today"`
}

var gridCmd = &cobra.Command{
	Use:   "grid [YYYY-MM]",
	Short: "Print the month calendar",
	Long: `Print the calendar grid for a month without starting a picker.
Defaults to the current month. Disabled days are struck through; leading
and trailing days of adjacent months fill the grid to whole weeks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings()
		if err != nil {
			return handleError("invalid_config", err, "")
		}

		now := nowFunc()
		anchor := now
		if len(args) == 1 {
			anchor, err = dates.ParseMonthArg(args[0], now)
			if err != nil {
				return handleError("invalid_month", err, "use YYYY-MM, e.g. 2026-03")
			}
		}

		if isJSONOutput() {
			days := grid.Month(anchor, settings.weekStart)
			cells := make([]gridCell, 0, len(days))
			for _, day := range days {
				cells = append(cells, gridCell{
					Date:     day.Format(dates.DateLayout),
					InMonth:  day.Month() == anchor.Month(),
					Weekday:  day.Weekday().String(),
					Disabled: settings.constraints.IsDisabled(day),
					Today:    dates.SameDay(day, now),
				})
			}
			outputSuccess(cells, &Meta{Count: len(cells)})
			return nil
		}

		view := ui.CalendarView{
			Anchor:    anchor,
			WeekStart: settings.weekStart,
			Classify: func(day time.Time) ui.DayState {
				switch {
				case settings.constraints.IsDisabled(day):
					return ui.DayDisabled
				case day.Month() != anchor.Month():
					return ui.DayAdjacent
				case dates.SameDay(day, now):
					return ui.DayToday
				default:
					return ui.DayNormal
				}
			},
		}
		fmt.Println(view.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)
}
