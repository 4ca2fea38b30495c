package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calpick/calpick/internal/dates"
	"github.com/calpick/calpick/internal/preset"
	"github.com/calpick/calpick/internal/ui"
)

var presetsAtFlag string

// presetData is the JSON shape for one resolved preset.
type presetData struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in range presets",
	Long: `List every built-in preset with the range it resolves to today.
Use --at to resolve them as of a different date.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := presetAnchor()
		if err != nil {
			return handleError("invalid_date", err, "use YYYY-MM-DD, today, yesterday, or tomorrow")
		}

		if isJSONOutput() {
			items := make([]presetData, 0)
			for _, p := range preset.Catalog() {
				items = append(items, resolvedPresetData(p, now))
			}
			outputSuccess(items, &Meta{Count: len(items)})
			return nil
		}

		fmt.Println(ui.Header("Presets"))
		table := ui.NewTable(3)
		table.AddRow("PRESET", "START", "END")
		for _, p := range preset.Catalog() {
			r := p.Resolve(now)
			table.AddRow(p.Label,
				r.Start.Format(dates.DateLayout),
				r.End.Format(dates.DateLayout))
		}
		fmt.Print(table.String())
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <preset>",
	Short: "Resolve one preset to its date range",
	Long: `Resolve a preset by name, e.g. "last 7 days" or "this month", and
print the range it stands for. Use --at to resolve as of a different
date.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := presetAnchor()
		if err != nil {
			return handleError("invalid_date", err, "use YYYY-MM-DD, today, yesterday, or tomorrow")
		}

		p, err := preset.Lookup(args[0])
		if err != nil {
			return handleError("unknown_preset", err, "run 'calpick presets' to see the catalog")
		}

		r := p.Resolve(now)
		if isJSONOutput() {
			outputSuccess(resolvedPresetData(p, now), nil)
			return nil
		}
		fmt.Printf("%s\t%s\n", r.Start.Format(dates.DateLayout), r.End.Format(dates.DateLayout))
		return nil
	},
}

func presetAnchor() (anchor time.Time, err error) {
	anchor = nowFunc()
	if presetsAtFlag != "" {
		anchor, err = dates.ParseDateArg(presetsAtFlag, anchor)
	}
	return anchor, err
}

func resolvedPresetData(p preset.Preset, now time.Time) presetData {
	r := p.Resolve(now)
	return presetData{
		Name:  p.Name,
		Label: p.Label,
		Start: r.Start.Format(dates.DateLayout),
		End:   r.End.Format(dates.DateLayout),
	}
}

func init() {
	presetsCmd.Flags().StringVar(&presetsAtFlag, "at", "", "Resolve as of this date instead of today")
	resolveCmd.Flags().StringVar(&presetsAtFlag, "at", "", "Resolve as of this date instead of today")
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(resolveCmd)
}
