package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var cliNow = time.Date(2025, time.June, 18, 10, 30, 0, 0, time.UTC)

// runCLI executes the root command with a pinned clock and captured
// JSON output. Callers pass --json and --config themselves.
func runCLI(t *testing.T, args ...string) (Response, error) {
	t.Helper()

	var buf bytes.Buffer
	jsonOut = &buf
	prevNow := nowFunc
	nowFunc = func() time.Time { return cliNow }
	t.Cleanup(func() {
		jsonOut = os.Stdout
		nowFunc = prevNow
		jsonOutput = false
		pickRange = false
		parseAtFlag = ""
		presetsAtFlag = ""
		exportOutFlag = ""
		exportSummaryFlag = ""
		exportPresetFlag = ""
		configPath = ""
		weekStartFlag = ""
		formatFlag = ""
		patternFlag = ""
		minFlag = ""
		maxFlag = ""
	})

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	var resp Response
	if buf.Len() > 0 {
		if jsonErr := json.Unmarshal(buf.Bytes(), &resp); jsonErr != nil {
			t.Fatalf("invalid JSON output: %v\n%s", jsonErr, buf.String())
		}
	}
	return resp, err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func emptyConfig(t *testing.T) string {
	return writeConfig(t, "")
}

func decodeData(t *testing.T, resp Response, into interface{}) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestPickSingleDirect(t *testing.T) {
	resp, err := runCLI(t, "pick", "2025-06-20", "--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !resp.OK {
		t.Fatalf("expected ok response, got %+v", resp)
	}

	var data dateData
	decodeData(t, resp, &data)
	if data.Date != "2025-06-20" || data.Formatted != "2025-06-20" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestPickRelativeKeyword(t *testing.T) {
	resp, err := runCLI(t, "pick", "tomorrow", "--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}

	var data dateData
	decodeData(t, resp, &data)
	if data.Date != "2025-06-19" {
		t.Fatalf("tomorrow = %s, want 2025-06-19", data.Date)
	}
}

func TestPickRangeDirectSwapsInvertedOrder(t *testing.T) {
	resp, err := runCLI(t, "pick", "--range", "2025-06-20", "2025-06-10",
		"--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("pick --range: %v", err)
	}

	var data rangeData
	decodeData(t, resp, &data)
	if data.Start != "2025-06-10" || data.End != "2025-06-20" {
		t.Fatalf("range = %s..%s, want 2025-06-10..2025-06-20", data.Start, data.End)
	}
	if data.Days != 11 {
		t.Fatalf("days = %d, want 11", data.Days)
	}
}

func TestPickDisabledDateFails(t *testing.T) {
	cfgPath := writeConfig(t, "disabled_dates = [\"2025-06-20\"]\n")
	resp, err := runCLI(t, "pick", "2025-06-20", "--json", "--config", cfgPath)
	if err != nil {
		t.Fatalf("json mode should swallow the error, got %v", err)
	}
	if resp.OK {
		t.Fatal("expected an error response for a disabled date")
	}
	if resp.Error == nil || resp.Error.Code != "date_disabled" {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
}

func TestPickHonorsMinBound(t *testing.T) {
	resp, _ := runCLI(t, "pick", "2025-06-01", "--min", "2025-06-10",
		"--json", "--config", emptyConfig(t))
	if resp.OK {
		t.Fatal("expected pick below min to fail")
	}
}

func TestPickCustomPatternOutput(t *testing.T) {
	resp, err := runCLI(t, "pick", "2025-06-20", "--pattern", "DD/MM/YYYY",
		"--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}

	var data dateData
	decodeData(t, resp, &data)
	if data.Formatted != "20/06/2025" {
		t.Fatalf("formatted = %q, want 20/06/2025", data.Formatted)
	}
}

func TestParseCommand(t *testing.T) {
	resp, err := runCLI(t, "parse", "2025-07-04", "--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var data parseData
	decodeData(t, resp, &data)
	if data.Date != "2025-07-04" {
		t.Fatalf("date = %q, want 2025-07-04", data.Date)
	}
}

func TestParseWithTimeOfDay(t *testing.T) {
	resp, err := runCLI(t, "parse", "today", "--at", "9:05", "--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("parse --at: %v", err)
	}

	var data parseData
	decodeData(t, resp, &data)
	if !strings.HasPrefix(data.Timestamp, "2025-06-18T09:05:00") {
		t.Fatalf("timestamp = %q, want 2025-06-18T09:05:00...", data.Timestamp)
	}
}

func TestParseRejectsBadTime(t *testing.T) {
	resp, _ := runCLI(t, "parse", "today", "--at", "24:00", "--json", "--config", emptyConfig(t))
	if resp.OK {
		t.Fatal("expected 24:00 to be rejected")
	}
	if resp.Error == nil || resp.Error.Code != "invalid_time" {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	resp, _ := runCLI(t, "parse", "not-a-date", "--json", "--config", emptyConfig(t))
	if resp.OK {
		t.Fatal("expected parse failure")
	}
	if resp.Error == nil || resp.Error.Code != "unparseable" {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
}

func TestPresetsCommand(t *testing.T) {
	resp, err := runCLI(t, "presets", "--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("presets: %v", err)
	}

	var items []presetData
	decodeData(t, resp, &items)
	if len(items) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	byName := map[string]presetData{}
	for _, item := range items {
		byName[item.Name] = item
	}
	last7, ok := byName["last-7-days"]
	if !ok {
		t.Fatal("catalog missing last-7-days")
	}
	if last7.Start != "2025-06-12" || last7.End != "2025-06-18" {
		t.Fatalf("last-7-days = %s..%s, want 2025-06-12..2025-06-18", last7.Start, last7.End)
	}
}

func TestResolveCommand(t *testing.T) {
	resp, err := runCLI(t, "resolve", "this month", "--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var data presetData
	decodeData(t, resp, &data)
	if data.Start != "2025-06-01" || data.End != "2025-06-30" {
		t.Fatalf("this month = %s..%s, want 2025-06-01..2025-06-30", data.Start, data.End)
	}
}

func TestResolveAtAnchor(t *testing.T) {
	resp, err := runCLI(t, "resolve", "yesterday", "--at", "2025-01-01",
		"--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("resolve --at: %v", err)
	}

	var data presetData
	decodeData(t, resp, &data)
	if data.Start != "2024-12-31" {
		t.Fatalf("yesterday at 2025-01-01 = %s, want 2024-12-31", data.Start)
	}
}

func TestGridCommandJSON(t *testing.T) {
	resp, err := runCLI(t, "grid", "2025-03", "--week-start", "monday",
		"--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	var cells []gridCell
	decodeData(t, resp, &cells)
	if len(cells) != 42 {
		t.Fatalf("March 2025 from Monday = %d cells, want 42", len(cells))
	}
	if cells[0].Date != "2025-02-24" {
		t.Fatalf("first cell = %s, want 2025-02-24", cells[0].Date)
	}
	if cells[0].InMonth {
		t.Fatal("leading February cell marked in-month")
	}
	if cells[len(cells)-1].Date != "2025-04-06" {
		t.Fatalf("last cell = %s, want 2025-04-06", cells[len(cells)-1].Date)
	}
}

func TestExportWritesICS(t *testing.T) {
	out := filepath.Join(t.TempDir(), "range.ics")
	resp, err := runCLI(t, "export", "2025-06-02", "2025-06-06",
		"-o", out, "--summary", "Sprint 12", "--json", "--config", emptyConfig(t))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !resp.OK {
		t.Fatalf("expected ok response, got %+v", resp)
	}

	payload, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read ics: %v", err)
	}
	text := string(payload)
	for _, want := range []string{
		"BEGIN:VEVENT",
		"DTSTART;VALUE=DATE:20250602",
		"DTEND;VALUE=DATE:20250607",
		"SUMMARY:Sprint 12",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("ics missing %q:\n%s", want, text)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	resp, err := runCLI(t, "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	var info versionInfo
	decodeData(t, resp, &info)
	if info.ModulePath == "" || info.GoVersion == "" {
		t.Fatalf("incomplete version info: %+v", info)
	}
}

func TestCalendarDaysAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// March 9 2025 is the spring-forward day; the wall-clock span is an
	// hour short of three full days.
	start := time.Date(2025, time.March, 8, 0, 0, 0, 0, loc)
	end := time.Date(2025, time.March, 10, 0, 0, 0, 0, loc)
	if got := calendarDays(start, end); got != 3 {
		t.Fatalf("calendarDays = %d, want 3", got)
	}

	if got := calendarDays(start, start); got != 1 {
		t.Fatalf("single-day span = %d, want 1", got)
	}
}
