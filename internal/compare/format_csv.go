package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats a comparison set as CSV.
type CSVFormatter struct{}

// Format generates CSV output for a comparison set.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Start Net Worth (cents)",
		"Final Net Worth (cents)",
		"Delta vs Base (cents)",
		"Delta vs Base (%)",
		"Overtake Month",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(set.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range set.AlternativeResults {
		if err := writer.Write(cf.formatRow(&set.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(r *ScenarioResult, kind string) []string {
	return []string{
		r.ScenarioName,
		kind,
		strconv.FormatInt(int64(r.StartNetWorthCents), 10),
		strconv.FormatInt(int64(r.TerminalNetWorthCents), 10),
		strconv.FormatInt(int64(r.TerminalDeltaCents), 10),
		r.TerminalDeltaPercent.StringFixed(2),
		strconv.Itoa(r.OvertakeMonth),
	}
}
