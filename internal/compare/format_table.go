package compare

import (
	"fmt"
	"strings"
)

// TableFormatter formats a comparison set as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("NET WORTH SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Horizon: %d years\n", set.HorizonYears))
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 17

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Start Net Worth",
		numWidth, "Final Net Worth",
		numWidth, "Delta vs Base"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(set.BaseResult, nameWidth, numWidth, true))
	if len(set.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range set.AlternativeResults {
			sb.WriteString(tf.formatRow(&set.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(set.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range set.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			sb.WriteString(fmt.Sprintf("  Final net worth delta: %s (%s%%)\n",
				alt.TerminalDeltaCents.Format(), alt.TerminalDeltaPercent.StringFixed(1)))
			if alt.OvertakeMonth > 0 {
				sb.WriteString(fmt.Sprintf("  Pulls ahead of base in month %d\n", alt.OvertakeMonth))
			} else {
				sb.WriteString("  Never pulls ahead of base\n")
			}
		}
		sb.WriteString(fmt.Sprintf("\nBest terminal net worth: %s\n", set.BestScenario))
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *ScenarioResult, nameWidth, numWidth int, isBase bool) string {
	delta := "-"
	if !isBase {
		delta = r.TerminalDeltaCents.Format()
	}
	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, r.ScenarioName,
		numWidth, r.StartNetWorthCents.Format(),
		numWidth, r.TerminalNetWorthCents.Format(),
		numWidth, delta)
}
