package leave

import (
	"fmt"
	"strings"
)

// SummarizeUsage totals recorded leave per type label for one employee and
// year. Records carrying a unit other than Day count their amount as-is
// under "<type> (<unit>)" so hour and day totals are never mixed. Records
// without an amount count as a single day. The input is not mutated.
func SummarizeUsage(records []LeaveRecord, employeeID string, year int) UsageSummary {
	summary := UsageSummary{EmployeeID: employeeID, Year: year, Totals: map[string]float64{}}
	prefix := ""
	if year > 0 {
		prefix = fmt.Sprintf("%04d-", year)
	}

	for _, rec := range records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if prefix != "" && !strings.HasPrefix(rec.Date, prefix) {
			continue
		}

		label := rec.Type
		if label == "" {
			label = rec.LeaveTypeID
		}
		if label == "" {
			label = "Unspecified"
		}
		if rec.Unit != "" && rec.Unit != "Day" {
			label = label + " (" + rec.Unit + ")"
		}

		amount := rec.Amount
		if amount == 0 {
			amount = 1
		}
		summary.Totals[label] += amount
	}

	return summary
}
