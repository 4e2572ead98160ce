package dashboard

import "CarbonFootprintTracker/internal/models"

// Synthetic column names appended after the user_data attributes.
const (
	ColumnMonth              = "month"
	ColumnYear               = "year"
	ColumnPredictedFootprint = "Predicted Footprint"
)

// DeriveColumns returns the union of user_data keys across records in first-seen
// order, without username, followed by month, year and Predicted Footprint when
// those are not already present.
func DeriveColumns(records []models.Record) []string {
	seen := make(map[string]bool)
	columns := make([]string, 0)
	for _, r := range records {
		for _, key := range r.UserData().Keys() {
			if key == models.FieldUsername || seen[key] {
				continue
			}
			seen[key] = true
			columns = append(columns, key)
		}
	}
	for _, synthetic := range []string{ColumnMonth, ColumnYear, ColumnPredictedFootprint} {
		if !seen[synthetic] {
			seen[synthetic] = true
			columns = append(columns, synthetic)
		}
	}
	return columns
}
