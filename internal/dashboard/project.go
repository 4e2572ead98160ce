package dashboard

import "CarbonFootprintTracker/internal/models"

// Placeholder shown for missing or falsy cells.
const Placeholder = "-"

// Resolve finds the value shown for column in r:
// Predicted Footprint reads predicted_footprint, month and year read the
// top-level fields, everything else reads user_data.
func Resolve(r models.Record, column string) (models.Value, bool) {
	switch column {
	case ColumnPredictedFootprint:
		return r.Field(models.FieldPredictedFootprint)
	case ColumnMonth, ColumnYear:
		return r.Field(column)
	default:
		return r.UserData().Get(column)
	}
}

// Project renders a single cell, using Placeholder for missing or falsy values.
func Project(r models.Record, column string) string {
	v, ok := Resolve(r, column)
	if !ok || !v.Truthy() {
		return Placeholder
	}
	return v.Display()
}

// Rows projects every record over columns.
func Rows(records []models.Record, columns []string) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = Project(r, col)
		}
		rows[i] = row
	}
	return rows
}
