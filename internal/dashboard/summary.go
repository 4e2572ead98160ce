package dashboard

import (
	"math"

	"CarbonFootprintTracker/internal/models"
)

// PointsPerSubmission is awarded for every stored survey.
const PointsPerSubmission = 10

const unknownLabel = "Unknown"

type MonthlyTotal struct {
	Label     string  `json:"label"`
	Footprint float64 `json:"footprint"`
}

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Summary struct {
	Count            int            `json:"count"`
	Points           int            `json:"points"`
	TotalFootprint   float64        `json:"total_footprint"`
	AverageFootprint float64        `json:"average_footprint"`
	Monthly          []MonthlyTotal `json:"monthly"`
}

// Footprint parses predicted_footprint; unparseable or missing values count as 0.
func Footprint(r models.Record) float64 {
	v, ok := r.Field(models.FieldPredictedFootprint)
	if !ok {
		return 0
	}
	f, ok := v.Float()
	if !ok {
		return 0
	}
	return f
}

// Summarize computes dashboard totals. Monthly labels are "<month>/<year>" in
// first-seen order, with "?" for a missing part.
func Summarize(records []models.Record) Summary {
	s := Summary{
		Count:   len(records),
		Points:  len(records) * PointsPerSubmission,
		Monthly: make([]MonthlyTotal, 0),
	}
	index := make(map[string]int)
	var total float64
	for _, r := range records {
		fp := Footprint(r)
		total += fp

		label := labelPart(r, models.FieldMonth) + "/" + labelPart(r, models.FieldYear)
		i, ok := index[label]
		if !ok {
			i = len(s.Monthly)
			index[label] = i
			s.Monthly = append(s.Monthly, MonthlyTotal{Label: label})
		}
		s.Monthly[i].Footprint += fp
	}
	for i := range s.Monthly {
		s.Monthly[i].Footprint = round2(s.Monthly[i].Footprint)
	}
	s.TotalFootprint = round2(total)
	if len(records) > 0 {
		s.AverageFootprint = round2(total / float64(len(records)))
	}
	return s
}

func labelPart(r models.Record, key string) string {
	v, ok := r.Field(key)
	if !ok || !v.Truthy() {
		return "?"
	}
	return v.Display()
}

// AttributeCounts counts the values of one user_data attribute across records,
// in first-seen order. Missing or falsy values are counted as "Unknown".
func AttributeCounts(records []models.Record, attribute string) []ValueCount {
	counts := make([]ValueCount, 0)
	index := make(map[string]int)
	for _, r := range records {
		label := unknownLabel
		if v, ok := r.UserData().Get(attribute); ok && v.Truthy() {
			label = v.Display()
		}
		i, ok := index[label]
		if !ok {
			i = len(counts)
			index[label] = i
			counts = append(counts, ValueCount{Value: label})
		}
		counts[i].Count++
	}
	return counts
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
