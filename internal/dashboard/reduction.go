package dashboard

import (
	"sort"
	"strings"

	"CarbonFootprintTracker/internal/models"
)

// maxReducingAttributes caps the attributes reported by AnalyzeReduction.
const maxReducingAttributes = 5

type AttributeShare struct {
	Attribute string  `json:"attribute"`
	Percent   float64 `json:"percent"`
}

type Reduction struct {
	ReducedAmount      float64          `json:"reduced_amount"`
	ReducingAttributes []AttributeShare `json:"reducing_attributes"`
}

// keys that never explain a reduction
var reductionSkip = map[string]bool{
	models.FieldSex:   true,
	models.FieldMonth: true,
	models.FieldYear:  true,
}

// AnalyzeReduction attributes footprint drops to changed survey answers.
//
// records are expected newest first, as FetchRecords returns them. Every pair of
// submissions (earlier i, later j) where j's footprint is lower adds the drop to
// the total and to each user_data attribute of j whose answer differs from i.
// The top attributes are reported as a share of the total drop.
func AnalyzeReduction(records []models.Record) Reduction {
	out := Reduction{ReducingAttributes: make([]AttributeShare, 0)}
	if len(records) < 2 {
		return out
	}

	entries := make([]models.Record, len(records))
	for i, r := range records {
		entries[len(records)-1-i] = r
	}

	var total float64
	contributions := make(map[string]float64)
	var order []string
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			fpI, fpJ := Footprint(entries[i]), Footprint(entries[j])
			if fpJ >= fpI {
				continue
			}
			amount := round2(fpI - fpJ)
			total += amount

			before, after := entries[i].UserData(), entries[j].UserData()
			for _, key := range after.Keys() {
				if reductionSkip[key] {
					continue
				}
				prev, _ := before.Get(key)
				next, _ := after.Get(key)
				if !answersDiffer(prev, next) {
					continue
				}
				if _, seen := contributions[key]; !seen {
					order = append(order, key)
				}
				contributions[key] += amount
			}
		}
	}

	out.ReducedAmount = round2(total)
	if total <= 0 {
		return out
	}
	sort.SliceStable(order, func(a, b int) bool {
		return contributions[order[a]] > contributions[order[b]]
	})
	if len(order) > maxReducingAttributes {
		order = order[:maxReducingAttributes]
	}
	for _, key := range order {
		out.ReducingAttributes = append(out.ReducingAttributes, AttributeShare{
			Attribute: key,
			Percent:   round2(contributions[key] / total * 100),
		})
	}
	return out
}

// answersDiffer compares numerically when both answers are numbers, otherwise as
// trimmed case-insensitive text.
func answersDiffer(a, b models.Value) bool {
	fa, okA := a.Float()
	fb, okB := b.Float()
	if okA && okB {
		return fa != fb
	}
	return normalize(a) != normalize(b)
}

// normalize renders an answer for text comparison. A missing or null answer
// reads as "none", so it differs from an empty string.
func normalize(v models.Value) string {
	if v.IsNull() {
		return "none"
	}
	return strings.ToLower(strings.TrimSpace(v.Display()))
}
