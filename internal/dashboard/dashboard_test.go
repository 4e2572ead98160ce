package dashboard

import (
	"encoding/json"
	"testing"

	"CarbonFootprintTracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(t *testing.T, docs ...string) []models.Record {
	t.Helper()
	out := make([]models.Record, 0, len(docs))
	for _, doc := range docs {
		var f models.Fields
		require.NoError(t, json.Unmarshal([]byte(doc), &f))
		out = append(out, models.NewRecord("", "", &f))
	}
	return out
}

func TestDeriveColumns(t *testing.T) {
	rs := records(t,
		`{"user_data":{"Diet":"Vegan","Body Type":"normal","month":"May","year":"2024"},"month":"May","year":"2024"}`,
		`{"user_data":{"Transport":"walk","Diet":"Vegan","username":"a"}}`,
		`{"co2":42}`,
	)

	cols := DeriveColumns(rs)

	assert.Equal(t, []string{"Diet", "Body Type", "month", "year", "Transport", "Predicted Footprint"}, cols)
	assert.Equal(t, cols, DeriveColumns(rs))
}

func TestDeriveColumnsAppendsSyntheticColumns(t *testing.T) {
	assert.Equal(t, []string{"month", "year", "Predicted Footprint"}, DeriveColumns(nil))

	rs := records(t, `{"user_data":{"Diet":"Vegan"}}`)
	assert.Equal(t, []string{"Diet", "month", "year", "Predicted Footprint"}, DeriveColumns(rs))

	rs = records(t, `{"user_data":{"Predicted Footprint":1,"Diet":"Vegan"}}`)
	assert.Equal(t, []string{"Predicted Footprint", "Diet", "month", "year"}, DeriveColumns(rs))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	page, err := Paginate(items, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, page.Items)
	assert.Equal(t, 3, page.TotalPages)

	page, err = Paginate(items, 10, 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 1, page.Items[0])

	for _, n := range []int{0, -1, 4, 100} {
		page, err = Paginate(items, 10, n)
		require.NoError(t, err)
		assert.Empty(t, page.Items, "page %d", n)
		assert.Equal(t, 3, page.TotalPages)
	}
}

func TestPaginateNeverExceedsPageSize(t *testing.T) {
	for n := 0; n <= 23; n++ {
		items := make([]string, n)
		for size := 1; size <= 7; size++ {
			first, err := Paginate(items, size, 1)
			require.NoError(t, err)
			assert.Equal(t, n == 0, first.TotalPages == 0)

			for p := 1; p <= first.TotalPages+1; p++ {
				page, err := Paginate(items, size, p)
				require.NoError(t, err)
				assert.LessOrEqual(t, len(page.Items), size)
				if p == first.TotalPages+1 {
					assert.Empty(t, page.Items)
				}
			}
		}
	}
}

func TestPaginateRejectsBadPageSize(t *testing.T) {
	_, err := Paginate([]int{1}, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestPageNavigation(t *testing.T) {
	cases := []struct {
		current, total int
		prev, next     int
	}{
		{1, 3, 1, 2},
		{2, 3, 1, 3},
		{3, 3, 2, 3},
		{4, 3, 3, 3},
		{5, 3, 3, 3},
		{0, 3, 1, 1},
		{1, 0, 1, 1},
		{7, 0, 1, 1},
	}
	for _, tc := range cases {
		prev, next := PrevPage(tc.current, tc.total), NextPage(tc.current, tc.total)
		assert.Equal(t, tc.prev, prev, "PrevPage(%d, %d)", tc.current, tc.total)
		assert.Equal(t, tc.next, next, "NextPage(%d, %d)", tc.current, tc.total)
		assert.True(t, prev >= 1 && next >= 1)
		if tc.total > 0 {
			assert.True(t, prev <= tc.total && next <= tc.total)
		}
	}
}

func TestProject(t *testing.T) {
	rs := records(t,
		`{"user_data":{"Diet":"Vegan","Recycling":"","Count":0,"month":"May","year":"2024"},"month":"May","year":"2024","predicted_footprint":"12.3"}`,
		`{"co2":42,"month":"June"}`,
	)
	nested, flat := rs[0], rs[1]

	assert.Equal(t, "12.3", Project(nested, "Predicted Footprint"))
	assert.Equal(t, "May", Project(nested, "month"))
	assert.Equal(t, "2024", Project(nested, "year"))
	assert.Equal(t, "Vegan", Project(nested, "Diet"))
	assert.Equal(t, "-", Project(nested, "Recycling"))
	assert.Equal(t, "-", Project(nested, "Count"))
	assert.Equal(t, "-", Project(nested, "Transport"))

	assert.Equal(t, "June", Project(flat, "month"))
	assert.Equal(t, "-", Project(flat, "co2"))
	assert.Equal(t, "-", Project(flat, "Predicted Footprint"))

	assert.Equal(t, [][]string{
		{"Vegan", "May", "12.3"},
		{"-", "June", "-"},
	}, Rows(rs, []string{"Diet", "month", "Predicted Footprint"}))
}

func TestSummarize(t *testing.T) {
	rs := records(t,
		`{"user_data":{"Diet":"Vegan"},"month":"May","year":2024,"predicted_footprint":"12.3"}`,
		`{"user_data":{"Diet":"Vegan"},"month":"May","year":2024,"predicted_footprint":7.7}`,
		`{"user_data":{},"predicted_footprint":"n/a"}`,
	)

	s := Summarize(rs)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 30, s.Points)
	assert.Equal(t, 20.0, s.TotalFootprint)
	assert.Equal(t, 6.67, s.AverageFootprint)
	assert.Equal(t, []MonthlyTotal{{Label: "May/2024", Footprint: 20}, {Label: "?/?", Footprint: 0}}, s.Monthly)

	empty := Summarize(nil)
	assert.Equal(t, 0.0, empty.AverageFootprint)
	assert.Empty(t, empty.Monthly)
}

func TestAttributeCounts(t *testing.T) {
	rs := records(t,
		`{"user_data":{"Diet":"Vegan"}}`,
		`{"user_data":{"Diet":"omnivore"}}`,
		`{"user_data":{"Diet":"Vegan"}}`,
		`{"user_data":{"Diet":""}}`,
		`{"co2":1}`,
	)

	assert.Equal(t, []ValueCount{
		{Value: "Vegan", Count: 2},
		{Value: "omnivore", Count: 1},
		{Value: "Unknown", Count: 2},
	}, AttributeCounts(rs, "Diet"))
}

func TestAnalyzeReduction(t *testing.T) {
	// newest first
	rs := records(t,
		`{"user_data":{"Diet":"vegan","Transport":"walk","Monthly Grocery Bill":"150","month":"June"},"predicted_footprint":80}`,
		`{"user_data":{"Diet":"Vegan","Transport":"car","Monthly Grocery Bill":200,"month":"May"},"predicted_footprint":"100"}`,
		`{"user_data":{"Diet":"omnivore","Transport":"car","Monthly Grocery Bill":"200","month":"April"},"predicted_footprint":120}`,
	)

	got := AnalyzeReduction(rs)

	assert.Equal(t, 80.0, got.ReducedAmount)
	assert.Equal(t, []AttributeShare{
		{Attribute: "Diet", Percent: 75},
		{Attribute: "Transport", Percent: 75},
		{Attribute: "Monthly Grocery Bill", Percent: 75},
	}, got.ReducingAttributes)
}

func TestAnalyzeReductionWithoutDrop(t *testing.T) {
	single := AnalyzeReduction(records(t, `{"predicted_footprint":10}`))
	assert.Equal(t, Reduction{ReducingAttributes: []AttributeShare{}}, single)

	rising := AnalyzeReduction(records(t,
		`{"user_data":{"Diet":"a"},"predicted_footprint":20}`,
		`{"user_data":{"Diet":"b"},"predicted_footprint":10}`,
	))
	assert.Equal(t, 0.0, rising.ReducedAmount)
	assert.Empty(t, rising.ReducingAttributes)
}

func TestAnswersDiffer(t *testing.T) {
	assert.False(t, answersDiffer(models.String(" Vegan "), models.String("vegan")))
	assert.False(t, answersDiffer(models.String("200"), models.Number(200)))
	assert.True(t, answersDiffer(models.Null(), models.String("")))
	assert.True(t, answersDiffer(models.Value{}, models.String("car")))
	assert.False(t, answersDiffer(models.Null(), models.String("None")))
}

func TestAnalyzeReductionCountsNewAnswers(t *testing.T) {
	rs := records(t,
		`{"user_data":{"Diet":"vegan","Recycling":""},"predicted_footprint":50}`,
		`{"user_data":{"Diet":"vegan"},"predicted_footprint":100}`,
	)

	got := AnalyzeReduction(rs)

	assert.Equal(t, 50.0, got.ReducedAmount)
	assert.Equal(t, []AttributeShare{{Attribute: "Recycling", Percent: 100}}, got.ReducingAttributes)
}

func TestAnalyzeReductionTopFive(t *testing.T) {
	rs := records(t,
		`{"user_data":{"a":"2","b":"2","c":"2","d":"2","e":"2","f":"2"},"predicted_footprint":1}`,
		`{"user_data":{"a":"1","b":"1","c":"1","d":"1","e":"1","f":"1"},"predicted_footprint":2}`,
	)

	got := AnalyzeReduction(rs)

	require.Len(t, got.ReducingAttributes, 5)
	assert.Equal(t, "a", got.ReducingAttributes[0].Attribute)
	assert.Equal(t, 100.0, got.ReducingAttributes[0].Percent)
}
