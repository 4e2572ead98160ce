package survey

import (
	"encoding/json"
	"testing"

	"CarbonFootprintTracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completeForm = `{
	"username": "alice",
	"Body Type": "normal",
	"Sex": "Female",
	"Diet": "Vegan",
	"How Often Shower": "Daily",
	"Heating Energy Source": "Electric",
	"Transport": "Public",
	"Vehicle Type": "Electric",
	"Social Activity": "Often",
	"Monthly Grocery Bill": " 150 ",
	"Frequency of Traveling by Air": "Never",
	"Vehicle Monthly Distance Km": 0,
	"Waste Bag Size": "Small",
	"Waste Bag Weekly Count": "2",
	"How Long TV PC Daily Hour": "3",
	"How Many New Clothes Monthly": "1",
	"How Long Internet Daily Hour": "5",
	"Energy efficiency": "Yes",
	"Recycling": "Both",
	"Cooking_With": "Stove"
}`

func form(t *testing.T, doc string) *models.Fields {
	t.Helper()
	f := models.NewFields()
	require.NoError(t, json.Unmarshal([]byte(doc), f))
	return f
}

func TestCatalogHasEveryQuestion(t *testing.T) {
	fields := Fields()
	assert.Len(t, fields, 19)

	f, ok := GetField("Vehicle Monthly Distance Km")
	require.True(t, ok)
	assert.Equal(t, Numeric, f.Kind)

	_, ok = GetField("Shoe Size")
	assert.False(t, ok)
}

func TestValidateCompleteForm(t *testing.T) {
	assert.NoError(t, Validate(form(t, completeForm)))
}

func TestValidateReportsProblems(t *testing.T) {
	f := form(t, completeForm)
	f.Delete("Diet")
	f.Set("Monthly Grocery Bill", models.String("lots"))
	f.Set("Transport", models.String("Teleport"))
	f.Set("Vehicle Monthly Distance Km", models.String("Inf"))
	f.Set("Shoe Size", models.Number(42))

	err := Validate(f)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []Problem{
		{Field: "Shoe Size", Reason: "unknown field"},
		{Field: "Diet", Reason: "required"},
		{Field: "Monthly Grocery Bill", Reason: "must be a number"},
		{Field: "Vehicle Monthly Distance Km", Reason: "must be a number"},
		{Field: "Transport", Reason: "must be one of Public, Private, Bicycle, Walking"},
	}, ve.Problems)
}

func TestNormalizeKeepsInfiniteAnswersInvalid(t *testing.T) {
	f := form(t, completeForm)
	f.Set("Monthly Grocery Bill", models.String("+Inf"))

	out := Normalize(f)

	bill, _ := out.Get("Monthly Grocery Bill")
	assert.Equal(t, models.KindString, bill.Kind())
	assert.Error(t, Validate(out))
}

func TestNormalize(t *testing.T) {
	out := Normalize(form(t, completeForm))

	assert.False(t, out.Has(models.FieldUsername))
	assert.Equal(t, 19, out.Len())
	assert.Equal(t, "Body Type", out.Keys()[0])

	bill, _ := out.Get("Monthly Grocery Bill")
	n, ok := bill.Num()
	require.True(t, ok)
	assert.Equal(t, 150.0, n)

	body, _ := out.Get("Body Type")
	s, _ := body.Str()
	assert.Equal(t, "Normal", s)

	assert.NoError(t, Validate(out))
}
