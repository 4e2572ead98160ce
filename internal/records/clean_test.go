package records

import (
	"encoding/json"
	"testing"

	"CarbonFootprintTracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, id, doc string) models.Record {
	t.Helper()
	var f models.Fields
	require.NoError(t, json.Unmarshal([]byte(doc), &f))
	username := ""
	if v, ok := f.Get(models.FieldUsername); ok {
		username, _ = v.Str()
	}
	return models.NewRecord(id, username, &f)
}

func encode(t *testing.T, r models.Record) string {
	t.Helper()
	b, err := json.Marshal(r)
	require.NoError(t, err)
	return string(b)
}

var cleanCases = []struct {
	name string
	in   string
	want string
}{
	{
		name: "nested record",
		in:   `{"username":"a","user_data":{"Sex":"F","Diet":"Vegan"},"month":"5","year":"2024","predicted_footprint":"12.3"}`,
		want: `{"user_data":{"Diet":"Vegan","month":"5","year":"2024"},"month":"5","year":"2024","predicted_footprint":"12.3"}`,
	},
	{
		name: "flat legacy record",
		in:   `{"username":"a","Sex":"M","co2":42}`,
		want: `{"co2":42}`,
	},
	{
		name: "nested month overwritten in place",
		in:   `{"_id":"x","user_data":{"month":"old","Diet":"Vegan"},"month":"April","year":2025}`,
		want: `{"user_data":{"month":"April","Diet":"Vegan","year":2025},"month":"April","year":2025}`,
	},
	{
		name: "nested without top-level month drops nested month",
		in:   `{"id":7,"user_data":{"month":"old","Transport":"walk"},"year":2025}`,
		want: `{"user_data":{"Transport":"walk","year":2025},"year":2025}`,
	},
	{
		name: "top-level Sex removed from nested record",
		in:   `{"Sex":"F","user_data":{"Diet":"Vegan"},"month":"May","year":"2024"}`,
		want: `{"user_data":{"Diet":"Vegan","month":"May","year":"2024"},"month":"May","year":"2024"}`,
	},
	{
		name: "user_data that is not an object is flat",
		in:   `{"username":"a","user_data":"n/a","Sex":"M","month":"May"}`,
		want: `{"user_data":"n/a","month":"May"}`,
	},
	{
		name: "null user_data is flat",
		in:   `{"user_data":null,"predicted_footprint":3}`,
		want: `{"user_data":null,"predicted_footprint":3}`,
	},
}

func TestClean(t *testing.T) {
	for _, tc := range cleanCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, encode(t, Clean(record(t, "1", tc.in))))
		})
	}
}

func TestCleanInvariants(t *testing.T) {
	for _, tc := range cleanCases {
		t.Run(tc.name, func(t *testing.T) {
			in := record(t, "1", tc.in)
			out := Clean(in)

			assert.Empty(t, out.ID)
			assert.Empty(t, out.Username)
			for _, key := range []string{"_id", "id", "username", "Sex"} {
				assert.False(t, out.Doc.Has(key), "top-level %s", key)
			}

			if ud := out.UserData(); ud != nil {
				assert.False(t, ud.Has("Sex"))
				assert.False(t, ud.Has("username"))
				for _, key := range []string{"month", "year"} {
					top, topOK := out.Doc.Get(key)
					nested, nestedOK := ud.Get(key)
					assert.Equal(t, topOK, nestedOK, key)
					assert.Equal(t, top, nested, key)
				}
			}

			assert.Equal(t, out, Clean(out), "Clean must be idempotent")
		})
	}
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	in := record(t, "1", `{"username":"a","user_data":{"Sex":"F","Diet":"Vegan"},"month":"5","year":"2024"}`)
	before := encode(t, in)

	_ = Clean(in)

	assert.Equal(t, before, encode(t, in))
	assert.Equal(t, "a", in.Username)
}

func TestCleanAllKeepsOrder(t *testing.T) {
	rs := []models.Record{
		record(t, "3", `{"n":3}`),
		record(t, "2", `{"n":2}`),
		record(t, "1", `{"n":1}`),
	}
	out := CleanAll(rs)
	require.Len(t, out, 3)
	for i, want := range []string{`{"n":3}`, `{"n":2}`, `{"n":1}`} {
		assert.Equal(t, want, encode(t, out[i]))
	}
}
