package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsKeepInsertionOrder(t *testing.T) {
	f := NewFields()
	f.Set("Diet", String("Vegan"))
	f.Set("Body Type", String("Normal"))
	f.Set("Diet", String("Omnivore"))

	assert.Equal(t, []string{"Diet", "Body Type"}, f.Keys())
	v, ok := f.Get("Diet")
	require.True(t, ok)
	s, _ := v.Str()
	assert.Equal(t, "Omnivore", s)
}

func TestFieldsDelete(t *testing.T) {
	f := NewFields()
	f.Set("a", Number(1))
	f.Set("b", Number(2))
	f.Set("c", Number(3))

	f.Delete("b", "missing")

	assert.Equal(t, []string{"a", "c"}, f.Keys())
	assert.False(t, f.Has("b"))
	assert.Equal(t, 2, f.Len())
}

func TestFieldsJSONRoundTripKeepsOrder(t *testing.T) {
	in := `{"zeta":1,"alpha":"x","user_data":{"Sex":"F","Diet":"Vegan"},"tags":[1,"two",null],"ok":true,"none":null}`

	var f Fields
	require.NoError(t, json.Unmarshal([]byte(in), &f))
	assert.Equal(t, []string{"zeta", "alpha", "user_data", "tags", "ok", "none"}, f.Keys())

	ud, ok := f.Get("user_data")
	require.True(t, ok)
	obj, ok := ud.Object()
	require.True(t, ok)
	assert.Equal(t, []string{"Sex", "Diet"}, obj.Keys())

	out, err := json.Marshal(&f)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestFieldsUnmarshalRejectsNonObject(t *testing.T) {
	var f Fields
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &f))
}

func TestFieldsCloneIsDeep(t *testing.T) {
	inner := NewFields()
	inner.Set("Diet", String("Vegan"))
	f := NewFields()
	f.Set("user_data", Object(inner))

	c := f.Clone()
	v, _ := c.Get("user_data")
	obj, _ := v.Object()
	obj.Delete("Diet")

	assert.True(t, inner.Has("Diet"))
	assert.Equal(t, f.Keys(), c.Keys())
}

func TestNilFieldsAreSafe(t *testing.T) {
	var f *Fields
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.Has("x"))
	assert.Nil(t, f.Keys())
	f.Delete("x")
	assert.Equal(t, 0, f.Clone().Len())
}

func TestValueTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0), false},
		{"nan", Number(math.NaN()), false},
		{"number", Number(12.3), true},
		{"empty string", String(""), false},
		{"string", String("0"), true},
		{"object", Object(NewFields()), true},
		{"raw", Raw(json.RawMessage(`[]`)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Truthy())
		})
	}
}

func TestValueFloatAndDisplay(t *testing.T) {
	f, ok := String(" 12.5 ").Float()
	require.True(t, ok)
	assert.Equal(t, 12.5, f)

	_, ok = String("Vegan").Float()
	assert.False(t, ok)

	for _, v := range []Value{String("Inf"), String("+Inf"), String("-infinity"), String("NaN"), Number(math.Inf(1)), Number(math.NaN())} {
		_, ok = v.Float()
		assert.False(t, ok, "%s", v.Display())
	}

	assert.Equal(t, "42", Number(42).Display())
	assert.Equal(t, "12.34", Number(12.34).Display())
	assert.Equal(t, "", Null().Display())
	assert.Equal(t, `[1,2]`, Raw(json.RawMessage(`[1,2]`)).Display())
}

func TestNewRecordClassifiesShape(t *testing.T) {
	nested := NewFields()
	nested.Set(FieldUserData, Object(NewFields()))
	assert.Equal(t, ShapeNested, NewRecord("1", "a", nested).Shape)

	notObject := NewFields()
	notObject.Set(FieldUserData, String("oops"))
	r := NewRecord("2", "a", notObject)
	assert.Equal(t, ShapeFlat, r.Shape)
	assert.Nil(t, r.UserData())

	assert.Equal(t, ShapeFlat, NewRecord("3", "a", nil).Shape)
}

func TestRecordMarshalOmitsIdentity(t *testing.T) {
	doc := NewFields()
	doc.Set("co2", Number(42))
	r := NewRecord("abc", "alice", doc)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"co2":42}`, string(out))
}
