package storage

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"CarbonFootprintTracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestRecordFromBSONKeepsOrder(t *testing.T) {
	oid := bson.NewObjectID()
	doc := bson.D{
		{Key: "_id", Value: oid},
		{Key: "username", Value: "a"},
		{Key: "user_data", Value: bson.D{
			{Key: "Sex", Value: "F"},
			{Key: "Diet", Value: "Vegan"},
			{Key: "Waste Bag Weekly Count", Value: int32(3)},
		}},
		{Key: "predicted_footprint", Value: 1830.25},
		{Key: "month", Value: "April"},
		{Key: "year", Value: int64(2025)},
		{Key: "tags", Value: bson.A{"x", int32(1)}},
	}

	rec, err := recordFromBSON(doc)
	require.NoError(t, err)

	assert.Equal(t, oid.Hex(), rec.ID)
	assert.Equal(t, "a", rec.Username)
	assert.Equal(t, models.ShapeNested, rec.Shape)
	assert.Equal(t, []string{"Sex", "Diet", "Waste Bag Weekly Count"}, rec.UserData().Keys())

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_id": "`+oid.Hex()+`",
		"username": "a",
		"user_data": {"Sex": "F", "Diet": "Vegan", "Waste Bag Weekly Count": 3},
		"predicted_footprint": 1830.25,
		"month": "April",
		"year": 2025,
		"tags": ["x", 1]
	}`, string(b))
}

func TestValueFromBSONMapIsSorted(t *testing.T) {
	v, err := valueFromBSON(bson.M{"b": 1.0, "a": true})
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
}

func TestFieldsToBSON(t *testing.T) {
	f := fields(t, `{"user_data":{"Diet":"Vegan"},"predicted_footprint":12.5,"year":2025,"ok":false,"none":null,"tags":[1,"x"]}`)

	doc := fieldsToBSON(f)

	require.Len(t, doc, 6)
	assert.Equal(t, "user_data", doc[0].Key)
	assert.Equal(t, bson.D{{Key: "Diet", Value: "Vegan"}}, doc[0].Value)
	assert.Equal(t, 12.5, doc[1].Value)
	assert.Equal(t, int64(2025), doc[2].Value)
	assert.Equal(t, false, doc[3].Value)
	assert.Nil(t, doc[4].Value)
	assert.Equal(t, bson.A{int64(1), "x"}, doc[5].Value)
}

// Runs against a real server when CARBON_TEST_MONGO_URI is set.
func TestMongoRecordStoreIntegration(t *testing.T) {
	uri := os.Getenv("CARBON_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("CARBON_TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	collection := "records_test_" + bson.NewObjectID().Hex()
	store, err := NewMongoRecordStore(ctx, uri, "carbon_footprint_test", collection)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.coll.Drop(context.Background())
		_ = store.Close(context.Background())
	})

	first, err := store.Insert(ctx, "a", fields(t, `{"user_data":{"Diet":"Vegan"},"month":"May"}`))
	require.NoError(t, err)
	second, err := store.Insert(ctx, "a", fields(t, `{"co2":42}`))
	require.NoError(t, err)
	_, err = store.Insert(ctx, "b", fields(t, `{"co2":1}`))
	require.NoError(t, err)

	got, err := store.FindByUsername(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second, got[0].ID)
	assert.Equal(t, first, got[1].ID)
	assert.Equal(t, "a", got[1].Username)
	assert.Equal(t, models.ShapeNested, got[1].Shape)
}
