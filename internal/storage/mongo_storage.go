package storage

import (
	"context"
	"fmt"

	"CarbonFootprintTracker/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Defaults matching the prediction service's database layout.
const (
	DefaultMongoDatabase   = "carbon_footprint_db"
	DefaultMongoCollection = "users"
)

// MongoRecordStore reads and writes survey documents in a schemaless collection.
type MongoRecordStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoRecordStore(ctx context.Context, uri, database, collection string) (*MongoRecordStore, error) {
	if database == "" {
		database = DefaultMongoDatabase
	}
	if collection == "" {
		collection = DefaultMongoCollection
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("NewMongoRecordStore(): connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("NewMongoRecordStore(): ping: %w", err)
	}
	return &MongoRecordStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

func (s *MongoRecordStore) FindByUsername(ctx context.Context, username string) ([]models.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: models.FieldID, Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.D{{Key: models.FieldUsername, Value: username}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.Record
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		rec, err := recordFromBSON(doc)
		if err != nil {
			return nil, fmt.Errorf("MongoRecordStore.FindByUsername(): %w", err)
		}
		records = append(records, rec)
	}
	return records, cursor.Err()
}

func (s *MongoRecordStore) Insert(ctx context.Context, username string, doc *models.Fields) (string, error) {
	d := fieldsToBSON(doc)
	if !doc.Has(models.FieldUsername) {
		d = append(bson.D{{Key: models.FieldUsername, Value: username}}, d...)
	}
	res, err := s.coll.InsertOne(ctx, d)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoRecordStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
