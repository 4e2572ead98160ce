package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"CarbonFootprintTracker/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// recordFromBSON turns a stored document into a record, keeping key order.
// _id becomes the record id and stays in the document for Clean to remove.
func recordFromBSON(doc bson.D) (models.Record, error) {
	fields, err := fieldsFromBSON(doc)
	if err != nil {
		return models.Record{}, err
	}
	var id, username string
	for _, e := range doc {
		switch e.Key {
		case models.FieldID:
			if oid, ok := e.Value.(bson.ObjectID); ok {
				id = oid.Hex()
			} else {
				id = fmt.Sprint(e.Value)
			}
		case models.FieldUsername:
			username, _ = e.Value.(string)
		}
	}
	return models.NewRecord(id, username, fields), nil
}

func fieldsFromBSON(doc bson.D) (*models.Fields, error) {
	f := models.NewFields()
	for _, e := range doc {
		v, err := valueFromBSON(e.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.Key, err)
		}
		f.Set(e.Key, v)
	}
	return f, nil
}

func valueFromBSON(v any) (models.Value, error) {
	switch t := v.(type) {
	case nil:
		return models.Null(), nil
	case bool:
		return models.Bool(t), nil
	case string:
		return models.String(t), nil
	case int32:
		return models.Number(float64(t)), nil
	case int64:
		return models.Number(float64(t)), nil
	case int:
		return models.Number(float64(t)), nil
	case float64:
		return models.Number(t), nil
	case float32:
		return models.Number(float64(t)), nil
	case bson.Decimal128:
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return models.Number(f), nil
		}
		return models.String(t.String()), nil
	case bson.ObjectID:
		return models.String(t.Hex()), nil
	case bson.DateTime:
		return models.String(t.Time().UTC().Format(time.RFC3339)), nil
	case time.Time:
		return models.String(t.UTC().Format(time.RFC3339)), nil
	case bson.D:
		f, err := fieldsFromBSON(t)
		if err != nil {
			return models.Value{}, err
		}
		return models.Object(f), nil
	case bson.M:
		return valueFromMap(t)
	case bson.A:
		return valueFromArray(t)
	default:
		return models.String(fmt.Sprint(t)), nil
	}
}

// unordered maps only appear when a caller decodes with bson.M; keys are sorted
// so the result is at least stable
func valueFromMap(m bson.M) (models.Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	doc := make(bson.D, 0, len(keys))
	for _, k := range keys {
		doc = append(doc, bson.E{Key: k, Value: m[k]})
	}
	return valueFromBSON(doc)
}

func valueFromArray(items bson.A) (models.Value, error) {
	values := make([]models.Value, 0, len(items))
	for _, item := range items {
		v, err := valueFromBSON(item)
		if err != nil {
			return models.Value{}, err
		}
		values = append(values, v)
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return models.Value{}, err
	}
	return models.Raw(raw), nil
}

func fieldsToBSON(f *models.Fields) bson.D {
	doc := make(bson.D, 0, f.Len())
	for _, key := range f.Keys() {
		v, _ := f.Get(key)
		doc = append(doc, bson.E{Key: key, Value: valueToBSON(v)})
	}
	return doc
}

func valueToBSON(v models.Value) any {
	switch v.Kind() {
	case models.KindBool:
		b, _ := v.Boolean()
		return b
	case models.KindNumber:
		n, _ := v.Num()
		// whole numbers are stored as integers, like the prediction service does
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n)
		}
		return n
	case models.KindString:
		s, _ := v.Str()
		return s
	case models.KindObject:
		obj, _ := v.Object()
		return fieldsToBSON(obj)
	case models.KindRaw:
		raw, _ := v.RawJSON()
		var items []models.Value
		if err := json.Unmarshal(raw, &items); err != nil {
			return string(raw)
		}
		arr := make(bson.A, 0, len(items))
		for _, item := range items {
			arr = append(arr, valueToBSON(item))
		}
		return arr
	default:
		return nil
	}
}
