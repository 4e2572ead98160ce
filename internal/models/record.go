package models

import "encoding/json"

// 설문 문서의 주요 필드 이름
const (
	FieldID                 = "_id"
	FieldUsername           = "username"
	FieldUserData           = "user_data"
	FieldMonth              = "month"
	FieldYear               = "year"
	FieldPredictedFootprint = "predicted_footprint"
	FieldSex                = "Sex"
)

// Shape distinguishes legacy flat documents from documents carrying a user_data object.
type Shape uint8

const (
	ShapeFlat Shape = iota
	ShapeNested
)

func (s Shape) String() string {
	if s == ShapeNested {
		return "nested"
	}
	return "flat"
}

// Record is one stored survey submission. ID and Username come from the store
// and are never serialized; Doc holds every other field in document order.
type Record struct {
	ID       string
	Username string
	Shape    Shape
	Doc      *Fields
}

// NewRecord classifies doc once: it is nested iff its user_data field is an object.
func NewRecord(id, username string, doc *Fields) Record {
	if doc == nil {
		doc = NewFields()
	}
	shape := ShapeFlat
	if v, ok := doc.Get(FieldUserData); ok {
		if _, isObj := v.Object(); isObj {
			shape = ShapeNested
		}
	}
	return Record{ID: id, Username: username, Shape: shape, Doc: doc}
}

// UserData returns the nested attribute mapping, or nil for flat records.
func (r Record) UserData() *Fields {
	if r.Shape != ShapeNested {
		return nil
	}
	v, _ := r.Doc.Get(FieldUserData)
	obj, _ := v.Object()
	return obj
}

func (r Record) Field(key string) (Value, bool) {
	return r.Doc.Get(key)
}

func (r Record) MarshalJSON() ([]byte, error) {
	if r.Doc == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Doc)
}
