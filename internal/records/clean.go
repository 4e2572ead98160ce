package records

import "CarbonFootprintTracker/internal/models"

// Clean strips identity and sensitive fields from a stored record.
//
// Nested records get Sex removed from user_data and month/year copied in from the
// top level; flat records keep their shape. Sex is never left at the top level.
// Clean does not modify r and Clean(Clean(r)) equals Clean(r).
func Clean(r models.Record) models.Record {
	doc := r.Doc.Clone()
	doc.Delete(models.FieldID, "id", models.FieldUsername, models.FieldSex)

	if r.Shape == models.ShapeNested {
		userData := r.UserData().Clone()
		userData.Delete(models.FieldSex)
		for _, key := range []string{models.FieldMonth, models.FieldYear} {
			if v, ok := doc.Get(key); ok {
				userData.Set(key, v.Clone())
			} else {
				userData.Delete(key)
			}
		}
		doc.Set(models.FieldUserData, models.Object(userData))
	}

	return models.Record{Shape: r.Shape, Doc: doc}
}

// CleanAll applies Clean to every record, keeping order.
func CleanAll(rs []models.Record) []models.Record {
	out := make([]models.Record, len(rs))
	for i, r := range rs {
		out[i] = Clean(r)
	}
	return out
}
