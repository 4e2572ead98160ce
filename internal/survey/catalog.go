package survey

import (
	"fmt"
	"strings"

	"CarbonFootprintTracker/internal/models"
)

type Kind string

const (
	Numeric     Kind = "numeric"
	Categorical Kind = "categorical"
)

// Field is one question of the footprint survey.
type Field struct {
	Name    string   `json:"name"`
	Kind    Kind     `json:"kind"`
	Options []string `json:"options,omitempty"`
}

// catalog keeps the order the survey form asks the questions in.
var catalog = []Field{
	{Name: "Body Type", Kind: Categorical, Options: []string{"Underweight", "Normal", "Overweight", "Obese"}},
	{Name: "Sex", Kind: Categorical, Options: []string{"Male", "Female"}},
	{Name: "Diet", Kind: Categorical, Options: []string{"Vegan", "Vegetarian", "Non-Vegetarian"}},
	{Name: "How Often Shower", Kind: Categorical, Options: []string{"Daily", "Weekly", "Occasionally"}},
	{Name: "Heating Energy Source", Kind: Categorical, Options: []string{"Electric", "Gas", "Wood"}},
	{Name: "Transport", Kind: Categorical, Options: []string{"Public", "Private", "Bicycle", "Walking"}},
	{Name: "Vehicle Type", Kind: Categorical, Options: []string{"Petrol", "Diesel", "Electric", "Hybrid"}},
	{Name: "Social Activity", Kind: Categorical, Options: []string{"Rarely", "Often", "Very Often"}},
	{Name: "Monthly Grocery Bill", Kind: Numeric},
	{Name: "Frequency of Traveling by Air", Kind: Categorical, Options: []string{"Never", "Occasionally", "Frequently"}},
	{Name: "Vehicle Monthly Distance Km", Kind: Numeric},
	{Name: "Waste Bag Size", Kind: Categorical, Options: []string{"Small", "Medium", "Large"}},
	{Name: "Waste Bag Weekly Count", Kind: Numeric},
	{Name: "How Long TV PC Daily Hour", Kind: Numeric},
	{Name: "How Many New Clothes Monthly", Kind: Numeric},
	{Name: "How Long Internet Daily Hour", Kind: Numeric},
	{Name: "Energy efficiency", Kind: Categorical, Options: []string{"Yes", "No"}},
	{Name: "Recycling", Kind: Categorical, Options: []string{"Paper", "Plastic", "Both", "None"}},
	{Name: "Cooking_With", Kind: Categorical, Options: []string{"Oven", "Stove", "Microwave"}},
}

var byName = func() map[string]Field {
	m := make(map[string]Field, len(catalog))
	for _, f := range catalog {
		m[f.Name] = f
	}
	return m
}()

// Fields returns the survey questions in form order.
func Fields() []Field {
	return append([]Field(nil), catalog...)
}

func GetField(name string) (Field, bool) {
	f, exists := byName[name]
	return f, exists
}

// Problem describes why one answer was rejected.
type Problem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Field + ": " + p.Reason
	}
	return "invalid survey answers: " + strings.Join(parts, "; ")
}

// Normalize returns a copy of userData holding only survey answers: the
// username the form echoes back is dropped, strings are trimmed, numeric
// answers become numbers and categorical answers take the catalog spelling.
// Answers that do not fit the catalog are kept as given for Validate to report.
func Normalize(userData *models.Fields) *models.Fields {
	out := models.NewFields()
	for _, key := range userData.Keys() {
		if key == models.FieldUsername {
			continue
		}
		v, _ := userData.Get(key)
		if s, ok := v.Str(); ok {
			v = models.String(strings.TrimSpace(s))
		}
		if f, known := GetField(key); known {
			switch f.Kind {
			case Numeric:
				if n, ok := v.Float(); ok && v.Kind() != models.KindBool {
					v = models.Number(n)
				}
			case Categorical:
				if opt, ok := f.match(v); ok {
					v = models.String(opt)
				}
			}
		}
		out.Set(key, v)
	}
	return out
}

// Validate checks that every catalog question is answered, numeric answers
// are numbers and categorical answers are one of the options.
func Validate(userData *models.Fields) error {
	var problems []Problem
	for _, key := range userData.Keys() {
		if key == models.FieldUsername {
			continue
		}
		if _, known := GetField(key); !known {
			problems = append(problems, Problem{Field: key, Reason: "unknown field"})
		}
	}
	for _, f := range catalog {
		v, ok := userData.Get(f.Name)
		if !ok || (!v.Truthy() && v.Kind() != models.KindNumber) {
			problems = append(problems, Problem{Field: f.Name, Reason: "required"})
			continue
		}
		switch f.Kind {
		case Numeric:
			n, ok := v.Float()
			if !ok || v.Kind() == models.KindBool {
				problems = append(problems, Problem{Field: f.Name, Reason: "must be a number"})
			} else if n < 0 {
				problems = append(problems, Problem{Field: f.Name, Reason: "must not be negative"})
			}
		case Categorical:
			if _, ok := f.match(v); !ok {
				problems = append(problems, Problem{Field: f.Name, Reason: fmt.Sprintf("must be one of %s", strings.Join(f.Options, ", "))})
			}
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func (f Field) match(v models.Value) (string, bool) {
	s, ok := v.Str()
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	for _, opt := range f.Options {
		if strings.EqualFold(opt, s) {
			return opt, true
		}
	}
	return "", false
}
