package events

import (
	"context"
	"errors"
	"time"

	"CarbonFootprintTracker/internal/models"
)

// EventPrediction is emitted whenever a survey submission is stored.
const EventPrediction = "prediction"

// RecordEvent announces a new survey record for one user.
type RecordEvent struct {
	Type               string         `json:"event_type"`
	Username           string         `json:"username"`
	PredictedFootprint float64        `json:"predicted_footprint"`
	Month              string         `json:"month"`
	Year               int            `json:"year"`
	UserData           *models.Fields `json:"user_data,omitempty"`
	At                 time.Time      `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev RecordEvent) error
}

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev RecordEvent) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards events.
type Nop struct{}

func (Nop) Publish(context.Context, RecordEvent) error { return nil }
