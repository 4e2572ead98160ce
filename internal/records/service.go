package records

import (
	"context"
	"strings"
	"time"

	"CarbonFootprintTracker/internal/events"
	"CarbonFootprintTracker/internal/logging"
	"CarbonFootprintTracker/internal/metrics"
	"CarbonFootprintTracker/internal/models"
)

// Store is the schemaless survey record collection.
type Store interface {
	// FindByUsername returns every record of username, newest first.
	FindByUsername(ctx context.Context, username string) ([]models.Record, error)
	// Insert stores doc for username and returns the store-assigned id.
	Insert(ctx context.Context, username string, doc *models.Fields) (string, error)
}

type Service struct {
	store     Store
	publisher events.Publisher
	persist   bool
	now       func() time.Time
}

type Option func(*Service)

// WithoutPersistence makes Submit only announce records. Use it when the
// prediction service writes submissions to the store itself.
func WithoutPersistence() Option {
	return func(s *Service) { s.persist = false }
}

// WithClock overrides the time source used to stamp submissions.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, publisher events.Publisher, opts ...Option) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	s := &Service{store: store, publisher: publisher, persist: true, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchRecords returns the cleaned records of username, newest first.
// It fails with ErrNotFound when there are none and ErrStorage when the store fails.
func (s *Service) FetchRecords(ctx context.Context, username string) ([]models.Record, error) {
	if strings.TrimSpace(username) == "" {
		metrics.ObserveRetrieval(metrics.OutcomeNotFound, 0)
		return nil, ErrNotFound
	}

	stored, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("username", username).Msg("FetchRecords(): store query failed")
		metrics.ObserveRetrieval(metrics.OutcomeStorageError, 0)
		return nil, &Error{Kind: KindStorage, Message: MsgServerError, Err: err}
	}
	if len(stored) == 0 {
		metrics.ObserveRetrieval(metrics.OutcomeNotFound, 0)
		return nil, ErrNotFound
	}

	cleaned := CleanAll(stored)
	logging.Ctx(ctx).Debug().Str("username", username).Int("count", len(cleaned)).Msg("FetchRecords(): records fetched")
	metrics.ObserveRetrieval(metrics.OutcomeOK, len(cleaned))
	return cleaned, nil
}

// Submit stores a survey answer set with its predicted footprint and announces it.
// The record is stamped with the English month name and the year of the current time.
func (s *Service) Submit(ctx context.Context, username string, userData *models.Fields, footprint float64) (models.Record, error) {
	if strings.TrimSpace(username) == "" {
		return models.Record{}, &Error{Kind: KindInvalid, Message: "Username is required"}
	}
	at := s.now()

	doc := models.NewFields()
	doc.Set(models.FieldUsername, models.String(username))
	doc.Set(models.FieldUserData, models.Object(userData.Clone()))
	doc.Set(models.FieldPredictedFootprint, models.Number(footprint))
	doc.Set(models.FieldMonth, models.String(at.Month().String()))
	doc.Set(models.FieldYear, models.Number(float64(at.Year())))

	id := ""
	if s.persist {
		var err error
		id, err = s.store.Insert(ctx, username, doc)
		if err != nil {
			logging.Ctx(ctx).Error().Err(err).Str("username", username).Msg("Submit(): store insert failed")
			metrics.Submissions.WithLabelValues("storage_error").Inc()
			return models.Record{}, &Error{Kind: KindStorage, Message: MsgServerError, Err: err}
		}
	}
	metrics.Submissions.WithLabelValues("ok").Inc()

	record := Clean(models.NewRecord(id, username, doc))
	ev := events.RecordEvent{
		Type:               events.EventPrediction,
		Username:           username,
		PredictedFootprint: footprint,
		Month:              at.Month().String(),
		Year:               at.Year(),
		UserData:           record.UserData(),
		At:                 at,
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("username", username).Msg("Submit(): event publish failed")
	}
	return record, nil
}
