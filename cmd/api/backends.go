package main

import (
	"context"
	"database/sql"
	"fmt"

	"CarbonFootprintTracker/internal/config"
	"CarbonFootprintTracker/internal/events"
	"CarbonFootprintTracker/internal/logging"
	"CarbonFootprintTracker/internal/records"
	"CarbonFootprintTracker/internal/storage"
)

// backends holds the stores and publishers a command runs against.
type backends struct {
	db      *sql.DB
	mongo   *storage.MongoRecordStore
	nats    *events.NATSPublisher
	hub     *events.Hub
	users   *storage.UserStore
	service *records.Service
}

func openBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := storage.OpenSQLite(cfg.Store.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	b := &backends{db: db, users: storage.NewUserStore(db), hub: events.NewHub(0)}

	var store records.Store
	switch cfg.Store.Driver {
	case "mongo":
		b.mongo, err = storage.NewMongoRecordStore(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase, cfg.Store.MongoCollection)
		if err != nil {
			b.Close()
			return nil, err
		}
		store = b.mongo
	default:
		store = storage.NewSQLiteRecordStore(db)
	}

	publishers := events.Multi{b.hub}
	if cfg.NATS.URL != "" {
		b.nats, err = events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			// events are best effort; the API works without the broker
			logging.Warn().Err(err).Str("url", cfg.NATS.URL).Msg("openBackends(): NATS unavailable, publishing in-process only")
		} else {
			publishers = append(publishers, b.nats)
		}
	}

	var opts []records.Option
	if cfg.Predictor.Persists {
		opts = append(opts, records.WithoutPersistence())
	}
	b.service = records.NewService(store, publishers, opts...)
	return b, nil
}

func (b *backends) Close() {
	if b.nats != nil {
		if err := b.nats.Close(); err != nil {
			logging.Warn().Err(err).Msg("Close(): NATS drain failed")
		}
	}
	if b.mongo != nil {
		if err := b.mongo.Close(context.Background()); err != nil {
			logging.Warn().Err(err).Msg("Close(): mongo disconnect failed")
		}
	}
	if b.db != nil {
		_ = b.db.Close()
	}
}
