package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"CarbonFootprintTracker/internal/models"
)

// SQLiteRecordStore keeps survey documents as JSON text, one row per submission.
type SQLiteRecordStore struct {
	db *sql.DB
}

func NewSQLiteRecordStore(db *sql.DB) *SQLiteRecordStore {
	return &SQLiteRecordStore{db: db}
}

func (s *SQLiteRecordStore) Insert(ctx context.Context, username string, doc *models.Fields) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("SQLiteRecordStore.Insert(): encode document: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO footprint_records(username, document, created_at) VALUES(?, ?, ?)",
		username, string(data), time.Now().Unix())
	if err != nil {
		return "", err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (s *SQLiteRecordStore) FindByUsername(ctx context.Context, username string) ([]models.Record, error) {
	query := `
		SELECT id, document
		FROM footprint_records
		WHERE username = ?
		ORDER BY id DESC
	`
	rows, err := s.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var id int64
		var document string
		if err := rows.Scan(&id, &document); err != nil {
			return nil, err
		}

		doc := models.NewFields()
		if err := json.Unmarshal([]byte(document), doc); err != nil {
			return nil, fmt.Errorf("SQLiteRecordStore.FindByUsername(): record %d: %w", id, err)
		}
		records = append(records, models.NewRecord(strconv.FormatInt(id, 10), username, doc))
	}
	return records, rows.Err()
}
