package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"CarbonFootprintTracker/internal/models"

	"modernc.org/sqlite"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)

// SQLITE_CONSTRAINT_UNIQUE
const sqliteConstraintUnique = 2067

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) CreateUser(ctx context.Context, email, username, passwordHash string) error {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(email, username, password_hash, created_at) VALUES(?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, normalizeEmail(email), username, passwordHash, time.Now().Unix())
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	var createdAt int64

	row := s.db.QueryRowContext(ctx, "SELECT id, email, username, password_hash, created_at FROM users WHERE email = ?", normalizeEmail(email))
	if err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
