package models

import "time"

// 회원 사용자 모델
type User struct {
	ID           int64     `json:"-"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
