package token

import (
	"database/sql"
	"errors"
	"time"
)

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(userID, token string, expiresAt time.Time) error {
	_, err := r.DB.Exec(`
		INSERT INTO refresh_tokens (token, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, token, userID, time.Now().UTC(), expiresAt)

	return err
}

func (r *MySQLRepo) Find(token string) (*RefreshToken, error) {
	var rt RefreshToken
	err := r.DB.QueryRow(`
		SELECT token, user_id, created_at, expires_at
		FROM refresh_tokens WHERE token = ?
	`, token).Scan(&rt.Token, &rt.UserID, &rt.CreatedAt, &rt.ExpiresAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRefreshInvalid
		}
		return nil, err
	}

	return &rt, nil
}

func (r *MySQLRepo) Delete(token string) error {
	_, err := r.DB.Exec(`
		DELETE FROM refresh_tokens WHERE token = ?
	`, token)
	return err
}

func (r *MySQLRepo) DeleteByUser(userID string) error {
	_, err := r.DB.Exec(`
		DELETE FROM refresh_tokens WHERE user_id = ?
	`, userID)
	return err
}
