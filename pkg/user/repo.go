package user

import (
	"database/sql"
	"errors"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInsufficientPoints = errors.New("insufficient points balance")
)

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(user *User) error {
	_, err := r.DB.Exec(
		"INSERT INTO users (id, name, email, role, points, password) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, user.Role, user.Points, user.Password,
	)
	if err != nil {
		return err
	}
	return nil
}

func (r *MySQLRepo) FindByEmail(email string) (*User, error) {
	var u User
	err := r.DB.QueryRow(
		"SELECT id, name, email, role, points, password FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Points, &u.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (r *MySQLRepo) FindByID(id string) (*User, error) {
	var u User
	err := r.DB.QueryRow(
		"SELECT id, name, email, role, points, password FROM users WHERE id = ?",
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Points, &u.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

// DebitPoints decrements the balance only when it covers the amount, in a
// single statement so concurrent checkouts cannot overdraw.
func (r *MySQLRepo) DebitPoints(userID string, amount int) error {
	res, err := r.DB.Exec(
		"UPDATE users SET points = points - ? WHERE id = ? AND points >= ?",
		amount, userID, amount,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientPoints
	}
	return nil
}

func (r *MySQLRepo) CreditPoints(userID string, amount int) error {
	res, err := r.DB.Exec(
		"UPDATE users SET points = points + ? WHERE id = ?",
		amount, userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
