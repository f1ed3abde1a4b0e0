package user_test

import (
	"database/sql"
	"testing"

	"sixwings/pkg/user"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)

	schema := `
	CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		points INTEGER NOT NULL DEFAULT 0,
		password TEXT NOT NULL
	);`

	_, err = db.Exec(schema)
	assert.NoError(t, err)

	return db
}

func testUser() *user.User {
	return &user.User{
		ID:       "user123",
		Name:     "Alice",
		Email:    "alice@example.com",
		Role:     user.RoleUser,
		Points:   1000,
		Password: "hashed_pass",
	}
}

func TestMySQLRepo_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := user.NewMySQLRepo(db)

	assert.NoError(t, repo.Create(testUser()))

	// Same email again violates the unique index.
	dup := testUser()
	dup.ID = "user456"
	assert.Error(t, repo.Create(dup))

	found, err := repo.FindByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "user123", found.ID)
	assert.Equal(t, 1000, found.Points)

	found, err = repo.FindByID("user123")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", found.Email)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = repo.FindByID("ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestMySQLRepo_Points(t *testing.T) {
	db := setupTestDB(t)
	repo := user.NewMySQLRepo(db)
	assert.NoError(t, repo.Create(testUser()))

	assert.NoError(t, repo.DebitPoints("user123", 400))

	found, err := repo.FindByID("user123")
	assert.NoError(t, err)
	assert.Equal(t, 600, found.Points)

	// Balance does not cover the debit.
	err = repo.DebitPoints("user123", 601)
	assert.ErrorIs(t, err, user.ErrInsufficientPoints)

	found, _ = repo.FindByID("user123")
	assert.Equal(t, 600, found.Points, "failed debit must not change the balance")

	assert.NoError(t, repo.CreditPoints("user123", 100))
	found, _ = repo.FindByID("user123")
	assert.Equal(t, 700, found.Points)

	assert.ErrorIs(t, repo.CreditPoints("ghost", 10), user.ErrNotFound)
}
