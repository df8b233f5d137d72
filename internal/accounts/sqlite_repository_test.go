package accounts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

func setupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:accounts_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		DROP TABLE IF EXISTS accounts;
		CREATE TABLE accounts (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE COLLATE NOCASE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);`)
	require.NoError(t, err)
	return db
}

func newAccount(username string) *Account {
	return &Account{
		ID:           "id-" + username,
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestSQLiteCreateAndGet(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newAccount("alice"))
	require.NoError(t, err)
	require.Equal(t, "alice", created.Username)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.PasswordHash, got.PasswordHash)
}

func TestSQLiteGetByUsername_CaseInsensitive(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newAccount("Alice"))
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "aLiCe")
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Username)
}

func TestSQLiteCreate_DuplicateCaseVariant(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newAccount("alice"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newAccount("ALICE"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSQLiteGetByUsername_NotFound(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewSQLiteRepository(db)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLiteExists(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = repo.Create(ctx, newAccount("alice"))
	require.NoError(t, err)

	exists, err = repo.Exists(ctx, "ALICE")
	require.NoError(t, err)
	require.True(t, exists)
}
