// Package storage wires the per-engine repository implementations and their
// schema migrations behind one manager interface, so callers do not care
// which database engine backs the store.
package storage

import (
	"database/sql"

	"github.com/dmitrijs2005/credkeeper/internal/accounts"
	"github.com/dmitrijs2005/credkeeper/internal/lockout"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Accounts() accounts.Repository
	Lockouts() lockout.Repository
	Close() error
}
