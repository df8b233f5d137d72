package lockout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, username string) (*Record, error) {
	query :=
		`SELECT username, attempt_count, last_attempt_time FROM login_attempts
		 WHERE username = $1
		 `

	record := &Record{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&record.Username, &record.AttemptCount, &record.LastAttemptUnix)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

// RecordFailure performs the sliding-reset increment in one statement, so the
// read-modify-write cannot interleave with a concurrent failure for the same
// username.
func (r *PostgresRepository) RecordFailure(ctx context.Context, username string, now int64, windowSeconds int64) (int, error) {
	query :=
		`INSERT INTO login_attempts (username, attempt_count, last_attempt_time)
		 VALUES ($1, 1, $2)
		 ON CONFLICT (username) DO UPDATE
		 SET attempt_count = CASE
		         WHEN $2 - login_attempts.last_attempt_time >= $3 THEN 1
		         ELSE login_attempts.attempt_count + 1
		     END,
		     last_attempt_time = $2
		 RETURNING attempt_count
		 `

	var count int
	err := r.db.QueryRowContext(ctx, query, username, now, windowSeconds).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Clear(ctx context.Context, username string) error {
	query :=
		`DELETE FROM login_attempts WHERE username = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
