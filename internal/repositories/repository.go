package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/podcast-network/internal/logger"
)

var (
	// ErrNotFound is returned when no row matches the id and owner.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

const (
	uniqueViolation = "23505"
	listLimit       = 1000
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

type base struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// executor returns the request transaction when there is one, the pool otherwise.
func (b base) executor(ctx context.Context) sqlx.ExtContext {
	if b.txGetter != nil {
		if tx := b.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return b.db
}

// savepoint runs fn under a savepoint when ctx carries a transaction, so a
// failed statement leaves the transaction usable. Without a transaction fn
// runs directly against the pool.
func (b base) savepoint(ctx context.Context, name string, fn func(exec sqlx.ExtContext) error) error {
	var tx *sqlx.Tx
	if b.txGetter != nil {
		tx = b.txGetter(ctx)
	}
	if tx == nil {
		return fn(b.db)
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			logger.Log.Errorw("rollback to savepoint failed", "savepoint", name, "error", rbErr)
		}
		return err
	}
	_, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name)
	return err
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

func affected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func deleteOwned(ctx context.Context, exec sqlx.ExtContext, table string, userID, id any) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND user_id = $2", table)
	n, err := affected(exec.ExecContext(ctx, query, id, userID))
	logQuery(query, []any{id, userID}, n, err)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByUser(ctx context.Context, exec sqlx.ExtContext, table string, userID any) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1", table)
	n, err := affected(exec.ExecContext(ctx, query, userID))
	logQuery(query, []any{userID}, n, err)
	return n, err
}
