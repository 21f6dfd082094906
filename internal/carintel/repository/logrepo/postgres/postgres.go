package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Vlok123/carintel/internal/pkg/pgtools"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LogsPostgresRepo is append-and-purge storage: lookup and activity
// rows are only ever written, then deleted by age during maintenance.
type LogsPostgresRepo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) LogsPostgresRepo {
	return LogsPostgresRepo{
		db: db,
	}
}

func (lr LogsPostgresRepo) RecordSearch(ctx context.Context, kenteken string) (err error) {
	tx, err := lr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "record")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("anonymous_searches").
		Columns("kenteken").
		Values(kenteken).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	if _, err = tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	return nil
}

func (lr LogsPostgresRepo) RecordActivity(ctx context.Context, userID int64, action string) (err error) {
	tx, err := lr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "record")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("activity_logs").
		Columns("user_id", "action").
		Values(userID, action).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	if _, err = tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	return nil
}

func (lr LogsPostgresRepo) DeleteSearchesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return lr.deleteBefore(ctx, "anonymous_searches", cutoff)
}

func (lr LogsPostgresRepo) DeleteActivitiesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return lr.deleteBefore(ctx, "activity_logs", cutoff)
}

func (lr LogsPostgresRepo) deleteBefore(ctx context.Context, table string, cutoff time.Time) (deleted int64, err error) {
	tx, err := lr.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "delete")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	// Rows exactly at the cutoff are old enough to go.
	query, args, err := psql.Delete(table).
		Where(squirrel.LtOrEq{"created_at": cutoff}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("to sql error: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec error: %w", err)
	}

	return ct.RowsAffected(), nil
}
