package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/pkg/pgtools"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactPostgresRepo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) ContactPostgresRepo {
	return ContactPostgresRepo{
		db: db,
	}
}

func (cr ContactPostgresRepo) CreateMessage(ctx context.Context, m models.ContactMessage) (err error) {
	tx, err := cr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "create")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("contact_messages").
		Columns("name", "email", "subject", "message").
		Values(m.Name, m.Email, m.Subject, m.Message).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	if _, err = tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	return nil
}

func (cr ContactPostgresRepo) DeleteMessagesBefore(ctx context.Context, cutoff time.Time) (deleted int64, err error) {
	tx, err := cr.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "delete")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("contact_messages").
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
