package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/savedrepo"
	"github.com/Vlok123/carintel/internal/pkg/pgtools"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SavedPostgresRepo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) SavedPostgresRepo {
	return SavedPostgresRepo{
		db: db,
	}
}

func (sr SavedPostgresRepo) ListSearches(ctx context.Context, userID int64) (_ []models.SavedSearch, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "list")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select("id", "user_id", "name", "query", "filters", "created_at").
		From("saved_searches").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("to sql error: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	searches := make([]models.SavedSearch, 0, 10) //nolint:gomnd

	for rows.Next() {
		var s models.SavedSearch

		if err = rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Query, &s.Filters, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		searches = append(searches, s)
	}

	return searches, nil
}

func (sr SavedPostgresRepo) CreateSearch(ctx context.Context, s models.SavedSearch) (_ models.SavedSearch, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return models.SavedSearch{}, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "create")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("saved_searches").
		Columns("user_id", "name", "query", "filters").
		Values(s.UserID, s.Name, s.Query, []byte(s.Filters)).
		Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return models.SavedSearch{}, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return models.SavedSearch{}, fmt.Errorf("scan error: %w", err)
	}

	return s, nil
}

func (sr SavedPostgresRepo) DeleteSearch(ctx context.Context, userID, id int64) (err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "delete")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("saved_searches").
		Where(squirrel.Eq{"id": id, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return savedrepo.ErrNotFound
	}

	return nil
}

func (sr SavedPostgresRepo) ListVehicles(ctx context.Context, userID int64) (_ []models.SavedVehicle, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "list")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select("id", "user_id", "kenteken", "data", "notes", "created_at").
		From("saved_vehicles").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("to sql error: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	vehicles := make([]models.SavedVehicle, 0, 10) //nolint:gomnd

	for rows.Next() {
		var v models.SavedVehicle

		if err = rows.Scan(&v.ID, &v.UserID, &v.Kenteken, &v.Data, &v.Notes, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

func (sr SavedPostgresRepo) CreateVehicle(ctx context.Context, v models.SavedVehicle) (_ models.SavedVehicle, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return models.SavedVehicle{}, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "create")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("saved_vehicles").
		Columns("user_id", "kenteken", "data", "notes").
		Values(v.UserID, v.Kenteken, []byte(v.Data), v.Notes).
		Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return models.SavedVehicle{}, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt); err != nil {
		target := new(pgconn.PgError)
		if errors.As(err, &target) && target.Code == "23505" {
			return models.SavedVehicle{}, savedrepo.ErrAlreadyExists
		}

		return models.SavedVehicle{}, fmt.Errorf("scan error: %w", err)
	}

	return v, nil
}

func (sr SavedPostgresRepo) DeleteVehicle(ctx context.Context, userID, id int64) (err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "delete")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("saved_vehicles").
		Where(squirrel.Eq{"id": id, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return savedrepo.ErrNotFound
	}

	return nil
}

func (sr SavedPostgresRepo) CountSearches(ctx context.Context) (int64, error) {
	return sr.count(ctx, "saved_searches")
}

func (sr SavedPostgresRepo) CountVehicles(ctx context.Context) (int64, error) {
	return sr.count(ctx, "saved_vehicles")
}

func (sr SavedPostgresRepo) count(ctx context.Context, table string) (count int64, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "count")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("scan error: %w", err)
	}

	return count, nil
}
