package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/sketchrepo"
	"github.com/Vlok123/carintel/internal/pkg/pgtools"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SketchesPostgresRepo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) SketchesPostgresRepo {
	return SketchesPostgresRepo{
		db: db,
	}
}

func (sr SketchesPostgresRepo) ListSketches(ctx context.Context, userID int64) (_ []models.SketchSummary, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "list")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select("id", "title", "location", "description", "is_public", "created_at", "updated_at").
		From("sketches").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("to sql error: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	sketches := make([]models.SketchSummary, 0, 10) //nolint:gomnd

	for rows.Next() {
		var s models.SketchSummary

		if err = rows.Scan(&s.ID, &s.Title, &s.Location, &s.Description,
			&s.IsPublic, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}

		sketches = append(sketches, s)
	}

	return sketches, nil
}

func (sr SketchesPostgresRepo) GetSketch(ctx context.Context, userID, id int64) (_ models.Sketch, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return models.Sketch{}, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "get")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select("id", "user_id", "title", "location", "description",
		"incidents", "lines", "settings", "is_public", "created_at", "updated_at").
		From("sketches").
		Where(squirrel.Eq{"id": id, "user_id": userID}).ToSql()
	if err != nil {
		return models.Sketch{}, fmt.Errorf("to sql error: %w", err)
	}

	var s models.Sketch

	if err := tx.QueryRow(ctx, query, args...).Scan(&s.ID, &s.UserID, &s.Title, &s.Location, &s.Description,
		&s.Incidents, &s.Lines, &s.Settings, &s.IsPublic, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s, sketchrepo.ErrNotFound
		}

		return s, fmt.Errorf("scan error: %w", err)
	}

	return s, nil
}

func (sr SketchesPostgresRepo) CreateSketch(ctx context.Context, s models.Sketch) (_ models.Sketch, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return models.Sketch{}, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "create")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("sketches").
		Columns("user_id", "title", "location", "description", "incidents", "lines", "settings", "is_public").
		Values(s.UserID, s.Title, s.Location, s.Description,
			[]byte(s.Incidents), []byte(s.Lines), []byte(s.Settings), s.IsPublic).
		Suffix("RETURNING id, created_at, updated_at").ToSql()
	if err != nil {
		return models.Sketch{}, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return models.Sketch{}, fmt.Errorf("scan error: %w", err)
	}

	return s, nil
}

// UpdateSketch replaces every mutable field of the row matching id and
// owner. Last write wins: there is no conflict detection.
func (sr SketchesPostgresRepo) UpdateSketch(ctx context.Context, s models.Sketch) (_ time.Time, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "update")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Update("sketches").
		Set("title", s.Title).
		Set("location", s.Location).
		Set("description", s.Description).
		Set("incidents", []byte(s.Incidents)).
		Set("lines", []byte(s.Lines)).
		Set("settings", []byte(s.Settings)).
		Set("is_public", s.IsPublic).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID, "user_id": s.UserID}).
		Suffix("RETURNING updated_at").ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("to sql error: %w", err)
	}

	var updatedAt time.Time

	if err := tx.QueryRow(ctx, query, args...).Scan(&updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, sketchrepo.ErrNotFound
		}

		return time.Time{}, fmt.Errorf("scan error: %w", err)
	}

	return updatedAt, nil
}

func (sr SketchesPostgresRepo) DeleteSketch(ctx context.Context, userID, id int64) (err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "delete")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("sketches").
		Where(squirrel.Eq{"id": id, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("to sql error: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec error: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return sketchrepo.ErrNotFound
	}

	return nil
}

func (sr SketchesPostgresRepo) CountSketches(ctx context.Context) (count int64, err error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction error: %w", err)
	}

	defer func() {
		err = pgtools.CommitOrRollback(ctx, tx, err, "count")
	}()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select("count(*)").From("sketches").ToSql()
	if err != nil {
		return 0, fmt.Errorf("to sql error: %w", err)
	}

	if err = tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("scan error: %w", err)
	}

	return count, nil
}
