package sketchservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
	"github.com/Vlok123/carintel/internal/carintel/repository/logrepo"
	"github.com/Vlok123/carintel/internal/carintel/repository/sketchrepo"
	"github.com/Vlok123/carintel/pkg/logger"
)

var (
	ErrNotFound      = errors.New("sketch not found")
	ErrTitleRequired = errors.New("title is required")
)

type Repository interface {
	ListSketches(context.Context, int64) ([]models.SketchSummary, error)
	GetSketch(ctx context.Context, userID, id int64) (models.Sketch, error)
	CreateSketch(context.Context, models.Sketch) (models.Sketch, error)
	UpdateSketch(context.Context, models.Sketch) (time.Time, error)
	DeleteSketch(ctx context.Context, userID, id int64) error
}

type ActivityRecorder interface {
	RecordActivity(ctx context.Context, userID int64, action string) error
}

type SketchService struct {
	sketchRepo Repository
	activity   ActivityRecorder
	lg         logger.Logger
}

func New(sketchRepo Repository, activity ActivityRecorder, lg logger.Logger) *SketchService {
	return &SketchService{
		sketchRepo: sketchRepo,
		activity:   activity,
		lg:         lg,
	}
}

func (ss *SketchService) ListSketches(ctx context.Context, userID int64) ([]models.SketchSummary, error) {
	sketches, err := ss.sketchRepo.ListSketches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sketches error: %w", err)
	}

	return sketches, nil
}

func (ss *SketchService) GetSketch(ctx context.Context, userID, id int64) (models.Sketch, error) {
	s, err := ss.sketchRepo.GetSketch(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sketchrepo.ErrNotFound) {
			return models.Sketch{}, ErrNotFound
		}

		return models.Sketch{}, fmt.Errorf("get sketch error: %w", err)
	}

	return s, nil
}

func (ss *SketchService) SaveSketch(ctx context.Context, req SaveSketchRequest) (models.Sketch, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Sketch{}, ErrTitleRequired
	}

	s := models.Sketch{ //nolint:exhaustruct
		UserID:      req.UserID,
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		Incidents:   req.Incidents,
		Lines:       req.Lines,
		Settings:    req.Settings,
		IsPublic:    req.IsPublic,
	}

	// Absent payloads are stored as empty containers, not NULLs.
	if len(s.Incidents) == 0 {
		s.Incidents = models.EmptyArray
	}

	if len(s.Lines) == 0 {
		s.Lines = models.EmptyArray
	}

	if len(s.Settings) == 0 {
		s.Settings = models.EmptyObject
	}

	s, err := ss.sketchRepo.CreateSketch(ctx, s)
	if err != nil {
		return models.Sketch{}, fmt.Errorf("create sketch error: %w", err)
	}

	if err := ss.activity.RecordActivity(ctx, req.UserID, logrepo.ActionSketchCreated); err != nil {
		ss.lg.Errorf("record activity error: %s", err.Error())
	}

	return s, nil
}

func (ss *SketchService) UpdateSketch(ctx context.Context, req SaveSketchRequest) (time.Time, error) {
	if strings.TrimSpace(req.Title) == "" {
		return time.Time{}, ErrTitleRequired
	}

	s := models.Sketch{ //nolint:exhaustruct
		ID:          req.ID,
		UserID:      req.UserID,
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		Incidents:   req.Incidents,
		Lines:       req.Lines,
		Settings:    req.Settings,
		IsPublic:    req.IsPublic,
	}

	if len(s.Incidents) == 0 {
		s.Incidents = models.EmptyArray
	}

	if len(s.Lines) == 0 {
		s.Lines = models.EmptyArray
	}

	if len(s.Settings) == 0 {
		s.Settings = models.EmptyObject
	}

	updatedAt, err := ss.sketchRepo.UpdateSketch(ctx, s)
	if err != nil {
		if errors.Is(err, sketchrepo.ErrNotFound) {
			return time.Time{}, ErrNotFound
		}

		return time.Time{}, fmt.Errorf("update sketch error: %w", err)
	}

	if err := ss.activity.RecordActivity(ctx, req.UserID, logrepo.ActionSketchUpdated); err != nil {
		ss.lg.Errorf("record activity error: %s", err.Error())
	}

	return updatedAt, nil
}

func (ss *SketchService) DeleteSketch(ctx context.Context, userID, id int64) error {
	if err := ss.sketchRepo.DeleteSketch(ctx, userID, id); err != nil {
		if errors.Is(err, sketchrepo.ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("delete sketch error: %w", err)
	}

	if err := ss.activity.RecordActivity(ctx, userID, logrepo.ActionSketchDeleted); err != nil {
		ss.lg.Errorf("record activity error: %s", err.Error())
	}

	return nil
}
