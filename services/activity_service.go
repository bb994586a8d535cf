package services

import (
	"activofijo_server/database"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"activofijo_server/structs/tables"
	"context"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ActivityService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewActivityService(logger *gecho.Logger, db *database.DB) *ActivityService {
	return &ActivityService{
		logger: logger,
		db:     db,
	}
}

// ActivityListOptions filters the maintenance log
type ActivityListOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	SiteId  *uuid.UUID `json:"site_id,omitempty"`
	AssetId *uuid.UUID `json:"asset_id,omitempty"`
}

// ActivityListResult wraps the activity list response with metadata
type ActivityListResult struct {
	Activities []tables.Activity   `json:"activities"`
	Pagination database.Pagination `json:"pagination"`
}

// ListActivities returns the maintenance log, newest first.
func (acs *ActivityService) ListActivities(ctx context.Context, opts *ActivityListOptions) (*ActivityListResult, error) {
	if opts == nil {
		opts = &ActivityListOptions{}
	}

	query := acs.db.NewSelect().Model((*tables.Activity)(nil)).Order("date DESC")
	if opts.SiteId != nil {
		query = query.Where("ac.site_id = ?", *opts.SiteId)
	}
	if opts.AssetId != nil {
		query = query.Where("ac.asset_id = ?", *opts.AssetId)
	}

	activities, pagination, err := database.Paginate[tables.Activity](ctx, query, opts.Page, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", lib.MapPgError(err))
	}

	return &ActivityListResult{Activities: activities, Pagination: pagination}, nil
}

func (acs *ActivityService) CreateActivity(ctx context.Context, req *structs.ActivityRequest) (*tables.Activity, error) {
	priority := tables.ActivityPriorityMedia
	if req.Priority != "" {
		priority = tables.ActivityPriority(req.Priority)
	}

	activity := &tables.Activity{
		Id:               uuid.New(),
		Date:             req.Date,
		TechName:         req.TechName,
		SiteId:           req.SiteId,
		AssetId:          req.AssetId,
		Description:      req.Description,
		Type:             tables.ActivityType(req.Type),
		Priority:         priority,
		TimeSpentMinutes: req.TimeSpentMinutes,
		CreatedAt:        time.Now(),
	}

	err := database.WithRetry(ctx, func() error {
		_, insErr := acs.db.NewInsert().Model(activity).Exec(ctx)
		return insErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", lib.MapPgError(err))
	}

	acs.logger.Info("Activity logged",
		gecho.Field("activity_id", activity.Id),
		gecho.Field("site_id", activity.SiteId))
	return activity, nil
}

func (acs *ActivityService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	res, err := acs.db.NewDelete().Model((*tables.Activity)(nil)).Where("ac.id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}
