package services

import (
	"activofijo_server/database"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"activofijo_server/structs/tables"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// An asset carries at most this many archived codes from past relocations
const codeHistoryLimit = 10

type AssetService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewAssetService(logger *gecho.Logger, db *database.DB) *AssetService {
	return &AssetService{
		logger: logger,
		db:     db,
	}
}

// RelocationResult reports the outcome of moving an asset between sites.
type RelocationResult struct {
	Changed      bool      `json:"changed"`
	FixedAssetId string    `json:"fixed_asset_id"`
	SiteId       uuid.UUID `json:"site_id"`
}

// AllocateFixedAssetCode reserves the next sequence number of a site and
// returns the resulting code (PREFIX-NNN). The read-increment-write runs in
// one transaction with the site row locked, so concurrent callers always
// observe distinct, strictly increasing numbers. Once committed the number
// is spent: if persisting the asset afterwards fails, the sequence keeps the
// gap rather than risking a duplicate code.
func (as *AssetService) AllocateFixedAssetCode(ctx context.Context, siteId uuid.UUID) (string, error) {
	return database.RunInTxWithResult(ctx, func(ctx context.Context, tx bun.Tx) (string, error) {
		site, nextSeq, err := as.advanceSiteSeq(ctx, tx, siteId)
		if err != nil {
			return "", err
		}
		return lib.FormatFixedAssetCode(site.Prefix, nextSeq), nil
	})
}

// advanceSiteSeq locks the site row, bumps its counter by exactly one and
// writes it back inside the caller's transaction.
func (as *AssetService) advanceSiteSeq(ctx context.Context, tx bun.Tx, siteId uuid.UUID) (*tables.Site, int64, error) {
	site := new(tables.Site)
	err := tx.NewSelect().Model(site).Where("s.id = ?", siteId).For("UPDATE").Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, lib.ErrNotFound
		}
		return nil, 0, fmt.Errorf("failed to read site for allocation: %w", err)
	}

	nextSeq := site.AssetSeq + 1
	_, err = tx.NewUpdate().Model((*tables.Site)(nil)).
		Set("asset_seq = ?", nextSeq).
		Set("updated_at = ?", time.Now()).
		Where("s.id = ?", siteId).
		Exec(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to advance site sequence: %w", err)
	}

	return site, nextSeq, nil
}

// CreateAsset allocates a code from the asset's site and persists the asset
// carrying it. The counter increment commits first; a failed insert leaves a
// sequence gap, never a duplicate code.
func (as *AssetService) CreateAsset(ctx context.Context, req *structs.AssetRequest) (*tables.Asset, error) {
	code, err := as.AllocateFixedAssetCode(ctx, req.SiteId)
	if err != nil {
		return nil, err
	}

	status := tables.AssetStatusBodega
	if req.Status != "" {
		status = tables.AssetStatus(req.Status)
	}

	asset := &tables.Asset{
		Id:            uuid.New(),
		FixedAssetId:  code,
		SiteId:        req.SiteId,
		Type:          tables.AssetType(req.Type),
		Brand:         req.Brand,
		Model:         req.Model,
		Serial:        req.Serial,
		InternalPlate: req.InternalPlate,
		Status:        status,
		PurchaseDate:  req.PurchaseDate,
		CostCents:     req.CostCents,
		Processor:     req.Processor,
		RAM:           req.RAM,
		Storage:       req.Storage,
		OS:            req.OS,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err = database.WithRetry(ctx, func() error {
		_, insErr := as.db.NewInsert().Model(asset).Exec(ctx)
		return insErr
	})
	if err != nil {
		as.logger.Error("Asset insert failed after code allocation; sequence gap accepted",
			gecho.Field("code", code),
			gecho.Field("site_id", req.SiteId),
			gecho.Field("error", err))
		return nil, fmt.Errorf("failed to create asset: %w", lib.MapPgError(err))
	}

	as.logger.Info("Asset created",
		gecho.Field("asset_id", asset.Id),
		gecho.Field("fixed_asset_id", code))
	return asset, nil
}

// RelocateAsset moves an asset to another site and gives it a fresh code from
// the destination's counter, archiving the superseded one. Everything happens
// in a single transaction: either the destination counter advances and the
// asset is updated, or neither. Relocating to the current site is a no-op
// that consumes no sequence number.
func (as *AssetService) RelocateAsset(ctx context.Context, assetId, newSiteId uuid.UUID) (*RelocationResult, error) {
	return database.RunInTxWithResult(ctx, func(ctx context.Context, tx bun.Tx) (*RelocationResult, error) {
		asset := new(tables.Asset)
		err := tx.NewSelect().Model(asset).Where("a.id = ?", assetId).For("UPDATE").Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, lib.ErrNotFound
			}
			return nil, fmt.Errorf("failed to read asset for relocation: %w", err)
		}

		if asset.SiteId == newSiteId {
			return &RelocationResult{
				Changed:      false,
				FixedAssetId: asset.FixedAssetId,
				SiteId:       asset.SiteId,
			}, nil
		}

		site, nextSeq, err := as.advanceSiteSeq(ctx, tx, newSiteId)
		if err != nil {
			return nil, err
		}
		newCode := lib.FormatFixedAssetCode(site.Prefix, nextSeq)

		history := appendCodeHistory(asset.PreviousFixedAssetIds, asset.FixedAssetId)
		movedAt := time.Now()
		oldSiteId := asset.SiteId

		_, err = tx.NewUpdate().Model((*tables.Asset)(nil)).
			Set("site_id = ?", newSiteId).
			Set("fixed_asset_id = ?", newCode).
			Set("previous_fixed_asset_ids = ?", pgdialect.Array(history)).
			Set("moved_at = ?", movedAt).
			Set("moved_from_site_id = ?", oldSiteId).
			Set("updated_at = ?", movedAt).
			Where("a.id = ?", assetId).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update relocated asset: %w", err)
		}

		as.logger.Info("Asset relocated",
			gecho.Field("asset_id", assetId),
			gecho.Field("from_site", oldSiteId),
			gecho.Field("to_site", newSiteId),
			gecho.Field("new_code", newCode))

		return &RelocationResult{
			Changed:      true,
			FixedAssetId: newCode,
			SiteId:       newSiteId,
		}, nil
	})
}

// appendCodeHistory archives a superseded code at the tail of the history.
// A code already present is moved to the tail instead of duplicated, and the
// history keeps only the most recent entries.
func appendCodeHistory(history []string, code string) []string {
	result := make([]string, 0, len(history)+1)
	for _, entry := range history {
		if entry != code {
			result = append(result, entry)
		}
	}
	result = append(result, code)

	if len(result) > codeHistoryLimit {
		result = slices.Clone(result[len(result)-codeHistoryLimit:])
	}
	return result
}

// GetAsset fetches a single asset by id.
func (as *AssetService) GetAsset(ctx context.Context, id uuid.UUID) (*tables.Asset, error) {
	asset := new(tables.Asset)
	err := as.db.NewSelect().Model(asset).Where("a.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lib.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch asset: %w", lib.MapPgError(err))
	}
	return asset, nil
}

// AssetListOptions contains filtering and pagination options for asset queries
type AssetListOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	SiteId     *uuid.UUID `json:"site_id,omitempty"`
	Status     string     `json:"status,omitempty"`
	Type       string     `json:"type,omitempty"`
	SearchTerm string     `json:"search_term,omitempty"` // matches code, brand, model, serial
}

// AssetListResult wraps the asset list response with metadata
type AssetListResult struct {
	Assets     []tables.Asset      `json:"assets"`
	Pagination database.Pagination `json:"pagination"`
}

// ListAssets retrieves assets with filtering and pagination.
func (as *AssetService) ListAssets(ctx context.Context, opts *AssetListOptions) (*AssetListResult, error) {
	if opts == nil {
		opts = &AssetListOptions{}
	}

	query := as.db.NewSelect().Model((*tables.Asset)(nil)).Order("fixed_asset_id ASC")

	if opts.SiteId != nil {
		query = query.Where("a.site_id = ?", *opts.SiteId)
	}
	if opts.Status != "" {
		query = query.Where("a.status = ?", opts.Status)
	}
	if opts.Type != "" {
		query = query.Where("a.type = ?", opts.Type)
	}
	if opts.SearchTerm != "" {
		pattern := "%" + opts.SearchTerm + "%"
		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.WhereOr("a.fixed_asset_id ILIKE ?", pattern).
				WhereOr("a.brand ILIKE ?", pattern).
				WhereOr("a.model ILIKE ?", pattern).
				WhereOr("a.serial ILIKE ?", pattern)
		})
	}

	assets, pagination, err := database.Paginate[tables.Asset](ctx, query, opts.Page, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", lib.MapPgError(err))
	}

	return &AssetListResult{Assets: assets, Pagination: pagination}, nil
}

// UpdateAsset patches the descriptive fields of an asset. The code and the
// site affiliation are not writable here; they change only through
// RelocateAsset.
func (as *AssetService) UpdateAsset(ctx context.Context, id uuid.UUID, req *structs.AssetUpdateRequest) (*tables.Asset, error) {
	query := as.db.NewUpdate().Model((*tables.Asset)(nil)).Where("a.id = ?", id)

	if req.Type != nil {
		query = query.Set("type = ?", *req.Type)
	}
	if req.Brand != nil {
		query = query.Set("brand = ?", *req.Brand)
	}
	if req.Model != nil {
		query = query.Set("model = ?", *req.Model)
	}
	if req.Serial != nil {
		query = query.Set("serial = ?", *req.Serial)
	}
	if req.InternalPlate != nil {
		query = query.Set("internal_plate = ?", *req.InternalPlate)
	}
	if req.Status != nil {
		query = query.Set("status = ?", *req.Status)
	}
	if req.PurchaseDate != nil {
		query = query.Set("purchase_date = ?", *req.PurchaseDate)
	}
	if req.CostCents != nil {
		query = query.Set("cost_cents = ?", *req.CostCents)
	}
	if req.Processor != nil {
		query = query.Set("processor = ?", *req.Processor)
	}
	if req.RAM != nil {
		query = query.Set("ram = ?", *req.RAM)
	}
	if req.Storage != nil {
		query = query.Set("storage = ?", *req.Storage)
	}
	if req.OS != nil {
		query = query.Set("os = ?", *req.OS)
	}
	if req.Notes != nil {
		query = query.Set("notes = ?", *req.Notes)
	}
	query = query.Set("updated_at = ?", time.Now())

	res, err := query.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, lib.ErrNotFound
	}

	return as.GetAsset(ctx, id)
}

// AssignAsset records who holds the asset and marks it as assigned.
func (as *AssetService) AssignAsset(ctx context.Context, id uuid.UUID, req *structs.AssignAssetRequest) (*tables.Asset, error) {
	now := time.Now()
	res, err := as.db.NewUpdate().Model((*tables.Asset)(nil)).
		Set("assigned_to_name = ?", req.AssignedToName).
		Set("assigned_to_position = ?", req.AssignedToPosition).
		Set("assigned_at = ?", now).
		Set("status = ?", tables.AssetStatusAsignado).
		Set("updated_at = ?", now).
		Where("a.id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign asset: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, lib.ErrNotFound
	}

	return as.GetAsset(ctx, id)
}

// ReturnAsset clears the assignment and puts the asset back in storage.
func (as *AssetService) ReturnAsset(ctx context.Context, id uuid.UUID) (*tables.Asset, error) {
	now := time.Now()
	res, err := as.db.NewUpdate().Model((*tables.Asset)(nil)).
		Set("assigned_to_name = ?", "").
		Set("assigned_to_position = ?", "").
		Set("assigned_at = NULL").
		Set("status = ?", tables.AssetStatusBodega).
		Set("updated_at = ?", now).
		Where("a.id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to return asset: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, lib.ErrNotFound
	}

	return as.GetAsset(ctx, id)
}

// DeleteAsset removes an asset record. Its codes are never recycled: the
// sites' counters only move forward.
func (as *AssetService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	res, err := as.db.NewDelete().Model((*tables.Asset)(nil)).Where("a.id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}
