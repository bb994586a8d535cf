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
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

const siteListCacheKey = "sites:all"

// ErrSiteNameShape is returned when a site name has fewer than two meaningful
// words; prefixes are built from a "Company Site" shaped name.
var ErrSiteNameShape = errors.New("site name must contain at least a company and a site word")

type SiteService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewSiteService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *SiteService {
	return &SiteService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ListSites returns all sites ordered by name, served from cache when warm.
func (ss *SiteService) ListSites(ctx context.Context) ([]tables.Site, error) {
	var sites []tables.Site
	if ss.cacheService.GetJSON(ctx, siteListCacheKey, &sites) {
		return sites, nil
	}

	err := database.WithRetry(ctx, func() error {
		sites = nil // Reset on retry
		return ss.db.NewSelect().Model(&sites).Order("name ASC").Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sites: %w", lib.MapPgError(err))
	}

	ss.cacheService.SetJSON(ctx, siteListCacheKey, sites)
	return sites, nil
}

// GetSite fetches a single site by id.
func (ss *SiteService) GetSite(ctx context.Context, id uuid.UUID) (*tables.Site, error) {
	site := new(tables.Site)
	err := ss.db.NewSelect().Model(site).Where("s.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lib.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch site: %w", lib.MapPgError(err))
	}
	return site, nil
}

// UsedPrefixes returns the set of prefixes held by all sites except the one
// being edited (if any).
func (ss *SiteService) UsedPrefixes(ctx context.Context, excluding *uuid.UUID) (map[string]struct{}, error) {
	var prefixes []string
	query := ss.db.NewSelect().Model((*tables.Site)(nil)).Column("prefix")
	if excluding != nil {
		query = query.Where("s.id != ?", *excluding)
	}

	if err := query.Scan(ctx, &prefixes); err != nil {
		return nil, fmt.Errorf("failed to fetch used prefixes: %w", lib.MapPgError(err))
	}

	used := make(map[string]struct{}, len(prefixes))
	for _, prefix := range prefixes {
		used[prefix] = struct{}{}
	}
	return used, nil
}

// PreviewPrefix computes the prefix the given name would receive right now,
// without reserving anything. Used by the site form for live feedback.
func (ss *SiteService) PreviewPrefix(ctx context.Context, name string) (*structs.PrefixPreviewResponse, error) {
	used, err := ss.UsedPrefixes(ctx, nil)
	if err != nil {
		return nil, err
	}

	result := lib.PickUniquePrefix(name, used)
	return &structs.PrefixPreviewResponse{
		Prefix:     result.Prefix,
		Unique:     result.Unique,
		Note:       result.Note,
		Candidates: lib.GeneratePrefixCandidates(name),
	}, nil
}

// CreateSite allocates a unique prefix for the new site and persists it with
// the sequence counter at zero. The returned note, when non-empty, reports an
// automatic prefix adjustment the operator should see. When no candidate is
// free the save is blocked with ErrPrefixCollision; the system never silently
// assigns a duplicate prefix.
func (ss *SiteService) CreateSite(ctx context.Context, req *structs.SiteRequest) (*tables.Site, string, error) {
	if len(lib.TokenizeName(req.Name)) < 2 {
		return nil, "", ErrSiteNameShape
	}

	used, err := ss.UsedPrefixes(ctx, nil)
	if err != nil {
		return nil, "", err
	}

	result := lib.PickUniquePrefix(req.Name, used)
	if !result.Unique {
		ss.logger.Warn("Prefix allocation exhausted all candidates",
			gecho.Field("name", req.Name),
			gecho.Field("primary", result.Prefix))
		return nil, result.Note, lib.ErrPrefixCollision
	}

	site := &tables.Site{
		Id:        uuid.New(),
		Name:      req.Name,
		City:      req.City,
		Address:   req.Address,
		Prefix:    result.Prefix,
		AssetSeq:  0,
		CompanyId: req.CompanyId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err = database.WithRetry(ctx, func() error {
		_, insErr := ss.db.NewInsert().Model(site).Exec(ctx)
		return insErr
	})
	if err != nil {
		// The unique constraint on prefix backs up the in-memory check
		return nil, "", fmt.Errorf("failed to create site: %w", lib.MapPgError(err))
	}

	ss.cacheService.Invalidate(ctx, siteListCacheKey)
	ss.logger.Info("Site created",
		gecho.Field("site_id", site.Id),
		gecho.Field("prefix", site.Prefix))

	return site, result.Note, nil
}

// UpdateSite patches the descriptive fields of a site. The prefix and the
// sequence counter are not reachable from here: the prefix is fixed at
// creation and the counter belongs to the allocator.
func (ss *SiteService) UpdateSite(ctx context.Context, id uuid.UUID, req *structs.SiteUpdateRequest) (*tables.Site, error) {
	query := ss.db.NewUpdate().Model((*tables.Site)(nil)).Where("s.id = ?", id)

	if req.Name != nil {
		query = query.Set("name = ?", *req.Name)
	}
	if req.City != nil {
		query = query.Set("city = ?", *req.City)
	}
	if req.Address != nil {
		query = query.Set("address = ?", *req.Address)
	}
	if req.CompanyId != nil {
		query = query.Set("company_id = ?", *req.CompanyId)
	}
	query = query.Set("updated_at = ?", time.Now())

	res, err := query.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update site: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, lib.ErrNotFound
	}

	ss.cacheService.Invalidate(ctx, siteListCacheKey)
	return ss.GetSite(ctx, id)
}

// DeleteSite removes a site record.
func (ss *SiteService) DeleteSite(ctx context.Context, id uuid.UUID) error {
	res, err := ss.db.NewDelete().Model((*tables.Site)(nil)).Where("s.id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return lib.ErrNotFound
	}

	ss.cacheService.Invalidate(ctx, siteListCacheKey)
	return nil
}
