package sites

import (
	"activofijo_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListSites handles GET /sites
func (srm *SiteRoutesManager) ListSites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sites, err := srm.siteService.ListSites(ctx)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch sites", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"sites": sites,
			"count": len(sites),
		}),
		gecho.Send(),
	)
}

// GetSite handles GET /sites/{id}
func (srm *SiteRoutesManager) GetSite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid site id"),
			gecho.Send(),
		)
		return
	}

	site, err := srm.siteService.GetSite(ctx, id)
	if err != nil {
		handling.HandleServiceError(err, "Site not found", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"site": site}),
		gecho.Send(),
	)
}
