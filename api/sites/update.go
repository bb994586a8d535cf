package sites

import (
	"activofijo_server/handling"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UpdateSite handles PATCH /sites/{id}. Only descriptive fields can change;
// renaming a site never touches its prefix or issued codes.
func (srm *SiteRoutesManager) UpdateSite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid site id"),
			gecho.Send(),
		)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.SiteUpdateRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	site, err := srm.siteService.UpdateSite(ctx, id, req)
	if err != nil {
		handling.HandleServiceError(err, "Failed to update site", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Site updated successfully"),
		gecho.WithData(map[string]any{"site": site}),
		gecho.Send(),
	)
}

// DeleteSite handles DELETE /sites/{id}
func (srm *SiteRoutesManager) DeleteSite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid site id"),
			gecho.Send(),
		)
		return
	}

	if err := srm.siteService.DeleteSite(ctx, id); err != nil {
		handling.HandleServiceError(err, "Failed to delete site", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Site deleted successfully"),
		gecho.Send(),
	)
}
