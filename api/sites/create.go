package sites

import (
	"activofijo_server/handling"
	"activofijo_server/lib"
	"activofijo_server/services"
	"activofijo_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateSite handles POST /sites. The prefix is allocated server side; when
// the first candidate was taken the response carries a note telling the
// operator which prefix was assigned instead.
func (srm *SiteRoutesManager) CreateSite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := lib.ExtractAndValidateBody[structs.SiteRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	site, note, err := srm.siteService.CreateSite(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSiteNameShape):
			gecho.BadRequest(w,
				gecho.WithMessage("El nombre debe tener al menos dos palabras (empresa y sede)"),
				gecho.Send(),
			)
		case errors.Is(err, lib.ErrPrefixCollision):
			gecho.Conflict(w,
				gecho.WithMessage(note),
				gecho.Send(),
			)
		default:
			handling.HandleServiceError(err, "Failed to create site", srm.logger, w)
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Site created successfully"),
		gecho.WithData(map[string]any{
			"site": site,
			"note": note,
		}),
		gecho.Send(),
	)
}

// PreviewPrefix handles POST /sites/preview-prefix, giving the site form live
// feedback on the prefix a name would receive.
func (srm *SiteRoutesManager) PreviewPrefix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := lib.ExtractAndValidateBody[structs.PrefixPreviewRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	preview, err := srm.siteService.PreviewPrefix(ctx, req.Name)
	if err != nil {
		handling.HandleServiceError(err, "Failed to preview prefix", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(preview),
		gecho.Send(),
	)
}
