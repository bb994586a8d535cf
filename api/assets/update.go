package assets

import (
	"activofijo_server/handling"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UpdateAsset handles PATCH /assets/{id}. Descriptive fields only; the code
// and the site affiliation change exclusively through relocation.
func (arm *AssetRoutesManager) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid asset id"),
			gecho.Send(),
		)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.AssetUpdateRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	asset, err := arm.assetService.UpdateAsset(ctx, id, req)
	if err != nil {
		handling.HandleServiceError(err, "Failed to update asset", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Asset updated successfully"),
		gecho.WithData(map[string]any{"asset": asset}),
		gecho.Send(),
	)
}

// DeleteAsset handles DELETE /assets/{id}
func (arm *AssetRoutesManager) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid asset id"),
			gecho.Send(),
		)
		return
	}

	if err := arm.assetService.DeleteAsset(ctx, id); err != nil {
		handling.HandleServiceError(err, "Failed to delete asset", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Asset deleted successfully"),
		gecho.Send(),
	)
}
