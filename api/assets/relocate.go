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

// RelocateAsset handles POST /assets/{id}/relocate. The asset receives a new
// code from the destination site's counter and its old code goes into the
// history, all in one transaction. Relocating to the current site is a no-op.
func (arm *AssetRoutesManager) RelocateAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid asset id"),
			gecho.Send(),
		)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.RelocateAssetRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := arm.assetService.RelocateAsset(ctx, id, req.NewSiteId)
	if err != nil {
		handling.HandleServiceError(err, "Failed to relocate asset", arm.logger, w)
		return
	}

	msg := "Asset relocated successfully"
	if !result.Changed {
		msg = "Asset already at the requested site"
	}

	gecho.Success(w,
		gecho.WithMessage(msg),
		gecho.WithData(result),
		gecho.Send(),
	)
}

// AssignAsset handles POST /assets/{id}/assign
func (arm *AssetRoutesManager) AssignAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid asset id"),
			gecho.Send(),
		)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.AssignAssetRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	asset, err := arm.assetService.AssignAsset(ctx, id, req)
	if err != nil {
		handling.HandleServiceError(err, "Failed to assign asset", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Asset assigned successfully"),
		gecho.WithData(map[string]any{"asset": asset}),
		gecho.Send(),
	)
}

// ReturnAsset handles POST /assets/{id}/return, putting the asset back in
// storage and clearing the assignment snapshot.
func (arm *AssetRoutesManager) ReturnAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid asset id"),
			gecho.Send(),
		)
		return
	}

	asset, err := arm.assetService.ReturnAsset(ctx, id)
	if err != nil {
		handling.HandleServiceError(err, "Failed to return asset", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Asset returned to storage"),
		gecho.WithData(map[string]any{"asset": asset}),
		gecho.Send(),
	)
}
