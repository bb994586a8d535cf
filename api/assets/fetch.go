package assets

import (
	"activofijo_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListAssets handles GET /assets with filtering and pagination
func (arm *AssetRoutesManager) ListAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseAssetListOptions(r)
	if err != nil {
		arm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := arm.assetService.ListAssets(ctx, opts)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch assets", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"assets":     result.Assets,
			"pagination": result.Pagination,
			"count":      len(result.Assets),
		}),
		gecho.Send(),
	)
}

// GetAsset handles GET /assets/{id}
func (arm *AssetRoutesManager) GetAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid asset id"),
			gecho.Send(),
		)
		return
	}

	asset, err := arm.assetService.GetAsset(ctx, id)
	if err != nil {
		handling.HandleServiceError(err, "Asset not found", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"asset": asset}),
		gecho.Send(),
	)
}
