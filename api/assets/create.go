package assets

import (
	"activofijo_server/handling"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateAsset handles POST /assets. The fixed asset code is assigned by the
// server from the site's counter and comes back in the created record.
func (arm *AssetRoutesManager) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := lib.ExtractAndValidateBody[structs.AssetRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	asset, err := arm.assetService.CreateAsset(ctx, req)
	if err != nil {
		handling.HandleServiceError(err, "Failed to create asset", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Asset created successfully"),
		gecho.WithData(map[string]any{"asset": asset}),
		gecho.Send(),
	)
}
