package assets

import (
	"activofijo_server/api/middleware"
	"activofijo_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AssetRoutesManager struct {
	logger       *gecho.Logger
	assetService *services.AssetService
	mw           *middleware.Middleware
}

func NewAssetRoutesManager(
	logger *gecho.Logger,
	assetService *services.AssetService,
	mw *middleware.Middleware,
) *AssetRoutesManager {
	return &AssetRoutesManager{
		logger:       logger,
		assetService: assetService,
		mw:           mw,
	}
}

func (arm *AssetRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/assets", func(r chi.Router) {
		r.Use(arm.mw.UserAuthMiddleware)

		r.Get("/", arm.ListAssets)
		r.Get("/{id}", arm.GetAsset)

		r.Group(func(r chi.Router) {
			r.Use(arm.mw.WriteAuthMiddleware)
			r.Post("/", arm.CreateAsset)
			r.Patch("/{id}", arm.UpdateAsset)
			r.Post("/{id}/relocate", arm.RelocateAsset)
			r.Post("/{id}/assign", arm.AssignAsset)
			r.Post("/{id}/return", arm.ReturnAsset)
			r.Delete("/{id}", arm.DeleteAsset)
		})
	})
}
