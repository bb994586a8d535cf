package sites

import (
	"activofijo_server/api/middleware"
	"activofijo_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SiteRoutesManager struct {
	logger      *gecho.Logger
	siteService *services.SiteService
	mw          *middleware.Middleware
}

func NewSiteRoutesManager(
	logger *gecho.Logger,
	siteService *services.SiteService,
	mw *middleware.Middleware,
) *SiteRoutesManager {
	return &SiteRoutesManager{
		logger:      logger,
		siteService: siteService,
		mw:          mw,
	}
}

func (srm *SiteRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/sites", func(r chi.Router) {
		r.Use(srm.mw.UserAuthMiddleware)

		r.Get("/", srm.ListSites)
		r.Get("/{id}", srm.GetSite)

		r.Group(func(r chi.Router) {
			r.Use(srm.mw.WriteAuthMiddleware)
			r.Post("/", srm.CreateSite)
			r.Post("/preview-prefix", srm.PreviewPrefix)
			r.Patch("/{id}", srm.UpdateSite)
			r.Delete("/{id}", srm.DeleteSite)
		})
	})
}
