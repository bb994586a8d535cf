package activities

import (
	"activofijo_server/api/middleware"
	"activofijo_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ActivityRoutesManager struct {
	logger          *gecho.Logger
	activityService *services.ActivityService
	mw              *middleware.Middleware
}

func NewActivityRoutesManager(
	logger *gecho.Logger,
	activityService *services.ActivityService,
	mw *middleware.Middleware,
) *ActivityRoutesManager {
	return &ActivityRoutesManager{
		logger:          logger,
		activityService: activityService,
		mw:              mw,
	}
}

func (acrm *ActivityRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/activities", func(r chi.Router) {
		r.Use(acrm.mw.UserAuthMiddleware)

		r.Get("/", acrm.ListActivities)

		r.Group(func(r chi.Router) {
			r.Use(acrm.mw.WriteAuthMiddleware)
			r.Post("/", acrm.CreateActivity)
			r.Delete("/{id}", acrm.DeleteActivity)
		})
	})
}
