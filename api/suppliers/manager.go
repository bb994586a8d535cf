package suppliers

import (
	"activofijo_server/api/middleware"
	"activofijo_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SupplierRoutesManager struct {
	logger          *gecho.Logger
	supplierService *services.SupplierService
	mw              *middleware.Middleware
}

func NewSupplierRoutesManager(
	logger *gecho.Logger,
	supplierService *services.SupplierService,
	mw *middleware.Middleware,
) *SupplierRoutesManager {
	return &SupplierRoutesManager{
		logger:          logger,
		supplierService: supplierService,
		mw:              mw,
	}
}

func (sprm *SupplierRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/suppliers", func(r chi.Router) {
		r.Use(sprm.mw.UserAuthMiddleware)

		r.Get("/", sprm.ListSuppliers)
		r.Get("/{id}", sprm.GetSupplier)

		r.Group(func(r chi.Router) {
			r.Use(sprm.mw.WriteAuthMiddleware)
			r.Post("/", sprm.CreateSupplier)
			r.Put("/{id}", sprm.UpdateSupplier)
			r.Delete("/{id}", sprm.DeleteSupplier)
		})
	})
}
