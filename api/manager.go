package api

import (
	"activofijo_server/api/activities"
	"activofijo_server/api/assets"
	"activofijo_server/api/health"
	"activofijo_server/api/invoices"
	"activofijo_server/api/middleware"
	"activofijo_server/api/sites"
	"activofijo_server/api/suppliers"
	"activofijo_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	siteRoutes     *sites.SiteRoutesManager
	assetRoutes    *assets.AssetRoutesManager
	supplierRoutes *suppliers.SupplierRoutesManager
	invoiceRoutes  *invoices.InvoiceRoutesManager
	activityRoutes *activities.ActivityRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		siteRoutes:     sites.NewSiteRoutesManager(logger, sm.SiteService, mw),
		assetRoutes:    assets.NewAssetRoutesManager(logger, sm.AssetService, mw),
		supplierRoutes: suppliers.NewSupplierRoutesManager(logger, sm.SupplierService, mw),
		invoiceRoutes:  invoices.NewInvoiceRoutesManager(logger, sm.InvoiceService, mw),
		activityRoutes: activities.NewActivityRoutesManager(logger, sm.ActivityService, mw),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.siteRoutes.RegisterRoutes(r)
	rm.assetRoutes.RegisterRoutes(r)
	rm.supplierRoutes.RegisterRoutes(r)
	rm.invoiceRoutes.RegisterRoutes(r)
	rm.activityRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
