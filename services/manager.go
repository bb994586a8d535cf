package services

import (
	"activofijo_server/database"
	"activofijo_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService    *CacheService
	HealthService   *HealthService
	SiteService     *SiteService
	AssetService    *AssetService
	SupplierService *SupplierService
	InvoiceService  *InvoiceService
	ActivityService *ActivityService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	siteService := NewSiteService(logger, db, cacheService)
	assetService := NewAssetService(logger, db)
	supplierService := NewSupplierService(logger, db)
	invoiceService := NewInvoiceService(logger, db)
	activityService := NewActivityService(logger, db)

	return &ServiceManager{
		CacheService:    cacheService,
		HealthService:   healthService,
		SiteService:     siteService,
		AssetService:    assetService,
		SupplierService: supplierService,
		InvoiceService:  invoiceService,
		ActivityService: activityService,
	}
}
