package invoices

import (
	"activofijo_server/api/middleware"
	"activofijo_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type InvoiceRoutesManager struct {
	logger         *gecho.Logger
	invoiceService *services.InvoiceService
	mw             *middleware.Middleware
}

func NewInvoiceRoutesManager(
	logger *gecho.Logger,
	invoiceService *services.InvoiceService,
	mw *middleware.Middleware,
) *InvoiceRoutesManager {
	return &InvoiceRoutesManager{
		logger:         logger,
		invoiceService: invoiceService,
		mw:             mw,
	}
}

func (irm *InvoiceRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/invoices", func(r chi.Router) {
		r.Use(irm.mw.UserAuthMiddleware)

		r.Get("/", irm.ListInvoices)
		r.Get("/{id}", irm.GetInvoice)

		r.Group(func(r chi.Router) {
			r.Use(irm.mw.WriteAuthMiddleware)
			r.Post("/", irm.CreateInvoice)
			r.Patch("/{id}", irm.UpdateInvoice)
			r.Delete("/{id}", irm.DeleteInvoice)
		})
	})
}
