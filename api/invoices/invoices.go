package invoices

import (
	"activofijo_server/handling"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListInvoices handles GET /invoices with filtering, pagination and totals
func (irm *InvoiceRoutesManager) ListInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseInvoiceListOptions(r)
	if err != nil {
		irm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := irm.invoiceService.ListInvoices(ctx, opts)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch invoices", irm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"invoices":   result.Invoices,
			"pagination": result.Pagination,
			"totals":     result.Totals,
			"count":      len(result.Invoices),
		}),
		gecho.Send(),
	)
}

// GetInvoice handles GET /invoices/{id}
func (irm *InvoiceRoutesManager) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid invoice id"),
			gecho.Send(),
		)
		return
	}

	invoice, err := irm.invoiceService.GetInvoice(ctx, id)
	if err != nil {
		handling.HandleServiceError(err, "Invoice not found", irm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"invoice": invoice}),
		gecho.Send(),
	)
}

// CreateInvoice handles POST /invoices. The invoice number is checked against
// the supplier's existing invoices in normalized form before saving.
func (irm *InvoiceRoutesManager) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := lib.ExtractAndValidateBody[structs.InvoiceRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	invoice, err := irm.invoiceService.CreateInvoice(ctx, req)
	if err != nil {
		if errors.Is(err, lib.ErrDuplicateInvoiceNumber) {
			gecho.Conflict(w,
				gecho.WithMessage("Ya existe una factura con ese número para este proveedor"),
				gecho.Send(),
			)
			return
		}
		handling.HandleServiceError(err, "Failed to create invoice", irm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Invoice created successfully"),
		gecho.WithData(map[string]any{"invoice": invoice}),
		gecho.Send(),
	)
}

// UpdateInvoice handles PATCH /invoices/{id}
func (irm *InvoiceRoutesManager) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid invoice id"),
			gecho.Send(),
		)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.InvoiceUpdateRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	invoice, err := irm.invoiceService.UpdateInvoice(ctx, id, req)
	if err != nil {
		if errors.Is(err, lib.ErrDuplicateInvoiceNumber) {
			gecho.Conflict(w,
				gecho.WithMessage("Ya existe una factura con ese número para este proveedor"),
				gecho.Send(),
			)
			return
		}
		handling.HandleServiceError(err, "Failed to update invoice", irm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Invoice updated successfully"),
		gecho.WithData(map[string]any{"invoice": invoice}),
		gecho.Send(),
	)
}

// DeleteInvoice handles DELETE /invoices/{id} (soft delete)
func (irm *InvoiceRoutesManager) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid invoice id"),
			gecho.Send(),
		)
		return
	}

	if err := irm.invoiceService.DeleteInvoice(ctx, id); err != nil {
		handling.HandleServiceError(err, "Failed to delete invoice", irm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Invoice deleted successfully"),
		gecho.Send(),
	)
}
