package suppliers

import (
	"activofijo_server/handling"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListSuppliers handles GET /suppliers
func (sprm *SupplierRoutesManager) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	suppliers, err := sprm.supplierService.ListSuppliers(ctx)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch suppliers", sprm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"suppliers": suppliers,
			"count":     len(suppliers),
		}),
		gecho.Send(),
	)
}

// GetSupplier handles GET /suppliers/{id}
func (sprm *SupplierRoutesManager) GetSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid supplier id"),
			gecho.Send(),
		)
		return
	}

	supplier, err := sprm.supplierService.GetSupplier(ctx, id)
	if err != nil {
		handling.HandleServiceError(err, "Supplier not found", sprm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"supplier": supplier}),
		gecho.Send(),
	)
}

// CreateSupplier handles POST /suppliers
func (sprm *SupplierRoutesManager) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := lib.ExtractAndValidateBody[structs.SupplierRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	supplier, err := sprm.supplierService.CreateSupplier(ctx, req)
	if err != nil {
		handling.HandleServiceError(err, "Failed to create supplier", sprm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Supplier created successfully"),
		gecho.WithData(map[string]any{"supplier": supplier}),
		gecho.Send(),
	)
}

// UpdateSupplier handles PUT /suppliers/{id}
func (sprm *SupplierRoutesManager) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid supplier id"),
			gecho.Send(),
		)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.SupplierRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	supplier, err := sprm.supplierService.UpdateSupplier(ctx, id, req)
	if err != nil {
		handling.HandleServiceError(err, "Failed to update supplier", sprm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Supplier updated successfully"),
		gecho.WithData(map[string]any{"supplier": supplier}),
		gecho.Send(),
	)
}

// DeleteSupplier handles DELETE /suppliers/{id}
func (sprm *SupplierRoutesManager) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid supplier id"),
			gecho.Send(),
		)
		return
	}

	if err := sprm.supplierService.DeleteSupplier(ctx, id); err != nil {
		handling.HandleServiceError(err, "Failed to delete supplier", sprm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Supplier deleted successfully"),
		gecho.Send(),
	)
}
