package services

import (
	"activofijo_server/database"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"activofijo_server/structs/tables"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type SupplierService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewSupplierService(logger *gecho.Logger, db *database.DB) *SupplierService {
	return &SupplierService{
		logger: logger,
		db:     db,
	}
}

func (sps *SupplierService) ListSuppliers(ctx context.Context) ([]tables.Supplier, error) {
	var suppliers []tables.Supplier
	err := database.WithRetry(ctx, func() error {
		suppliers = nil // Reset on retry
		return sps.db.NewSelect().Model(&suppliers).Order("name ASC").Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suppliers: %w", lib.MapPgError(err))
	}
	return suppliers, nil
}

func (sps *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*tables.Supplier, error) {
	supplier := new(tables.Supplier)
	err := sps.db.NewSelect().Model(supplier).Where("sp.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lib.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch supplier: %w", lib.MapPgError(err))
	}
	return supplier, nil
}

func (sps *SupplierService) CreateSupplier(ctx context.Context, req *structs.SupplierRequest) (*tables.Supplier, error) {
	supplier := &tables.Supplier{
		Id:          uuid.New(),
		Name:        req.Name,
		NIT:         req.NIT,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Category:    req.Category,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := database.WithRetry(ctx, func() error {
		_, insErr := sps.db.NewInsert().Model(supplier).Exec(ctx)
		return insErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", lib.MapPgError(err))
	}

	sps.logger.Info("Supplier created", gecho.Field("supplier_id", supplier.Id))
	return supplier, nil
}

func (sps *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, req *structs.SupplierRequest) (*tables.Supplier, error) {
	res, err := sps.db.NewUpdate().Model((*tables.Supplier)(nil)).
		Set("name = ?", req.Name).
		Set("nit = ?", req.NIT).
		Set("contact_name = ?", req.ContactName).
		Set("phone = ?", req.Phone).
		Set("email = ?", req.Email).
		Set("category = ?", req.Category).
		Set("updated_at = ?", time.Now()).
		Where("sp.id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, lib.ErrNotFound
	}

	return sps.GetSupplier(ctx, id)
}

func (sps *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	res, err := sps.db.NewDelete().Model((*tables.Supplier)(nil)).Where("sp.id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}
