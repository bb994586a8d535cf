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
	"github.com/uptrace/bun"
)

// ErrInvalidInvoiceNumber is returned when an invoice number normalizes to
// nothing (no alphanumeric characters at all).
var ErrInvalidInvoiceNumber = errors.New("invalid invoice number")

type InvoiceService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewInvoiceService(logger *gecho.Logger, db *database.DB) *InvoiceService {
	return &InvoiceService{
		logger: logger,
		db:     db,
	}
}

// IsDuplicateInvoiceNumber reports whether the supplier already has a
// non-deleted invoice whose normalized number matches the candidate. The
// invoice being edited, if any, is excluded from the scan. This is an
// application-layer check-then-act; two simultaneous saves can both pass it,
// which is an accepted trade-off since no counter is at stake.
func (is *InvoiceService) IsDuplicateInvoiceNumber(ctx context.Context, supplierId uuid.UUID, number string, excluding *uuid.UUID) (bool, error) {
	normalized := lib.NormalizeInvoiceNumber(number)
	if normalized == "" {
		return false, ErrInvalidInvoiceNumber
	}

	var numbers []string
	query := is.db.NewSelect().Model((*tables.Invoice)(nil)).
		Column("number").
		Where("i.supplier_id = ?", supplierId).
		Where("i.deleted_at IS NULL")
	if excluding != nil {
		query = query.Where("i.id != ?", *excluding)
	}

	if err := query.Scan(ctx, &numbers); err != nil {
		return false, fmt.Errorf("failed to scan invoice numbers: %w", lib.MapPgError(err))
	}

	for _, existing := range numbers {
		if lib.NormalizeInvoiceNumber(existing) == normalized {
			return true, nil
		}
	}
	return false, nil
}

// CreateInvoice validates the number against the supplier's existing
// invoices before persisting anything.
func (is *InvoiceService) CreateInvoice(ctx context.Context, req *structs.InvoiceRequest) (*tables.Invoice, error) {
	duplicate, err := is.IsDuplicateInvoiceNumber(ctx, req.SupplierId, req.Number, nil)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, lib.ErrDuplicateInvoiceNumber
	}

	status := tables.InvoiceStatusPending
	if req.Status != "" {
		status = tables.InvoiceStatus(req.Status)
	}

	invoice := &tables.Invoice{
		Id:          uuid.New(),
		SupplierId:  req.SupplierId,
		Number:      req.Number,
		SiteId:      req.SiteId,
		Description: req.Description,
		Date:        req.Date,
		DueDate:     req.DueDate,
		TotalCents:  req.TotalCents,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err = database.WithRetry(ctx, func() error {
		_, insErr := is.db.NewInsert().Model(invoice).Exec(ctx)
		return insErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", lib.MapPgError(err))
	}

	is.logger.Info("Invoice created",
		gecho.Field("invoice_id", invoice.Id),
		gecho.Field("supplier_id", invoice.SupplierId))
	return invoice, nil
}

// UpdateInvoice patches an invoice; a changed number is re-checked for
// duplicates against the supplier's other invoices.
func (is *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, req *structs.InvoiceUpdateRequest) (*tables.Invoice, error) {
	current, err := is.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		duplicate, dupErr := is.IsDuplicateInvoiceNumber(ctx, current.SupplierId, *req.Number, &id)
		if dupErr != nil {
			return nil, dupErr
		}
		if duplicate {
			return nil, lib.ErrDuplicateInvoiceNumber
		}
	}

	query := is.db.NewUpdate().Model((*tables.Invoice)(nil)).Where("i.id = ?", id)

	if req.Number != nil {
		query = query.Set("number = ?", *req.Number)
	}
	if req.SiteId != nil {
		query = query.Set("site_id = ?", *req.SiteId)
	}
	if req.Description != nil {
		query = query.Set("description = ?", *req.Description)
	}
	if req.Date != nil {
		query = query.Set("date = ?", *req.Date)
	}
	if req.DueDate != nil {
		query = query.Set("due_date = ?", *req.DueDate)
	}
	if req.TotalCents != nil {
		query = query.Set("total_cents = ?", *req.TotalCents)
	}
	if req.Status != nil {
		query = query.Set("status = ?", *req.Status)
	}
	query = query.Set("updated_at = ?", time.Now())

	res, err := query.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, lib.ErrNotFound
	}

	return is.GetInvoice(ctx, id)
}

// GetInvoice fetches a single non-deleted invoice by id.
func (is *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*tables.Invoice, error) {
	invoice := new(tables.Invoice)
	err := is.db.NewSelect().Model(invoice).
		Where("i.id = ?", id).
		Where("i.deleted_at IS NULL").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lib.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch invoice: %w", lib.MapPgError(err))
	}
	return invoice, nil
}

// InvoiceListOptions contains filtering and pagination options for invoice queries
type InvoiceListOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	SupplierId *uuid.UUID `json:"supplier_id,omitempty"`
	SiteId     *uuid.UUID `json:"site_id,omitempty"`
	Status     string     `json:"status,omitempty"`
}

// InvoiceTotals aggregates the listed invoices by payment status
type InvoiceTotals struct {
	TotalInvoicedCents int64 `json:"total_invoiced_cents"`
	TotalPaidCents     int64 `json:"total_paid_cents"`
	TotalPendingCents  int64 `json:"total_pending_cents"`
}

// InvoiceListResult wraps the invoice list response with metadata
type InvoiceListResult struct {
	Invoices   []tables.Invoice    `json:"invoices"`
	Pagination database.Pagination `json:"pagination"`
	Totals     InvoiceTotals       `json:"totals"`
}

// ListInvoices retrieves non-deleted invoices with filters, newest first,
// plus paid/pending totals over the filtered set.
func (is *InvoiceService) ListInvoices(ctx context.Context, opts *InvoiceListOptions) (*InvoiceListResult, error) {
	if opts == nil {
		opts = &InvoiceListOptions{}
	}

	query := is.db.NewSelect().Model((*tables.Invoice)(nil)).
		Where("i.deleted_at IS NULL").
		Order("date DESC")
	query = is.applyFilters(query, opts)

	invoices, pagination, err := database.Paginate[tables.Invoice](ctx, query, opts.Page, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", lib.MapPgError(err))
	}

	totals, err := is.totals(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &InvoiceListResult{
		Invoices:   invoices,
		Pagination: pagination,
		Totals:     totals,
	}, nil
}

func (is *InvoiceService) applyFilters(query *bun.SelectQuery, opts *InvoiceListOptions) *bun.SelectQuery {
	if opts.SupplierId != nil {
		query = query.Where("i.supplier_id = ?", *opts.SupplierId)
	}
	if opts.SiteId != nil {
		query = query.Where("i.site_id = ?", *opts.SiteId)
	}
	if opts.Status != "" {
		query = query.Where("i.status = ?", opts.Status)
	}
	return query
}

func (is *InvoiceService) totals(ctx context.Context, opts *InvoiceListOptions) (InvoiceTotals, error) {
	var row struct {
		Invoiced int64 `bun:"invoiced"`
		Paid     int64 `bun:"paid"`
	}

	query := is.db.NewSelect().Model((*tables.Invoice)(nil)).
		ColumnExpr("COALESCE(SUM(total_cents), 0) AS invoiced").
		ColumnExpr("COALESCE(SUM(total_cents) FILTER (WHERE status = 'paid'), 0) AS paid").
		Where("i.deleted_at IS NULL")
	query = is.applyFilters(query, opts)

	if err := query.Scan(ctx, &row); err != nil {
		return InvoiceTotals{}, fmt.Errorf("failed to aggregate invoice totals: %w", lib.MapPgError(err))
	}

	return InvoiceTotals{
		TotalInvoicedCents: row.Invoiced,
		TotalPaidCents:     row.Paid,
		TotalPendingCents:  row.Invoiced - row.Paid,
	}, nil
}

// DeleteInvoice soft-deletes an invoice. Deleted invoices no longer count in
// the duplicate-number check, so their numbers become reusable.
func (is *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	res, err := is.db.NewUpdate().Model((*tables.Invoice)(nil)).
		Set("deleted_at = ?", time.Now()).
		Where("i.id = ?", id).
		Where("i.deleted_at IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", lib.MapPgError(err))
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}
