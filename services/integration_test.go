package services

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"activofijo_server/database"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"activofijo_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// setupTestDB connects to a dedicated TEST database and resets the schema.
// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	_ = godotenv.Load("../.env")

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test to protect live database")
	}

	// The connection layer reads discrete env vars, so split the URL up front
	parsed, err := url.Parse(dbURL)
	if err != nil {
		t.Fatalf("Invalid TEST_DATABASE_URL: %v", err)
	}
	os.Setenv("DB_HOST", parsed.Hostname())
	if parsed.Port() != "" {
		os.Setenv("DB_PORT", parsed.Port())
	}
	if parsed.User != nil {
		os.Setenv("DB_USER", parsed.User.Username())
		if password, ok := parsed.User.Password(); ok {
			os.Setenv("DB_PASSWORD", password)
		}
	}
	os.Setenv("DB_NAME", strings.TrimPrefix(parsed.Path, "/"))

	if err := database.Initialize(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	db := database.GetInstance()

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sites (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT NOT NULL,
			address TEXT NOT NULL,
			prefix TEXT NOT NULL UNIQUE,
			asset_seq BIGINT NOT NULL DEFAULT 0,
			company_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS assets (
			id UUID PRIMARY KEY,
			fixed_asset_id TEXT NOT NULL UNIQUE,
			site_id UUID NOT NULL,
			type TEXT NOT NULL,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			serial TEXT NOT NULL,
			internal_plate TEXT,
			status TEXT NOT NULL DEFAULT 'bodega',
			purchase_date TIMESTAMPTZ,
			cost_cents BIGINT,
			processor TEXT,
			ram TEXT,
			storage TEXT,
			os TEXT,
			notes TEXT,
			assigned_to_name TEXT,
			assigned_to_position TEXT,
			assigned_at TIMESTAMPTZ,
			previous_fixed_asset_ids TEXT[],
			moved_at TIMESTAMPTZ,
			moved_from_site_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS suppliers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			nit TEXT NOT NULL,
			contact_name TEXT,
			phone TEXT,
			email TEXT,
			category TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY,
			supplier_id UUID NOT NULL,
			number TEXT NOT NULL,
			site_id UUID NOT NULL,
			description TEXT NOT NULL,
			date TEXT NOT NULL,
			due_date TEXT,
			total_cents BIGINT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		);
		TRUNCATE TABLE invoices, suppliers, assets, sites;
	`)
	if err != nil {
		t.Fatalf("Failed to prepare test schema: %v", err)
	}

	return db
}

func testServices(t *testing.T) (*SiteService, *AssetService, *InvoiceService, *SupplierService) {
	t.Helper()
	db := setupTestDB(t)
	logger := gecho.NewDefaultLogger()
	cfg := structsConfigForTests()

	cacheService := NewCacheService(logger, cfg)
	siteService := NewSiteService(logger, db, cacheService)
	assetService := NewAssetService(logger, db)
	invoiceService := NewInvoiceService(logger, db)
	supplierService := NewSupplierService(logger, db)
	return siteService, assetService, invoiceService, supplierService
}

func mustCreateSite(t *testing.T, ss *SiteService, name string) *tables.Site {
	t.Helper()
	site, _, err := ss.CreateSite(context.Background(), &structs.SiteRequest{
		Name:    name,
		City:    "Bogotá",
		Address: "Calle 1 # 2-34",
	})
	if err != nil {
		t.Fatalf("Failed to create site %q: %v", name, err)
	}
	return site
}

func laptopRequest(siteId uuid.UUID, serial string) *structs.AssetRequest {
	return &structs.AssetRequest{
		SiteId: siteId,
		Type:   "laptop",
		Brand:  "Lenovo",
		Model:  "ThinkPad T14",
		Serial: serial,
	}
}

func TestAllocateFixedAssetCodeConcurrent(t *testing.T) {
	siteService, assetService, _, _ := testServices(t)
	ctx := context.Background()

	site := mustCreateSite(t, siteService, "Medicuc Soacha")

	const workers = 8
	codes := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i], errs[i] = assetService.AllocateFixedAssetCode(ctx, site.Id)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, workers)
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("allocation %d failed: %v", i, errs[i])
		}
		if _, dup := seen[codes[i]]; dup {
			t.Fatalf("duplicate code allocated: %s", codes[i])
		}
		seen[codes[i]] = struct{}{}
	}

	// Every code in {1..workers} must have been handed out exactly once
	for seq := int64(1); seq <= workers; seq++ {
		code := lib.FormatFixedAssetCode(site.Prefix, seq)
		if _, ok := seen[code]; !ok {
			t.Errorf("missing expected code %s", code)
		}
	}

	reloaded, err := siteService.GetSite(ctx, site.Id)
	if err != nil {
		t.Fatalf("Failed to reload site: %v", err)
	}
	if reloaded.AssetSeq != workers {
		t.Errorf("site counter = %d, want %d", reloaded.AssetSeq, workers)
	}
}

func TestRelocateAsset(t *testing.T) {
	siteService, assetService, _, _ := testServices(t)
	ctx := context.Background()

	origin := mustCreateSite(t, siteService, "Medicuc Soacha")
	dest := mustCreateSite(t, siteService, "Salud Familia Sabana")

	asset, err := assetService.CreateAsset(ctx, laptopRequest(origin.Id, "SN-001"))
	if err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}
	oldCode := asset.FixedAssetId

	result, err := assetService.RelocateAsset(ctx, asset.Id, dest.Id)
	if err != nil {
		t.Fatalf("Relocation failed: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected relocation to report a change")
	}

	moved, err := assetService.GetAsset(ctx, asset.Id)
	if err != nil {
		t.Fatalf("Failed to reload asset: %v", err)
	}
	if moved.SiteId != dest.Id {
		t.Errorf("asset site = %s, want %s", moved.SiteId, dest.Id)
	}
	if moved.FixedAssetId == oldCode {
		t.Error("asset kept its old code after relocation")
	}
	if !strings.HasPrefix(moved.FixedAssetId, dest.Prefix+"-") {
		t.Errorf("new code %s does not carry destination prefix %s", moved.FixedAssetId, dest.Prefix)
	}
	if len(moved.PreviousFixedAssetIds) != 1 || moved.PreviousFixedAssetIds[0] != oldCode {
		t.Errorf("code history = %v, want [%s]", moved.PreviousFixedAssetIds, oldCode)
	}
	if moved.MovedFromSiteId == nil || *moved.MovedFromSiteId != origin.Id {
		t.Errorf("moved_from_site_id = %v, want %s", moved.MovedFromSiteId, origin.Id)
	}

	// Relocating to the current site is a no-op and must not spend a number
	destBefore, _ := siteService.GetSite(ctx, dest.Id)
	again, err := assetService.RelocateAsset(ctx, asset.Id, dest.Id)
	if err != nil {
		t.Fatalf("Same-site relocation failed: %v", err)
	}
	if again.Changed {
		t.Error("same-site relocation reported a change")
	}
	destAfter, _ := siteService.GetSite(ctx, dest.Id)
	if destAfter.AssetSeq != destBefore.AssetSeq {
		t.Errorf("same-site relocation advanced the counter: %d -> %d", destBefore.AssetSeq, destAfter.AssetSeq)
	}
}

func TestSitePrefixImmutableOnRename(t *testing.T) {
	siteService, assetService, _, _ := testServices(t)
	ctx := context.Background()

	site := mustCreateSite(t, siteService, "Medicuc Soacha")
	asset, err := assetService.CreateAsset(ctx, laptopRequest(site.Id, "SN-002"))
	if err != nil {
		t.Fatalf("Failed to create asset: %v", err)
	}

	newName := "Medicuc Soacha Renovada"
	updated, err := siteService.UpdateSite(ctx, site.Id, &structs.SiteUpdateRequest{Name: &newName})
	if err != nil {
		t.Fatalf("Failed to rename site: %v", err)
	}

	if updated.Prefix != site.Prefix {
		t.Errorf("rename changed the prefix: %s -> %s", site.Prefix, updated.Prefix)
	}

	reloaded, _ := assetService.GetAsset(ctx, asset.Id)
	if reloaded.FixedAssetId != asset.FixedAssetId {
		t.Errorf("rename changed an issued code: %s -> %s", asset.FixedAssetId, reloaded.FixedAssetId)
	}
}

func TestCreateSitePrefixCollisionFallsBack(t *testing.T) {
	siteService, _, _, _ := testServices(t)
	ctx := context.Background()

	first := mustCreateSite(t, siteService, "Medicuc Soacha")

	// Same name shape: primary candidate collides, a fallback must win
	second, note, err := siteService.CreateSite(ctx, &structs.SiteRequest{
		Name:    "Medicuc Soacha",
		City:    "Soacha",
		Address: "Carrera 7 # 10-20",
	})
	if err != nil {
		t.Fatalf("Failed to create colliding site: %v", err)
	}
	if second.Prefix == first.Prefix {
		t.Errorf("both sites got prefix %s", first.Prefix)
	}
	if note == "" {
		t.Error("expected an adjustment note for the operator")
	}
}

func TestInvoiceDuplicateNumberRejected(t *testing.T) {
	siteService, _, invoiceService, supplierService := testServices(t)
	ctx := context.Background()

	site := mustCreateSite(t, siteService, "Medicuc Soacha")
	supplier, err := supplierService.CreateSupplier(ctx, &structs.SupplierRequest{
		Name: "TecnoGlobal SAS",
		NIT:  "900123456-7",
	})
	if err != nil {
		t.Fatalf("Failed to create supplier: %v", err)
	}

	invoice := &structs.InvoiceRequest{
		SupplierId:  supplier.Id,
		Number:      "FE-1020",
		SiteId:      site.Id,
		Description: "Compra de equipos",
		Date:        "2026-08-01",
		TotalCents:  250000000,
	}
	if _, err := invoiceService.CreateInvoice(ctx, invoice); err != nil {
		t.Fatalf("Failed to create invoice: %v", err)
	}

	// Same number in a different spelling must be rejected
	dup := *invoice
	dup.Number = "fe 1020"
	if _, err := invoiceService.CreateInvoice(ctx, &dup); err == nil {
		t.Fatal("expected duplicate invoice number to be rejected")
	} else if !errors.Is(err, lib.ErrDuplicateInvoiceNumber) {
		t.Fatalf("unexpected error: %v", err)
	}

	// A deleted invoice frees its number
	var existing tables.Invoice
	if err := invoiceService.db.NewSelect().Model(&existing).Where("i.number = ?", "FE-1020").Scan(ctx); err != nil {
		t.Fatalf("Failed to load invoice: %v", err)
	}
	if err := invoiceService.DeleteInvoice(ctx, existing.Id); err != nil {
		t.Fatalf("Failed to delete invoice: %v", err)
	}
	if _, err := invoiceService.CreateInvoice(ctx, &dup); err != nil {
		t.Fatalf("number not freed after delete: %v", err)
	}
}

func structsConfigForTests() *structs.Config {
	return &structs.Config{
		Cache: &structs.CacheConfig{
			// Unreachable on purpose; cache misses fall through to the database
			Address: "localhost:1",
		},
	}
}
