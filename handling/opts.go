package handling

import (
	"activofijo_server/services"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// ParseAssetListOptions parses HTTP query parameters into AssetListOptions
func ParseAssetListOptions(r *http.Request) (*services.AssetListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.AssetListOptions{}, nil
	}

	opts := &services.AssetListOptions{}
	var err error
	var valInt int

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if siteId := query.Get("site_id"); siteId != "" {
		id, parseErr := uuid.Parse(siteId)
		if parseErr != nil {
			return nil, parseErr
		}
		opts.SiteId = &id
	}

	if status := query.Get("status"); status != "" {
		opts.Status = status
	}

	if assetType := query.Get("type"); assetType != "" {
		opts.Type = assetType
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	return opts, nil
}

// ParseInvoiceListOptions parses HTTP query parameters into InvoiceListOptions
func ParseInvoiceListOptions(r *http.Request) (*services.InvoiceListOptions, error) {
	query := r.URL.Query()

	if len(query) == 0 {
		return &services.InvoiceListOptions{}, nil
	}

	opts := &services.InvoiceListOptions{}
	var err error
	var valInt int

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if supplierId := query.Get("supplier_id"); supplierId != "" {
		id, parseErr := uuid.Parse(supplierId)
		if parseErr != nil {
			return nil, parseErr
		}
		opts.SupplierId = &id
	}

	if siteId := query.Get("site_id"); siteId != "" {
		id, parseErr := uuid.Parse(siteId)
		if parseErr != nil {
			return nil, parseErr
		}
		opts.SiteId = &id
	}

	if status := query.Get("status"); status != "" {
		opts.Status = status
	}

	return opts, nil
}

// ParseActivityListOptions parses HTTP query parameters into ActivityListOptions
func ParseActivityListOptions(r *http.Request) (*services.ActivityListOptions, error) {
	query := r.URL.Query()

	if len(query) == 0 {
		return &services.ActivityListOptions{}, nil
	}

	opts := &services.ActivityListOptions{}
	var err error
	var valInt int

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if siteId := query.Get("site_id"); siteId != "" {
		id, parseErr := uuid.Parse(siteId)
		if parseErr != nil {
			return nil, parseErr
		}
		opts.SiteId = &id
	}

	if assetId := query.Get("asset_id"); assetId != "" {
		id, parseErr := uuid.Parse(assetId)
		if parseErr != nil {
			return nil, parseErr
		}
		opts.AssetId = &id
	}

	return opts, nil
}
