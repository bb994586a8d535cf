package database

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 200
)

// Pagination describes the window a list query returned
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate applies limit/offset to a select query and scans the page into
// dest together with the total row count.
func Paginate[T any](ctx context.Context, query *bun.SelectQuery, page, pageSize int) ([]T, Pagination, error) {
	start := time.Now()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	var data []T
	var total int

	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry
		var scanErr error
		total, scanErr = query.Limit(pageSize).Offset((page - 1) * pageSize).ScanAndCount(ctx, &data)
		return scanErr
	})
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to execute paginated query: %w (took %v)", err, time.Since(start))
	}

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return data, Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
