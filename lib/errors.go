package lib

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Business-rule errors surfaced by the allocation core
var (
	// No 4-character candidate was free; the site must be renamed
	ErrPrefixCollision = errors.New("prefix collision")
	// The supplier already has an invoice with this number
	ErrDuplicateInvoiceNumber = errors.New("duplicate invoice number")
)

// Auth errors
var (
	ErrInvalidToken = errors.New("invalid token")
)

func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
