package lib

import "strings"

// NormalizeInvoiceNumber reduces an invoice number to the form used for
// duplicate comparison: uppercase, alphanumerics only. "FE-1020", "fe 1020"
// and "fe1020" all normalize to "FE1020".
func NormalizeInvoiceNumber(number string) string {
	return keepAlphanumeric(strings.ToUpper(strings.TrimSpace(number)))
}
