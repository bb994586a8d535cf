package lib

import "testing"

func TestNormalizeInvoiceNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FE-1020", "FE1020"},
		{"fe 1020", "FE1020"},
		{"fe1020", "FE1020"},
		{"  FE-1020  ", "FE1020"},
		{"FAC/2024/001", "FAC2024001"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeInvoiceNumber(tt.input); got != tt.want {
			t.Errorf("NormalizeInvoiceNumber(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Variants of the same number must collide under normalization; the dedup
// check depends on it.
func TestNormalizeInvoiceNumberEquivalence(t *testing.T) {
	variants := []string{"FE-1020", "fe 1020", "fe1020", "FE--1020"}
	base := NormalizeInvoiceNumber(variants[0])
	for _, v := range variants[1:] {
		if NormalizeInvoiceNumber(v) != base {
			t.Errorf("NormalizeInvoiceNumber(%q) = %q, want %q", v, NormalizeInvoiceNumber(v), base)
		}
	}
}
