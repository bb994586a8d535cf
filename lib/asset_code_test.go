package lib

import "testing"

func TestFormatFixedAssetCode(t *testing.T) {
	tests := []struct {
		prefix string
		seq    int64
		want   string
	}{
		{"MSOA", 1, "MSOA-001"},
		{"MSOA", 42, "MSOA-042"},
		{"SFSA", 999, "SFSA-999"},
		{"SFSA", 1000, "SFSA-1000"},
	}

	for _, tt := range tests {
		if got := FormatFixedAssetCode(tt.prefix, tt.seq); got != tt.want {
			t.Errorf("FormatFixedAssetCode(%q, %d) = %q, want %q", tt.prefix, tt.seq, got, tt.want)
		}
	}
}

func TestIsFixedAssetCode(t *testing.T) {
	valid := []string{"MSOA-001", "SFSA-1000", "AB12-003"}
	for _, code := range valid {
		if !IsFixedAssetCode(code) {
			t.Errorf("IsFixedAssetCode(%q) = false, want true", code)
		}
	}

	invalid := []string{"", "MSOA", "MSOA-", "MSOA-01", "msoa-001", "MSOAX-001", "MSOA_001"}
	for _, code := range invalid {
		if IsFixedAssetCode(code) {
			t.Errorf("IsFixedAssetCode(%q) = true, want false", code)
		}
	}
}
