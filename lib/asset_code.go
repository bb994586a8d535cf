package lib

import (
	"fmt"
	"regexp"
)

// Fixed-asset codes look like MSOA-001: a 4-character site prefix, a hyphen
// and the zero-padded sequence number. Past 999 the number simply grows.
var fixedAssetCodePattern = regexp.MustCompile(`^[A-Z0-9]{4}-\d{3,}$`)

// FormatFixedAssetCode renders a site prefix and sequence number as a code.
func FormatFixedAssetCode(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

// IsFixedAssetCode reports whether a string is a well-formed code.
func IsFixedAssetCode(code string) bool {
	return fixedAssetCodePattern.MatchString(code)
}
