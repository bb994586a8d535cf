package lib

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Words ignored when abbreviating a site name into a prefix
var prefixStopWords = map[string]struct{}{
	"DE": {}, "DEL": {}, "LA": {}, "LAS": {}, "LOS": {},
	"Y": {}, "E": {}, "EN": {}, "EL": {}, "AL": {},
}

var prefixPattern = regexp.MustCompile(`^[A-Z0-9]{4}$`)

// PrefixResult is the outcome of picking a prefix for a site name.
// Unique=false means every candidate collided and the save must be blocked.
type PrefixResult struct {
	Prefix string `json:"prefix"`
	Unique bool   `json:"unique"`
	Note   string `json:"note,omitempty"`
}

// TokenizeName normalizes a free-text site name into its meaningful words:
// diacritics stripped, uppercased, non-alphanumerics removed, stop words
// dropped. Order and duplicates are preserved.
func TokenizeName(name string) []string {
	upper := strings.ToUpper(stripDiacritics(name))
	fields := strings.Fields(upper)

	tokens := make([]string, 0, len(fields))
	for _, word := range fields {
		word = keepAlphanumeric(word)
		if word == "" {
			continue
		}
		if _, stop := prefixStopWords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// GeneratePrefixCandidates produces the ordered, de-duplicated list of
// 4-character prefix candidates for a site name, best guess first. The
// primary candidate is the natural abbreviation (initials of the company
// words plus the start of the site word); the fallback family widens the
// company contribution one character at a time.
func GeneratePrefixCandidates(name string) []string {
	tokens := TokenizeName(name)
	if len(tokens) == 0 {
		return []string{"XXXX"}
	}

	candidates := []string{generatePrimaryPrefix(tokens)}

	if len(tokens) == 2 {
		// Company + site: widen the company part from 1 to all 4 characters
		company, site := tokens[0], tokens[1]
		for companyLen := 1; companyLen <= 4; companyLen++ {
			siteLen := max(0, 4-companyLen)
			candidates = append(candidates, NormalizePrefix(head(company, companyLen)+head(site, siteLen)))
		}
	} else {
		// Fall back to combinations of the first and last tokens
		first, last := tokens[0], tokens[len(tokens)-1]
		for companyLen := 1; companyLen <= 3; companyLen++ {
			siteLen := max(0, 4-companyLen)
			candidates = append(candidates, NormalizePrefix(head(first, companyLen)+head(last, siteLen)))
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		if prefixPattern.MatchString(candidate) {
			result = append(result, candidate)
		}
	}
	return result
}

// PickUniquePrefix scans the candidates in order and returns the first one
// not present in used. When the winner differs from the primary candidate an
// informational note reports the automatic adjustment. When every candidate
// is taken the primary is returned flagged non-unique; the caller must block
// the save rather than persist a duplicate.
func PickUniquePrefix(name string, used map[string]struct{}) PrefixResult {
	candidates := GeneratePrefixCandidates(name)
	base := "XXXX"
	if len(candidates) > 0 {
		base = candidates[0]
	}

	for _, candidate := range candidates {
		if _, taken := used[candidate]; taken {
			continue
		}
		note := ""
		if candidate != base {
			note = fmt.Sprintf("Prefijo ajustado automáticamente: %s ya existe, se usará %s.", base, candidate)
		}
		return PrefixResult{Prefix: candidate, Unique: true, Note: note}
	}

	return PrefixResult{
		Prefix: base,
		Unique: false,
		Note:   fmt.Sprintf("No se pudo generar un prefijo único (ej: %s). Cambia el nombre o contacta al administrador.", base),
	}
}

// NormalizePrefix uppercases, strips non-alphanumerics and forces the value
// to exactly 4 characters, right-padding with X.
func NormalizePrefix(value string) string {
	cleaned := keepAlphanumeric(strings.ToUpper(value))
	for len(cleaned) < 4 {
		cleaned += "X"
	}
	return cleaned[:4]
}

func generatePrimaryPrefix(tokens []string) string {
	if len(tokens) == 0 {
		return "XXXX"
	}
	if len(tokens) == 1 {
		return NormalizePrefix(tokens[0])
	}

	last := tokens[len(tokens)-1]
	var initials strings.Builder
	for _, token := range tokens[:len(tokens)-1] {
		if initials.Len() == 3 {
			break
		}
		initials.WriteByte(token[0])
	}

	remaining := max(1, 4-initials.Len())
	lastPart := head(last, remaining)
	for len(lastPart) < remaining {
		lastPart += "X"
	}

	combined := initials.String() + lastPart
	return head(combined, 4)
}

func stripDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func keepAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) < n {
		return s
	}
	return s[:n]
}
