package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean lowercases an input string and trims surrounding whitespace.
// Every field read from a register or a geocoding result goes through
// Clean before any comparison.
func Clean(input string) string {
	return strings.TrimSpace(strings.ToLower(input))
}

// StripAccents removes diacritical marks by canonical decomposition
// followed by dropping the combining marks ("Paraná" -> "Parana").
func StripAccents(input string) string {
	decomposed := norm.NFKD.String(input)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize is the full pipeline: lowercase, trim, strip accents.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(input string) string {
	return StripAccents(Clean(input))
}

// HasDelimiter reports whether the string carries a slash or backslash,
// the register convention for multi-valued fields ("kansas/colorado").
func HasDelimiter(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// SplitParts decomposes a multi-valued field on slash and backslash,
// trimming each part and discarding empties. A string without delimiters
// comes back as a single trimmed part.
func SplitParts(s string) []string {
	if !HasDelimiter(s) {
		return []string{strings.TrimSpace(s)}
	}
	var parts []string
	for _, bySlash := range strings.Split(s, "/") {
		for _, part := range strings.Split(bySlash, `\`) {
			part = strings.TrimSpace(part)
			if part != "" {
				parts = append(parts, part)
			}
		}
	}
	return parts
}

// Chinese register records append the administrative title directly to the
// name ("miyunxian"), while geocoder output separates it with a space
// ("miyun xian"). Both spellings have to be recognized.

// StripReservoirSuffix removes a trailing "shuiku" (reservoir) from a
// Chinese name long enough that a non-empty remainder is guaranteed.
func StripReservoirSuffix(name, countryISO string) string {
	if countryISO != "cn" {
		return name
	}
	if len(name) > 8 && strings.HasSuffix(name, "shuiku") {
		return strings.TrimSpace(name[:len(name)-len("shuiku")])
	}
	return name
}

// StripTownSuffix removes an unspaced trailing county/city/district title
// (xian, shi, qu) from a Chinese town name as spelled in the register.
func StripTownSuffix(town, countryISO string) string {
	if countryISO != "cn" || len(town) <= 4 {
		return town
	}
	switch {
	case strings.HasSuffix(town, "xian"):
		return strings.TrimSpace(town[:len(town)-4])
	case strings.HasSuffix(town, "shi"):
		return strings.TrimSpace(town[:len(town)-3])
	case strings.HasSuffix(town, "qu"):
		return strings.TrimSpace(town[:len(town)-2])
	}
	return town
}

// StripDivisionSuffix removes a space-separated trailing administrative
// title (sheng, xian, shi, qu) from a Chinese division name as spelled in
// geocoder output.
func StripDivisionSuffix(division, countryISO string) string {
	if countryISO != "cn" || len(division) <= 5 {
		return division
	}
	switch {
	case strings.HasSuffix(division, " sheng"):
		return strings.TrimSpace(division[:len(division)-6])
	case strings.HasSuffix(division, " xian"):
		return strings.TrimSpace(division[:len(division)-5])
	case strings.HasSuffix(division, " shi"):
		return strings.TrimSpace(division[:len(division)-4])
	case strings.HasSuffix(division, " qu"):
		return strings.TrimSpace(division[:len(division)-3])
	}
	return division
}
