package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize turns a display name into a symbolic identifier: uppercase,
// accents stripped, and every run of characters outside A-Z replaced by a
// single underscore. Normalize("ÁLAMO, EL") == "ALAMO_EL".
func Normalize(name string) string {
	upper := strings.ToUpper(name)
	upper = strings.NewReplacer(" ", "_", ",", "_").Replace(upper)

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, upper)
	if err != nil {
		stripped = upper
	}

	var b strings.Builder
	b.Grow(len(stripped))
	inRun := false
	for _, r := range stripped {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('_')
			inRun = true
		}
	}
	return b.String()
}
