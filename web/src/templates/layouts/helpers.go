package layouts

import (
	"strings"

	"golang.org/x/text/language"
)

const siteName = "VEP"

// CalculateTitle appends the site name unless the title already carries it.
func CalculateTitle(title string) string {
	switch {
	case title == "":
		return siteName
	case strings.Contains(title, siteName):
		return title
	default:
		return title + " - " + siteName
	}
}

// NormalizeLanguage canonicalizes a BCP 47 tag for the html lang attribute,
// falling back to English for anything unparsable.
func NormalizeLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil || t == language.Und {
		return language.English.String()
	}
	return t.String()
}
