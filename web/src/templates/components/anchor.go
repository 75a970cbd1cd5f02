package components

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Anchor turns a display title into an element ID: accents are stripped,
// letters lowercased and every other run of characters becomes one '-'.
// "VEP Features" becomes "vep-features".
func Anchor(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// EntryAnchor is the element ID of an entry within a section. The section
// slug prefixes the entry slug so an entry never shares an ID with a section
// or with an entry of another section. It is "" when the entry title has no
// letters or digits.
func EntryAnchor(section, entry string) string {
	e := Anchor(entry)
	if e == "" {
		return ""
	}
	if s := Anchor(section); s != "" {
		return s + "-" + e
	}
	return e
}

// ID sets the id attribute, or nothing when id is empty.
func ID(id string) g.Node {
	return g.If(id != "", h.ID(id))
}
