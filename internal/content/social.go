package content

import "strings"

const mailtoPrefix = "mailto:"

// IsWebLink reports whether l points at a web profile: it has a link and
// the link is not a mailto: address.
func IsWebLink(l SocialLink) bool {
	return l.Link != "" && !strings.HasPrefix(l.Link, mailtoPrefix)
}

// WebSocial keeps the web links of social in their original order.
func WebSocial(social []SocialLink) []SocialLink {
	out := make([]SocialLink, 0, len(social))
	for _, l := range social {
		if IsWebLink(l) {
			out = append(out, l)
		}
	}
	return out
}

// WebLinks returns the URLs of WebSocial(social). The result is never nil so
// it serializes as an empty JSON array.
func WebLinks(social []SocialLink) []string {
	links := make([]string, 0, len(social))
	for _, l := range WebSocial(social) {
		links = append(links, l.Link)
	}
	return links
}
