package seo

import (
	"encoding/json"
	"fmt"

	"github.com/nfrund/vep/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	schemaContext    = "https://schema.org"
	organizationType = "Organization"
	jsonLDMIME       = "application/ld+json"
)

// Organization is the schema.org Organization document embedded in the page.
type Organization struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Image       string   `json:"image"`
	SameAs      []string `json:"sameAs"`
}

// NewOrganization describes c's organization. SameAs lists the web profiles
// from c.Social; mailto: and empty links are left out.
func NewOrganization(c content.Content, baseURL string) Organization {
	return Organization{
		Context:     schemaContext,
		Type:        organizationType,
		Name:        c.Organization.Name,
		Description: c.Organization.Description,
		URL:         AbsoluteURL(baseURL, "/about"),
		Image:       AbsoluteURL(baseURL, c.Organization.Logo),
		SameAs:      content.WebLinks(c.Social),
	}
}

// MarshalJSONLD serializes v for embedding in a script element. encoding/json
// already escapes <, > and & so the payload cannot close the element early.
func MarshalJSONLD(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json-ld: %w", err)
	}
	return data, nil
}

// JSONLDScript wraps v in a <script type="application/ld+json"> node.
func JSONLDScript(v any) (g.Node, error) {
	data, err := MarshalJSONLD(v)
	if err != nil {
		return nil, err
	}
	return h.Script(h.Type(jsonLDMIME), g.Raw(string(data))), nil
}
