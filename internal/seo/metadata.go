// Package seo builds the page metadata and structured data that search
// engines and social platforms read from the About page.
package seo

import (
	"fmt"
	"strings"
)

const (
	aboutTitle       = "About VEP - Virtual Employee Portal"
	aboutDescription = "Learn more about VEP, the Virtual Employee Portal, and how it revolutionizes remote work."

	openGraphType = "website"
	twitterCard   = "summary_large_image"
)

// Image is a preview image reference.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// OpenGraph holds the og:* properties.
type OpenGraph struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	URL         string  `json:"url"`
	Images      []Image `json:"images"`
}

// Twitter holds the twitter:* card properties.
type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Metadata describes one page for the document head.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Canonical   string    `json:"canonical"`
	OpenGraph   OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// AboutMetadata returns the metadata of the About page served from baseURL
// (a bare host, e.g. "vep.example.com").
func AboutMetadata(baseURL string) Metadata {
	return NewMetadata(baseURL, "/about", aboutTitle, aboutDescription)
}

// NewMetadata builds metadata whose Open Graph and Twitter fields mirror the
// page title and description, with one generated preview image.
func NewMetadata(baseURL, path, title, description string) Metadata {
	image := OGImageURL(baseURL, title)
	canonical := AbsoluteURL(baseURL, path)

	return Metadata{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			Type:        openGraphType,
			URL:         canonical,
			Images:      []Image{{URL: image, Alt: title}},
		},
		Twitter: Twitter{
			Card:        twitterCard,
			Title:       title,
			Description: description,
			Images:      []string{image},
		},
	}
}

// AbsoluteURL joins an https base host and a path.
func AbsoluteURL(baseURL, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return fmt.Sprintf("https://%s%s", strings.TrimSuffix(baseURL, "/"), path)
}

// OGImageURL is the preview image endpoint for a page title.
func OGImageURL(baseURL, title string) string {
	return AbsoluteURL(baseURL, "/og?title="+EncodeURIComponent(title))
}
