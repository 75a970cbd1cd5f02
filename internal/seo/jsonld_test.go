package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nfrund/vep/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrganization(t *testing.T) {
	c := content.Default()
	c.Social = []content.SocialLink{
		{Name: "X", Link: "https://x.com/a"},
		{Name: "Mail", Link: "mailto:a@b.com"},
	}

	org := NewOrganization(c, "vep.example.com")

	assert.Equal(t, "https://schema.org", org.Context)
	assert.Equal(t, "Organization", org.Type)
	assert.Equal(t, "VEP - Virtual Employee Portal", org.Name)
	assert.Equal(t, "https://vep.example.com/about", org.URL)
	assert.Equal(t, "https://vep.example.com/static/images/vep-logo.svg", org.Image)
	assert.Equal(t, []string{"https://x.com/a"}, org.SameAs)
}

func TestMarshalJSONLD_Fields(t *testing.T) {
	c := content.Default()
	c.Social = nil

	data, err := MarshalJSONLD(NewOrganization(c, "vep.example.com"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.ElementsMatch(t,
		[]string{"@context", "@type", "name", "description", "url", "image", "sameAs"},
		keys(doc))
	assert.Equal(t, []any{}, doc["sameAs"], "sameAs must be an empty array, not null")
}

func TestJSONLDScript_EscapesMarkup(t *testing.T) {
	c := content.Default()
	c.Organization.Description = `</script><script>alert(1)</script>`

	node, err := JSONLDScript(NewOrganization(c, "vep.example.com"))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, node.Render(&b))
	html := b.String()

	assert.True(t, strings.HasPrefix(html, `<script type="application/ld+json">`))
	assert.True(t, strings.HasSuffix(html, "</script>"))
	assert.Equal(t, 1, strings.Count(html, "</script>"))
	assert.Contains(t, html, `\u003c/script\u003e\u003cscript\u003ealert(1)\u003c/script\u003e`)
}

func TestJSONLDScript_MarshalError(t *testing.T) {
	_, err := JSONLDScript(map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
