package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestHeadNodes(t *testing.T) {
	m := AboutMetadata("vep.example.com")

	var b strings.Builder
	require.NoError(t, g.Group(HeadNodes(m)).Render(&b))
	html := b.String()

	expected := []string{
		`<link rel="canonical" href="https://vep.example.com/about">`,
		`<meta property="og:title" content="About VEP - Virtual Employee Portal">`,
		`<meta property="og:type" content="website">`,
		`<meta property="og:url" content="https://vep.example.com/about">`,
		`<meta property="og:image" content="https://vep.example.com/og?title=About%20VEP%20-%20Virtual%20Employee%20Portal">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta name="twitter:title" content="About VEP - Virtual Employee Portal">`,
	}
	for _, want := range expected {
		assert.Contains(t, html, want)
	}
	assert.Equal(t, 1, strings.Count(html, `name="twitter:image"`))
}
