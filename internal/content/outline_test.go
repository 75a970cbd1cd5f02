package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline(t *testing.T) {
	c := Default()
	c.Sections[1].Display = false

	outline := Outline(c)

	require.Len(t, outline, 4)
	assert.Equal(t, OutlineSection{Title: "Introduction", Display: true, Items: []string{}}, outline[0])
	assert.Equal(t, "VEP Features", outline[1].Title)
	assert.Equal(t, []string{"Remote Collaboration", "Task Management", "Employee Engagement"}, outline[1].Items)
	assert.False(t, outline[2].Display)
	assert.Equal(t, []string{"Leadership", "Developers", "Support"}, outline[2].Items)
	assert.Equal(t, []string{"Frontend", "Backend", "DevOps"}, outline[3].Items)
}

func TestOutline_TracksSections(t *testing.T) {
	c := Default()
	c.Sections = append(c.Sections, Section{
		Title:   "Careers",
		Display: true,
		Entries: []Entry{{Title: "Open Roles", Description: "We are hiring."}},
	})

	outline := Outline(c)

	last := outline[len(outline)-1]
	assert.Equal(t, "Careers", last.Title)
	assert.Equal(t, []string{"Open Roles"}, last.Items)
}
