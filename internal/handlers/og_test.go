package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "fits on one line",
			title: "About VEP",
			want:  []string{"About VEP"},
		},
		{
			name:  "breaks on spaces",
			title: "About VEP - Virtual Employee Portal",
			want:  []string{"About VEP - Virtual", "Employee Portal"},
		},
		{
			name:  "splits long words",
			title: strings.Repeat("x", 30),
			want:  []string{strings.Repeat("x", 26), "xxxx"},
		},
		{
			name:  "empty",
			title: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapTitle(tt.title, ogLineRunes, ogMaxLines))
		})
	}
}

func TestWrapTitle_Truncates(t *testing.T) {
	lines := wrapTitle(strings.Repeat("word ", 40), 10, 3)

	assert.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[2], "…"))
}
