package figma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileKey(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "file url", url: "https://www.figma.com/file/AbC123xyz/Portfolio", want: "AbC123xyz"},
		{name: "design url", url: "https://www.figma.com/design/Qw3rty/Portfolio?node-id=1-2", want: "Qw3rty"},
		{name: "not a figma url", url: "https://example.com/page", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFileKey(tt.url))
		})
	}
}

func TestParseNodeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "encoded colon", url: "https://www.figma.com/file/k/x?node-id=12%3A34", want: "12:34"},
		{name: "browser dash form", url: "https://www.figma.com/design/k/x?node-id=12-34&t=abc", want: "12:34"},
		{name: "missing", url: "https://www.figma.com/file/k/x", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNodeID(tt.url))
		})
	}
}

func TestFindNodes(t *testing.T) {
	root := Node{
		Name: "Document", Type: NodeDocument,
		Children: []Node{
			{Name: "Page", Type: NodeCanvas, Children: []Node{
				{ID: "1:1", Name: "Accent1 Swatch", Type: NodeRectangle},
				{ID: "1:2", Name: "Title", Type: NodeText},
				{ID: "1:3", Name: "accent2 swatch", Type: NodeRectangle},
			}},
		},
	}

	matches := FindNodes(root, "SWATCH")
	require.Len(t, matches, 2)
	assert.Equal(t, "1:1", matches[0].ID)
	assert.Equal(t, "1:3", matches[1].ID)
}
