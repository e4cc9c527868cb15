package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_EmbeddedPages(t *testing.T) {
	lib := NewLibrary()

	for _, name := range []string{"guides", "examples"} {
		t.Run(name, func(t *testing.T) {
			p, err := lib.Page(name)
			require.NoError(t, err)
			assert.Equal(t, name, p.Name)
			assert.NotEmpty(t, p.Title)
			assert.Contains(t, string(p.HTML), "<h2")
		})
	}

	p, err := lib.Page("guides")
	require.NoError(t, err)
	assert.Equal(t, "Guides", p.Title)
	assert.Contains(t, string(p.HTML), "<table>")
}

func TestLibrary_NotFound(t *testing.T) {
	lib := NewLibrary()
	for _, name := range []string{"missing", "", "../content", "a/b", "guides.md"} {
		_, err := lib.Page(name)
		assert.ErrorIs(t, err, ErrNotFound, name)
	}
}

func TestLibrary_Sanitizes(t *testing.T) {
	lib := NewLibraryFS(fstest.MapFS{
		"bad.md": {Data: []byte("# Bad\n\n<script>alert(1)</script>\n\n[x](javascript:alert(1))\n\n<b onclick=\"x()\">hi</b>\n")},
	})

	p, err := lib.Page("bad")
	require.NoError(t, err)
	html := string(p.HTML)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "javascript:")
	assert.NotContains(t, html, "onclick")
	assert.Equal(t, "Bad", p.Title)
}

func TestLibrary_Cache(t *testing.T) {
	fsys := fstest.MapFS{"page.md": {Data: []byte("no heading here")}}
	lib := NewLibraryFS(fsys)

	p1, err := lib.Page("page")
	require.NoError(t, err)
	assert.Equal(t, "page", p1.Title)

	fsys["page.md"] = &fstest.MapFile{Data: []byte("# Changed")}
	p2, err := lib.Page("page")
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}
