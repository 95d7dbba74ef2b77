package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/textfile"
)

func TestDefault(t *testing.T) {
	c, err := Default(gen.DefaultOptions(), "MyKit", "Docs for MyKit")
	require.NoError(t, err)

	lines := c.Content().Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "title: MyKit", lines[0])
	assert.Contains(t, lines, "theme: jekyll-theme-cayman")
	assert.Contains(t, lines, "  - jekyll-seo-tag")
	assert.NotContains(t, lines, "baseurl: \"\"")
	assert.Equal(t, "docs/_config.yml", c.FileName())
}

func TestDefault_BlankTitle(t *testing.T) {
	_, err := Default(gen.DefaultOptions(), "", "x")
	assert.ErrorIs(t, err, textfile.ErrInvalidParameters)
}
