package plist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/repogen/internal/buildsettings"
	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/textfile"
)

func TestBundleIdentifier(t *testing.T) {
	id, err := BundleIdentifier("com.example.", "My Kit")
	require.NoError(t, err)
	assert.Equal(t, "com.example.my-kit", id)

	id, err = BundleIdentifier("", "Kit")
	require.NoError(t, err)
	assert.Equal(t, "kit", id)

	_, err = BundleIdentifier("com.example", "!!!")
	assert.ErrorIs(t, err, textfile.ErrInvalidParameters)
}

func TestForFramework(t *testing.T) {
	f, err := ForFramework(gen.DefaultOptions(), "com.example", "My Kit", "1.0")
	require.NoError(t, err)

	lines := f.Content().Lines()
	require.Greater(t, len(lines), 3)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, lines[0])
	assert.Equal(t, `<!`+doctype+`>`, lines[1])
	assert.Equal(t, `<plist version="1.0">`, lines[2])
	assert.Contains(t, lines, "        <key>CFBundleIdentifier</key>")
	assert.Contains(t, lines, "        <string>com.example.my-kit</string>")
	assert.Equal(t, "</plist>", lines[len(lines)-1])

	_, err = ForFramework(gen.DefaultOptions(), "com.example", "Kit", "")
	assert.ErrorIs(t, err, textfile.ErrInvalidParameters)
}

func TestValueKinds(t *testing.T) {
	f := New(gen.WithIndentWidth(2)).
		Set("UIRequiresFullScreen", buildsettings.Bool(true)).
		Set("Count", buildsettings.Number(3)).
		Set("Ratio", buildsettings.Number(1.5)).
		Set("Archs", buildsettings.List("arm64"))

	lines := f.Content().Lines()

	assert.Contains(t, lines, "    <true/>")
	assert.Contains(t, lines, "    <integer>3</integer>")
	assert.Contains(t, lines, "    <real>1.5</real>")
	assert.Contains(t, lines, "      <string>arm64</string>")
	assert.Equal(t, ".plist", f.Extension())
}
