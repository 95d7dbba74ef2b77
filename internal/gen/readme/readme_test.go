package readme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/textfile"
)

func TestBadge(t *testing.T) {
	b, err := NewBadge("swift-version", "5.9", "orange", "")
	require.NoError(t, err)
	assert.Equal(t, "https://img.shields.io/badge/swift--version-5.9-orange.svg", b.ImageURL())
	assert.Equal(t, "![swift-version](https://img.shields.io/badge/swift--version-5.9-orange.svg)", b.Markdown())

	b, err = NewBadge("build status", "passing_ok", "green", "https://ci")
	require.NoError(t, err)
	assert.Equal(t, "https://img.shields.io/badge/build%20status-passing__ok-green.svg", b.ImageURL())
	assert.True(t, strings.HasPrefix(b.Markdown(), "[![build status]("))
	assert.True(t, strings.HasSuffix(b.Markdown(), "](https://ci)"))
}

func TestBadge_InvalidParameters(t *testing.T) {
	tests := []struct {
		name                   string
		subject, status, color string
	}{
		{"blank subject", "", "ok", "green"},
		{"blank status", "ci", " ", "green"},
		{"blank color", "ci", "ok", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBadge(tt.subject, tt.status, tt.color, "")
			assert.ErrorIs(t, err, textfile.ErrInvalidParameters)
		})
	}
}

func TestReadme_ValidateCatchesEditedBadges(t *testing.T) {
	r, err := ForLibrary(gen.DefaultOptions(), "Kit", "A kit.", "me/Kit", "1.0.0", "MIT")
	require.NoError(t, err)
	require.NoError(t, r.Validate())

	r.Badges[1].Status = ""
	assert.ErrorIs(t, r.Validate(), textfile.ErrInvalidParameters)

	r, err = ForLibrary(gen.DefaultOptions(), "Kit", "A kit.", "me/Kit", "1.0.0", "MIT")
	require.NoError(t, err)
	r.Title = " "
	assert.ErrorIs(t, r.Validate(), textfile.ErrInvalidParameters)
}

func TestReadme_Content(t *testing.T) {
	r := New(gen.DefaultOptions(), "myKit", "Small helpers.")
	require.NoError(t, r.AddBadge("license", "MIT", "blue", ""))
	r.Installation = []InstallMethod{CocoaPods{Pod: "MyKit", Version: "1.2"}}
	r.License = "MIT"

	want := "# MyKit\n\n" +
		"![license](https://img.shields.io/badge/license-MIT-blue.svg)\n\n" +
		"Small helpers.\n\n" +
		"## Installation\n\n" +
		"### CocoaPods\n\n" +
		"```ruby\npod 'MyKit', '~> 1.2'\n```\n\n" +
		"## License\n\n" +
		"MyKit is available under the MIT license. See the LICENSE file for more info."
	assert.Equal(t, want, r.Content().String())
}

func TestForLibrary(t *testing.T) {
	r, err := ForLibrary(gen.DefaultOptions(), "MyKit", "desc", "acme/MyKit", "1.0.0", "MIT")
	require.NoError(t, err)

	got := r.Content().String()
	assert.Len(t, r.Badges, 3)
	assert.Contains(t, got, "```\ngithub \"acme/MyKit\" ~> 1.0.0\n```")
	assert.Contains(t, got, `.package(url: "https://github.com/acme/MyKit.git", from: "1.0.0")`)

	_, err = ForLibrary(gen.DefaultOptions(), "MyKit", "desc", "acme/MyKit", "", "")
	assert.ErrorIs(t, err, textfile.ErrInvalidParameters)
}
