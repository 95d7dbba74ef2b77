package swiftlint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/tacogips/repogen/internal/gen"
)

func TestDefault_Content(t *testing.T) {
	c := Default(gen.WithIndentWidth(2))
	got := c.Content().String()

	assert.True(t, strings.HasPrefix(got, "disabled_rules:\n"), got)
	assert.False(t, strings.HasSuffix(got, "\n"))
	assert.Contains(t, got, "reporter: xcode")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, []any{"Sources", "Tests"}, decoded["included"])
	assert.Equal(t, map[string]any{"warning": 140, "error": 200}, decoded["line_length"])
	assert.NotContains(t, decoded, "type_body_length")
}

func TestContentOrderAndOmission(t *testing.T) {
	c := New(gen.DefaultOptions())
	c.Excluded = []string{"Pods"}
	c.Reporter = "json"

	got := c.Content().String()

	assert.Less(t, strings.Index(got, "excluded:"), strings.Index(got, "reporter:"))
	assert.NotContains(t, got, "disabled_rules")
	assert.Equal(t, ".swiftlint.yml", c.FileName())
}
