package fastlane

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/textfile"
)

func TestFile_Content(t *testing.T) {
	f := New(gen.DefaultOptions(), "ios").
		AddLane(Lane{Name: "test", Description: "Run tests", Actions: []string{"scan"}})

	want := `default_platform(:ios)

platform :ios do
    desc "Run tests"
    lane :test do
        scan
    end
end`
	assert.Equal(t, want, textfile.TrimTrailingSpaces(f.Content().String()))
	assert.Equal(t, "fastlane/Fastfile", f.FileName())
}

func TestBeforeAllAndPrivateLane(t *testing.T) {
	f := New(gen.WithIndentWidth(2), "mac")
	f.BeforeAll = []string{"setup_ci"}
	f.AddLane(Lane{Name: "build", Private: true, Actions: []string{"gym"}})

	want := "default_platform(:mac)\n\nplatform :mac do\n  before_all do\n    setup_ci\n  end\n\n  private_lane :build do\n    gym\n  end\nend"
	assert.Equal(t, want, textfile.TrimTrailingSpaces(f.Content().String()))
}

func TestForFramework(t *testing.T) {
	got := ForFramework(gen.DefaultOptions(), "ios", "MyKit").Content().String()

	assert.Contains(t, got, `        scan(scheme: "MyKit", clean: true)`)
	assert.Contains(t, got, "    lane :lint do")
	assert.Contains(t, got, "    lane :release do")
}
