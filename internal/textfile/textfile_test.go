package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tacogips/repogen/internal/text"
)

type stubFile struct {
	name string
	body string
}

func (s stubFile) Content() text.IndentedText {
	return text.FromString(s.body, text.Indentation{})
}

func (s stubFile) FileName() string { return s.name }

type stubNamed struct{ body string }

func (s stubNamed) Content() text.IndentedText {
	return text.FromString(s.body, text.Indentation{})
}

func (s stubNamed) Extension() string { return ".podspec" }

type failingWriter struct {
	Writer
	err error
}

func (f failingWriter) WriteFile(string, []byte, os.FileMode) error { return f.err }

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWrite_Policies(t *testing.T) {
	tests := []struct {
		name        string
		existing    bool
		policy      Policy
		wantWritten bool
		wantContent string
	}{
		{"missing, override", false, Override, true, "new"},
		{"existing, override", true, Override, true, "new"},
		{"existing, do-not-write", true, DoNotWrite, false, "old"},
		{"missing, do-not-write", false, DoNotWrite, true, "new"},
		{"existing, skip", true, Skip, false, "old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join(root, "Podfile")
			if tt.existing {
				require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
			}

			written, err := ForFixed(stubFile{name: "Podfile", body: "new"},
				WithRoot(root), WithPolicy(tt.policy)).Write()

			require.NoError(t, err)
			assert.Equal(t, tt.wantWritten, written)
			assert.Equal(t, tt.wantContent, readFile(t, path))
		})
	}
}

func TestWrite_SkipPolicyOnMissingFile(t *testing.T) {
	root := t.TempDir()

	written, err := ForFixed(stubFile{name: "x", body: "x"}, WithRoot(root), WithPolicy(Skip)).Write()

	require.NoError(t, err)
	assert.False(t, written)
	assert.NoFileExists(t, filepath.Join(root, "x"))
}

func TestWrite_CreatesIntermediateDirectories(t *testing.T) {
	root := t.TempDir()

	written, err := ForFixed(stubFile{name: "fastlane/Fastfile", body: "lane"},
		WithRoot(root), WithDir("a/b")).Write()

	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "lane", readFile(t, filepath.Join(root, "a", "b", "fastlane", "Fastfile")))
}

func TestWrite_SingleLevelDirectory(t *testing.T) {
	root := t.TempDir()

	_, err := ForFixed(stubFile{name: "f", body: "x"},
		WithRoot(root), WithDir("a/b"), WithIntermediateDirs(false)).Write()
	var tfErr *TextFileError
	require.ErrorAs(t, err, &tfErr)
	assert.Equal(t, WriteFailed, tfErr.Type)

	written, err := ForFixed(stubFile{name: "f", body: "x"},
		WithRoot(root), WithDir("a"), WithIntermediateDirs(false)).Write()
	require.NoError(t, err)
	assert.True(t, written)
}

func TestWrite_NormalizesContent(t *testing.T) {
	root := t.TempDir()
	body := "a   \n\n\n\nb \nc"

	_, err := ForFixed(stubFile{name: "n", body: body}, WithRoot(root), WithFinalNewline(true)).Write()
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\nc\n", readFile(t, filepath.Join(root, "n")))

	_, err = ForFixed(stubFile{name: "raw", body: body}, WithRoot(root),
		WithTrimTrailingSpaces(false), WithCollapseBlankLines(false)).Write()
	require.NoError(t, err)
	assert.Equal(t, body, readFile(t, filepath.Join(root, "raw")))
}

func TestWrite_PropagatesWriterError(t *testing.T) {
	root := t.TempDir()
	cause := errors.New("disk full")

	written, err := ForFixed(stubFile{name: "f", body: "x"}, WithRoot(root),
		WithWriter(failingWriter{Writer: NewFileWriter(), err: cause})).Write()

	assert.False(t, written)
	require.ErrorIs(t, err, cause)
}

func TestWrite_NoTemporaryFilesLeft(t *testing.T) {
	root := t.TempDir()

	_, err := ForFixed(stubFile{name: "Podfile", body: "x"}, WithRoot(root)).Write()
	require.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Podfile", entries[0].Name())
}

func TestResolve(t *testing.T) {
	t.Run("relative anchored at discovered root", func(t *testing.T) {
		p := ForFixed(stubFile{name: ".gitignore"}, WithRootFinder(func() (string, error) {
			return "/repo", nil
		}))
		path, err := p.Resolve()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/repo", ".gitignore"), path)
	})

	t.Run("absolute dir bypasses discovery", func(t *testing.T) {
		p := ForFixed(stubFile{name: "Podfile"}, WithDir("/abs/dir"), WithRootFinder(func() (string, error) {
			return "", errors.New("must not be called")
		}))
		path, err := p.Resolve()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/abs/dir", "Podfile"), path)
	})

	t.Run("no root found", func(t *testing.T) {
		p := ForFixed(stubFile{name: "Podfile"}, WithRootFinder(func() (string, error) {
			return "", errors.New("nothing above")
		}))
		_, err := p.Resolve()
		require.Error(t, err)
		assert.True(t, IsLocationUndefined(err))
	})

	t.Run("empty supplied name", func(t *testing.T) {
		_, err := ForNamed(stubNamed{}, "", WithRoot("/repo")).Resolve()
		assert.True(t, IsLocationUndefined(err))
	})
}

func TestForNamed(t *testing.T) {
	p := ForNamed(stubNamed{body: "spec"}, "MyKit", WithRoot("/repo"))
	assert.Equal(t, "MyKit.podspec", p.Target().Name())
	assert.False(t, p.Target().Intrinsic())

	p = ForNamed(stubNamed{}, "MyKit.podspec")
	assert.Equal(t, "MyKit.podspec", p.RelativePath())

	f := ForFixed(stubFile{name: "Podfile"})
	assert.True(t, f.Target().Intrinsic())
	assert.Equal(t, DoNotWrite, f.Policy())
}

func TestConstructionDoesNotTouchFilesystem(t *testing.T) {
	root := t.TempDir()
	_ = ForFixed(stubFile{name: "deep/dir/file", body: "x"}, WithRoot(root), WithPolicy(Override))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlan(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "exists"), nil, 0644))

	tests := []struct {
		name   string
		file   string
		policy Policy
		want   Action
	}{
		{"create", "missing", Override, ActionCreate},
		{"overwrite", "exists", Override, ActionOverwrite},
		{"keep existing", "exists", DoNotWrite, ActionSkip},
		{"create when missing", "missing", DoNotWrite, ActionCreate},
		{"skip", "missing", Skip, ActionSkip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, path, err := ForFixed(stubFile{name: tt.file}, WithRoot(root), WithPolicy(tt.policy)).Plan()
			require.NoError(t, err)
			assert.Equal(t, tt.want, action)
			assert.Equal(t, filepath.Join(root, tt.file), path)
		})
	}
	assert.NoFileExists(t, filepath.Join(root, "missing"))
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{Override, DoNotWrite, Skip} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePolicy("sometimes")
	assert.Error(t, err)
}

func TestCollapseBlankLines(t *testing.T) {
	assert.Equal(t, "\n\n", CollapseBlankLines("\n\n\n\n"))
	assert.Equal(t, "a\n\nb", CollapseBlankLines("a\n\n\n\n\n\nb"))
	assert.Equal(t, "a\nb", CollapseBlankLines("a\nb"))
}

func TestTrimTrailingSpaces(t *testing.T) {
	assert.Equal(t, "a\nb\n", TrimTrailingSpaces("a      \nb \n"))
	assert.Equal(t, "a  b", TrimTrailingSpaces("a  b"))
	assert.Equal(t, "x\t\n", TrimTrailingSpaces("x\t\n"))
}

func TestNormalization_FixedPoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a \n]{0,40}`).Draw(t, "s")

		trimmed := TrimTrailingSpaces(s)
		if again := TrimTrailingSpaces(trimmed); again != trimmed {
			t.Fatalf("trim not idempotent: %q -> %q", trimmed, again)
		}
		if strings.Contains(trimmed, " \n") {
			t.Fatalf("trailing space left in %q", trimmed)
		}

		collapsed := CollapseBlankLines(s)
		if again := CollapseBlankLines(collapsed); again != collapsed {
			t.Fatalf("collapse not idempotent: %q -> %q", collapsed, again)
		}
		if strings.Contains(collapsed, "\n\n\n") {
			t.Fatalf("blank run left in %q", collapsed)
		}
	})
}

func TestFindRepoRootFrom(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0755))

	found, err := FindRepoRootFrom(deep)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindRepoRootFrom_MarkerMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	// A worktree-style .git file does not count as a marker directory.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, ".hg"), 0755))

	found, err := FindRepoRootFrom(root)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestInvalidParametersError(t *testing.T) {
	err := InvalidParametersError("badge.subject", "must not be blank")

	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Contains(t, err.Error(), "badge.subject")
}
