package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/tacogips/repogen/internal/config"
	"github.com/tacogips/repogen/internal/textfile"
)

func newRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	return dir
}

func testConfig(root string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Project.Name = "MyKit"
	cfg.Project.Summary = "Helpers for iOS"
	cfg.Project.Description = "MyKit bundles small helpers."
	cfg.Project.Author = "Jane Doe"
	cfg.Project.Email = "jane@example.com"
	cfg.Project.Repository = "jane/MyKit"
	cfg.Project.BundlePrefix = "com.example"
	cfg.Project.Year = 2024
	cfg.Project.Version = "1.0.0"
	cfg.Project.Pods = []config.PodConfig{{Name: "Alamofire", Version: "~> 5.0"}}
	cfg.BuildSettings = map[string]any{"ENABLE_BITCODE": false}
	cfg.Output.Root = root
	return cfg
}

func policyPtr(p textfile.Policy) *textfile.Policy {
	return &p
}

func TestGenerate_EndToEnd(t *testing.T) {
	root := newRepo(t)
	cfg := testConfig(root)
	ctx := context.Background()

	result, err := Generate(ctx, GenerateOptions{Config: cfg})
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	assert.Equal(t, len(Entries()), result.FilesCreated)
	assert.Len(t, result.Files, len(Entries()))

	for _, rel := range []string{
		".gitignore", "LICENSE", "README.md", "MyKit.podspec", "Podfile",
		"fastlane/Fastfile", ".swiftlint.yml", "docs/_config.yml",
		"Sources/Info.plist", "Configs/Base.xcconfig", "Configs/Debug.xcconfig", "Configs/Release.xcconfig",
	} {
		data, err := os.ReadFile(filepath.Join(root, rel))
		require.NoError(t, err, rel)
		content := string(data)
		assert.True(t, strings.HasSuffix(content, "\n"), rel)
		assert.NotContains(t, content, " \n", rel)
		assert.NotContains(t, content, "\n\n\n", rel)
	}

	base, err := os.ReadFile(filepath.Join(root, "Configs", "Base.xcconfig"))
	require.NoError(t, err)
	assert.Contains(t, string(base), "ENABLE_BITCODE = NO\n")
	assert.Contains(t, string(base), "PRODUCT_BUNDLE_IDENTIFIER = com.example.mykit\n")

	// Existing files are kept under the default policy.
	result, err = Generate(ctx, GenerateOptions{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, len(Entries()), result.FilesSkipped)
	assert.Zero(t, result.FilesCreated)

	result, err = Generate(ctx, GenerateOptions{Config: cfg, Policy: policyPtr(textfile.Override)})
	require.NoError(t, err)
	assert.Equal(t, len(Entries()), result.FilesOverwritten)
}

func TestGenerate_FilesSortedNaturally(t *testing.T) {
	root := newRepo(t)

	result, err := Generate(context.Background(), GenerateOptions{
		Config: testConfig(root),
		Only:   []string{"xcconfig-release", "readme", "xcconfig-base"},
	})
	require.NoError(t, err)

	var paths []string
	for _, f := range result.Files {
		rel, err := filepath.Rel(root, f.Path)
		require.NoError(t, err)
		paths = append(paths, rel)
	}
	assert.Equal(t, []string{
		filepath.Join("Configs", "Base.xcconfig"),
		filepath.Join("Configs", "Release.xcconfig"),
		"README.md",
	}, paths)
}

func TestDryRun(t *testing.T) {
	root := newRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "LICENSE"), []byte("custom\n"), 0644))

	result, err := DryRun(context.Background(), GenerateOptions{
		Config: testConfig(root),
		Only:   []string{"license", "readme"},
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.FilesCreated)
	assert.Equal(t, 1, result.FilesSkipped)

	_, err = os.Stat(filepath.Join(root, "README.md"))
	assert.True(t, os.IsNotExist(err), "dry run must not write")

	data, err := os.ReadFile(filepath.Join(root, "LICENSE"))
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data))
}

func TestGenerate_UnknownFile(t *testing.T) {
	_, err := Generate(context.Background(), GenerateOptions{
		Config: testConfig(newRepo(t)),
		Only:   []string{"readme", "makefile", "dockerfile"},
	})
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	var appErr *AppError
	require.True(t, errors.As(errs[0], &appErr))
	assert.Equal(t, UnknownFile, appErr.Type)
}

func TestGenerate_PerFileErrorsKeepEarlierWrites(t *testing.T) {
	root := newRepo(t)
	cfg := testConfig(root)
	cfg.Project.License = "WTFPL"

	result, err := Generate(context.Background(), GenerateOptions{
		Config: cfg,
		Only:   []string{"gitignore", "license"},
	})
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Err(), textfile.ErrInvalidParameters)
	assert.Equal(t, 1, result.FilesCreated)
	assert.FileExists(t, filepath.Join(root, ".gitignore"))
}

func TestGenerate_WriteFailure(t *testing.T) {
	root := newRepo(t)
	cfg := testConfig(root)
	cfg.Output.IntermediateDirs = false

	result, err := Generate(context.Background(), GenerateOptions{
		Config: cfg,
		Only:   []string{"readme", "plist"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesCreated, "a single missing level is created")
	require.Empty(t, result.Errors)

	cfg.Output.Root = filepath.Join(root, "a", "b")
	result, err = Generate(context.Background(), GenerateOptions{
		Config: cfg,
		Only:   []string{"plist"},
	})
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	var tfErr *textfile.TextFileError
	require.True(t, errors.As(result.Errors[0], &tfErr))
	assert.Equal(t, textfile.WriteFailed, tfErr.Type)
}

func TestGenerate_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Generate(ctx, GenerateOptions{Config: testConfig(newRepo(t))})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Empty(t, result.Files)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Project.Name = ""

	_, err := Generate(context.Background(), GenerateOptions{Config: cfg})
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ValidationFailed, appErr.Type)
}

func TestGenerate_LoadsConfigFile(t *testing.T) {
	root := newRepo(t)
	cfgPath := filepath.Join(root, config.DefaultFileName)
	_, err := config.Save(cfgPath, testConfig(root), textfile.DoNotWrite)
	require.NoError(t, err)

	result, err := Generate(context.Background(), GenerateOptions{
		ConfigPath: cfgPath,
		Only:       []string{"gitignore"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesCreated)
}

func TestPreview(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Output.Indent = 2

	got, err := Preview(cfg, "Podfile")
	require.NoError(t, err)

	want := `platform :ios, '13.0'
use_frameworks!
workspace 'MyKit'

target 'MyKit' do
  pod 'Alamofire', '~> 5.0'

  target 'MyKitTests' do
    inherit! :search_paths
  end
end
`
	assert.Equal(t, want, got)

	_, err = Preview(cfg, "nope")
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, UnknownFile, appErr.Type)
}

func TestPlan_ConfiguredFiles(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Files = []string{"license", "LICENSE", "readme"}

	planned, err := Plan(cfg, nil, nil)
	require.NoError(t, err)
	require.Len(t, planned, 2)
	assert.Equal(t, "license", planned[0].Name)
	assert.Equal(t, "README.md", planned[1].File.RelativePath())
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFileName)

	resolved, err := ConfigInit(ConfigInitOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Project.Name, cfg.Project.Name)

	_, err = ConfigInit(ConfigInitOptions{Path: path})
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, InitFailed, appErr.Type)

	custom := config.DefaultConfig()
	custom.Project.Name = "Forced"
	_, err = ConfigInit(ConfigInitOptions{Path: path, Force: true, Config: custom})
	require.NoError(t, err)

	cfg, err = config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Forced", cfg.Project.Name)
}
