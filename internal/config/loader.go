package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"github.com/tacogips/repogen/internal/buildsettings"
	"github.com/tacogips/repogen/internal/debug"
	"github.com/tacogips/repogen/internal/textfile"
)

// EnvFileName is read from the configuration file's directory, when
// present, to resolve ${VAR} references.
const EnvFileName = ".env"

var varPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct {
	lookup LookupFunc
}

// NewLoader creates a new FileLoader reading the process environment.
func NewLoader() Loader {
	return &FileLoader{lookup: os.LookupEnv}
}

// NewLoaderWithEnv creates a FileLoader resolving variables with lookup
// instead of the process environment.
func NewLoaderWithEnv(lookup LookupFunc) Loader {
	return &FileLoader{lookup: lookup}
}

// Load loads configuration from the specified file path. Keys missing from
// the file keep their default values; unknown keys are rejected.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	expanded, err := l.expand(path, data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML", err)
	}

	debug.Debug("[config] Loaded %s (project: %s)", path, cfg.Project.Name)
	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		if IsNotFound(err) {
			debug.Debug("[config] %s not found, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// expand replaces ${VAR} inside scalar values with values from the .env
// file beside path, then from the environment. Keys and comments are left
// alone. The expanded tree is encoded again so the caller can decode it
// with unknown-field checks; substituted text therefore never changes the
// document structure. An undefined variable is an error.
func (l *FileLoader) expand(path string, data []byte) ([]byte, error) {
	if !bytes.Contains(data, []byte("${")) {
		return data, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML", err)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return data, nil
	}

	var (
		dotenv  map[string]string
		envErr  error
		missing []string
	)
	resolve := func(name string) (string, bool) {
		if dotenv == nil && envErr == nil {
			dotenv, envErr = readDotenv(filepath.Join(filepath.Dir(path), EnvFileName))
		}
		if v, ok := dotenv[name]; ok {
			return v, true
		}
		if l.lookup != nil {
			return l.lookup(name)
		}
		return "", false
	}

	var walk func(n *yaml.Node)
	walk = func(n *yaml.Node) {
		// Comments never reach the decoder.
		n.HeadComment, n.LineComment, n.FootComment = "", "", ""
		switch n.Kind {
		case yaml.DocumentNode, yaml.SequenceNode:
			for _, c := range n.Content {
				walk(c)
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i]
				key.HeadComment, key.LineComment, key.FootComment = "", "", ""
				walk(n.Content[i+1])
			}
		case yaml.ScalarNode:
			if !strings.Contains(n.Value, "${") {
				return
			}
			n.Value = varPattern.ReplaceAllStringFunc(n.Value, func(ref string) string {
				name := varPattern.FindStringSubmatch(ref)[1]
				if v, ok := resolve(name); ok {
					return v
				}
				missing = append(missing, name)
				return ref
			})
			// Plain scalars resolve their type from the substituted text.
			if n.Style&(yaml.TaggedStyle|yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) == 0 {
				n.Tag = ""
			}
		}
	}
	walk(&doc)

	if envErr != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, filepath.Join(filepath.Dir(path), EnvFileName), "failed to read env file", envErr)
	}
	if len(missing) > 0 {
		return nil, NewConfigError(ConfigInvalid, path, "undefined variables: "+strings.Join(missing, ", "))
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to encode expanded configuration", err)
	}
	return out, nil
}

func readDotenv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		return map[string]string{}, nil
	}
	return godotenv.Read(path)
}

// Validate validates the configuration. Every problem is reported, not
// only the first.
func (l *FileLoader) Validate(config *Config) error {
	return Validate(config)
}

// Validate validates the configuration.
func Validate(config *Config) error {
	if config == nil {
		return NewConfigError(ConfigValidationFailed, "", "configuration is nil")
	}

	var errs error
	fail := func(field, message string, cause error) {
		errs = multierr.Append(errs, newFieldError("", field, message, cause))
	}

	p := config.Project
	if strings.TrimSpace(p.Name) == "" {
		fail("project.name", "name is required", nil)
	}
	if strings.TrimSpace(p.Version) == "" {
		fail("project.version", "version is required", nil)
	}
	if p.Year < 0 {
		fail("project.year", "year cannot be negative", nil)
	}
	for i, pl := range p.Platforms {
		if strings.TrimSpace(pl.Name) == "" || strings.TrimSpace(pl.Version) == "" {
			fail(indexed("project.platforms", i), "platform name and version are required", nil)
		}
	}
	for i, pod := range p.Pods {
		if strings.TrimSpace(pod.Name) == "" {
			fail(indexed("project.pods", i), "pod name is required", nil)
		}
	}

	o := config.Output
	if o.Indent < 1 || o.Indent > 8 {
		fail("output.indent", "indent must be between 1 and 8", nil)
	}
	if _, err := textfile.ParsePolicy(o.Overwrite); err != nil {
		fail("output.overwrite", "unknown overwrite policy", err)
	}

	for i, name := range config.Files {
		if strings.TrimSpace(name) == "" {
			fail(indexed("files", i), "file name cannot be empty", nil)
		}
	}

	if _, err := buildsettings.FromMap(config.BuildSettings); err != nil {
		fail("build_settings", "unsupported value", err)
	}

	return errs
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	return filepath.Abs(path)
}
