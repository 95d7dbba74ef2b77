// Package swiftlint generates .swiftlint.yml configuration.
package swiftlint

import (
	"bytes"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
)

// FileName is the intrinsic name of the generated file.
const FileName = ".swiftlint.yml"

// Threshold is a warning/error pair for a numeric rule.
type Threshold struct {
	Warning int `yaml:"warning"`
	Error   int `yaml:"error"`
}

// Config is the SwiftLint configuration. Field order is output order.
type Config struct {
	gen.Options `yaml:"-"`

	DisabledRules      []string   `yaml:"disabled_rules,omitempty"`
	OptInRules         []string   `yaml:"opt_in_rules,omitempty"`
	Included           []string   `yaml:"included,omitempty"`
	Excluded           []string   `yaml:"excluded,omitempty"`
	LineLength         *Threshold `yaml:"line_length,omitempty"`
	FileLength         *Threshold `yaml:"file_length,omitempty"`
	TypeBodyLength     *Threshold `yaml:"type_body_length,omitempty"`
	FunctionBodyLength *Threshold `yaml:"function_body_length,omitempty"`
	Reporter           string     `yaml:"reporter,omitempty"`
}

// New returns an empty configuration.
func New(opts gen.Options) *Config {
	return &Config{Options: opts}
}

// Default is the preset used for framework repositories.
func Default(opts gen.Options, sourceDirs ...string) *Config {
	if len(sourceDirs) == 0 {
		sourceDirs = []string{"Sources", "Tests"}
	}
	return &Config{
		Options:       opts,
		DisabledRules: []string{"todo", "trailing_comma"},
		OptInRules: []string{
			"closure_spacing",
			"empty_count",
			"explicit_init",
			"force_unwrapping",
			"sorted_imports",
		},
		Included:   sourceDirs,
		Excluded:   []string{"Carthage", "Pods", ".build"},
		LineLength: &Threshold{Warning: 140, Error: 200},
		FileLength: &Threshold{Warning: 500, Error: 1000},
		Reporter:   "xcode",
	}
}

// FileName implements textfile.FixedNameFile.
func (c *Config) FileName() string {
	return FileName
}

// Content implements textfile.Model. The YAML is indented with the
// configured width.
func (c *Config) Content() text.IndentedText {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	width := c.Width()
	if width < 2 {
		width = 2
	}
	enc.SetIndent(width)
	if err := enc.Encode(c); err != nil {
		// Only plain strings, string lists and ints are encoded.
		panic("swiftlint: encode: " + err.Error())
	}
	_ = enc.Close()

	b := c.Buffer()
	b.Line(strings.TrimRight(buf.String(), "\n"))
	return b.Text()
}
