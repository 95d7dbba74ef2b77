// Package pages generates the GitHub Pages site configuration.
package pages

import (
	"bytes"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
	"github.com/tacogips/repogen/internal/textfile"
)

// FileName is the intrinsic location of the generated file.
const FileName = "docs/_config.yml"

// DefaultTheme is used by the Default preset.
const DefaultTheme = "jekyll-theme-cayman"

// Config is a Jekyll _config.yml for GitHub Pages.
type Config struct {
	gen.Options `yaml:"-"`

	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Theme       string   `yaml:"theme,omitempty"`
	BaseURL     string   `yaml:"baseurl,omitempty"`
	URL         string   `yaml:"url,omitempty"`
	Markdown    string   `yaml:"markdown,omitempty"`
	Plugins     []string `yaml:"plugins,omitempty"`
	Exclude     []string `yaml:"exclude,omitempty"`
}

// Default returns the preset configuration. A blank title is an invalid
// parameters error.
func Default(opts gen.Options, title, description string) (*Config, error) {
	if gen.Blank(title) {
		return nil, textfile.InvalidParametersError("pages.title", "must not be blank")
	}
	return &Config{
		Options:     opts,
		Title:       title,
		Description: description,
		Theme:       DefaultTheme,
		Markdown:    "kramdown",
		Plugins:     []string{"jekyll-seo-tag"},
	}, nil
}

// FileName implements textfile.FixedNameFile.
func (c *Config) FileName() string {
	return FileName
}

// Content implements textfile.Model.
func (c *Config) Content() text.IndentedText {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		panic("pages: encode: " + err.Error())
	}
	_ = enc.Close()
	return c.Buffer().Line(strings.TrimRight(buf.String(), "\n")).Text()
}
