package config

import (
	"github.com/tacogips/repogen/internal/buildsettings"
	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/textfile"
)

// GenOptions returns the generator options for the configured indent.
func (c *Config) GenOptions() gen.Options {
	return gen.WithIndentWidth(c.Output.Indent)
}

// Policy parses the configured overwrite policy.
func (c *Config) Policy() (textfile.Policy, error) {
	p, err := textfile.ParsePolicy(c.Output.Overwrite)
	if err != nil {
		return p, newFieldError("", "output.overwrite", "unknown overwrite policy", err)
	}
	return p, nil
}

// Settings converts the build_settings section.
func (c *Config) Settings() (*buildsettings.Settings, error) {
	s, err := buildsettings.FromMap(c.BuildSettings)
	if err != nil {
		return nil, newFieldError("", "build_settings", "unsupported value", err)
	}
	return s, nil
}

// WriteOptions returns the pending file options for the output section.
func (c *Config) WriteOptions() ([]textfile.Option, error) {
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}
	opts := []textfile.Option{
		textfile.WithPolicy(policy),
		textfile.WithTrimTrailingSpaces(c.Output.TrimTrailingSpaces),
		textfile.WithCollapseBlankLines(c.Output.CollapseBlankLines),
		textfile.WithFinalNewline(c.Output.FinalNewline),
		textfile.WithIntermediateDirs(c.Output.IntermediateDirs),
	}
	if c.Output.Root != "" {
		root, err := ExpandPath(c.Output.Root)
		if err != nil {
			return nil, newFieldError("", "output.root", "cannot resolve root", err)
		}
		opts = append(opts, textfile.WithRoot(root))
	}
	return opts, nil
}
