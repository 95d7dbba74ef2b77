package config

import (
	"time"

	"github.com/tacogips/repogen/internal/text"
	"github.com/tacogips/repogen/internal/textfile"
)

// DefaultFileName is the configuration file looked up in the working
// directory.
const DefaultFileName = ".repogen.yml"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:         "MyLibrary",
			License:      "MIT",
			Year:         time.Now().Year(),
			Version:      "0.1.0",
			SwiftVersion: "5.9",
			Platforms: []PlatformConfig{
				{Name: "ios", Version: "13.0"},
			},
		},
		Output: OutputConfig{
			Root:               "",
			Indent:             text.DefaultIndentWidth,
			Overwrite:          textfile.DoNotWrite.String(),
			TrimTrailingSpaces: true,
			CollapseBlankLines: true,
			FinalNewline:       true,
			IntermediateDirs:   true,
		},
	}
}
