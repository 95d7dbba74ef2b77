package config

import (
	"bytes"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/tacogips/repogen/internal/text"
	"github.com/tacogips/repogen/internal/textfile"
)

const header = "# repogen configuration"

// document renders a Config as a textfile model.
type document struct {
	name string
	cfg  *Config
}

func (d document) FileName() string {
	return d.name
}

func (d document) Content() text.IndentedText {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.cfg); err != nil {
		panic("config: encode: " + err.Error())
	}
	_ = enc.Close()

	b := text.NewBuffer("  ")
	b.Line(header)
	b.Line(strings.TrimRight(buf.String(), "\n"))
	return b.Text()
}

// Pending returns the write of cfg to path. The file is not touched until
// Write is called on the result.
func Pending(path string, cfg *Config, opts ...textfile.Option) *textfile.PendingFile {
	dir, name := filepath.Split(path)
	base := []textfile.Option{textfile.WithFinalNewline(true)}
	if filepath.IsAbs(path) {
		base = append(base, textfile.WithDir(dir))
	} else {
		base = append(base, textfile.WithRoot("."), textfile.WithDir(dir))
	}
	return textfile.ForFixed(document{name: name, cfg: cfg}, append(base, opts...)...)
}

// Save writes cfg to path using policy. It reports whether the file was
// written.
func Save(path string, cfg *Config, policy textfile.Policy) (bool, error) {
	return Pending(path, cfg, textfile.WithPolicy(policy)).Write()
}
