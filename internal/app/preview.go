package app

import (
	"github.com/tacogips/repogen/internal/config"
)

// Preview renders the named file exactly as Generate would write it.
func Preview(cfg *config.Config, name string) (string, error) {
	if err := config.Validate(cfg); err != nil {
		return "", NewValidationError("invalid configuration", err)
	}
	e, ok := Lookup(name)
	if !ok {
		return "", NewUnknownFileError(name)
	}
	writeOpts, err := cfg.WriteOptions()
	if err != nil {
		return "", NewValidationError("invalid output settings", err)
	}
	f, err := e.Build(cfg, writeOpts)
	if err != nil {
		return "", NewGenerateError(e.Name, err)
	}
	return f.NormalizedContent(), nil
}
