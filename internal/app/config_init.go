package app

import (
	"github.com/tacogips/repogen/internal/config"
	"github.com/tacogips/repogen/internal/debug"
	"github.com/tacogips/repogen/internal/textfile"
)

// ConfigInitOptions contains options for configuration initialization.
type ConfigInitOptions struct {
	// Path is where the configuration is written.
	Path string
	// Force overwrites an existing configuration.
	Force bool
	// Config is written instead of the defaults when set.
	Config *config.Config
}

// ConfigInit writes a .repogen.yml. An existing file is kept unless
// Force is set.
func ConfigInit(opts ConfigInitOptions) (string, error) {
	path := opts.Path
	if path == "" {
		path = config.DefaultFileName
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	debug.DebugSection("[app] ConfigInit workflow start")
	debug.DebugValue("[app] Path", path)
	debug.DebugValue("[app] Force", opts.Force)

	if err := config.Validate(cfg); err != nil {
		return "", NewValidationError("invalid configuration", err)
	}

	policy := textfile.DoNotWrite
	if opts.Force {
		policy = textfile.Override
	}

	pending := config.Pending(path, cfg, textfile.WithPolicy(policy))
	resolved, err := pending.Resolve()
	if err != nil {
		return "", NewInitError("cannot resolve "+path, err)
	}
	written, err := pending.Write()
	if err != nil {
		return "", NewInitError("failed to write "+resolved, err)
	}
	if !written {
		return "", NewInitError("configuration already exists at "+resolved+" (use --force to overwrite)", nil)
	}

	debug.Debug("[app] ConfigInit completed: %s", resolved)
	return resolved, nil
}
