package app

import (
	"context"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"github.com/tacogips/repogen/internal/config"
	"github.com/tacogips/repogen/internal/debug"
	"github.com/tacogips/repogen/internal/textfile"
)

// GenerateOptions contains options for file generation.
type GenerateOptions struct {
	// ConfigPath is the path to .repogen.yml. Ignored when Config is set.
	ConfigPath string
	// Config is an already loaded configuration.
	Config *config.Config
	// Only restricts generation to the named files. Empty means the
	// configured files, or every file when none are configured.
	Only []string
	// Root overrides output.root.
	Root string
	// Policy overrides output.overwrite when set.
	Policy *textfile.Policy
	// DryRun reports what would be written without writing.
	DryRun bool
}

// FileResult is the outcome for a single file.
type FileResult struct {
	// Name is the generator name.
	Name string
	// Path is the resolved absolute path, empty if it could not be resolved.
	Path string
	// Action is what was (or, in a dry run, would be) done.
	Action textfile.Action
}

// GenerateResult contains the results of a generation run.
type GenerateResult struct {
	// FilesCreated is the number of new files created.
	FilesCreated int
	// FilesSkipped is the number of files skipped.
	FilesSkipped int
	// FilesOverwritten is the number of existing files overwritten.
	FilesOverwritten int
	// Errors contains per-file errors. Files written before an error are
	// kept.
	Errors []error
	// Files lists every processed file in natural path order.
	Files []FileResult
	// DryRun is true when nothing was written.
	DryRun bool
}

// Err combines the per-file errors, nil when there are none.
func (r *GenerateResult) Err() error {
	return multierr.Combine(r.Errors...)
}

// Planned is a file ready to be written.
type Planned struct {
	Name string
	File *textfile.PendingFile
}

// Plan builds the pending files selected by names, or by the configuration
// when names is empty. Nothing is written.
func Plan(cfg *config.Config, names []string, writeOpts []textfile.Option) ([]Planned, error) {
	entries, err := selectEntries(cfg, names)
	if err != nil {
		return nil, err
	}

	var errs error
	planned := make([]Planned, 0, len(entries))
	for _, e := range entries {
		f, err := e.Build(cfg, writeOpts)
		if err != nil {
			errs = multierr.Append(errs, NewGenerateError(e.Name, err))
			continue
		}
		planned = append(planned, Planned{Name: e.Name, File: f})
	}
	return planned, errs
}

func selectEntries(cfg *config.Config, names []string) ([]Entry, error) {
	if len(names) == 0 {
		names = cfg.Files
	}
	if len(names) == 0 {
		return Entries(), nil
	}

	var errs error
	seen := make(map[string]bool, len(names))
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		e, ok := Lookup(name)
		if !ok {
			errs = multierr.Append(errs, NewUnknownFileError(name))
			continue
		}
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		entries = append(entries, e)
	}
	if errs != nil {
		return nil, errs
	}
	return entries, nil
}

// Generate loads the configuration and writes the selected files.
// Per-file errors are collected in the result; the returned error is
// reserved for failures before any file is processed.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	debug.DebugSection("[app] Generate workflow start")
	debug.DebugValue("[app] Options", opts)

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	writeOpts, err := writeOptions(cfg, opts)
	if err != nil {
		return nil, NewValidationError("invalid output settings", err)
	}

	planned, planErr := Plan(cfg, opts.Only, writeOpts)
	if planErr != nil && len(planned) == 0 {
		return nil, planErr
	}

	result := &GenerateResult{
		Errors: multierr.Errors(planErr),
		DryRun: opts.DryRun,
	}

	for _, p := range planned {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		processFile(p, opts.DryRun, result)
	}

	sort.SliceStable(result.Files, func(i, j int) bool {
		return natural.Less(result.Files[i].Path, result.Files[j].Path)
	})

	debug.Debug("[app] Generate completed: created=%d overwritten=%d skipped=%d errors=%d",
		result.FilesCreated, result.FilesOverwritten, result.FilesSkipped, len(result.Errors))
	return result, nil
}

// DryRun reports what Generate would do without writing anything.
func DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	opts.DryRun = true
	return Generate(ctx, opts)
}

func processFile(p Planned, dryRun bool, result *GenerateResult) {
	action, path, err := p.File.Plan()
	if err != nil {
		debug.Debug("[app] %s: %v", p.Name, err)
		result.Errors = append(result.Errors, NewGenerateError(p.Name, err))
		return
	}

	if !dryRun && action != textfile.ActionSkip {
		written, err := p.File.Write()
		if err != nil {
			debug.Debug("[app] %s: %v", p.Name, err)
			result.Errors = append(result.Errors, NewGenerateError(p.Name, err))
			return
		}
		if !written {
			action = textfile.ActionSkip
		}
	}

	switch action {
	case textfile.ActionCreate:
		result.FilesCreated++
	case textfile.ActionOverwrite:
		result.FilesOverwritten++
	default:
		result.FilesSkipped++
	}
	result.Files = append(result.Files, FileResult{Name: p.Name, Path: path, Action: action})
}

func loadConfig(opts GenerateOptions) (*config.Config, error) {
	cfg := opts.Config
	if cfg == nil {
		path := opts.ConfigPath
		if path == "" {
			path = config.DefaultFileName
		}
		loaded, err := config.NewLoader().LoadOrDefault(path)
		if err != nil {
			return nil, NewAppError(ConfigLoadFailed, "failed to load configuration", err)
		}
		cfg = loaded
	}
	if err := config.Validate(cfg); err != nil {
		return nil, NewValidationError("invalid configuration", err)
	}
	return cfg, nil
}

func writeOptions(cfg *config.Config, opts GenerateOptions) ([]textfile.Option, error) {
	writeOpts, err := cfg.WriteOptions()
	if err != nil {
		return nil, err
	}
	if opts.Policy != nil {
		writeOpts = append(writeOpts, textfile.WithPolicy(*opts.Policy))
	}
	if opts.Root != "" {
		root, err := config.ExpandPath(opts.Root)
		if err != nil {
			return nil, err
		}
		writeOpts = append(writeOpts, textfile.WithRoot(root))
	}
	return writeOpts, nil
}
