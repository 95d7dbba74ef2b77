package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/repogen/internal/debug"
)

// Policy decides what happens when the target of a write already exists.
type Policy int

const (
	// DoNotWrite writes only when the target does not exist yet.
	DoNotWrite Policy = iota
	// Override always writes, replacing existing content.
	Override
	// Skip never writes.
	Skip
)

// String returns the flag spelling of the policy.
func (p Policy) String() string {
	switch p {
	case DoNotWrite:
		return "do-not-write"
	case Override:
		return "override"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses the flag spelling of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "do-not-write", "donotwrite", "keep":
		return DoNotWrite, nil
	case "override", "overwrite":
		return Override, nil
	case "skip":
		return Skip, nil
	default:
		return DoNotWrite, fmt.Errorf("unknown overwrite policy %q (want override, do-not-write or skip)", s)
	}
}

// Action is the outcome a write would have.
type Action int

const (
	// ActionCreate means the target is missing and will be created.
	ActionCreate Action = iota
	// ActionOverwrite means the target exists and will be replaced.
	ActionOverwrite
	// ActionSkip means nothing will be written.
	ActionSkip
)

// String returns a human readable action name.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionOverwrite:
		return "overwrite"
	case ActionSkip:
		return "skip"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// PendingFile is a rendered model bound to a target location and write
// policy. Constructing one never touches the filesystem.
type PendingFile struct {
	model            Model
	target           Target
	dir              string
	root             string
	policy           Policy
	trimSpaces       bool
	collapseBlanks   bool
	finalNewline     bool
	intermediateDirs bool
	mode             os.FileMode
	writer           Writer
	findRoot         RootFinder
}

// Option configures a PendingFile.
type Option func(*PendingFile)

// WithDir places the file in a sub-directory. An absolute dir makes the
// location absolute and bypasses root discovery.
func WithDir(dir string) Option {
	return func(p *PendingFile) { p.dir = dir }
}

// WithRoot anchors relative locations at root instead of the discovered
// repository root.
func WithRoot(root string) Option {
	return func(p *PendingFile) { p.root = root }
}

// WithPolicy sets the overwrite policy. The default is DoNotWrite.
func WithPolicy(policy Policy) Option {
	return func(p *PendingFile) { p.policy = policy }
}

// WithTrimTrailingSpaces toggles removal of spaces before newlines.
// Enabled by default.
func WithTrimTrailingSpaces(enabled bool) Option {
	return func(p *PendingFile) { p.trimSpaces = enabled }
}

// WithCollapseBlankLines toggles collapsing runs of blank lines.
// Enabled by default.
func WithCollapseBlankLines(enabled bool) Option {
	return func(p *PendingFile) { p.collapseBlanks = enabled }
}

// WithFinalNewline makes sure written content ends with a newline.
// Disabled by default.
func WithFinalNewline(enabled bool) Option {
	return func(p *PendingFile) { p.finalNewline = enabled }
}

// WithIntermediateDirs chooses between creating every missing parent
// directory (true, the default) or only the last one.
func WithIntermediateDirs(enabled bool) Option {
	return func(p *PendingFile) { p.intermediateDirs = enabled }
}

// WithMode sets the permissions of the written file. The default is 0644.
func WithMode(mode os.FileMode) Option {
	return func(p *PendingFile) { p.mode = mode }
}

// WithWriter replaces the filesystem writer.
func WithWriter(w Writer) Option {
	return func(p *PendingFile) { p.writer = w }
}

// WithRootFinder replaces repository root discovery.
func WithRootFinder(f RootFinder) Option {
	return func(p *PendingFile) { p.findRoot = f }
}

func newPendingFile(m Model, target Target, opts []Option) *PendingFile {
	p := &PendingFile{
		model:            m,
		target:           target,
		policy:           DoNotWrite,
		trimSpaces:       true,
		collapseBlanks:   true,
		intermediateDirs: true,
		mode:             0644,
		writer:           NewFileWriter(),
		findRoot:         FindRepoRoot,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ForFixed prepares a write of a model that names itself.
func ForFixed(m FixedNameFile, opts ...Option) *PendingFile {
	return newPendingFile(m, Target{kind: intrinsicName, name: m.FileName()}, opts)
}

// ForNamed prepares a write of a model under a caller supplied name. The
// model's extension is appended unless name already carries it.
func ForNamed(m NamedFile, name string, opts ...Option) *PendingFile {
	if ext := m.Extension(); name != "" && ext != "" && !strings.HasSuffix(name, ext) {
		name += ext
	}
	return newPendingFile(m, Target{kind: suppliedName, name: name}, opts)
}

// Model returns the bound model.
func (p *PendingFile) Model() Model {
	return p.model
}

// Target returns the file name part of the location.
func (p *PendingFile) Target() Target {
	return p.target
}

// Policy returns the overwrite policy.
func (p *PendingFile) Policy() Policy {
	return p.policy
}

// RelativePath returns the location without the root anchor.
func (p *PendingFile) RelativePath() string {
	if p.target.name == "" {
		return ""
	}
	return filepath.Join(p.dir, p.target.name)
}

// Resolve returns the absolute target path. Relative locations are
// anchored at the configured root or, failing that, the repository root.
func (p *PendingFile) Resolve() (string, error) {
	rel := p.RelativePath()
	if rel == "" {
		return "", newTextFileError(LocationUndefined, "file name is empty", "", nil)
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}

	root := p.root
	if root == "" {
		if p.findRoot == nil {
			return "", newTextFileError(LocationUndefined, "relative location without a root", rel, nil)
		}
		found, err := p.findRoot()
		if err != nil {
			return "", newTextFileError(LocationUndefined, "cannot anchor relative location", rel, err)
		}
		root = found
	}

	abs, err := filepath.Abs(filepath.Join(root, rel))
	if err != nil {
		return "", newTextFileError(LocationUndefined, "cannot make location absolute", rel, err)
	}
	return abs, nil
}

// NormalizedContent renders the model and applies the enabled
// normalizations.
func (p *PendingFile) NormalizedContent() string {
	content := Render(p.model)
	if p.trimSpaces {
		content = TrimTrailingSpaces(content)
	}
	if p.collapseBlanks {
		content = CollapseBlankLines(content)
	}
	if p.finalNewline && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content
}

// Plan resolves the location and reports what Write would do, without
// writing anything.
func (p *PendingFile) Plan() (Action, string, error) {
	path, err := p.Resolve()
	if err != nil {
		return ActionSkip, "", err
	}
	return p.decide(path), path, nil
}

func (p *PendingFile) decide(path string) Action {
	exists := p.writer.Exists(path)
	switch p.policy {
	case Override:
		if exists {
			return ActionOverwrite
		}
		return ActionCreate
	case DoNotWrite:
		if exists {
			return ActionSkip
		}
		return ActionCreate
	default:
		return ActionSkip
	}
}

// Write resolves, normalizes and writes the file according to its policy.
// It returns true when the file was written and false when it was skipped.
func (p *PendingFile) Write() (bool, error) {
	path, err := p.Resolve()
	if err != nil {
		debug.Debug("[textfile] Failed: %s: %v", p.RelativePath(), err)
		return false, err
	}

	if p.decide(path) == ActionSkip {
		debug.Debug("[textfile] Skipped: %s (policy: %s)", path, p.policy)
		return false, nil
	}

	content := p.NormalizedContent()

	dir := filepath.Dir(path)
	if !p.writer.Exists(dir) {
		if err := p.writer.CreateDir(dir, p.intermediateDirs); err != nil {
			debug.Debug("[textfile] Failed: %s: %v", path, err)
			return false, err
		}
	}

	if err := p.writer.WriteFile(path, []byte(content), p.mode); err != nil {
		debug.Debug("[textfile] Failed: %s: %v", path, err)
		return false, err
	}

	debug.Debug("[textfile] Written: %s", path)
	return true, nil
}
