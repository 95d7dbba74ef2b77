package cli

import (
	"github.com/spf13/pflag"

	"github.com/tacogips/repogen/internal/textfile"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagOverwrite   = "overwrite"
	FlagConfig      = "config"
	FlagForce       = "force"
	FlagDryRun      = "dry-run"
	FlagOnly        = "only"
	FlagRoot        = "root"
	FlagInteractive = "interactive"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescOverwrite   = "Overwrite policy: do-not-write, override or skip (default from config)"
	DescConfig      = "Path to config file"
	DescForce       = "Force overwrite"
	DescDryRun      = "Show actions without execution"
	DescOnly        = "Generate only the named files (see 'repogen list')"
	DescRoot        = "Directory relative file locations are anchored at"
	DescInteractive = "Prompt for project settings"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress output"
	DescDebug       = "Enable debug logging"
)

// policyValue is a pflag.Value for textfile.Policy. It records whether
// the flag was given so the configured policy applies otherwise.
type policyValue struct {
	policy textfile.Policy
	set    bool
}

var _ pflag.Value = (*policyValue)(nil)

func (v *policyValue) String() string {
	if !v.set {
		return ""
	}
	return v.policy.String()
}

func (v *policyValue) Set(s string) error {
	p, err := textfile.ParsePolicy(s)
	if err != nil {
		return err
	}
	v.policy = p
	v.set = true
	return nil
}

func (v *policyValue) Type() string {
	return "policy"
}

// Get returns the policy, or nil when the flag was not given.
func (v *policyValue) Get() *textfile.Policy {
	if !v.set {
		return nil
	}
	p := v.policy
	return &p
}
