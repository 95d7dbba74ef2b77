package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/repogen/internal/config"
	"github.com/tacogips/repogen/internal/gen/license"
	"github.com/tacogips/repogen/internal/textfile"
)

// askOne is survey.AskOne, replaced in tests.
var askOne = survey.AskOne

var (
	versionPattern    = regexp.MustCompile(`^\d+(\.\d+){0,2}([-+][0-9A-Za-z.-]+)?$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// platforms offered by the interactive prompt.
var platforms = []string{"ios", "osx", "tvos", "watchos"}

// PromptForConfig interactively fills the project and output settings of
// cfg. Current values are offered as defaults.
func PromptForConfig(cfg *config.Config) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Please describe the project:")
	fmt.Fprintln(out)

	p := &cfg.Project
	steps := []struct {
		field string
		run   func() error
	}{
		{"name", func() error {
			return promptString("Name", "Swift module name", &p.Name, survey.Required,
				matchPattern(identifierPattern, "name must start with a letter and contain only letters, digits and underscores"))
		}},
		{"summary", func() error { return promptString("Summary", "One line description", &p.Summary) }},
		{"author", func() error { return promptString("Author", "Copyright holder", &p.Author) }},
		{"email", func() error { return promptString("Email", "", &p.Email) }},
		{"repository", func() error { return promptString("Repository", "GitHub owner/name", &p.Repository) }},
		{"version", func() error {
			return promptString("Version", "Initial release", &p.Version, survey.Required,
				matchPattern(versionPattern, "must be a version like 1.0.0"))
		}},
		{"license", func() error { return promptSelect("License", license.Kinds(), &p.License) }},
		{"platform", func() error { return promptPlatform(p) }},
		{"indent", func() error { return promptInt("Indent width", &cfg.Output.Indent, 1, 8) }},
		{"overwrite", func() error {
			return promptSelect("Overwrite policy",
				[]string{textfile.DoNotWrite.String(), textfile.Override.String(), textfile.Skip.String()},
				&cfg.Output.Overwrite)
		}},
	}

	for _, s := range steps {
		if err := s.run(); err != nil {
			return fmt.Errorf("failed to prompt for %s: %w", s.field, err)
		}
	}
	return nil
}

// promptString prompts for a string, keeping *target as the default.
func promptString(message, help string, target *string, validators ...survey.Validator) error {
	prompt := &survey.Input{
		Message: message,
		Default: *target,
		Help:    help,
	}

	opts := []survey.AskOpt{}
	if len(validators) > 0 {
		opts = append(opts, survey.WithValidator(survey.ComposeValidators(validators...)))
	}

	var result string
	if err := askOne(prompt, &result, opts...); err != nil {
		return err
	}
	*target = strings.TrimSpace(result)
	return nil
}

// promptSelect prompts for one of options.
func promptSelect(message string, options []string, target *string) error {
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	for _, o := range options {
		if strings.EqualFold(o, *target) {
			prompt.Default = o
		}
	}

	var result string
	if err := askOne(prompt, &result); err != nil {
		return err
	}
	*target = result
	return nil
}

// promptInt prompts for an integer within [lo, hi].
func promptInt(message string, target *int, lo, hi int) error {
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s [%d-%d]", message, lo, hi),
		Default: strconv.Itoa(*target),
	}

	var result string
	if err := askOne(prompt, &result, survey.WithValidator(intRange(lo, hi))); err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(result))
	if err != nil {
		return err
	}
	*target = n
	return nil
}

// promptPlatform replaces the platform list with a single answer.
func promptPlatform(p *config.ProjectConfig) error {
	current := config.PlatformConfig{Name: "ios", Version: "13.0"}
	if len(p.Platforms) > 0 {
		current = p.Platforms[0]
	}
	if err := promptSelect("Platform", platforms, &current.Name); err != nil {
		return err
	}
	if err := promptString("Deployment target", "Minimum "+current.Name+" version", &current.Version,
		survey.Required, matchPattern(versionPattern, "must be a version like 13.0")); err != nil {
		return err
	}
	p.Platforms = []config.PlatformConfig{current}
	return nil
}

// intRange validates an integer answer within [lo, hi].
func intRange(lo, hi int) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		num, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		if num < lo || num > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// matchPattern validates a string answer against pattern.
func matchPattern(pattern *regexp.Regexp, message string) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if str == "" {
			return nil
		}
		if !pattern.MatchString(strings.TrimSpace(str)) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
