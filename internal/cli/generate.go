package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/repogen/internal/app"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the repository files",
	Long: `Write the files configured in .repogen.yml.

Existing files are kept unless the overwrite policy is "override". Files
written before an error are not rolled back.

Examples:
  repogen generate
  repogen generate --dry-run
  repogen generate --only readme,license --overwrite override
  repogen generate --root ./MyKit`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// Generate command flags
var (
	generateDryRun    bool
	generateOnly      []string
	generateRoot      string
	generateOverwrite policyValue
)

func init() {
	generateCmd.Flags().BoolVarP(&generateDryRun, FlagDryRun, "n", false, DescDryRun)
	generateCmd.Flags().StringSliceVar(&generateOnly, FlagOnly, nil, DescOnly)
	generateCmd.Flags().StringVar(&generateRoot, FlagRoot, "", DescRoot)
	generateCmd.Flags().Var(&generateOverwrite, FlagOverwrite, DescOverwrite)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if generateDryRun {
		printProgress("Dry run: no files will be written")
	}
	if p := generateOverwrite.Get(); p != nil {
		printInfo(fmt.Sprintf("Overwrite policy: %s", p))
	}

	result, err := app.Generate(cmd.Context(), app.GenerateOptions{
		Config: cfg,
		Only:   generateOnly,
		Root:   generateRoot,
		Policy: generateOverwrite.Get(),
		DryRun: generateDryRun,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Generation failed: %v", err))
		return err
	}

	for _, f := range result.Files {
		printAction(f.Action, f.Path, result.DryRun)
	}
	for _, e := range result.Errors {
		printErrorMsg(e.Error())
	}

	printInfo("")
	printInfo(fmt.Sprintf("Created: %d, Overwritten: %d, Skipped: %d",
		result.FilesCreated, result.FilesOverwritten, result.FilesSkipped))

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d file(s) failed", len(result.Errors))
	}
	return nil
}
