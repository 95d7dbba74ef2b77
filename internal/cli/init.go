package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/repogen/internal/app"
	"github.com/tacogips/repogen/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .repogen.yml configuration",
	Long: `Create .repogen.yml with default settings, or with answers to
interactive prompts.

Values may reference ${VAR}, resolved from a .env file next to the
configuration or from the environment when it is loaded.

Examples:
  repogen init
  repogen init --interactive
  repogen init --config ./configs/repogen.yml --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// Init command flags
var (
	initForce       bool
	initInteractive bool
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, FlagForce, "f", false, "Overwrite an existing configuration")
	initCmd.Flags().BoolVarP(&initInteractive, FlagInteractive, "i", false, DescInteractive)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if initInteractive {
		if err := PromptForConfig(cfg); err != nil {
			return err
		}
	}

	if initForce {
		printWarning("Force mode enabled - will overwrite existing configuration")
	}

	path, err := app.ConfigInit(app.ConfigInitOptions{
		Path:   globalConfig,
		Force:  initForce,
		Config: cfg,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Initialization failed: %v", err))
		return err
	}

	printSuccess("Created: " + path)
	printInfo("")
	printInfo("Next steps:")
	printInfo("  1. Edit " + globalConfig + " to describe your project")
	printInfo("  2. Run: repogen generate --dry-run")
	return nil
}
