package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/repogen/internal/config"
	"github.com/tacogips/repogen/internal/debug"
	"github.com/tacogips/repogen/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version()
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "repogen",
	Short: "Repository scaffolding generator for Swift libraries",
	Long: `repogen writes the boilerplate files of a Swift library repository
(README, LICENSE, podspec, Podfile, Fastfile, SwiftLint, xcconfig and
Info.plist) from a single .repogen.yml.

Use "repogen init" to create the configuration, then "repogen generate".
Relative paths are anchored at the repository root (the nearest directory
containing .git, .hg or .svn) unless output.root or --root is set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVarP(&globalConfig, FlagConfig, "c", config.DefaultFileName, DescConfig)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(errOut, "Error: %v\n", err)
}

// loadConfig loads the configuration named by --config, falling back to
// defaults when the file does not exist.
func loadConfig() (*config.Config, error) {
	return config.NewLoader().LoadOrDefault(globalConfig)
}
