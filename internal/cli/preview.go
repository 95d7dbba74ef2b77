package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/repogen/internal/app"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Print a generated file without writing it",
	Long: `Print the content of one file exactly as generate would write it.

Examples:
  repogen preview podspec
  repogen preview readme --config ./other.yml`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, e := range app.Entries() {
			names = append(names, e.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	content, err := app.Preview(cfg, args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(out, content)
	return nil
}
