package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/tacogips/repogen/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Long: `Print the repogen release, the commit and toolchain it was built from,
and how many file generators it ships.

Examples:
  repogen version
  repogen version --short
  repogen version -o yaml`,
	RunE: runVersion,
}

var (
	versionShort  bool
	versionFormat string
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the release number only")
	versionCmd.Flags().StringVarP(&versionFormat, "output", "o", "text", "Output format: text, json or yaml")
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version    string `json:"version" yaml:"version"`
	Commit     string `json:"commit" yaml:"commit"`
	BuildDate  string `json:"build_date" yaml:"build_date"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	Platform   string `json:"platform" yaml:"platform"`
	Generators int    `json:"generators" yaml:"generators"`
}

func currentBuildInfo() BuildInfo {
	return BuildInfo{
		Version:    Version,
		Commit:     GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Generators: len(app.Entries()),
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := currentBuildInfo()
	if versionShort {
		fmt.Fprintln(out, info.Version)
		return nil
	}

	switch versionFormat {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("encode build info: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("encode build info: %w", err)
		}
		return enc.Close()
	case "text", "":
		fmt.Fprintf(out, "repogen %s\n", info.Version)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  commit\t%s\n", info.Commit)
		fmt.Fprintf(w, "  built\t%s\n", info.BuildDate)
		fmt.Fprintf(w, "  go\t%s\n", info.GoVersion)
		fmt.Fprintf(w, "  platform\t%s\n", info.Platform)
		fmt.Fprintf(w, "  generators\t%d\n", info.Generators)
		return w.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", versionFormat)
	}
	return nil
}
