// fusionctl scores charts from YAML or JSON files without running the API.
//
// Usage:
//
//	fusionctl compat person1.yaml person2.yaml
//	fusionctl matrix subject.yaml [--top=5]
//	fusionctl seun person1.yaml person2.yaml [--year=2026]
//	fusionctl summary
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fusionctl",
		Short:         "Saju and Western astrology fusion scoring",
		Long:          "fusionctl runs the compatibility scorer, the destiny matrix and the annual\ncycle analysis on chart files and prints the result as JSON.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.AddCommand(newCompatCmd(), newMatrixCmd(), newSeunCmd(), newSummaryCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
