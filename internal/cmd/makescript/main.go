// Command makescript generates the interpreter script corresponding
// to the main script of a check-in v2 API response.
//
// Usage:
//
//	makescript FILE
//
// where FILE contains the check-in v2 response. The interpreter script is
// written to the standard output as a single JSON line.
package main

import (
	"io"
	"os"

	"github.com/ooni/checkinv2/internal/makescript"
	"github.com/ooni/checkinv2/internal/must"
	"github.com/ooni/checkinv2/internal/version"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(mainWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

// mainWithArgs runs the command with the given arguments and returns the exit code.
func mainWithArgs(args []string, stdout, stderr io.Writer) int {
	rootCmd := &cobra.Command{
		Use:           "makescript FILE",
		Short:         "Generates the interpreter script from a check-in v2 response",
		Args:          cobra.ExactArgs(1),
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := makescript.LoadAndFlatten(args[0])
			if err != nil {
				return err
			}
			must.Fprintf(stdout, "%s\n", must.MarshalJSON(script))
			return nil
		},
	}
	rootCmd.SetVersionTemplate("{{ .Version }}\n")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		must.Fprintf(stderr, "FATAL: %s\n", err.Error())
		return 1
	}
	return 0
}
