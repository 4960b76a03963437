package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <name> <command> [args...]",
		Short: "Run a command with a context's credentials, without switching",
		Long: `Runs the given command with GOOGLE_APPLICATION_CREDENTIALS pointing at
the named context's stored credential blob and CLOUDSDK_ACTIVE_CONFIG_NAME
set to its gcloud configuration. Neither the live gcloud state nor the
active tracker is touched, so concurrent runs against different contexts
are safe.

The command's exit code is propagated.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			code, err := eng.Run(args[0], args[1:])
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	// Stop flag parsing at the first positional so flags belonging to the
	// wrapped command are passed through untouched.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
