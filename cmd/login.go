package cmd

import (
	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "Re-authenticate a context and save the fresh credentials",
		Long: `Ensures a gcloud configuration for the context exists and is active,
runs the interactive 'gcloud auth login' and
'gcloud auth application-default login' browser flows, then saves the
resulting state under the given name. Individual auth steps may be
aborted; the save fails if no usable credentials came out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			result, err := eng.Login(args[0])
			if err != nil {
				return err
			}

			printWarnings(result.Warnings)
			md := result.Save.Metadata
			say("Logged in and saved context %q (config %s, account %s)", args[0], md.GcloudConfig, md.Account)
			return nil
		},
	}
}
