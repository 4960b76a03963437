package cmd

import (
	"github.com/spf13/cobra"
)

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Snapshot the current gcloud state under a name",
		Long: `Captures the active gcloud configuration, account, project, the
application-default credentials blob and the current kubectl context (if
any) and stores them under the given name. Saving an existing name
replaces its snapshot entirely.

Saving does not make the context active; use 'gcpctx switch' for that.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			result, err := eng.Save(args[0])
			if err != nil {
				return err
			}

			md := result.Metadata
			if md.Project != "" {
				say("Saved context %q (config %s, account %s, project %s)", args[0], md.GcloudConfig, md.Account, md.Project)
			} else {
				say("Saved context %q (config %s, account %s)", args[0], md.GcloudConfig, md.Account)
			}
			if md.KubectlContext != "" {
				say("Recorded kubectl context %q", md.KubectlContext)
			}
			return nil
		},
	}
}
