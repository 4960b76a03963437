package cmd

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var removeConfig bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved context",
		Long: `Removes the named context from the store. Deleting the active context
clears the active tracker. With --gcloud-config the gcloud configuration
the context references is deleted as well (best-effort).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			result, err := eng.Delete(args[0], removeConfig)
			if err != nil {
				return err
			}

			printWarnings(result.Warnings)
			say("Deleted context %q", args[0])
			if result.ClearedActive {
				say("No context is active now")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&removeConfig, "gcloud-config", false, "also delete the gcloud configuration the context references")
	return cmd
}
