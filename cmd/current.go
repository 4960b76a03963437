package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the name of the active context",
		Long: `Prints the name of the context the active tracker points at, or "none"
when no context has been switched to yet. The tracker reflects the last
successful switch; it is not re-derived from live gcloud state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			name := eng.Current()
			if name == "" {
				fmt.Println("none")
				return nil
			}
			fmt.Println(name)
			return nil
		},
	}
}
