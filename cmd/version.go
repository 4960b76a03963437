package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gcpctx",
		Long:  `All software has versions. This is gcpctx's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gcpctx version %s\n", rootCmd.Version)
		},
	}
}
