package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool
var quiet bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gcpctx",
	Short: "Save and switch between Google Cloud contexts",
	Long: `gcpctx keeps named snapshots of your gcloud state (active configuration,
account, project, application-default credentials and optionally the
kubectl context) and restores any of them with a single command.

Running gcpctx without a subcommand opens an interactive picker over the
saved contexts.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid names, failed gcloud invocations)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchInteractive()
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "gcpctx version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")

	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCurrentCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newMCPServerCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
