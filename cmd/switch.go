package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gcpctx/internal/engine"
	"gcpctx/internal/tui"
)

func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch [name]",
		Short: "Make a saved context the active one",
		Long: `Activates the named context: switches gcloud to its configuration,
restores its application-default credentials and, when the snapshot
recorded one, switches the kubectl context as well.

Without a name an interactive picker over the saved contexts opens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return switchInteractive()
			}

			eng, err := newEngine()
			if err != nil {
				return err
			}
			return switchTo(eng, args[0])
		},
	}
}

// switchTo runs the switch and reports the outcome on the console.
func switchTo(eng *engine.Engine, name string) error {
	result, err := eng.Switch(name)
	if err != nil {
		return err
	}

	printWarnings(result.Warnings)
	if result.Skipped {
		say("Context %q is already active", name)
		return nil
	}

	md := result.Metadata
	if md.Project != "" {
		say("Switched to context %q (account %s, project %s)", name, md.Account, md.Project)
	} else {
		say("Switched to context %q (account %s)", name, md.Account)
	}
	return nil
}

// switchInteractive opens the picker over all saved contexts and switches
// to whichever the user selects. Aborting the picker is not an error.
func switchInteractive() error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	listing, err := eng.List()
	if err != nil {
		return err
	}
	if len(listing.Contexts) == 0 {
		return fmt.Errorf("no saved contexts yet, create one with 'gcpctx save <name>'")
	}

	items := make([]tui.Item, 0, len(listing.Contexts))
	for _, info := range listing.Contexts {
		item := tui.Item{Name: info.Name, Active: info.Active}
		// Metadata is decoration here; a context whose metadata cannot be
		// read still shows up and can be selected (and will fail with a
		// proper error on switch).
		if md, mdErr := eng.Store().ReadMetadata(info.Name); mdErr == nil {
			item.Account = md.Account
			item.Project = md.Project
		}
		items = append(items, item)
	}

	choice, err := tui.Pick(items)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}
	return switchTo(eng, choice)
}
