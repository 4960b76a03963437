package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved contexts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}

			listing, err := eng.List()
			if err != nil {
				return err
			}

			if len(listing.Contexts) == 0 {
				fmt.Println("No saved contexts. Create one with 'gcpctx save <name>'.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"", "NAME", "CONFIG", "ACCOUNT", "PROJECT", "KUBECTL"})

			for _, info := range listing.Contexts {
				marker := ""
				if info.Active {
					marker = text.FgGreen.Sprint("*")
				}
				md, mdErr := eng.Store().ReadMetadata(info.Name)
				if mdErr != nil {
					t.AppendRow(table.Row{marker, info.Name, text.FgRed.Sprint("(unreadable)"), "", "", ""})
					continue
				}
				t.AppendRow(table.Row{marker, info.Name, md.GcloudConfig, md.Account, md.Project, md.KubectlContext})
			}
			t.Render()

			if listing.Stale {
				fmt.Fprintf(os.Stderr, "Warning: active tracker points at %q, which no longer exists\n", listing.Active)
			}
			return nil
		},
	}
}
