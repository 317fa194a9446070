package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renato0307/quill/internal/commands"
	"github.com/renato0307/quill/internal/ui"
)

// commandsCmd lists the command catalog, fuzzy-filtered by an optional query.
func commandsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [query]",
		Short: "List the slash commands available in the palette",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			suggestions := catalog.All()
			if len(args) == 1 {
				suggestions = catalog.Search(args[0])
			}
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching commands")
				return nil
			}

			printSuggestions(cmd, suggestions)
			return nil
		},
	}
}

func printSuggestions(cmd *cobra.Command, suggestions []commands.Suggestion) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PREFIX\tLABEL\tDESCRIPTION")
	for _, s := range suggestions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Prefix, s.Label, s.Description)
	}
	w.Flush()
}

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ui.AvailableThemes(), "\n"))
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quill %s (%s)\n", version, commit)
		},
	}
}
