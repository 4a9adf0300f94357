package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search templates by name and description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		results, err := svc.SearchTemplates(query)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No templates match %q.\n", query)
			return nil
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tNAME\tDESCRIPTION")
		for _, tmpl := range results {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", tmpl.ID(), tmpl.Metadata.Name, tmpl.Metadata.Description)
		}
		return writer.Flush()
	},
}
