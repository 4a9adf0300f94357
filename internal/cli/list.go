package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rulebook-dev/rulebook/internal/models"
)

var listTagsExpr string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listTagsExpr, "tags", "", "only show templates with items matching a boolean tag expression, e.g. \"go AND (testing OR style)\"")
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List guidance templates in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		templates, err := svc.ListTemplates()
		if err != nil {
			return err
		}

		var expr *models.TagExpression
		if listTagsExpr != "" {
			expr, err = models.ParseTagExpression(listTagsExpr)
			if err != nil {
				return err
			}
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tNAME\tVERSION\tITEMS\tTAGS")
		shown := 0
		for _, tmpl := range templates {
			if expr != nil && len(tmpl.GuidanceMatching(expr)) == 0 {
				continue
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
				tmpl.ID(),
				tmpl.Metadata.Name,
				tmpl.Metadata.Version,
				len(tmpl.Items),
				strings.Join(tmpl.Tags(), ", "))
			shown++
		}
		if err := writer.Flush(); err != nil {
			return err
		}

		if shown == 0 {
			fmt.Println("No templates found. Create one with 'rulebook create <id>'.")
		}
		return nil
	},
}
