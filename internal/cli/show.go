package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Aliases: []string{"get"},
	Short:   "Show a template's metadata and items",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		tmpl, err := svc.GetTemplate(args[0])
		if err != nil {
			return err
		}

		meta := tmpl.Metadata
		fmt.Printf("%s (version %s)\n", meta.Name, meta.Version)
		if meta.Description != "" {
			fmt.Println(meta.Description)
		}
		printField := func(label string, values []string) {
			if len(values) > 0 {
				fmt.Printf("%s: %s\n", label, strings.Join(values, ", "))
			}
		}
		printField("Languages", meta.Languages)
		printField("Frameworks", meta.Frameworks)
		printField("Categories", meta.Categories)

		fmt.Printf("\nItems (%d):\n", len(tmpl.Items))
		for _, item := range tmpl.Items {
			fmt.Printf("  %s (priority %d)", item.Name, item.Priority)
			if len(item.Tags) > 0 {
				fmt.Printf(" [%s]", strings.Join(item.Tags, ", "))
			}
			fmt.Println()
			if item.Description != "" {
				fmt.Printf("    %s\n", item.Description)
			}
		}
		return nil
	},
}
