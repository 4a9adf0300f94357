package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags <id>",
	Short: "List the distinct tags used by a template's items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		tmpl, err := svc.GetTemplate(args[0])
		if err != nil {
			return err
		}

		tags := tmpl.Tags()
		if len(tags) == 0 {
			fmt.Println("No tags.")
			return nil
		}
		for _, tag := range tags {
			fmt.Printf("%s (%d items)\n", tag, len(tmpl.GuidanceByTag(tag)))
		}
		return nil
	},
}
