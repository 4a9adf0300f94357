package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulebook-dev/rulebook/internal/models"
)

var (
	createName        string
	createVersion     string
	createDescription string
	createLanguages   []string
	createFrameworks  []string
	createCategories  []string
)

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createName, "name", "", "display name (defaults to the id)")
	createCmd.Flags().StringVar(&createVersion, "set-version", "0.1.0", "template version")
	createCmd.Flags().StringVar(&createDescription, "description", "", "one-line description")
	createCmd.Flags().StringSliceVar(&createLanguages, "language", nil, "language the guidance applies to (repeatable)")
	createCmd.Flags().StringSliceVar(&createFrameworks, "framework", nil, "framework the guidance applies to (repeatable)")
	createCmd.Flags().StringSliceVar(&createCategories, "category", nil, "category label (repeatable)")
}

var createCmd = &cobra.Command{
	Use:     "create <id>",
	Aliases: []string{"new"},
	Short:   "Create a new guidance template",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		if err := svc.InitLibrary(); err != nil {
			return err
		}

		id := args[0]
		name := createName
		if name == "" {
			name = id
		}

		tmpl, err := models.NewTemplate(models.Metadata{
			Name:        name,
			Version:     createVersion,
			Description: createDescription,
			Languages:   createLanguages,
			Frameworks:  createFrameworks,
			Categories:  createCategories,
		})
		if err != nil {
			return err
		}

		starter, err := models.NewGuidanceItem("Getting started",
			"Replace this item with your first piece of guidance.")
		if err != nil {
			return err
		}
		starter.Description = "Placeholder item created by rulebook create"
		if err := tmpl.AddGuidance(starter); err != nil {
			return err
		}

		tmpl.FilePath = svc.Store().TemplatePath(id)
		if err := svc.CreateTemplate(tmpl); err != nil {
			return err
		}

		fmt.Printf("Created template %s at %s\n", id, tmpl.FilePath)
		return nil
	},
}
