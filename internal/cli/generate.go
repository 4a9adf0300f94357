package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulebook-dev/rulebook/internal/models"
	"github.com/rulebook-dev/rulebook/internal/renderer"
	"github.com/rulebook-dev/rulebook/internal/service"
	"github.com/rulebook-dev/rulebook/internal/ui"
)

var (
	generateTargets      []string
	generateOutput       string
	generateTag          string
	generateTagsExpr     string
	generatePriority     int
	generatePriorityMode string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringSliceVarP(&generateTargets, "target", "t", nil, "render targets (cursor, copilot, claude); defaults to configured targets")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory (defaults to configured output dir)")
	generateCmd.Flags().StringVar(&generateTag, "tag", "", "only include items carrying this exact tag")
	generateCmd.Flags().StringVar(&generateTagsExpr, "tags", "", "only include items matching a boolean tag expression")
	generateCmd.Flags().IntVar(&generatePriority, "priority", 0, "priority threshold for filtering; direction set by --priority-mode")
	generateCmd.Flags().StringVar(&generatePriorityMode, "priority-mode", "", "priority comparison: at-least (>=) or at-most (<=)")
}

var generateCmd = &cobra.Command{
	Use:   "generate [id]",
	Short: "Render a template into editor rule files",
	Long: "Render a guidance template into one file per target. With no id an\n" +
		"interactive picker lists the library.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cfg, err := newService()
		if err != nil {
			return err
		}

		id, err := resolveTemplateID(svc, args)
		if err != nil {
			return err
		}
		if id == "" {
			return nil // picker cancelled
		}

		targetNames := generateTargets
		if len(targetNames) == 0 {
			targetNames = cfg.Targets
		}
		targets := make([]renderer.Target, 0, len(targetNames))
		for _, name := range targetNames {
			target, err := renderer.ParseTarget(name)
			if err != nil {
				return err
			}
			targets = append(targets, target)
		}

		filter, err := buildItemFilter(cmd, cfg.PriorityMode)
		if err != nil {
			return err
		}

		written, err := svc.Generate(id, targets, generateOutput, filter)
		for _, path := range written {
			fmt.Printf("Wrote %s\n", path)
		}
		return err
	},
}

func resolveTemplateID(svc *service.Service, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	templates, err := svc.ListTemplates()
	if err != nil {
		return "", err
	}
	selected, err := ui.PickTemplate(templates)
	if err != nil {
		return "", err
	}
	if selected == nil {
		return "", nil
	}
	return selected.ID(), nil
}

// buildItemFilter translates the shared filter flags into a service filter.
func buildItemFilter(cmd *cobra.Command, defaultMode string) (service.ItemFilter, error) {
	filter := service.ItemFilter{Tag: generateTag}

	if generateTagsExpr != "" {
		expr, err := models.ParseTagExpression(generateTagsExpr)
		if err != nil {
			return service.ItemFilter{}, err
		}
		filter.Expr = expr
	}

	if cmd.Flags().Changed("priority") {
		threshold := generatePriority
		filter.Priority = &threshold

		modeName := generatePriorityMode
		if modeName == "" {
			modeName = defaultMode
		}
		mode, err := models.ParsePriorityMode(modeName)
		if err != nil {
			return service.ItemFilter{}, err
		}
		filter.Mode = mode
	}

	return filter, nil
}
