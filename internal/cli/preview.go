package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/rulebook-dev/rulebook/internal/renderer"
	"github.com/rulebook-dev/rulebook/internal/service"
)

var (
	previewTarget string
	previewRaw    bool
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewTarget, "target", "t", string(renderer.TargetCursor), "target dialect to preview")
	previewCmd.Flags().BoolVar(&previewRaw, "raw", false, "print the raw document instead of rendered markdown")
}

var previewCmd = &cobra.Command{
	Use:   "preview <id>",
	Short: "Render a template to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		target, err := renderer.ParseTarget(previewTarget)
		if err != nil {
			return err
		}

		doc, err := svc.Preview(args[0], target, service.ItemFilter{})
		if err != nil {
			return err
		}

		if previewRaw {
			fmt.Print(doc)
			return nil
		}

		rendered, err := glamour.Render(doc, "auto")
		if err != nil {
			// Glamour failing is cosmetic; fall back to the raw document.
			fmt.Print(doc)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}
