package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulebook-dev/rulebook/internal/clipboard"
	"github.com/rulebook-dev/rulebook/internal/renderer"
	"github.com/rulebook-dev/rulebook/internal/service"
)

var copyTarget string

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.Flags().StringVarP(&copyTarget, "target", "t", string(renderer.TargetCursor), "target dialect to copy")
}

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Render a template and copy it to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		target, err := renderer.ParseTarget(copyTarget)
		if err != nil {
			return err
		}

		doc, err := svc.Preview(args[0], target, service.ItemFilter{})
		if err != nil {
			return err
		}

		if err := clipboard.Copy(doc); err != nil {
			return err
		}
		fmt.Println("Copied to clipboard.")
		return nil
	},
}
