package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <id>",
	Short: "Check a template for authoring issues",
	Long: "Load a template and report non-fatal warnings such as duplicate item\n" +
		"names or untagged items. Structural problems fail the load itself.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		warnings, err := svc.Validate(args[0])
		if err != nil {
			return err
		}
		if len(warnings) == 0 {
			fmt.Printf("%s: no issues found\n", args[0])
			return nil
		}
		for _, warning := range warnings {
			fmt.Printf("warning: %s\n", warning)
		}
		return nil
	},
}
