package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a template library",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cfg, err := newService()
		if err != nil {
			return err
		}
		if err := svc.InitLibrary(); err != nil {
			return err
		}
		fmt.Printf("Initialized library at %s\n", cfg.LibraryDir)
		return nil
	},
}
