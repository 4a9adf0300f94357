// Package cli wires the rulebook commands. Each command builds its
// configuration explicitly and passes it down; errors propagate back
// here, where they are formatted and mapped to a non-zero exit code.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rulebook-dev/rulebook/internal/config"
	apperrors "github.com/rulebook-dev/rulebook/internal/errors"
	"github.com/rulebook-dev/rulebook/internal/service"
)

var (
	flagLibrary string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rulebook",
	Short: "Manage and render AI-assistant guidance templates",
	Long: "Rulebook keeps YAML guidance templates in a local library and renders\n" +
		"them into editor-specific rule documents (Cursor, Copilot, Claude).",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "template library directory (default ~/.rulebook, env RULEBOOK_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. Errors are formatted for the terminal
// and returned so main can exit non-zero.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		handler := apperrors.NewCLIErrorHandler(flagVerbose)
		fmt.Fprintln(os.Stderr, handler.FormatError(err))
		return err
	}
	return nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// newService builds the config and service for one command invocation.
func newService() (*service.Service, *config.Config, error) {
	cfg, err := config.Load(flagLibrary)
	if err != nil {
		return nil, nil, err
	}
	svc, err := service.NewService(cfg, newLogger())
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
