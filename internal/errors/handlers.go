package errors

import (
	"fmt"
	"strings"
)

// CLIErrorHandler formats AppErrors for terminal display. It is the only
// handler: every error in rulebook ends at the CLI layer.
type CLIErrorHandler struct {
	Verbose bool
}

// NewCLIErrorHandler creates a new CLI error handler.
func NewCLIErrorHandler(verbose bool) *CLIErrorHandler {
	return &CLIErrorHandler{Verbose: verbose}
}

// FormatError formats an error for CLI display. With Verbose set, the
// cause chain is appended.
func (h *CLIErrorHandler) FormatError(err error) string {
	appErr := GetAppError(err)

	var b strings.Builder
	switch appErr.Severity {
	case SeverityCritical, SeverityError:
		b.WriteString("error: ")
	case SeverityWarning:
		b.WriteString("warning: ")
	default:
		b.WriteString("note: ")
	}
	b.WriteString(appErr.Message)

	if appErr.Details != "" {
		b.WriteString(" (")
		b.WriteString(appErr.Details)
		b.WriteString(")")
	}
	if h.Verbose && appErr.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  caused by: %v", appErr.Cause))
	}
	if hint := suggestionFor(appErr.Code); hint != "" {
		b.WriteString("\n  ")
		b.WriteString(hint)
	}
	return b.String()
}

func suggestionFor(code ErrorCode) string {
	switch code {
	case ErrCodeNotFound:
		return "run 'rulebook list' to see available templates"
	case ErrCodeLoad:
		return "check the file is valid YAML with 'metadata' and 'guidance' keys"
	case ErrCodeWrite:
		return "check the output directory exists and is writable"
	default:
		return ""
	}
}
