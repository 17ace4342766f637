// Package ui renders import progress in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/types"
	"github.com/arthur-debert/dotin/pkg/ui/json"
	"github.com/arthur-debert/dotin/pkg/ui/terminal"
	"github.com/arthur-debert/dotin/pkg/ui/text"
)

// NewReporter creates a reporter for the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewReporter(format Format, output io.Writer) (types.Reporter, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewReporter(DetectFormat(file), output)
		}
		// If not a file, default to terminal format
		return NewReporter(FormatTerminal, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
