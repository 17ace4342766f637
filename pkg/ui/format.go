package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects which reporter renders an import.
type Format int

const (
	// FormatAuto resolves to FormatTerminal or FormatText once the output
	// is known, see DetectFormat.
	FormatAuto Format = iota
	// FormatTerminal is the lipgloss styled report with colored sections.
	FormatTerminal
	// FormatText is the plain report, one line per skip, directory and move.
	FormatText
	// FormatJSON prints a single document with the result or the error.
	FormatJSON
)

// String returns the output.format value that selects f.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps an output.format setting or --format flag to the report it
// selects. Matching ignores case, and an empty value means auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown report format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat picks the report for an auto import writing to output. It is
// the plain text report when NO_COLOR is set, when output is piped or
// redirected, or when the terminal has no colors. A color terminal gets the
// styled report.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
