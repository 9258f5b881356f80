// Package presenter provides consistent CLI output for user-facing
// messages: success, error, warning, and informational output with
// color support and quiet mode.
package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ColorMode represents different color output modes
type ColorMode int

const (
	// ColorAuto automatically detects whether to use colored output
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output
	ColorAlways
	// ColorNever disables colored output
	ColorNever
)

// TerminalPresenter writes user-facing messages to a terminal
type TerminalPresenter struct {
	output      io.Writer
	errorOutput io.Writer
	quiet       bool
}

// New creates a TerminalPresenter with default settings
func New() *TerminalPresenter {
	return NewWithOptions(os.Stdout, os.Stderr, detectColorMode())
}

// NewWithOptions creates a TerminalPresenter with custom settings
func NewWithOptions(output, errorOutput io.Writer, colorMode ColorMode) *TerminalPresenter {
	switch colorMode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	case ColorAuto:
		// Let the color package auto-detect
	}

	return &TerminalPresenter{
		output:      output,
		errorOutput: errorOutput,
	}
}

func detectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}
	switch os.Getenv("SKILLET_COLOR") {
	case "always", "force":
		return ColorAlways
	case "never", "off":
		return ColorNever
	}
	return ColorAuto
}

// SetQuiet enables or disables quiet mode, which suppresses
// everything except errors.
func (p *TerminalPresenter) SetQuiet(quiet bool) { p.quiet = quiet }

// IsQuiet returns whether quiet mode is enabled
func (p *TerminalPresenter) IsQuiet() bool { return p.quiet }

// Error presents an error message with context
func (p *TerminalPresenter) Error(err error, context string) {
	if err == nil {
		return
	}
	fmt.Fprintf(p.errorOutput, "%s %s: %v\n", color.RedString("Error:"), context, err)
}

// Success presents a success message
func (p *TerminalPresenter) Success(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s %s\n", color.GreenString("✓"), message)
}

// Warning presents a warning message
func (p *TerminalPresenter) Warning(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s %s\n", color.YellowString("Warning:"), message)
}

// Info presents an informational message
func (p *TerminalPresenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.output, message)
}

// Section presents a section header
func (p *TerminalPresenter) Section(title string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "\n%s\n%s\n", color.CyanString(title), strings.Repeat("-", len(title)))
}

// Default presenter instance used by the package-level functions
var defaultPresenter = New()

// Error presents an error via the default presenter
func Error(err error, context string) { defaultPresenter.Error(err, context) }

// Success presents a success message via the default presenter
func Success(message string) { defaultPresenter.Success(message) }

// Warning presents a warning message via the default presenter
func Warning(message string) { defaultPresenter.Warning(message) }

// Info presents an informational message via the default presenter
func Info(message string) { defaultPresenter.Info(message) }

// Section presents a section header via the default presenter
func Section(title string) { defaultPresenter.Section(title) }

// SetQuiet toggles quiet mode on the default presenter
func SetQuiet(quiet bool) { defaultPresenter.SetQuiet(quiet) }
