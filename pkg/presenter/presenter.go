// Package presenter provides consistent CLI output for user-facing messages:
// success, error, warning, and informational output with color support and a
// quiet mode.
package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Presenter defines the interface for consistent CLI output
type Presenter interface {
	Error(err error, context string)
	Success(message string)
	Warning(message string)
	Info(message string)
	Section(title string)
	Separator()
	SetQuiet(quiet bool)
	IsQuiet() bool
}

// TerminalPresenter implements Presenter for terminal output
type TerminalPresenter struct {
	output      io.Writer
	errorOutput io.Writer
	quiet       bool
}

// ColorMode represents different color output modes
type ColorMode int

const (
	// ColorAuto detects whether to use colored output from the terminal
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output
	ColorAlways
	// ColorNever disables colored output
	ColorNever
)

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
		// let the color package auto-detect
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

	switch os.Getenv("PYWEN_COLOR") {
	case "always", "force":
		return ColorAlways
	case "never", "off":
		return ColorNever
	default:
		return ColorAuto
	}
}

// Error displays an error message to stderr
func (p *TerminalPresenter) Error(err error, context string) {
	if err == nil {
		return
	}

	errorColor := color.New(color.FgRed, color.Bold)
	if context != "" {
		errorColor.Fprintf(p.errorOutput, "[ERROR] %s: %v\n", context, err)
	} else {
		errorColor.Fprintf(p.errorOutput, "[ERROR] %v\n", err)
	}
}

// Success displays a success message
func (p *TerminalPresenter) Success(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(p.output, "[OK] %s\n", message)
}

// Warning displays a warning message
func (p *TerminalPresenter) Warning(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgYellow).Fprintf(p.output, "[WARN] %s\n", message)
}

// Info displays an informational message
func (p *TerminalPresenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s\n", message)
}

// Section displays a section header
func (p *TerminalPresenter) Section(title string) {
	if p.quiet {
		return
	}
	headerColor := color.New(color.FgCyan, color.Bold)
	headerColor.Fprintf(p.output, "\n=== %s ===\n", title)
}

// Separator displays a visual separator line
func (p *TerminalPresenter) Separator() {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.output, strings.Repeat("-", 40))
}

// SetQuiet enables or disables quiet mode
func (p *TerminalPresenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// IsQuiet reports whether quiet mode is enabled
func (p *TerminalPresenter) IsQuiet() bool {
	return p.quiet
}

// Default package-level presenter used by the CLI commands.
var defaultPresenter Presenter = New()

// Error displays an error via the default presenter
func Error(err error, context string) { defaultPresenter.Error(err, context) }

// Success displays a success message via the default presenter
func Success(message string) { defaultPresenter.Success(message) }

// Warning displays a warning message via the default presenter
func Warning(message string) { defaultPresenter.Warning(message) }

// Info displays an informational message via the default presenter
func Info(message string) { defaultPresenter.Info(message) }

// Section displays a section header via the default presenter
func Section(title string) { defaultPresenter.Section(title) }

// Separator displays a separator via the default presenter
func Separator() { defaultPresenter.Separator() }

// SetQuiet toggles quiet mode on the default presenter
func SetQuiet(quiet bool) { defaultPresenter.SetQuiet(quiet) }
