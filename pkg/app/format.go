package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// OutputFormat controls how dump lines are printed.
type OutputFormat string

const (
	OutputFormatDefault     OutputFormat = "default"
	OutputFormatJSON        OutputFormat = "json"
	OutputFormatJSONEachRow OutputFormat = "json-each-row"
)

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "default", "json", "json-each-row":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, json, json-each-row")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"default", "json", "json-each-row"}, cobra.ShellCompDirectiveNoFileComp
}

// ColorMode controls whether output is colourised.
type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

func (e *ColorMode) String() string {
	return string(*e)
}

func (e *ColorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*e = ColorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of: auto, always, never")
	}
}

func (e *ColorMode) Type() string {
	return "ColorMode"
}

// CompleteColorMode provides shell completion for --color.
func CompleteColorMode(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
}

// UseColor resolves mode against OutWriter. In auto mode colour is only used
// when OutWriter is a terminal.
func (a *App) UseColor(mode ColorMode) bool {
	switch mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	}
	f, ok := a.OutWriter.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
