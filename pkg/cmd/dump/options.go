package dump

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/cxxd/pkg/app"
	"github.com/birdayz/cxxd/pkg/config"
	pkgdump "github.com/birdayz/cxxd/pkg/dump"
)

// Options holds the dump flags. It is shared by the root command and
// "config add-profile", which stores the flags given on its command line.
type Options struct {
	LittleEndian bool
	GroupSize    int
	Cols         int
	Length       int64
	Seek         int64
	Revert       bool
	Align        bool
	Jobs         int
	Color        app.ColorMode
	Output       app.OutputFormat
}

// AddFlags installs the formatting flags on cmd.
func (o *Options) AddFlags(cmd *cobra.Command) {
	o.Color = app.ColorModeAuto
	o.Output = app.OutputFormatDefault

	cmd.Flags().BoolVarP(&o.LittleEndian, "little-endian", "e", false, "Little-endian dump: reverse the bytes of each group")
	cmd.Flags().IntVarP(&o.GroupSize, "group-size", "g", pkgdump.DefaultGroupSize, "Bytes per group, 0 for a single group per line (default 4 with -e)")
	cmd.Flags().IntVarP(&o.Cols, "cols", "c", pkgdump.DefaultCols, "Bytes per line")
	cmd.Flags().BoolVarP(&o.Align, "align", "a", false, "Pad short lines so the ASCII column lines up")
	cmd.Flags().VarP(&o.Color, "color", "R", "Colourise output: auto, always, never")
	cmd.Flags().Var(&o.Output, "output", "Output format: default, json, json-each-row")

	if err := cmd.RegisterFlagCompletionFunc("color", app.CompleteColorMode); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
	if err := cmd.RegisterFlagCompletionFunc("output", app.CompleteOutputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
}

// AddRunFlags installs the flags that only make sense for a single run.
func (o *Options) AddRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int64VarP(&o.Length, "len", "l", -1, "Stop after this many bytes")
	cmd.Flags().Int64VarP(&o.Seek, "seek", "s", 0, "Start at this byte offset, negative counts from the end")
	cmd.Flags().BoolVarP(&o.Revert, "revert", "r", false, "Convert a dump back into binary")
	cmd.Flags().IntVarP(&o.Jobs, "jobs", "j", 1, "Render lines with this many workers")
}

// Settings is the resolved configuration of one run.
type Settings struct {
	Dump   pkgdump.Config
	Render app.RenderOptions
	Color  app.ColorMode
}

// Resolve merges the flags of cmd with profile p. Flags given on the command
// line win over the profile, which wins over the built-in defaults.
func (o *Options) Resolve(cmd *cobra.Command, p *config.Profile) (Settings, error) {
	flags := cmd.Flags()
	if p == nil {
		p = &config.Profile{}
	}

	cfg := pkgdump.Config{
		Cols:         o.Cols,
		LittleEndian: o.LittleEndian,
		Seek:         o.Seek,
		Length:       o.Length,
		Align:        o.Align,
	}
	if !flags.Changed("cols") && p.Cols != nil {
		cfg.Cols = *p.Cols
	}
	if !flags.Changed("little-endian") && p.LittleEndian != nil {
		cfg.LittleEndian = *p.LittleEndian
	}
	if !flags.Changed("align") && p.Align != nil {
		cfg.Align = *p.Align
	}

	switch {
	case flags.Changed("group-size"):
		cfg.GroupSize = o.GroupSize
	case p.GroupSize != nil:
		cfg.GroupSize = *p.GroupSize
	case cfg.LittleEndian:
		cfg.GroupSize = pkgdump.LittleEndianGroupSize
	default:
		cfg.GroupSize = pkgdump.DefaultGroupSize
	}

	colorMode := o.Color
	if !flags.Changed("color") && p.Color != "" {
		if err := colorMode.Set(p.Color); err != nil {
			return Settings{}, fmt.Errorf("profile %q: color %w", p.Name, err)
		}
	}
	output := o.Output
	if !flags.Changed("output") && p.Output != "" {
		if err := output.Set(p.Output); err != nil {
			return Settings{}, fmt.Errorf("profile %q: output %w", p.Name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	if flags.Changed("len") && o.Length < 0 {
		return Settings{}, fmt.Errorf("len must not be negative, got %d", o.Length)
	}
	if o.Jobs < 1 {
		return Settings{}, fmt.Errorf("jobs must be at least 1, got %d", o.Jobs)
	}

	return Settings{
		Dump:   cfg,
		Render: app.RenderOptions{Format: output, Jobs: o.Jobs},
		Color:  colorMode,
	}, nil
}

// Profile returns a profile named name holding the formatting flags that
// were explicitly set on cmd.
func (o *Options) Profile(cmd *cobra.Command, name string) *config.Profile {
	flags := cmd.Flags()
	p := &config.Profile{Name: name}
	if flags.Changed("cols") {
		cols := o.Cols
		p.Cols = &cols
	}
	if flags.Changed("group-size") {
		size := o.GroupSize
		p.GroupSize = &size
	}
	if flags.Changed("little-endian") {
		le := o.LittleEndian
		p.LittleEndian = &le
	}
	if flags.Changed("align") {
		align := o.Align
		p.Align = &align
	}
	if flags.Changed("color") {
		p.Color = o.Color.String()
	}
	if flags.Changed("output") {
		p.Output = o.Output.String()
	}
	return p
}
