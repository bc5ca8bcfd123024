package dump

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/birdayz/cxxd/pkg/app"
	"github.com/birdayz/cxxd/pkg/config"
	pkgdump "github.com/birdayz/cxxd/pkg/dump"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func newParsedCommand(t *testing.T, args ...string) (*cobra.Command, *Options) {
	t.Helper()
	o := &Options{}
	cmd := &cobra.Command{Use: "test"}
	o.AddFlags(cmd)
	o.AddRunFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, o
}

func TestResolve_Defaults(t *testing.T) {
	cmd, o := newParsedCommand(t)
	s, err := o.Resolve(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, pkgdump.DefaultConfig(), s.Dump)
	require.Equal(t, app.RenderOptions{Format: app.OutputFormatDefault, Jobs: 1}, s.Render)
	require.Equal(t, app.ColorModeAuto, s.Color)
}

func TestResolve_GroupSize(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		profile *config.Profile
		want    int
	}{
		{name: "default", want: 2},
		{name: "little endian", args: []string{"-e"}, want: 4},
		{name: "little endian explicit", args: []string{"-e", "-g", "8"}, want: 8},
		{name: "explicit zero", args: []string{"-g", "0"}, want: 0},
		{name: "little endian from profile", profile: &config.Profile{LittleEndian: boolPtr(true)}, want: 4},
		{name: "profile group size", args: []string{"-e"}, profile: &config.Profile{GroupSize: intPtr(1)}, want: 1},
		{name: "flag beats profile", args: []string{"-g", "3"}, profile: &config.Profile{GroupSize: intPtr(1)}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, o := newParsedCommand(t, tt.args...)
			s, err := o.Resolve(cmd, tt.profile)
			require.NoError(t, err)
			require.Equal(t, tt.want, s.Dump.GroupSize)
		})
	}
}

func TestResolve_ProfileValues(t *testing.T) {
	p := &config.Profile{
		Name:   "p",
		Cols:   intPtr(8),
		Align:  boolPtr(true),
		Color:  "never",
		Output: "json",
	}

	cmd, o := newParsedCommand(t, "-s", "-3", "-l", "2")
	s, err := o.Resolve(cmd, p)
	require.NoError(t, err)
	require.Equal(t, 8, s.Dump.Cols)
	require.True(t, s.Dump.Align)
	require.Equal(t, int64(-3), s.Dump.Seek)
	require.Equal(t, int64(2), s.Dump.Length)
	require.Equal(t, app.ColorModeNever, s.Color)
	require.Equal(t, app.OutputFormatJSON, s.Render.Format)

	cmd, o = newParsedCommand(t, "-c", "12", "--color", "always", "--output", "default")
	s, err = o.Resolve(cmd, p)
	require.NoError(t, err)
	require.Equal(t, 12, s.Dump.Cols)
	require.Equal(t, app.ColorModeAlways, s.Color)
	require.Equal(t, app.OutputFormatDefault, s.Render.Format)
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		profile *config.Profile
		is      error
		msg     string
	}{
		{name: "zero cols", args: []string{"-c", "0"}, is: pkgdump.ErrInvalidConfig},
		{name: "zero jobs", args: []string{"-j", "0"}, msg: "jobs"},
		{name: "negative len", args: []string{"-l", "-5"}, msg: "len must not be negative"},
		{name: "negative len long flag", args: []string{"--len=-1"}, msg: "len must not be negative"},
		{
			name:    "profile color",
			profile: &config.Profile{Name: "bad", Color: "rainbow"},
			msg:     `profile "bad"`,
		},
		{
			name:    "profile cols",
			profile: &config.Profile{Name: "bad", Cols: intPtr(-1)},
			is:      pkgdump.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, o := newParsedCommand(t, tt.args...)
			_, err := o.Resolve(cmd, tt.profile)
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				require.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestResolve_Len(t *testing.T) {
	cmd, o := newParsedCommand(t, "-l", "0")
	s, err := o.Resolve(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), s.Dump.Length)

	cmd, o = newParsedCommand(t)
	s, err = o.Resolve(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, int64(-1), s.Dump.Length)
}

func TestProfile_OnlyChangedFlags(t *testing.T) {
	cmd, o := newParsedCommand(t, "-c", "32", "-e", "--output", "json-each-row")
	p := o.Profile(cmd, "snap")

	require.Equal(t, "snap", p.Name)
	require.Equal(t, intPtr(32), p.Cols)
	require.Equal(t, boolPtr(true), p.LittleEndian)
	require.Equal(t, "json-each-row", p.Output)
	require.Nil(t, p.GroupSize)
	require.Nil(t, p.Align)
	require.Empty(t, p.Color)
}
