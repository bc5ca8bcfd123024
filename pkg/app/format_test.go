package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputFormat_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{in: "default", want: OutputFormatDefault},
		{in: "json", want: OutputFormatJSON},
		{in: "json-each-row", want: OutputFormatJSONEachRow},
		{in: "hex", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := OutputFormatDefault
			err := f.Set(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, OutputFormatDefault, f)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, f)
			require.Equal(t, tt.in, f.String())
		})
	}
}

func TestColorMode_Set(t *testing.T) {
	m := ColorModeAuto
	require.NoError(t, m.Set("always"))
	require.Equal(t, ColorModeAlways, m)
	require.Error(t, m.Set("sometimes"))
	require.Equal(t, "ColorMode", m.Type())
}

func TestUseColor(t *testing.T) {
	a := New()
	a.OutWriter = &bytes.Buffer{}

	require.True(t, a.UseColor(ColorModeAlways))
	require.False(t, a.UseColor(ColorModeNever))
	require.False(t, a.UseColor(ColorModeAuto), "a buffer is never a terminal")
}
