package app

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/birdayz/cxxd/pkg/config"
)

func TestCompletionFuncs(t *testing.T) {
	a := New()
	a.Cfg = config.Config{Profiles: []*config.Profile{{Name: "wide"}, {Name: "le"}}}

	tests := []struct {
		name string
		fn   func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)
		want []string
	}{
		{name: "profiles", fn: a.ValidProfileArgs, want: []string{"wide", "le"}},
		{name: "output", fn: CompleteOutputFormat, want: []string{"default", "json", "json-each-row"}},
		{name: "color", fn: CompleteColorMode, want: []string{"auto", "always", "never"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, directive := tt.fn(&cobra.Command{}, nil, "")
			require.Equal(t, tt.want, got)
			require.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		})
	}
}
