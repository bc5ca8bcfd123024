package dump

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeParallel_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	data := make([]byte, 16*linesPerBatch*3+7)
	for i := range data {
		data[i] = byte(rng.UintN(256))
	}

	for _, workers := range []int{0, 1, 2, 8} {
		cfg := DefaultConfig()
		cfg.Seek = 5
		e, err := NewEncoder(cfg)
		require.NoError(t, err)

		got, err := e.EncodeParallel(context.Background(), data, workers)
		require.NoError(t, err)
		require.Equal(t, e.Encode(data), got)
	}
}

func TestEncodeParallel_HugeCols(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "seek",
			cfg:  Config{GroupSize: 2, Cols: math.MaxInt, Seek: 2, Length: -1},
			want: []string{"00000002: 6c6c 6f20 776f 726c 64  llo world"},
		},
		{
			name: "aligned",
			cfg:  Config{GroupSize: 4, Cols: math.MaxInt - 1, Length: 5, Align: true},
			want: []string{"00000000: 68656c6c 6f  hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEncoder(tt.cfg)
			require.NoError(t, err)

			got, err := e.EncodeParallel(context.Background(), helloWorld, 4)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, e.Encode(helloWorld), got)
		})
	}
}

func TestEncodeParallel_Empty(t *testing.T) {
	e, err := NewEncoder(DefaultConfig())
	require.NoError(t, err)

	got, err := e.EncodeParallel(context.Background(), nil, 4)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEncodeParallel_Cancelled(t *testing.T) {
	e, err := NewEncoder(DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = e.EncodeParallel(ctx, make([]byte, 4096), 4)
	require.ErrorIs(t, err, context.Canceled)
}
