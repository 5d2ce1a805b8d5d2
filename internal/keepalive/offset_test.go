package keepalive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffsetAlternatesByParity(t *testing.T) {
	t.Parallel()

	for moves := 0; moves < 10; moves++ {
		dx, dy := Offset(moves)
		if moves%2 == 0 {
			require.Equal(t, [2]int{1, 1}, [2]int{dx, dy}, "move %d", moves)
		} else {
			require.Equal(t, [2]int{-1, -1}, [2]int{dx, dy}, "move %d", moves)
		}
	}
}

func TestTargetClampsToInnerPixels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		x, y, w, h   int
		moves        int
		wantX, wantY int
	}{
		{"interior forward", 100, 200, 1920, 1080, 0, 101, 201},
		{"interior back", 100, 200, 1920, 1080, 1, 99, 199},
		{"origin back", 0, 0, 1920, 1080, 1, 1, 1},
		{"one back", 1, 1, 1920, 1080, 3, 1, 1},
		{"far edge forward", 1919, 1079, 1920, 1080, 0, 1919, 1079},
		{"past far edge", 1920, 1080, 1920, 1080, 2, 1919, 1079},
		{"shrunken screen", 1500, 900, 800, 600, 0, 799, 599},
		{"degenerate screen", 0, 0, 1, 1, 0, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := Target(tc.x, tc.y, tc.w, tc.h, tc.moves)
			require.Equal(t, tc.wantX, x)
			require.Equal(t, tc.wantY, y)
			if tc.w > 1 {
				require.True(t, x >= 1 && x <= tc.w-1)
				require.True(t, y >= 1 && y <= tc.h-1)
			}
		})
	}
}

func TestSecondsFloors(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Seconds(999_000_000))
	require.Equal(t, 15, Seconds(15_900_000_000))
	require.Equal(t, 90, Seconds(90_000_000_000))
}
