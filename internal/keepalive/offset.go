package keepalive

// Offset returns the perturbation for the move with the given index.
// Even indexes nudge down-right, odd indexes up-left.
func Offset(moves int) (dx, dy int) {
	if moves%2 == 0 {
		return 1, 1
	}
	return -1, -1
}

// Clamp keeps v inside [1, limit-1] so the cursor never lands on the first
// or last pixel of an axis, where hot corners live.
func Clamp(v, limit int) int {
	return max(1, min(v, limit-1))
}

// Target is the clamped perturbation target for a cursor at (x, y) on a
// w by h screen.
func Target(x, y, w, h, moves int) (int, int) {
	dx, dy := Offset(moves)
	return Clamp(x+dx, w), Clamp(y+dy, h)
}
