package internal

// Reverse returns a new slice with s's elements in reverse order, the
// generic reversal the teacher's ReconstructPath used inline for its
// cameFrom-map walk, pulled out for reuse now that path reconstruction
// (reconstruct.Reconstruct) builds its segments forward and only needs
// TreeStore.TreePath's own root-to-state walk reversed once.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
