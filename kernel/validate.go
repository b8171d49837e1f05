package kernel

// ValidateLengths reports whether all lengths are pairwise equal.
// Zero or one length is trivially valid.
func ValidateLengths(lengths ...int) bool {
	for i := 1; i < len(lengths); i++ {
		if lengths[i] != lengths[0] {
			return false
		}
	}
	return true
}
