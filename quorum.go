package quorumsim

// ReachedQuorum reports whether the given number of approving votes meets the
// two-thirds quorum threshold for a group of the given size.
//
// The comparison is done in floating point on purpose: a group of 20 needs
// approvals >= 13.33, that is at least 14 approvals. Rounding the threshold to
// an integer first would change the outcome at boundary sizes.
func ReachedQuorum(approvals, size int) bool {
	return float64(approvals) >= (2.0/3.0)*float64(size)
}

// QuorumSize returns the minimum number of approving votes required to reach
// a quorum in a group of the given size.
func QuorumSize(size int) int {
	for approvals := 0; ; approvals++ {
		if ReachedQuorum(approvals, size) {
			return approvals
		}
	}
}
