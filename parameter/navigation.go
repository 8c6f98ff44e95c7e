package parameter

// Navigation - distance field
const (
	// NavMaxDepth is the distance cutoff, tiles beyond it report unreachable
	NavMaxDepth = 1024
)
