package state

// LoadState represents the progress of a scene load request
type LoadState int

const (
	StateQueued LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

// String returns the string representation of the load state
func (s LoadState) String() string {
	switch s {
	case StateQueued:
		return "Queued"
	case StateLoading:
		return "Loading"
	case StateLoaded:
		return "Loaded"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Done reports whether the load has finished, successfully or not
func (s LoadState) Done() bool {
	return s == StateLoaded || s == StateFailed
}
