package scene

import "fmt"

// LoadMode controls what happens to already loaded scenes on load
type LoadMode int

const (
	// Single unloads every loaded scene before the new one is entered.
	Single LoadMode = iota
	// Additive keeps loaded scenes and stacks the new one on top.
	Additive
)

// String returns the string representation of the load mode
func (m LoadMode) String() string {
	switch m {
	case Single:
		return "single"
	case Additive:
		return "additive"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m LoadMode) MarshalText() ([]byte, error) {
	switch m {
	case Single, Additive:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("invalid load mode %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty value decodes to Single.
func (m *LoadMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "", "single":
		*m = Single
	case "additive":
		*m = Additive
	default:
		return fmt.Errorf("unknown load mode %q", string(b))
	}
	return nil
}
