// Package core defines domain models for MAPF instance generation.
package core

import "fmt"

// Mode selects how obstacles and agent pools are laid out.
type Mode int

const (
	ModeRandom    Mode = iota // Uniform random obstacles at a given density
	ModeWarehouse             // Storage racks separated by aisles
)

func (m Mode) String() string {
	return [...]string{"random", "warehouse"}[m]
}

// ParseMode maps a mode name to its Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "random":
		return ModeRandom, nil
	case "warehouse":
		return ModeWarehouse, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want random or warehouse)", s)
	}
}

// MarshalText encodes the mode by name so suite files stay readable.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeRandom && m != ModeWarehouse {
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
