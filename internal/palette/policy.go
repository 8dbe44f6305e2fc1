package palette

import "fmt"

// Policy decides how NonStandard codels behave during traversal.
// Classification itself is lossless either way.
type Policy int

// The two non-standard treatments.
const (
	// NonStandardAsWhite makes unrecognized colors passable, like white.
	NonStandardAsWhite Policy = iota
	// NonStandardAsBlack makes unrecognized colors walls, like black.
	NonStandardAsBlack
)

// ParsePolicy converts a CLI/config string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "white":
		return NonStandardAsWhite, nil
	case "black":
		return NonStandardAsBlack, nil
	default:
		return NonStandardAsWhite, fmt.Errorf("palette: unknown non-standard policy %q (want white or black)", s)
	}
}

// String returns the config spelling of the policy.
func (p Policy) String() string {
	if p == NonStandardAsBlack {
		return "black"
	}
	return "white"
}
