package FD1D

import "strings"

// BCType selects the treatment of the bottom boundary node. The top nodes
// are always held at the reinjection temperature, that is the model, not a
// selectable condition.
type BCType uint8

const (
	// BCDirichlet holds the bottom node at its initial background value.
	BCDirichlet BCType = iota
	// BCGradient continues the background thermal slope through the bottom
	// node each step, T[n-1] = T[n-2] + slope*dz.
	BCGradient
)

// String returns the string representation of a BCType
func (bc BCType) String() string {
	switch bc {
	case BCGradient:
		return "Gradient"
	default:
		return "Dirichlet"
	}
}

// BCNameMap provides a mapping from common boundary condition names to
// BCType. Keys are lowercase for case-insensitive matching.
var BCNameMap = map[string]BCType{
	"dirichlet": BCDirichlet,
	"fixed":     BCDirichlet,
	"held":      BCDirichlet,
	"gradient":  BCGradient,
	"slope":     BCGradient,
	"neumann":   BCGradient,
}

// ParseBCName converts a boundary condition name string to a BCType. The
// matching is case-insensitive and trims whitespace; unknown names default
// to Dirichlet.
func ParseBCName(name string) BCType {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if bcType, ok := BCNameMap[lowerName]; ok {
		return bcType
	}
	return BCDirichlet
}
