package fractal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sierpinski/chaosgame"
	"github.com/katalvlaran/sierpinski/labels"
)

// Kind selects the fractal geometry.
type Kind int

const (
	// Triangle is the 2D Sierpinski triangle (k=3).
	Triangle Kind = iota
	// Tetrahedron is the 3D Sierpinski tetrahedron (k=4).
	Tetrahedron
)

// K returns the number of vertices (and labels), or 0 for an unknown kind.
func (k Kind) K() int {
	switch k {
	case Triangle:
		return 3
	case Tetrahedron:
		return 4
	default:
		return 0
	}
}

// Dim returns the ambient dimension, or 0 for an unknown kind.
func (k Kind) Dim() int {
	if n := k.K(); n > 0 {
		return n - 1
	}
	return 0
}

// VertexSet returns the canonical vertex set for k.
func (k Kind) VertexSet() (chaosgame.VertexSet, error) {
	switch k {
	case Triangle:
		return chaosgame.Triangle(), nil
	case Tetrahedron:
		return chaosgame.Tetrahedron(), nil
	default:
		return chaosgame.VertexSet{}, fmt.Errorf("VertexSet: %d: %w", int(k), ErrUnknownKind)
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Tetrahedron:
		return "tetrahedron"
	default:
		return "unknown"
	}
}

// ParseKind accepts "triangle"/"2d" and "tetrahedron"/"3d", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triangle", "2d":
		return Triangle, nil
	case "tetrahedron", "3d":
		return Tetrahedron, nil
	default:
		return 0, fmt.Errorf("ParseKind: %q: %w", s, ErrUnknownKind)
	}
}

// Hint is a presentation hint carried next to the result. It never affects
// the computation.
type Hint int

const (
	HintControl Hint = iota
	HintPatient
	HintRandom
)

// Color returns the display color associated with h.
func (h Hint) Color() string {
	switch h {
	case HintControl:
		return "blue"
	case HintPatient:
		return "red"
	case HintRandom:
		return "green"
	default:
		return "black"
	}
}

// String implements fmt.Stringer; it returns the mode name h was parsed from.
func (h Hint) String() string {
	switch h {
	case HintControl:
		return "controls"
	case HintPatient:
		return "patients"
	case HintRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseMode splits a mode string into a labeling strategy and a hint.
// Accepted (case-insensitive): controls, control, patients, patient, random.
func ParseMode(s string) (labels.Strategy, Hint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "controls", "control":
		return labels.Deterministic, HintControl, nil
	case "patients", "patient":
		return labels.Deterministic, HintPatient, nil
	case "random":
		return labels.Random, HintRandom, nil
	default:
		return 0, 0, fmt.Errorf("ParseMode: %q: %w", s, ErrUnknownMode)
	}
}
