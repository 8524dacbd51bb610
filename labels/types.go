package labels

// Strategy selects how labels are derived from sample values.
type Strategy int

const (
	// Deterministic partitions value ranks into k contiguous groups.
	Deterministic Strategy = iota
	// Random draws every label uniformly from {1..k}.
	Random
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Deterministic:
		return "deterministic"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// ShufflePolicy decides whether the Random strategy permutes the sample
// values before labeling. Deterministic labeling never shuffles.
//
//   - ShuffleTriangleOnly: permute only when k == 3. This reproduces the
//     historical behavior of the triangle/tetrahedron generators.
//   - ShuffleAlways:       permute for every k.
//   - ShuffleNever:        keep input order for every k.
type ShufflePolicy int

const (
	ShuffleTriangleOnly ShufflePolicy = iota
	ShuffleAlways
	ShuffleNever
)

// Sample is one labeled measurement.
// Index is the position of Value in the caller's input series; it differs
// from the Sample's own position only when the values were shuffled.
type Sample struct {
	Index int
	Value float64
	Label int
}
