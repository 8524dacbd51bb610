package chaosgame

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sierpinski/geom"
)

var (
	sqrt3 = math.Sqrt(3)
	sqrt6 = math.Sqrt(6)
)

// VertexSet is an immutable IFS anchor set with a default start point.
// The zero value is empty and rejected by Run.
type VertexSet struct {
	name     string
	vertices []geom.Point
	start    geom.Point
}

// Triangle returns the Sierpinski triangle set (0,0), (1,0), (0.5,1)
// with start point (0.5,0.5).
func Triangle() VertexSet {
	return VertexSet{
		name: "triangle",
		vertices: []geom.Point{
			{0, 0},
			{1, 0},
			{0.5, 1},
		},
		start: geom.Point{0.5, 0.5},
	}
}

// Tetrahedron returns the regular tetrahedron (0,0,0), (1,0,0), (½,√3/2,0),
// (½,√3/6,√6/3) with start point (½,√3/6,√6/12), the centroid of its vertices.
func Tetrahedron() VertexSet {
	return VertexSet{
		name: "tetrahedron",
		vertices: []geom.Point{
			{0, 0, 0},
			{1, 0, 0},
			{0.5, sqrt3 / 2, 0},
			{0.5, sqrt3 / 6, sqrt6 / 3},
		},
		start: geom.Point{0.5, sqrt3 / 6, sqrt6 / 12},
	}
}

// NewVertexSet builds a custom set. Inputs are deep-copied.
// A nil start selects the centroid of the vertices.
func NewVertexSet(vertices []geom.Point, start geom.Point) (VertexSet, error) {
	if len(vertices) < 2 {
		return VertexSet{}, fmt.Errorf("need at least 2 vertices, got %d: %w", len(vertices), ErrBadVertexSet)
	}
	vs := VertexSet{name: "custom", vertices: make([]geom.Point, len(vertices))}
	cloud := make(geom.Cloud, len(vertices))
	for i, v := range vertices {
		vs.vertices[i] = v.Clone()
		cloud[i] = v
	}
	if err := cloud.Validate(); err != nil {
		return VertexSet{}, fmt.Errorf("%w: %w", ErrBadVertexSet, err)
	}

	if start == nil {
		vs.start = vs.Centroid()
	} else {
		if len(start) != vs.Dim() {
			return VertexSet{}, fmt.Errorf("start has dimension %d, want %d: %w", len(start), vs.Dim(), ErrDimensionMismatch)
		}
		vs.start = start.Clone()
	}

	return vs, nil
}

// Name returns "triangle", "tetrahedron" or "custom".
func (vs VertexSet) Name() string { return vs.name }

// K returns the number of vertices, i.e. the size of the label alphabet.
func (vs VertexSet) K() int { return len(vs.vertices) }

// Dim returns the dimension of the vertices, or 0 for an empty set.
func (vs VertexSet) Dim() int {
	if len(vs.vertices) == 0 {
		return 0
	}

	return len(vs.vertices[0])
}

// Vertex returns a copy of the vertex for label (1-based).
func (vs VertexSet) Vertex(label int) (geom.Point, error) {
	if label < 1 || label > vs.K() {
		return nil, fmt.Errorf("label %d not in 1..%d: %w", label, vs.K(), ErrInvalidLabel)
	}

	return vs.vertices[label-1].Clone(), nil
}

// Vertices returns a deep copy of all vertices.
func (vs VertexSet) Vertices() []geom.Point {
	return []geom.Point(geom.Cloud(vs.vertices).Clone())
}

// Start returns a copy of the documented start point.
func (vs VertexSet) Start() geom.Point { return vs.start.Clone() }

// Centroid returns the arithmetic mean of the vertices.
func (vs VertexSet) Centroid() geom.Point {
	d := vs.Dim()
	c := make(geom.Point, d)
	if d == 0 {
		return c
	}
	for _, v := range vs.vertices {
		for j := range c {
			c[j] += v[j]
		}
	}
	for j := range c {
		c[j] /= float64(len(vs.vertices))
	}

	return c
}
