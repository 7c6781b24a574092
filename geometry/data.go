// Package geometry holds CPU-side vertex and index streams and validates them
// before they are uploaded.
package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is the kind of primitive an index stream describes.
type Primitive int

const (
	Triangles Primitive = iota
	Quads
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangle"
	case Quads:
		return "quad"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// Arity is the number of vertices consumed by one primitive.
func (p Primitive) Arity() int {
	if p == Quads {
		return 4
	}
	return 3
}

var ErrNoVertices = errors.New("geometry has no vertices")

// IndexOutOfRangeError reports an index that does not address a vertex.
type IndexOutOfRangeError struct {
	Position    int
	Index       uint32
	VertexCount int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d at position %d out of range for %d vertices", e.Index, e.Position, e.VertexCount)
}

// StreamLengthError reports an attribute stream whose length differs from the
// position stream.
type StreamLengthError struct {
	Stream string
	Length int
	Want   int
}

func (e *StreamLengthError) Error() string {
	return fmt.Sprintf("%s stream has %d entries, want %d", e.Stream, e.Length, e.Want)
}

// ArityError reports an element count that does not divide into whole
// primitives.
type ArityError struct {
	Primitive Primitive
	Count     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%d elements do not form whole %s primitives", e.Count, e.Primitive)
}

// Data is an immutable set of vertex streams plus an optional index stream.
// Normals, Colors and UVs are optional; when present they must have one entry
// per position.
type Data struct {
	Primitive Primitive
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

func (d *Data) VertexCount() int {
	return len(d.Positions)
}

func (d *Data) Indexed() bool {
	return len(d.Indices) > 0
}

// Count is the number of elements one draw call consumes: the index count for
// indexed geometry, the vertex count otherwise.
func (d *Data) Count() int {
	if d.Indexed() {
		return len(d.Indices)
	}
	return d.VertexCount()
}

// Validate checks stream lengths, primitive arity and index range.
func (d *Data) Validate() error {
	n := d.VertexCount()
	if n == 0 {
		return ErrNoVertices
	}
	for _, s := range []struct {
		name   string
		length int
	}{
		{"normal", len(d.Normals)},
		{"color", len(d.Colors)},
		{"uv", len(d.UVs)},
	} {
		if s.length != 0 && s.length != n {
			return &StreamLengthError{Stream: s.name, Length: s.length, Want: n}
		}
	}
	if d.Count()%d.Primitive.Arity() != 0 {
		return &ArityError{Primitive: d.Primitive, Count: d.Count()}
	}
	for i, idx := range d.Indices {
		if int(idx) >= n {
			return &IndexOutOfRangeError{Position: i, Index: idx, VertexCount: n}
		}
	}
	return nil
}

// TriangulateQuads splits each quad (a, b, c, d) into triangles (a, b, c) and
// (a, c, d). Trailing indices that do not form a whole quad are dropped.
func TriangulateQuads(indices []uint32) []uint32 {
	out := make([]uint32, 0, len(indices)/4*6)
	for i := 0; i+3 < len(indices); i += 4 {
		a, b, c, d := indices[i], indices[i+1], indices[i+2], indices[i+3]
		out = append(out, a, b, c, a, c, d)
	}
	return out
}

// TriangulatedCount is the number of triangle indices that count authored
// indices of primitive occupy after TriangulateQuads.
func TriangulatedCount(primitive Primitive, count int) int {
	if primitive == Quads {
		return count / 4 * 6
	}
	return count
}
