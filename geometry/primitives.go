package geometry

import "github.com/go-gl/mathgl/mgl32"

// Triangle returns a single triangle centred on the origin in the XY plane.
func Triangle() Data {
	return Data{
		Primitive: Triangles,
		Positions: []mgl32.Vec3{{0, 1, 0}, {-1, -1, 0}, {1, -1, 0}},
		Indices:   []uint32{0, 1, 2},
	}
}

// ColoredTriangle is Triangle with red, green and blue corners.
func ColoredTriangle() Data {
	d := Triangle()
	d.Colors = []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	return d
}

// Square returns a 2x2 quad centred on the origin in the XY plane.
func Square() Data {
	return Data{
		Primitive: Quads,
		Positions: []mgl32.Vec3{{-1, 1, 0}, {1, 1, 0}, {1, -1, 0}, {-1, -1, 0}},
		Indices:   []uint32{0, 1, 2, 3},
	}
}

// ColoredSquare is Square in a flat pale blue.
func ColoredSquare() Data {
	d := Square()
	d.Colors = []mgl32.Vec3{{0.5, 0.5, 1}, {0.5, 0.5, 1}, {0.5, 0.5, 1}, {0.5, 0.5, 1}}
	return d
}

// Pyramid returns a four-sided pyramid without a base, one triangle per side,
// with a red apex and alternating green and blue base corners.
func Pyramid() Data {
	apex := mgl32.Vec3{0, 1, 0}
	frontLeft := mgl32.Vec3{-1, -1, 1}
	frontRight := mgl32.Vec3{1, -1, 1}
	backRight := mgl32.Vec3{1, -1, -1}
	backLeft := mgl32.Vec3{-1, -1, -1}

	red := mgl32.Vec3{1, 0, 0}
	green := mgl32.Vec3{0, 1, 0}
	blue := mgl32.Vec3{0, 0, 1}

	d := Data{
		Primitive: Triangles,
		Positions: []mgl32.Vec3{
			apex, frontLeft, frontRight,
			apex, frontRight, backRight,
			apex, backRight, backLeft,
			apex, backLeft, frontLeft,
		},
		Colors: []mgl32.Vec3{
			red, green, blue,
			red, blue, green,
			red, green, blue,
			red, blue, green,
		},
	}
	d.Indices = sequence(len(d.Positions))
	return d
}

// cubeFaces lists the corners of each cube face in counter-clockwise order
// seen from outside: top, bottom, front, back, left, right.
var cubeFaces = [6][4]mgl32.Vec3{
	{{1, 1, -1}, {-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}},
	{{1, -1, 1}, {-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}},
	{{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}, {1, -1, 1}},
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	{{-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}, {-1, -1, 1}},
	{{1, 1, -1}, {1, 1, 1}, {1, -1, 1}, {1, -1, -1}},
}

var cubeFaceNormals = [6]mgl32.Vec3{
	{0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}, {-1, 0, 0}, {1, 0, 0},
}

var cubeFaceColors = [6]mgl32.Vec3{
	{0, 1, 0}, {1, 0.5, 0}, {1, 0, 0}, {1, 1, 0}, {0, 0, 1}, {1, 0, 1},
}

// Cube returns a 2x2x2 cube as six quads with four unshared vertices each, so
// every face can carry its own color, UVs and normal.
func Cube() Data {
	d := Data{Primitive: Quads}
	for _, face := range cubeFaces {
		d.Positions = append(d.Positions, face[:]...)
	}
	d.Indices = sequence(len(d.Positions))
	return d
}

// ColoredCube is Cube with one flat color per face.
func ColoredCube() Data {
	d := Cube()
	for _, c := range cubeFaceColors {
		d.Colors = append(d.Colors, c, c, c, c)
	}
	return d
}

// TexturedCube is Cube with the full texture mapped onto every face.
func TexturedCube() Data {
	d := Cube()
	for range cubeFaces {
		d.UVs = append(d.UVs, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1})
	}
	return d
}

// LitCube is TexturedCube with a constant outward normal per face.
func LitCube() Data {
	d := TexturedCube()
	for _, n := range cubeFaceNormals {
		d.Normals = append(d.Normals, n, n, n, n)
	}
	return d
}

func sequence(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}
