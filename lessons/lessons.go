// Package lessons defines the five tutorial steps, from two white shapes up
// to a lit cube controlled from the keyboard.
package lessons

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-tutorial/app"
	"gl-tutorial/geometry"
	"gl-tutorial/input"
)

// CrateTexture is loaded relative to the working directory.
const CrateTexture = "assets/crate.png"

var (
	left  = mgl32.Vec3{-1.5, 0, 0}
	right = mgl32.Vec3{1.5, 0, 0}
)

// WhiteShapes draws a white triangle and a white square side by side.
func WhiteShapes() app.Lesson {
	return app.Lesson{
		Name:           "White Shapes",
		VertexShader:   whiteVertex,
		FragmentShader: whiteFragment,
		Objects: []app.ObjectDesc{
			{Name: "triangle", Geometry: geometry.Triangle(), Offset: left},
			{Name: "square", Geometry: geometry.Square(), Offset: right},
		},
	}
}

// ColoredShapes gives the triangle and square per-vertex colors.
func ColoredShapes() app.Lesson {
	return app.Lesson{
		Name:           "Colored Shapes",
		VertexShader:   colorVertex,
		FragmentShader: colorFragment,
		Objects: []app.ObjectDesc{
			{Name: "triangle", Geometry: geometry.ColoredTriangle(), Offset: left},
			{Name: "square", Geometry: geometry.ColoredSquare(), Offset: right},
		},
	}
}

// SpinningShapes turns a pyramid and a cube at a fixed rate.
func SpinningShapes() app.Lesson {
	return app.Lesson{
		Name:           "Spinning Shapes",
		VertexShader:   colorVertex,
		FragmentShader: colorFragment,
		Objects: []app.ObjectDesc{
			{Name: "pyramid", Geometry: geometry.Pyramid(), Offset: left, Spin: mgl32.Vec3{0, 1, 0}},
			{Name: "cube", Geometry: geometry.ColoredCube(), Offset: right, Spin: mgl32.Vec3{0.5, 1, 0}},
		},
	}
}

// TexturedCube draws a spinning crate.
func TexturedCube() app.Lesson {
	return app.Lesson{
		Name:           "Textured Cube",
		VertexShader:   textureVertex,
		FragmentShader: textureFragment,
		Texture:        app.TextureFile(CrateTexture),
		Objects: []app.ObjectDesc{
			{Name: "crate", Geometry: geometry.TexturedCube(), Spin: mgl32.Vec3{0.5, 1, 0}, Textured: true},
		},
	}
}

// LitCube lights the crate from the camera side. Space toggles auto-rotate,
// L toggles lighting, F toggles fullscreen and WASD or the arrow keys turn
// the cube.
func LitCube() app.Lesson {
	return app.Lesson{
		Name:           "Lit Cube",
		VertexShader:   litVertex,
		FragmentShader: litFragment,
		Texture:        app.TextureFile(CrateTexture),
		Objects: []app.ObjectDesc{
			{Name: "crate", Geometry: geometry.LitCube(), Spin: mgl32.Vec3{0.5, 1, 0}, Textured: true},
		},
		Lighting:       true,
		LightDirection: mgl32.Vec3{0, 0, 1},
		Interactive:    true,
		ManualSpeed:    1,
		Enabled:        []input.Action{input.ToggleLighting, input.ToggleAutoRotate},
	}
}

// All returns every lesson in tutorial order.
func All() []app.Lesson {
	return []app.Lesson{WhiteShapes(), ColoredShapes(), SpinningShapes(), TexturedCube(), LitCube()}
}
