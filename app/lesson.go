package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-tutorial/geometry"
	"gl-tutorial/input"
	"gl-tutorial/render"
)

// Projection and camera shared by every lesson.
const (
	FieldOfView = 0.45
	NearPlane   = 0.1
	FarPlane    = 1000
)

var (
	DefaultEye   = mgl32.Vec3{0, 0, 10}
	DefaultClear = [4]float32{0, 0, 0, 1}
)

// TextureSource builds the lesson texture once the backend exists.
type TextureSource func(b render.Backend) (*render.Texture, error)

// TextureFile loads the texture from path relative to the working directory.
func TextureFile(path string) TextureSource {
	return func(b render.Backend) (*render.Texture, error) {
		return render.LoadTexture(b, path)
	}
}

// ObjectDesc describes one scene object. Objects are drawn in the order they
// are listed.
type ObjectDesc struct {
	Name     string
	Geometry geometry.Data
	Offset   mgl32.Vec3
	Textured bool

	// Spin is the rotation rate in radians per second about X, Y and Z.
	Spin mgl32.Vec3
}

// Lesson is everything one tutorial program needs: its shaders, static scene
// and which features it enables.
type Lesson struct {
	Name           string
	VertexShader   string
	FragmentShader string
	Objects        []ObjectDesc
	Eye            mgl32.Vec3
	ClearColor     [4]float32

	// Texture is required when any object is Textured.
	Texture TextureSource

	// Lighting lessons expose light_direction and enable_lighting.
	Lighting       bool
	LightDirection mgl32.Vec3

	// Interactive lessons only spin while auto-rotate is on and rotate with
	// the directional keys at ManualSpeed radians per second. Others spin
	// continuously.
	Interactive bool
	ManualSpeed float32

	// Enabled lists the toggles that start switched on.
	Enabled []input.Action
}

func (l *Lesson) eye() mgl32.Vec3 {
	if l.Eye == (mgl32.Vec3{}) {
		return DefaultEye
	}
	return l.Eye
}

func (l *Lesson) clearColor() [4]float32 {
	if l.ClearColor == ([4]float32{}) {
		return DefaultClear
	}
	return l.ClearColor
}
