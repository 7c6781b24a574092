package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-tutorial/render"
)

// Object is a mesh placed in the scene. Only Angles change after startup.
type Object struct {
	Name    string
	Mesh    *render.Mesh
	Texture *render.Texture
	Offset  mgl32.Vec3
	Spin    mgl32.Vec3
	Angles  mgl32.Vec3
}

// Model is translate(Offset) * rotY * rotX * rotZ.
func (o *Object) Model() mgl32.Mat4 {
	return mgl32.Translate3D(o.Offset[0], o.Offset[1], o.Offset[2]).
		Mul4(mgl32.HomogRotate3DY(o.Angles[1])).
		Mul4(mgl32.HomogRotate3DX(o.Angles[0])).
		Mul4(mgl32.HomogRotate3DZ(o.Angles[2]))
}

func (o *Object) advance(dt float32) {
	o.Angles = o.Angles.Add(o.Spin.Mul(dt))
}
