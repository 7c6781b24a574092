// Package render wraps GPU resources (programs, meshes, textures) behind a
// small Backend interface so that lessons run unchanged against OpenGL or a
// recording backend.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"gl-tutorial/geometry"
)

// Backend is the subset of the graphics API the tutorial uses. Handles are
// opaque non-zero IDs. All methods must be called from the thread that owns
// the context.
type Backend interface {
	// CompileProgram compiles and links a shader pair. Failures are reported
	// as *ShaderCompilationError.
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	// UniformLocation and AttribLocation return -1 for names the linked
	// program does not expose.
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)
	Uniform3(location int32, v mgl32.Vec3)
	Uniform1i(location int32, v int32)

	CreateVertexBuffer(data []float32) uint32
	// CreateIndexBuffer uploads an index stream for the given primitive
	// kind. Backends without native support for a kind convert it here.
	CreateIndexBuffer(indices []uint32, primitive geometry.Primitive) uint32
	DeleteBuffer(buffer uint32)
	BindAttribute(location uint32, buffer uint32, components int32)
	BindIndexBuffer(buffer uint32)
	// DrawElements draws count authored indices of the bound index buffer.
	DrawElements(primitive geometry.Primitive, count int32)

	CreateTexture(width, height int, rgba []byte) uint32
	BindTexture(unit uint32, texture uint32)
	DeleteTexture(texture uint32)

	Viewport(width, height int)
	ClearColor(r, g, b, a float32)
	Clear()
}
