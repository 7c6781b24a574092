package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"gl-tutorial/geometry"
	"gl-tutorial/render"
)

// Backend implements render.Backend on an OpenGL 4.1 core context.
type Backend struct {
	// the core profile refuses to draw without a bound vertex array
	vao uint32
}

var _ render.Backend = (*Backend)(nil)

// New loads the GL entry points and sets the fixed pipeline state.
// Must be called after the GLFW window context is made current.
func New(log *zap.Logger) (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	b := &Backend{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	return b, nil
}

// Release deletes the vertex array. Resources created through the backend are
// owned and released by their render wrappers.
func (b *Backend) Release() {
	if b.vao == 0 {
		return
	}
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &b.vao)
	b.vao = 0
}

// ── programs ─────────────────────────────────────────────────────────────────

func (b *Backend) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, &render.ShaderCompilationError{Stage: render.StageVertex, Log: err.Error()}
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, &render.ShaderCompilationError{Stage: render.StageFragment, Log: err.Error()}
	}
	defer gl.DeleteShader(frag)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, &render.ShaderCompilationError{Stage: render.StageLink, Log: strings.TrimRight(log, "\x00")}
	}

	gl.DetachShader(prog, vert)
	gl.DetachShader(prog, frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (b *Backend) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (b *Backend) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *Backend) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// mgl32.Mat4 is column-major, as GL expects (transpose=false).
func (b *Backend) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (b *Backend) Uniform3(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (b *Backend) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

// ── buffers ──────────────────────────────────────────────────────────────────

func (b *Backend) CreateVertexBuffer(data []float32) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return id
}

// CreateIndexBuffer triangulates quads, which the core profile cannot draw.
func (b *Backend) CreateIndexBuffer(indices []uint32, primitive geometry.Primitive) uint32 {
	if primitive == geometry.Quads {
		indices = geometry.TriangulateQuads(indices)
	}
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	return id
}

func (b *Backend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (b *Backend) BindAttribute(location uint32, buffer uint32, components int32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointer(location, components, gl.FLOAT, false, components*4, nil)
}

func (b *Backend) BindIndexBuffer(buffer uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffer)
}

// DrawElements takes the authored index count; quads were uploaded as two
// triangles each.
func (b *Backend) DrawElements(primitive geometry.Primitive, count int32) {
	n := geometry.TriangulatedCount(primitive, int(count))
	gl.DrawElements(gl.TRIANGLES, int32(n), gl.UNSIGNED_INT, nil)
}

// ── textures ─────────────────────────────────────────────────────────────────

func (b *Backend) CreateTexture(width, height int, rgba []byte) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(width),
		int32(height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&rgba[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

func (b *Backend) BindTexture(unit uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (b *Backend) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

// ── frame ────────────────────────────────────────────────────────────────────

func (b *Backend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
}

func (b *Backend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
