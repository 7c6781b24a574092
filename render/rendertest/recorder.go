// Package rendertest provides a render.Backend that records every call
// instead of talking to a GPU.
package rendertest

import (
	"regexp"

	"github.com/go-gl/mathgl/mgl32"

	"gl-tutorial/geometry"
	"gl-tutorial/render"
)

var (
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
	inputDecl   = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?in\s+\w+\s+(\w+)\s*;`)
)

// DrawCall is one recorded DrawElements call with the state it ran under.
type DrawCall struct {
	Program    uint32
	Primitive  geometry.Primitive
	Count      int32
	Uniforms   map[string]any
	Attributes map[string]uint32
	Indices    uint32
	Textures   map[uint32]uint32
}

// UniformSet is one recorded uniform upload.
type UniformSet struct {
	Program uint32
	Name    string
	Value   any
}

type program struct {
	uniforms   map[string]int32
	attributes map[string]int32
	values     map[string]any
}

type location struct {
	program uint32
	name    string
}

// Recorder emulates a driver closely enough for host-side tests: it declares
// the uniforms and inputs it finds in the shader text, and tracks buffer,
// texture and program lifetimes.
type Recorder struct {
	// FailStage makes CompileProgram fail at the named stage.
	FailStage string

	nextID    uint32
	programs  map[uint32]*program
	locations map[int32]location
	current   uint32

	Buffers  map[uint32][]float32
	Indices  map[uint32][]uint32
	Textures map[uint32][]byte
	// Deleted counts delete calls per handle across every resource type.
	Deleted map[uint32]int

	boundAttribs map[string]uint32
	boundIndices uint32
	boundTexture map[uint32]uint32

	Draws       []DrawCall
	UniformSets []UniformSet
	Clears      int
	ClearRGBA   [4]float32
	ViewportW   int
	ViewportH   int
}

var _ render.Backend = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		programs:     make(map[uint32]*program),
		locations:    make(map[int32]location),
		Buffers:      make(map[uint32][]float32),
		Indices:      make(map[uint32][]uint32),
		Textures:     make(map[uint32][]byte),
		Deleted:      make(map[uint32]int),
		boundAttribs: make(map[string]uint32),
		boundTexture: make(map[uint32]uint32),
	}
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

// ResetCalls forgets recorded draws, uniform uploads and clears but keeps
// resources and uniform state.
func (r *Recorder) ResetCalls() {
	r.Draws = nil
	r.UniformSets = nil
	r.Clears = 0
}

func (r *Recorder) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if r.FailStage != "" {
		return 0, &render.ShaderCompilationError{Stage: r.FailStage, Log: "recorder: forced failure"}
	}
	id := r.id()
	p := &program{
		uniforms:   make(map[string]int32),
		attributes: make(map[string]int32),
		values:     make(map[string]any),
	}
	for _, src := range []string{vertexSrc, fragmentSrc} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			if _, ok := p.uniforms[m[1]]; ok {
				continue
			}
			loc := int32(len(r.locations))
			r.locations[loc] = location{program: id, name: m[1]}
			p.uniforms[m[1]] = loc
		}
	}
	for i, m := range inputDecl.FindAllStringSubmatch(vertexSrc, -1) {
		p.attributes[m[1]] = int32(i)
	}
	r.programs[id] = p
	return id, nil
}

func (r *Recorder) DeleteProgram(id uint32) {
	r.Deleted[id]++
}

func (r *Recorder) UseProgram(id uint32) {
	r.current = id
}

func (r *Recorder) CurrentProgram() uint32 {
	return r.current
}

func (r *Recorder) UniformLocation(id uint32, name string) int32 {
	p, ok := r.programs[id]
	if !ok {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) AttribLocation(id uint32, name string) int32 {
	p, ok := r.programs[id]
	if !ok {
		return -1
	}
	if loc, ok := p.attributes[name]; ok {
		return loc
	}
	return -1
}

// set records a uniform upload. Like the driver, it applies to the current
// program and ignores locations that belong to another one.
func (r *Recorder) set(loc int32, v any) {
	l, ok := r.locations[loc]
	if !ok || l.program != r.current {
		return
	}
	r.programs[l.program].values[l.name] = v
	r.UniformSets = append(r.UniformSets, UniformSet{Program: l.program, Name: l.name, Value: v})
}

func (r *Recorder) UniformMatrix4(loc int32, m mgl32.Mat4) { r.set(loc, m) }
func (r *Recorder) Uniform3(loc int32, v mgl32.Vec3) { r.set(loc, v) }
func (r *Recorder) Uniform1i(loc int32, v int32) { r.set(loc, v) }

// Uniform returns the last value uploaded to the named uniform of a program.
func (r *Recorder) Uniform(id uint32, name string) (any, bool) {
	p, ok := r.programs[id]
	if !ok {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

func (r *Recorder) CreateVertexBuffer(data []float32) uint32 {
	id := r.id()
	r.Buffers[id] = append([]float32(nil), data...)
	return id
}

func (r *Recorder) CreateIndexBuffer(indices []uint32, primitive geometry.Primitive) uint32 {
	id := r.id()
	r.Indices[id] = append([]uint32(nil), indices...)
	return id
}

func (r *Recorder) DeleteBuffer(id uint32) {
	r.Deleted[id]++
}

func (r *Recorder) BindAttribute(loc uint32, buffer uint32, components int32) {
	p, ok := r.programs[r.current]
	if !ok {
		return
	}
	for name, l := range p.attributes {
		if uint32(l) == loc {
			r.boundAttribs[name] = buffer
		}
	}
}

func (r *Recorder) BindIndexBuffer(id uint32) {
	r.boundIndices = id
}

func (r *Recorder) DrawElements(primitive geometry.Primitive, count int32) {
	call := DrawCall{
		Program:    r.current,
		Primitive:  primitive,
		Count:      count,
		Uniforms:   make(map[string]any),
		Attributes: make(map[string]uint32),
		Indices:    r.boundIndices,
		Textures:   make(map[uint32]uint32),
	}
	if p, ok := r.programs[r.current]; ok {
		for k, v := range p.values {
			call.Uniforms[k] = v
		}
	}
	for k, v := range r.boundAttribs {
		call.Attributes[k] = v
	}
	for k, v := range r.boundTexture {
		call.Textures[k] = v
	}
	r.Draws = append(r.Draws, call)
}

func (r *Recorder) CreateTexture(width, height int, rgba []byte) uint32 {
	id := r.id()
	r.Textures[id] = append([]byte(nil), rgba...)
	return id
}

func (r *Recorder) BindTexture(unit uint32, id uint32) {
	r.boundTexture[unit] = id
}

func (r *Recorder) DeleteTexture(id uint32) {
	r.Deleted[id]++
}

func (r *Recorder) Viewport(width, height int) {
	r.ViewportW, r.ViewportH = width, height
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.ClearRGBA = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear() {
	r.Clears++
}

// Handles lists every resource handle created so far.
func (r *Recorder) Handles() []uint32 {
	var out []uint32
	for id := range r.programs {
		out = append(out, id)
	}
	for id := range r.Buffers {
		out = append(out, id)
	}
	for id := range r.Indices {
		out = append(out, id)
	}
	for id := range r.Textures {
		out = append(out, id)
	}
	return out
}
