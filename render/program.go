package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared by every lesson shader.
const (
	UniformProjection     = "projection_matrix"
	UniformView           = "view_matrix"
	UniformModel          = "model_matrix"
	UniformLightDirection = "light_direction"
	UniformEnableLighting = "enable_lighting"
	UniformTexture        = "diffuse_texture"
)

// Program is a linked vertex + fragment shader pair. Uniform and attribute
// locations are looked up once and cached. Looking up a name the program does
// not expose always fails with *UnknownUniformError or *UnknownAttributeError.
type Program struct {
	backend    Backend
	id         uint32
	uniforms   map[string]int32
	attributes map[string]int32
	released   bool
}

func NewProgram(backend Backend, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := backend.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		backend:    backend,
		id:         id,
		uniforms:   make(map[string]int32),
		attributes: make(map[string]int32),
	}, nil
}

func (p *Program) ID() uint32 {
	return p.id
}

// Use makes this the active program for subsequent uniform sets and draws.
func (p *Program) Use() {
	p.backend.UseProgram(p.id)
}

func (p *Program) Uniform(name string) (int32, error) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := p.backend.UniformLocation(p.id, name)
	if loc < 0 {
		return -1, &UnknownUniformError{Name: name}
	}
	p.uniforms[name] = loc
	return loc, nil
}

// HasUniform reports whether the program exposes the named uniform.
func (p *Program) HasUniform(name string) bool {
	_, err := p.Uniform(name)
	return err == nil
}

func (p *Program) Attribute(name string) (uint32, error) {
	loc, ok := p.attributes[name]
	if !ok {
		loc = p.backend.AttribLocation(p.id, name)
		p.attributes[name] = loc
	}
	if loc < 0 {
		return 0, &UnknownAttributeError{Name: name}
	}
	return uint32(loc), nil
}

// HasAttribute reports whether the program reads the named vertex attribute.
func (p *Program) HasAttribute(name string) bool {
	_, err := p.Attribute(name)
	return err == nil
}

// The setters apply to the active program; call Use first.

func (p *Program) SetMat4(name string, m mgl32.Mat4) error {
	loc, err := p.Uniform(name)
	if err != nil {
		return err
	}
	p.backend.UniformMatrix4(loc, m)
	return nil
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) error {
	loc, err := p.Uniform(name)
	if err != nil {
		return err
	}
	p.backend.Uniform3(loc, v)
	return nil
}

func (p *Program) SetBool(name string, b bool) error {
	var v int32
	if b {
		v = 1
	}
	return p.SetInt(name, v)
}

func (p *Program) SetInt(name string, v int32) error {
	loc, err := p.Uniform(name)
	if err != nil {
		return err
	}
	p.backend.Uniform1i(loc, v)
	return nil
}

// Release deletes the GPU program. Further calls are no-ops.
func (p *Program) Release() {
	if p.released {
		return
	}
	p.backend.DeleteProgram(p.id)
	p.released = true
}
