package render

import (
	"fmt"

	"gl-tutorial/geometry"
)

// Attribute names shared by every lesson shader.
const (
	AttribPosition = "vertexPosition"
	AttribNormal   = "vertexNormal"
	AttribColor    = "vertexColor"
	AttribUV       = "vertexUV"
)

var attributes = []string{AttribPosition, AttribNormal, AttribColor, AttribUV}

type stream struct {
	attrib     string
	components int32
	buffer     uint32
}

// Mesh is validated geometry uploaded once to GPU buffers. It has no mutation
// operations.
type Mesh struct {
	backend     Backend
	primitive   geometry.Primitive
	streams     []stream
	indices     uint32
	count       int
	vertexCount int
	released    bool
}

// NewMesh validates data and uploads one buffer per present stream plus an
// index buffer. Non-indexed data is drawn through a sequential index buffer.
func NewMesh(backend Backend, data geometry.Data) (*Mesh, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}

	m := &Mesh{
		backend:     backend,
		primitive:   data.Primitive,
		count:       data.Count(),
		vertexCount: data.VertexCount(),
	}

	m.addStream(AttribPosition, 3, flattenVec3(data.Positions))
	if len(data.Normals) > 0 {
		m.addStream(AttribNormal, 3, flattenVec3(data.Normals))
	}
	if len(data.Colors) > 0 {
		m.addStream(AttribColor, 3, flattenVec3(data.Colors))
	}
	if len(data.UVs) > 0 {
		uv := make([]float32, 0, len(data.UVs)*2)
		for _, v := range data.UVs {
			uv = append(uv, v[0], v[1])
		}
		m.addStream(AttribUV, 2, uv)
	}

	indices := data.Indices
	if !data.Indexed() {
		indices = make([]uint32, m.vertexCount)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	m.indices = backend.CreateIndexBuffer(indices, data.Primitive)

	return m, nil
}

func (m *Mesh) addStream(attrib string, components int32, data []float32) {
	m.streams = append(m.streams, stream{
		attrib:     attrib,
		components: components,
		buffer:     m.backend.CreateVertexBuffer(data),
	})
}

// Count is the number of elements each draw consumes.
func (m *Mesh) Count() int {
	return m.count
}

func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

func (m *Mesh) Primitive() geometry.Primitive {
	return m.primitive
}

// Components returns the tuple size of the stream bound to attrib, or 0 if the
// mesh has no such stream.
func (m *Mesh) Components(attrib string) int {
	for _, s := range m.streams {
		if s.attrib == attrib {
			return int(s.components)
		}
	}
	return 0
}

// Bind makes each stream the data source for the program attribute of the
// same name and binds the index buffer. Streams and attributes must match
// exactly: a stream the program does not read fails with
// *UnknownAttributeError, an attribute the mesh cannot feed fails with
// *MissingStreamError.
func (m *Mesh) Bind(p *Program) error {
	if m.released {
		return &ReleasedError{Resource: "mesh"}
	}
	for _, s := range m.streams {
		loc, err := p.Attribute(s.attrib)
		if err != nil {
			return err
		}
		m.backend.BindAttribute(loc, s.buffer, s.components)
	}
	for _, attrib := range attributes {
		if m.Components(attrib) == 0 && p.HasAttribute(attrib) {
			return &MissingStreamError{Attribute: attrib}
		}
	}
	m.backend.BindIndexBuffer(m.indices)
	return nil
}

// Draw issues one indexed draw call. Bind must have been called.
func (m *Mesh) Draw() {
	m.backend.DrawElements(m.primitive, int32(m.count))
}

// Release deletes every GPU buffer of the mesh. Further calls are no-ops.
func (m *Mesh) Release() {
	if m.released {
		return
	}
	for _, s := range m.streams {
		m.backend.DeleteBuffer(s.buffer)
	}
	m.backend.DeleteBuffer(m.indices)
	m.released = true
}
