package render

import "fmt"

// Shader stages reported by ShaderCompilationError.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
	StageLink     = "link"
)

// ShaderCompilationError carries the driver diagnostic for a failed compile
// or link.
type ShaderCompilationError struct {
	Stage string
	Log   string
}

func (e *ShaderCompilationError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

type UnknownUniformError struct {
	Name string
}

func (e *UnknownUniformError) Error() string {
	return fmt.Sprintf("program has no active uniform %q", e.Name)
}

type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("program has no active attribute %q", e.Name)
}

// TextureLoadError reports a texture source that could not be read or
// decoded. Path is empty for in-memory sources.
type TextureLoadError struct {
	Path string
	Err  error
}

func (e *TextureLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load texture: %v", e.Err)
	}
	return fmt.Sprintf("load texture %q: %v", e.Path, e.Err)
}

func (e *TextureLoadError) Unwrap() error {
	return e.Err
}

// ReleasedError reports use of a resource after Release.
type ReleasedError struct {
	Resource string
}

func (e *ReleasedError) Error() string {
	return fmt.Sprintf("%s used after release", e.Resource)
}

// MissingStreamError reports a program attribute that the bound mesh has no
// vertex stream for.
type MissingStreamError struct {
	Attribute string
}

func (e *MissingStreamError) Error() string {
	return fmt.Sprintf("mesh has no stream for attribute %q", e.Attribute)
}
