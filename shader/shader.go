// Package shader builds OpenGL shader programs from GLSL source text and
// reports compile and link diagnostics as errors instead of leaving a broken
// program handle behind.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Stage identifies a programmable pipeline stage.
type Stage uint32

const (
	StageVertex   Stage = gl.VERTEX_SHADER
	StageFragment Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	default:
		return fmt.Sprintf("STAGE(0x%X)", uint32(s))
	}
}

// CompileError reports a failed compilation of a single stage, carrying the
// driver's info log.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// Compile compiles source for the given stage and returns the shader object
// handle. The handle must be deleted by the caller once linked into a program.
func Compile(source string, stage Stage) (uint32, error) {
	handle := gl.CreateShader(uint32(stage))

	csources, free := gl.Strs(terminate(source))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)

		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(infoLog, "\x00")}
	}

	return handle, nil
}

// NewProgram compiles the vertex and fragment sources and links them into a
// single program. The intermediate shader objects are deleted before
// returning; the program handle is owned by the caller and must be released
// with gl.DeleteProgram at shutdown.
func NewProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertex, err := Compile(vertexSource, StageVertex)
	if err != nil {
		return 0, err
	}

	fragment, err := Compile(fragmentSource, StageFragment)
	if err != nil {
		gl.DeleteShader(vertex)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	// Once linked, the per-stage objects are no longer needed.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)

		return 0, &LinkError{Log: strings.TrimRight(infoLog, "\x00")}
	}

	return program, nil
}

// Program wraps a linked program handle with uniform helpers.
type Program struct {
	ID uint32
}

// New builds a Program from vertex and fragment source.
func New(vertexSource, fragmentSource string) (*Program, error) {
	id, err := NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}

// UniformLocation returns the location of a uniform, or -1 if the uniform is
// not active in the program.
func (p *Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.ID, gl.Str(terminate(name)))
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.UniformLocation(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.UniformLocation(name), value)
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.UniformLocation(name), v.X(), v.Y(), v.Z(), v.W())
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.UniformLocation(name), 1, false, &m[0])
}

// terminate null-terminates source for gl.Strs / gl.Str.
func terminate(source string) string {
	if strings.HasSuffix(source, "\x00") {
		return source
	}
	return source + "\x00"
}
