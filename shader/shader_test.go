package shader

import (
	"errors"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodVertex = `
#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
    gl_Position = vec4(aPos, 1.0);
}
`

const goodFragment = `
#version 330 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const uniformFragment = `
#version 330 core
out vec4 FragColor;

uniform vec4 ourColor;

void main() {
    FragColor = ourColor;
}
`

// brokenVertex is missing the trailing semicolon.
const brokenVertex = `
#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
    gl_Position = vec4(aPos, 1.0)
}
`

const brokenFragment = `
#version 330 core
out vec4 FragColor;

void main() {
    FragColor = vec3(1.0);
}
`

// noMainFragment compiles on its own but cannot be linked.
const noMainFragment = `
#version 330 core
out vec4 FragColor;

void shade() {
    FragColor = vec4(1.0);
}
`

// newTestContext creates a hidden window with a current GL 3.3 core context.
// Tests that need a live context skip when no display or driver is available.
func newTestContext(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		t.Skipf("glfw unavailable: %v", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(64, 64, "shader test", nil, nil)
	if err != nil {
		glfw.Terminate()
		t.Skipf("cannot create hidden window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		t.Skipf("cannot load GL: %v", err)
	}

	t.Cleanup(func() {
		glfw.DetachCurrentContext()
		window.Destroy()
		glfw.Terminate()
	})
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "VERTEX", StageVertex.String())
	assert.Equal(t, "FRAGMENT", StageFragment.String())
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: StageFragment, Log: "0:5: syntax error"}
	assert.Contains(t, err.Error(), "FRAGMENT")
	assert.Contains(t, err.Error(), "0:5: syntax error")
}

func TestLinkErrorMessage(t *testing.T) {
	err := &LinkError{Log: "undefined reference to main"}
	assert.Contains(t, err.Error(), "link")
	assert.Contains(t, err.Error(), "undefined reference to main")
}

func TestNewProgramValidSources(t *testing.T) {
	newTestContext(t)

	program, err := NewProgram(goodVertex, goodFragment)
	require.NoError(t, err)
	require.NotZero(t, program)
	defer gl.DeleteProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	assert.EqualValues(t, gl.TRUE, status)
}

func TestNewProgramVertexCompileError(t *testing.T) {
	newTestContext(t)

	program, err := NewProgram(brokenVertex, goodFragment)
	require.Error(t, err)
	assert.Zero(t, program)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, StageVertex, compileErr.Stage)
	assert.NotEmpty(t, compileErr.Log)
}

func TestNewProgramFragmentCompileError(t *testing.T) {
	newTestContext(t)

	program, err := NewProgram(goodVertex, brokenFragment)
	require.Error(t, err)
	assert.Zero(t, program)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, StageFragment, compileErr.Stage)
	assert.NotEmpty(t, compileErr.Log)
}

func TestNewProgramLinkError(t *testing.T) {
	newTestContext(t)

	program, err := NewProgram(goodVertex, noMainFragment)
	require.Error(t, err)
	assert.Zero(t, program)

	var linkErr *LinkError
	require.True(t, errors.As(err, &linkErr))
	assert.NotEmpty(t, linkErr.Log)
}

func TestCompileSingleStage(t *testing.T) {
	newTestContext(t)

	handle, err := Compile(goodVertex, StageVertex)
	require.NoError(t, err)
	require.NotZero(t, handle)
	gl.DeleteShader(handle)

	_, err = Compile(brokenVertex, StageVertex)
	require.Error(t, err)
}

func TestProgramUniforms(t *testing.T) {
	newTestContext(t)

	p, err := New(goodVertex, uniformFragment)
	require.NoError(t, err)
	defer p.Delete()

	p.Use()
	loc := p.UniformLocation("ourColor")
	require.GreaterOrEqual(t, loc, int32(0))

	p.SetVec4("ourColor", mgl32.Vec4{0.0, 1.0, 0.0, 1.0})
	assert.EqualValues(t, gl.NO_ERROR, gl.GetError())

	// Inactive uniforms resolve to -1 and setting them is a no-op.
	assert.EqualValues(t, -1, p.UniformLocation("missing"))
}
