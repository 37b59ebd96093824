package main

import (
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	WIDTH  = 800
	HEIGHT = 600
)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
` + "\x00"

const fragmentShaderSource = `
#version 330 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
` + "\x00"

// Three vertices in normalized device coordinates, uploaded once and never
// written to again.
var triangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

func init() {
	runtime.LockOSThread()
}

type HelloTriangleApplication struct {
	window  *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
}

func (app *HelloTriangleApplication) Run() (err error) {
	if err = app.initWindow(); err != nil {
		return err
	}
	if err = app.initGL(); err != nil {
		return err
	}
	app.createShaderProgram()
	app.createVertexBuffers()
	app.mainLoop()
	app.cleanup()
	return nil
}

func (app *HelloTriangleApplication) initWindow() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(WIDTH, HEIGHT, "LearnOpenGL", nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	app.window = window
	return nil
}

func (app *HelloTriangleApplication) initGL() error {
	return gl.Init()
}

// createShaderProgram checks every status but only prints the info log on
// failure; rendering then proceeds with whatever handle came back. Later
// lessons build programs through the shader package, which returns an error
// instead.
func (app *HelloTriangleApplication) createShaderProgram() {
	vertexShader := compileShader(vertexShaderSource, gl.VERTEX_SHADER, "VERTEX")
	fragmentShader := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER, "FRAGMENT")

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		fmt.Printf("ERROR::SHADER::PROGRAM::LINKING_FAILED\n%s\n", infoLog)
	}

	// The shader objects are linked into the program and no longer needed.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	app.program = program
}

func compileShader(source string, shaderType uint32, stage string) uint32 {
	handle := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
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
		fmt.Printf("ERROR::SHADER::%s::COMPILATION_FAILED\n%s\n", stage, infoLog)
	}

	return handle
}

func (app *HelloTriangleApplication) createVertexBuffers() {
	gl.GenVertexArrays(1, &app.vao)
	gl.GenBuffers(1, &app.vbo)

	gl.BindVertexArray(app.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, app.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*4, gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (app *HelloTriangleApplication) processInput() {
	if app.window.GetKey(glfw.KeyEscape) == glfw.Press {
		app.window.SetShouldClose(true)
	}
}

func (app *HelloTriangleApplication) mainLoop() {
	for !app.window.ShouldClose() {
		app.processInput()

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(app.program)
		gl.BindVertexArray(app.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (app *HelloTriangleApplication) cleanup() {
	gl.DeleteVertexArrays(1, &app.vao)
	gl.DeleteBuffers(1, &app.vbo)
	gl.DeleteProgram(app.program)

	app.window.Destroy()
	glfw.Terminate()
}

func main() {
	app := &HelloTriangleApplication{}

	if err := app.Run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
