package main

import (
	"log"
	"math"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hugouchoasborges/learn-opengl/shader"
)

const (
	WIDTH  = 800
	HEIGHT = 600
)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
    gl_Position = vec4(aPos, 1.0);
}
`

const fragmentShaderSource = `
#version 330 core
out vec4 FragColor;

uniform vec4 ourColor;

void main() {
    FragColor = ourColor;
}
`

var triangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

func init() {
	runtime.LockOSThread()
}

type ShaderUniformApplication struct {
	window  *glfw.Window
	program *shader.Program
	vao     uint32
	vbo     uint32
}

func (app *ShaderUniformApplication) Run() (err error) {
	if err = app.initWindow(); err != nil {
		return err
	}
	if err = app.initGL(); err != nil {
		return err
	}
	if err = app.createShaderProgram(); err != nil {
		return err
	}
	app.createVertexBuffers()
	app.mainLoop()
	app.cleanup()
	return nil
}

func (app *ShaderUniformApplication) initWindow() error {
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

func (app *ShaderUniformApplication) initGL() error {
	return gl.Init()
}

func (app *ShaderUniformApplication) createShaderProgram() error {
	program, err := shader.New(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	app.program = program
	return nil
}

func (app *ShaderUniformApplication) createVertexBuffers() {
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

func (app *ShaderUniformApplication) processInput() {
	if app.window.GetKey(glfw.KeyEscape) == glfw.Press {
		app.window.SetShouldClose(true)
	}
}

func (app *ShaderUniformApplication) mainLoop() {
	for !app.window.ShouldClose() {
		app.processInput()

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Pulse the green channel with time before every draw.
		greenValue := float32(math.Sin(glfw.GetTime()))/2.0 + 0.5

		app.program.Use()
		app.program.SetVec4("ourColor", mgl32.Vec4{0.0, greenValue, 0.0, 1.0})

		gl.BindVertexArray(app.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (app *ShaderUniformApplication) cleanup() {
	gl.DeleteVertexArrays(1, &app.vao)
	gl.DeleteBuffers(1, &app.vbo)
	app.program.Delete()

	app.window.Destroy()
	glfw.Terminate()
}

func main() {
	app := &ShaderUniformApplication{}

	if err := app.Run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
