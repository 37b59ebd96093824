package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hugouchoasborges/learn-opengl/shader"
)

const (
	WIDTH  = 800
	HEIGHT = 600
)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 ourColor;

void main() {
    gl_Position = vec4(aPos, 1.0);
    ourColor = aColor;
}
`

const fragmentShaderSource = `
#version 330 core
out vec4 FragColor;

in vec3 ourColor;

void main() {
    FragColor = vec4(ourColor, 1.0);
}
`

// Interleaved position (xyz) and color (rgb); the rasterizer interpolates the
// colors across the triangle.
var triangleVertices = []float32{
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right, red
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left, green
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top, blue
}

func init() {
	runtime.LockOSThread()
}

type ShaderAttributeApplication struct {
	window  *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
}

func (app *ShaderAttributeApplication) Run() (err error) {
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

func (app *ShaderAttributeApplication) initWindow() error {
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

func (app *ShaderAttributeApplication) initGL() error {
	return gl.Init()
}

func (app *ShaderAttributeApplication) createShaderProgram() error {
	program, err := shader.NewProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	app.program = program
	return nil
}

func (app *ShaderAttributeApplication) createVertexBuffers() {
	gl.GenVertexArrays(1, &app.vao)
	gl.GenBuffers(1, &app.vbo)

	gl.BindVertexArray(app.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, app.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*4, gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	// position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// color attribute
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (app *ShaderAttributeApplication) processInput() {
	if app.window.GetKey(glfw.KeyEscape) == glfw.Press {
		app.window.SetShouldClose(true)
	}
}

func (app *ShaderAttributeApplication) mainLoop() {
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

func (app *ShaderAttributeApplication) cleanup() {
	gl.DeleteVertexArrays(1, &app.vao)
	gl.DeleteBuffers(1, &app.vbo)
	gl.DeleteProgram(app.program)

	app.window.Destroy()
	glfw.Terminate()
}

func main() {
	app := &ShaderAttributeApplication{}

	if err := app.Run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
