package main

import (
	"log"
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
layout (location = 1) in vec3 aColor;

out vec3 ourColor;

uniform mat4 transform;

void main() {
    gl_Position = transform * vec4(aPos, 1.0);
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

var quadVertices = []float32{
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, // top left
}

var quadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

func init() {
	runtime.LockOSThread()
}

type TransformationsApplication struct {
	window  *glfw.Window
	program *shader.Program
	vao     uint32
	vbo     uint32
	ebo     uint32
}

func (app *TransformationsApplication) Run() (err error) {
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

func (app *TransformationsApplication) initWindow() error {
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

func (app *TransformationsApplication) initGL() error {
	return gl.Init()
}

func (app *TransformationsApplication) createShaderProgram() error {
	program, err := shader.New(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	app.program = program
	return nil
}

func (app *TransformationsApplication) createVertexBuffers() {
	gl.GenVertexArrays(1, &app.vao)
	gl.GenBuffers(1, &app.vbo)
	gl.GenBuffers(1, &app.ebo)

	gl.BindVertexArray(app.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, app.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, app.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (app *TransformationsApplication) processInput() {
	if app.window.GetKey(glfw.KeyEscape) == glfw.Press {
		app.window.SetShouldClose(true)
	}
}

func (app *TransformationsApplication) mainLoop() {
	for !app.window.ShouldClose() {
		app.processInput()

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Translate to the lower right corner, then spin around the z axis.
		// The right-most transform in the multiplication is applied first.
		transform := mgl32.Translate3D(0.5, -0.5, 0.0).
			Mul4(mgl32.HomogRotate3DZ(float32(glfw.GetTime())))

		app.program.Use()
		app.program.SetMat4("transform", transform)

		gl.BindVertexArray(app.vao)
		gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (app *TransformationsApplication) cleanup() {
	gl.DeleteVertexArrays(1, &app.vao)
	gl.DeleteBuffers(1, &app.vbo)
	gl.DeleteBuffers(1, &app.ebo)
	app.program.Delete()

	app.window.Destroy()
	glfw.Terminate()
}

func main() {
	app := &TransformationsApplication{}

	if err := app.Run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
