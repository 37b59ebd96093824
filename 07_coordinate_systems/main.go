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

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
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

// A unit cube of 12 triangles, one color per face.
var cubeVertices = []float32{
	// back face, red
	-0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	// front face, green
	-0.5, -0.5, 0.5, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 1.0, 0.0,
	// left face, blue
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
	// right face, yellow
	0.5, 0.5, 0.5, 1.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 1.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0, 0.0,
	// bottom face, cyan
	-0.5, -0.5, -0.5, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 1.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0, 1.0,
	// top face, magenta
	-0.5, 0.5, -0.5, 1.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 1.0,
	-0.5, 0.5, 0.5, 1.0, 0.0, 1.0,
	-0.5, 0.5, -0.5, 1.0, 0.0, 1.0,
}

func init() {
	runtime.LockOSThread()
}

type CoordinateSystemsApplication struct {
	window  *glfw.Window
	program *shader.Program
	vao     uint32
	vbo     uint32
}

func (app *CoordinateSystemsApplication) Run() (err error) {
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

func (app *CoordinateSystemsApplication) initWindow() error {
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

func (app *CoordinateSystemsApplication) initGL() error {
	if err := gl.Init(); err != nil {
		return err
	}
	// Without a depth test the back faces drawn last would paint over the
	// front of the cube.
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (app *CoordinateSystemsApplication) createShaderProgram() error {
	program, err := shader.New(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	app.program = program
	return nil
}

func (app *CoordinateSystemsApplication) createVertexBuffers() {
	gl.GenVertexArrays(1, &app.vao)
	gl.GenBuffers(1, &app.vbo)

	gl.BindVertexArray(app.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, app.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (app *CoordinateSystemsApplication) processInput() {
	if app.window.GetKey(glfw.KeyEscape) == glfw.Press {
		app.window.SetShouldClose(true)
	}
}

func (app *CoordinateSystemsApplication) mainLoop() {
	for !app.window.ShouldClose() {
		app.processInput()

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		model := mgl32.HomogRotate3D(
			float32(glfw.GetTime())*mgl32.DegToRad(50),
			mgl32.Vec3{0.5, 1.0, 0.0}.Normalize(),
		)
		view := mgl32.Translate3D(0.0, 0.0, -3.0)
		projection := mgl32.Perspective(
			mgl32.DegToRad(45), float32(WIDTH)/float32(HEIGHT), 0.1, 100.0,
		)

		app.program.Use()
		app.program.SetMat4("model", model)
		app.program.SetMat4("view", view)
		app.program.SetMat4("projection", projection)

		gl.BindVertexArray(app.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(cubeVertices)/6))

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (app *CoordinateSystemsApplication) cleanup() {
	gl.DeleteVertexArrays(1, &app.vao)
	gl.DeleteBuffers(1, &app.vbo)
	app.program.Delete()

	app.window.Destroy()
	glfw.Terminate()
}

func main() {
	app := &CoordinateSystemsApplication{}

	if err := app.Run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
