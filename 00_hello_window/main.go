package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	WIDTH  = 800
	HEIGHT = 600
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

type HelloWindowApplication struct {
	window *glfw.Window
}

func (app *HelloWindowApplication) Run() (err error) {
	if err = app.initWindow(); err != nil {
		return err
	}
	if err = app.initGL(); err != nil {
		return err
	}
	app.mainLoop()
	app.cleanup()
	return nil
}

func (app *HelloWindowApplication) initWindow() error {
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

func (app *HelloWindowApplication) initGL() error {
	if err := gl.Init(); err != nil {
		return err
	}
	gl.Viewport(0, 0, WIDTH, HEIGHT)
	return nil
}

func (app *HelloWindowApplication) processInput() {
	if app.window.GetKey(glfw.KeyEscape) == glfw.Press {
		app.window.SetShouldClose(true)
	}
}

func (app *HelloWindowApplication) mainLoop() {
	for !app.window.ShouldClose() {
		app.processInput()

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (app *HelloWindowApplication) cleanup() {
	app.window.Destroy()
	glfw.Terminate()
}

func main() {
	app := &HelloWindowApplication{}

	if err := app.Run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
