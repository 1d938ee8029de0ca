package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/retrodesk/retrodesk/glcontext"
	"github.com/retrodesk/retrodesk/material"
	"github.com/retrodesk/retrodesk/mesh"
	"github.com/retrodesk/retrodesk/options"
	"github.com/retrodesk/retrodesk/scene"
	"github.com/retrodesk/retrodesk/shader"
	"github.com/retrodesk/retrodesk/texture"
)

func init() {
	runtime.LockOSThread()
}

// cameraEye frames the desk from slightly above and in front.
var (
	cameraEye    = mgl32.Vec3{0, 6, 16}
	cameraTarget = mgl32.Vec3{0, 3, 0}
	cameraUp     = mgl32.Vec3{0, 1, 0}
)

func run(opts *options.SceneOptions) error {
	ctx, err := glcontext.New(*opts.Width, *opts.Height, *opts.Title)
	if err != nil {
		return fmt.Errorf("failed to create GL context: %w", err)
	}
	defer ctx.Shutdown()

	program, err := shader.NewProgram(shader.VertexSource, shader.FragmentSource)
	if err != nil {
		return fmt.Errorf("failed to build scene shader: %w", err)
	}
	defer program.Destroy()
	program.Use()

	meshes := mesh.NewLibrary()
	defer meshes.Destroy()

	textures := texture.NewRegistry(texture.GLUploader{})
	defer textures.Destroy()

	composer := scene.NewComposer(program, meshes, textures, material.NewRegistry())
	composer.Prepare(*opts.TextureDir)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	for !ctx.ShouldClose() {
		fbWidth, fbHeight := ctx.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		aspect := float32(1)
		if fbHeight > 0 {
			aspect = float32(fbWidth) / float32(fbHeight)
		}
		projection := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
		view := mgl32.LookAtV(cameraEye, cameraTarget, cameraUp)

		program.Use()
		program.SetMat4("projection", projection)
		program.SetMat4("view", view)
		program.SetVec3("viewPosition", cameraEye)

		composer.Render()
		ctx.EndFrame()
	}
	return nil
}

func main() {
	opts := &options.SceneOptions{
		Width:      flag.Int("width", 1280, "window width"),
		Height:     flag.Int("height", 720, "window height"),
		Title:      flag.String("title", "retrodesk", "window title"),
		TextureDir: flag.String("textures", "textures", "directory containing scene texture images"),
	}
	flag.Parse()

	if err := glcontext.Init(); err != nil {
		log.Fatalf("Failed to initialize graphics: %v", err)
	}
	defer glcontext.Terminate()

	if err := run(opts); err != nil {
		log.Fatalf("Renderer failed: %v", err)
	}
}
