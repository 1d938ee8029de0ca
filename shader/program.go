package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program wraps a linked GL shader program and caches uniform
// locations by name. Setter calls with names the program does not
// declare are silently ignored, matching GL's -1 location behavior.
type Program struct {
	handle uint32
	locs   map[string]int32
}

// NewProgram compiles and links the given vertex and fragment sources.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertexShader)
	gl.AttachShader(handle, fragmentShader)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(infoLog))
		return nil, fmt.Errorf("failed to link program: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return &Program{
		handle: handle,
		locs:   make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Destroy deletes the underlying GL program.
func (p *Program) Destroy() {
	gl.DeleteProgram(p.handle)
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	if loc := p.location(name); loc != -1 {
		gl.Uniform1i(loc, i)
	}
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform2fv(loc, 1, &v[0])
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform4fv(loc, 1, &v[0])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// SetSampler2D points the named sampler at a texture unit. Slot -1
// (an unresolved texture tag) is written as-is and produces a default
// sample rather than an error.
func (p *Program) SetSampler2D(name string, slot int32) {
	if loc := p.location(name); loc != -1 {
		gl.Uniform1i(loc, slot)
	}
}
