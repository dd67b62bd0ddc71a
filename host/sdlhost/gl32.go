// This file is part of GopherST.
//
// GopherST is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherST is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherST.  If not, see <https://www.gnu.org/licenses/>.

package sdlhost

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

const vertexShader = `#version 150 core
in vec2 Position;
in vec2 UV;
out vec2 Frag_UV;
void main()
{
	Frag_UV = UV;
	gl_Position = vec4(Position, 0.0, 1.0);
}
`

const fragmentShader = `#version 150 core
uniform sampler2D Texture;
in vec2 Frag_UV;
out vec4 Out_Color;
void main()
{
	Out_Color = texture(Texture, Frag_UV);
}
`

// a quad covering the viewport as two triangles. each vertex is position
// followed by texture coordinate. the texture is upside down compared to
// the OpenGL coordinate system
var quad = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,
	1, 1, 1, 0,
}

// gl32 draws the image with OpenGL 3.2 core.
type gl32 struct {
	window  *sdl.Window
	context sdl.GLContext

	program  uint32
	vao      uint32
	vbo      uint32
	texture  uint32
	position int32
	uv       int32
	sampler  int32

	size image.Point
}

func newGL32(window *sdl.Window, vsync bool) (*gl32, error) {
	rnd := &gl32{window: window}

	var err error
	rnd.context, err = window.GLCreateContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL context: %w", err)
	}

	err = window.GLMakeCurrent(rnd.context)
	if err != nil {
		rnd.destroy()
		return nil, fmt.Errorf("failed to set current OpenGL context: %w", err)
	}

	if vsync {
		_ = sdl.GLSetSwapInterval(1)
	} else {
		_ = sdl.GLSetSwapInterval(0)
	}

	err = gl.Init()
	if err != nil {
		rnd.destroy()
		return nil, fmt.Errorf("glsl: %w", err)
	}

	err = rnd.createProgram(vertexShader, fragmentShader)
	if err != nil {
		rnd.destroy()
		return nil, err
	}

	gl.GenVertexArrays(1, &rnd.vao)
	gl.BindVertexArray(rnd.vao)

	gl.GenBuffers(1, &rnd.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(uint32(rnd.position))
	gl.VertexAttribPointerWithOffset(uint32(rnd.position), 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(uint32(rnd.uv))
	gl.VertexAttribPointerWithOffset(uint32(rnd.uv), 2, gl.FLOAT, false, 4*4, 2*4)

	gl.GenTextures(1, &rnd.texture)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return rnd, nil
}

// compile and link shader program
func (rnd *gl32) createProgram(vertProgram string, fragProgram string) error {
	rnd.program = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()
		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := shaderCompileError(vertHandle); log != "" {
		return fmt.Errorf("glsl: vertex shader: %s", log)
	}

	gl.CompileShader(fragHandle)
	if log := shaderCompileError(fragHandle); log != "" {
		return fmt.Errorf("glsl: fragment shader: %s", log)
	}

	gl.AttachShader(rnd.program, vertHandle)
	gl.AttachShader(rnd.program, fragHandle)
	gl.LinkProgram(rnd.program)

	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	rnd.position = gl.GetAttribLocation(rnd.program, gl.Str("Position"+"\x00"))
	rnd.uv = gl.GetAttribLocation(rnd.program, gl.Str("UV"+"\x00"))
	rnd.sampler = gl.GetUniformLocation(rnd.program, gl.Str("Texture"+"\x00"))

	return nil
}

// shaderCompileError returns the most recent error generated by the shader
// compiler
func shaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}

func (rnd *gl32) destroy() {
	if rnd.texture != 0 {
		gl.DeleteTextures(1, &rnd.texture)
		rnd.texture = 0
	}
	if rnd.vbo != 0 {
		gl.DeleteBuffers(1, &rnd.vbo)
		rnd.vbo = 0
	}
	if rnd.vao != 0 {
		gl.DeleteVertexArrays(1, &rnd.vao)
		rnd.vao = 0
	}
	if rnd.program != 0 {
		gl.DeleteProgram(rnd.program)
		rnd.program = 0
	}
	if rnd.context != nil {
		sdl.GLDeleteContext(rnd.context)
		rnd.context = nil
	}
}

func (rnd *gl32) present(img *image.RGBA, dst image.Rectangle) error {
	sz := img.Bounds().Size()

	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/pixelDepth))

	if sz != rnd.size {
		rnd.size = sz
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(sz.X), int32(sz.Y), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(sz.X), int32(sz.Y),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
	}

	// the OpenGL viewport is measured from the bottom of the window
	_, h := rnd.window.GLGetDrawableSize()
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Viewport(int32(dst.Min.X), h-int32(dst.Max.Y), int32(dst.Dx()), int32(dst.Dy()))

	gl.UseProgram(rnd.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(rnd.sampler, 0)
	gl.BindVertexArray(rnd.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	rnd.window.GLSwap()

	return nil
}
