package glbackend

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/geom"
	"github.com/hubastard/groveui/engine/gfx/mesh"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls int
	Vertices  int
}

// RendererGL batches UI triangles into one vertex buffer sampled from the
// font atlas texture. A batch is flushed when the clip rectangle changes and
// at the end of the frame.
type RendererGL struct {
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	uScreen int32

	atlas *text.Atlas

	fbW, fbH         int
	screenW, screenH float32

	verts []mesh.Vertex
	quads []text.Quad
	stats Statistics
}

var _ ui.Renderer = (*RendererGL)(nil)

// NewRendererGL compiles the UI pipeline and uploads the atlas. The GL
// context must be current.
func NewRendererGL(atlas *text.Atlas) (*RendererGL, error) {
	r := &RendererGL{atlas: atlas, verts: make([]mesh.Vertex, 0, 4096)}
	if err := r.Init(); err != nil {
		r.Shutdown()
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uScreen = gl.GetUniformLocation(r.program, gl.Str("uScreen\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor;
	const stride = mesh.Floats * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(4*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	img := r.atlas.Image
	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	// The atlas is premultiplied.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize sets the framebuffer size in pixels and the UI screen size in
// units. They differ on high density displays.
func (r *RendererGL) Resize(fbW, fbH int, screenW, screenH float32) {
	r.fbW, r.fbH = fbW, fbH
	r.screenW, r.screenH = screenW, screenH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
}

func (r *RendererGL) Clear(c colors.Color) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// BeginFrame resets the batch and statistics.
func (r *RendererGL) BeginFrame() {
	r.stats = Statistics{}
	r.verts = r.verts[:0]
	gl.Disable(gl.SCISSOR_TEST)
}

// EndFrame submits whatever is still batched.
func (r *RendererGL) EndFrame() { r.flush() }

// Stats returns the current frame statistics snapshot.
func (r *RendererGL) Stats() Statistics { return r.stats }

func (r *RendererGL) ScreenWidth() float32  { return r.screenW }
func (r *RendererGL) ScreenHeight() float32 { return r.screenH }

func (r *RendererGL) DrawRect4(rect geom.Rect, c [4]colors.Color, rounding float32, corners geom.Corners) {
	r.verts = mesh.RoundedRect(r.verts, rect, c, rounding, corners, r.atlas.WhiteU, r.atlas.WhiteV)
}

func (r *RendererGL) DrawText(rect geom.Rect, s string, opt ui.TextOptions) {
	r.quads = r.atlas.Layout(rect, s, textOptions(opt), r.quads[:0])
	for _, q := range r.quads {
		r.verts = mesh.Quad(r.verts, q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, q.Color)
	}
}

func (r *RendererGL) MeasureText(s string, size float32) float32 {
	return r.atlas.Measure(s, size)
}

func (r *RendererGL) ClipEnable(rect geom.Rect) {
	r.flush()
	x, y, w, h := scissorBox(rect, r.fbW, r.fbH, r.screenW, r.screenH)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, y, w, h)
}

func (r *RendererGL) ClipDisable() {
	r.flush()
	gl.Disable(gl.SCISSOR_TEST)
}

func (r *RendererGL) flush() {
	if len(r.verts) == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.Uniform2f(r.uScreen, r.screenW, r.screenH)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*mesh.Floats*4, unsafe.Pointer(&r.verts[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.verts)))
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	r.stats.DrawCalls++
	r.stats.Vertices += len(r.verts)
	r.verts = r.verts[:0]
}

func textOptions(opt ui.TextOptions) text.Options {
	out := text.Options{
		Size:           opt.Size,
		LineWidth:      opt.LineWidth,
		Color:          opt.Color,
		HighlightStart: opt.HighlightStart,
		HighlightEnd:   opt.HighlightEnd,
		HighlightColor: opt.HighlightColor,
	}
	switch opt.Align {
	case ui.AlignCenter:
		out.Align = text.AlignCenter
	case ui.AlignRight:
		out.Align = text.AlignRight
	default:
		out.Align = text.AlignLeft
	}
	return out
}

// scissorBox converts a clip rectangle in UI units with a top-left origin
// to framebuffer pixels with GL's bottom-left origin.
func scissorBox(clip geom.Rect, fbW, fbH int, screenW, screenH float32) (x, y, w, h int32) {
	if screenW <= 0 || screenH <= 0 {
		return 0, 0, 0, 0
	}
	sx := float32(fbW) / screenW
	sy := float32(fbH) / screenH
	x0 := int32(math.Floor(float64(clip.X * sx)))
	x1 := int32(math.Ceil(float64(clip.Right() * sx)))
	y0 := int32(math.Floor(float64(clip.Y * sy)))
	y1 := int32(math.Ceil(float64(clip.Bottom() * sy)))
	return x0, int32(fbH) - y1, max(x1-x0, 0), max(y1-y0, 0)
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
layout(location=2) in vec4 aColor;
uniform vec2 uScreen;
out vec2 vUV;
out vec4 vColor;
void main() {
    vUV = aUV;
    vColor = aColor;
    vec2 ndc = aPos / uScreen * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uTex;
out vec4 FragColor;
void main() {
    FragColor = vec4(vColor.rgb * vColor.a, vColor.a) * texture(uTex, vUV);
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
