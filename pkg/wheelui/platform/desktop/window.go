// Package desktop runs a wheelui panel inside an SDL window so screens can
// be built and exercised without hardware.
//
// The keyboard stands in for buttons and the mouse wheel for the encoder.
// All calls must come from the goroutine that called Open, which should
// be locked to the main OS thread.
package desktop

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/internal"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/tinydisplay"
)

type textTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// Window is an SDL window showing a panel of fixed logical size. It
// implements display.Display.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font
	glyphs   *tinydisplay.Display // text fallback when no font is configured
	textures *lru[textTexture]

	width, height int16

	hasVSync        bool
	lastPresentTime uint64
}

// Open initializes SDL and creates a window for a width x height panel.
func Open(width, height int16, opts WindowOptions) (*Window, error) {
	opts = opts.withDefaults()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, wheelui.NewInfrastructureError("sdl_init", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, wheelui.NewInfrastructureError("ttf_init", err)
	}

	w := &Window{width: width, height: height}
	if err := w.create(opts); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

func (w *Window) create(opts WindowOptions) error {
	ww, wh := int32(w.width)*int32(opts.Scale), int32(w.height)*int32(opts.Scale)

	internal.GetInternalLogger().Debug("Initializing SDL Window",
		"width", ww, "height", wh, "scale", opts.Scale)

	window, err := sdl.CreateWindow(opts.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, ww, wh, opts.flags())
	if err != nil {
		return wheelui.NewInfrastructureError("create_window", err)
	}
	w.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return wheelui.NewInfrastructureError("create_renderer", err)
	}
	w.renderer = renderer

	if err := renderer.SetLogicalSize(int32(w.width), int32(w.height)); err != nil {
		return wheelui.NewInfrastructureError("set_logical_size", err)
	}

	info, err := renderer.GetInfo()
	w.hasVSync = err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	if opts.Font != "" {
		font, err := ttf.OpenFont(opts.Font, opts.FontSize)
		if err != nil {
			return wheelui.NewInfrastructureError("load_font", fmt.Errorf("%s: %w", opts.Font, err))
		}
		w.font = font
	} else {
		w.glyphs = tinydisplay.New(&pixels{w})
	}

	w.textures = newLRU(opts.CacheSize, func(t textTexture) { t.texture.Destroy() })
	return nil
}

// Close releases the window and shuts SDL down.
func (w *Window) Close() {
	if w.textures != nil {
		w.textures.Destroy()
	}
	if w.font != nil {
		w.font.Close()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	ttf.Quit()
	sdl.Quit()
}

func (w *Window) Size() (int16, int16) {
	return w.width, w.height
}

func (w *Window) Clear(r display.Rect) {
	w.FillRect(r, display.GetTheme().Background)
}

func (w *Window) Text(x, y int16, s string, c color.RGBA) {
	if s == "" {
		return
	}
	if w.glyphs != nil {
		w.glyphs.Text(x, y, s, c)
		return
	}

	t, err := w.textTexture(s, c)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render text", "text", s, "error", err)
		return
	}
	w.renderer.Copy(t.texture, nil, &sdl.Rect{X: int32(x), Y: int32(y), W: t.w, H: t.h})
}

func (w *Window) textTexture(s string, c color.RGBA) (textTexture, error) {
	key := fmt.Sprintf("%s|%02x%02x%02x%02x", s, c.R, c.G, c.B, c.A)
	if t, ok := w.textures.Get(key); ok {
		return t, nil
	}

	surface, err := w.font.RenderUTF8Blended(s, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return textTexture{}, err
	}
	defer surface.Free()

	texture, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return textTexture{}, err
	}

	t := textTexture{texture: texture, w: surface.W, h: surface.H}
	w.textures.Set(key, t)
	return t, nil
}

func (w *Window) FillRect(r display.Rect, c color.RGBA) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.renderer.FillRect(sdlRect(r))
}

func (w *Window) StrokeRect(r display.Rect, c color.RGBA) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.renderer.DrawRect(sdlRect(r))
}

func (w *Window) Bitmap(x, y, bw, bh int16, data []byte, c color.RGBA) {
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	for _, p := range setBits(bw, bh, data) {
		w.renderer.DrawPoint(int32(x)+p.X, int32(y)+p.Y)
	}
}

// Flush presents the frame. Without vsync it also paces presents to
// roughly 60 per second.
func (w *Window) Flush() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func sdlRect(r display.Rect) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

// setBits lists the set pixels of a byte-padded MSB-first bitmap.
func setBits(w, h int16, data []byte) []sdl.Point {
	stride := (int(w) + 7) / 8
	var points []sdl.Point
	for row := 0; row < int(h); row++ {
		for col := 0; col < int(w); col++ {
			i := row*stride + col/8
			if i >= len(data) {
				return points
			}
			if data[i]&(0x80>>uint(col%8)) != 0 {
				points = append(points, sdl.Point{X: int32(col), Y: int32(row)})
			}
		}
	}
	return points
}

// pixels exposes the renderer as a drivers.Displayer for tinyfont.
type pixels struct {
	w *Window
}

func (p *pixels) Size() (int16, int16) {
	return p.w.Size()
}

func (p *pixels) SetPixel(x, y int16, c color.RGBA) {
	p.w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	p.w.renderer.DrawPoint(int32(x), int32(y))
}

func (p *pixels) Display() error {
	return nil
}
