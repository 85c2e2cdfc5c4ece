package desktop

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions controls the simulator window.
type WindowOptions struct {
	Title       string
	Scale       int  // Window pixels per panel pixel
	Borderless  bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable   bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	AlwaysOnTop bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden      bool // Start hidden (omits SDL_WINDOW_SHOWN)
	Font        string
	FontSize    int
	CacheSize   int // Rendered strings kept as textures
}

const (
	defaultTitle     = "wheelui"
	defaultCacheSize = 32
)

func (wo WindowOptions) withDefaults() WindowOptions {
	if wo.Title == "" {
		wo.Title = defaultTitle
	}
	if wo.Scale <= 0 {
		wo.Scale = 1
	}
	if wo.FontSize <= 0 {
		wo.FontSize = 8
	}
	if wo.CacheSize <= 0 {
		wo.CacheSize = defaultCacheSize
	}
	return wo
}

func (wo WindowOptions) flags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}
