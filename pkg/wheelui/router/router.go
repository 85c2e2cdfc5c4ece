package router

import (
	"log/slog"
)

// Router owns every navigable screen and the navigation stack.
//
// Screens are registered once at startup and addressed by Handle from
// then on, so navigation never holds references to screens directly.
// Failed navigation is reported through the logger only.
type Router[S any] struct {
	screens []S
	stack   *Stack
	logger  *slog.Logger
}

// New creates a Router whose home screen is home and which can hold
// depth screens above it. A nil logger discards diagnostics.
func New[S any](home S, depth int, logger *slog.Logger) *Router[S] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Router[S]{
		screens: []S{home},
		stack:   NewStack(Home, depth),
		logger:  logger,
	}
}

// Register adds a screen and returns its handle.
func (r *Router[S]) Register(screen S) Handle {
	r.screens = append(r.screens, screen)
	return Handle(len(r.screens) - 1)
}

// Screen returns the screen registered under h.
func (r *Router[S]) Screen(h Handle) (S, bool) {
	if !r.valid(h) {
		var zero S
		return zero, false
	}
	return r.screens[h], true
}

// Push makes h the active screen. Unknown handles, Home and pushes
// beyond the configured depth are dropped. Home only ever lives in the
// bottom slot; use Show(Home) to return to it.
func (r *Router[S]) Push(h Handle) {
	if !r.valid(h) {
		r.logger.Warn("Navigation to unknown screen dropped", "handle", int(h))
		return
	}
	if h == Home {
		r.logger.Debug("Push of home screen ignored")
		return
	}
	if !r.stack.Push(h) {
		r.logger.Warn("Screen stack full, push dropped",
			"handle", int(h),
			"depth", r.stack.Cap())
		return
	}
	r.logger.Debug("Pushed screen", "handle", int(h), "depth", r.stack.Len())
}

// Pop returns to the previous screen. At home it does nothing.
func (r *Router[S]) Pop() {
	h, ok := r.stack.Pop()
	if !ok {
		r.logger.Debug("Pop at home screen ignored")
		return
	}
	r.logger.Debug("Popped screen", "handle", int(h), "depth", r.stack.Len())
}

// Show unwinds to home and then pushes h, making it the only screen
// above home. Show(Home) simply unwinds.
func (r *Router[S]) Show(h Handle) {
	if !r.valid(h) {
		r.logger.Warn("Navigation to unknown screen dropped", "handle", int(h))
		return
	}
	r.stack.Clear()
	if h != Home {
		r.Push(h)
	}
}

// Active returns the screen on top of the stack.
func (r *Router[S]) Active() S {
	return r.screens[r.stack.Peek()]
}

// ActiveHandle returns the handle on top of the stack.
func (r *Router[S]) ActiveHandle() Handle {
	return r.stack.Peek()
}

// Depth returns how many screens sit above home.
func (r *Router[S]) Depth() int {
	return r.stack.Len()
}

// Stack returns the navigation stack.
func (r *Router[S]) Stack() *Stack {
	return r.stack
}

func (r *Router[S]) valid(h Handle) bool {
	return h >= 0 && int(h) < len(r.screens)
}
