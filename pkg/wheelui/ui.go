package wheelui

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/internal"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/router"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/screen"
)

// UI ties the event queue, the screen stack and the display together.
// It is not safe for concurrent use, except that Put may be called from
// one other goroutine.
type UI struct {
	display display.Display
	queue   *event.Queue
	router  *router.Router[screen.Screen]
	sources input.Sources
	logger  *slog.Logger

	drawn router.Handle // screen painted by the previous tick
}

// New creates a UI showing home. It panics if home is nil.
func New(d display.Display, c clock.Clock, home screen.Screen, opts Options) *UI {
	if home == nil {
		panic(ErrNoHome)
	}
	opts = opts.withDefaults()
	configureLogging(opts)

	logger := internal.GetInternalLogger()
	logger.Debug("Creating UI",
		"queueCapacity", opts.QueueCapacity,
		"stackDepth", opts.StackDepth)

	return &UI{
		display: d,
		queue:   event.NewQueue(c, opts.QueueCapacity),
		router:  router.New(home, opts.StackDepth, logger),
		logger:  logger,
		drawn:   router.None,
	}
}

// Register adds a navigable screen. Call during setup only.
func (ui *UI) Register(s screen.Screen) router.Handle {
	return ui.router.Register(s)
}

// AddSource registers an input source polled by Poll. Call during setup only.
func (ui *UI) AddSource(src input.Source) {
	ui.sources = append(ui.sources, src)
}

func (ui *UI) Push(h router.Handle) {
	ui.router.Push(h)
}

func (ui *UI) Pop() {
	ui.router.Pop()
}

func (ui *UI) Show(h router.Handle) {
	ui.router.Show(h)
}

// Put enqueues an event. It is dropped if the queue is full.
func (ui *UI) Put(source event.Source, data byte) {
	ui.queue.Put(source, data)
}

// Active returns the handle of the screen on top of the stack.
func (ui *UI) Active() router.Handle {
	return ui.router.ActiveHandle()
}

// Depth returns how many screens sit above home.
func (ui *UI) Depth() int {
	return ui.router.Depth()
}

// Queue exposes the event queue, e.g. for an input goroutine.
func (ui *UI) Queue() *event.Queue {
	return ui.queue
}

// Poll polls every registered input source once.
func (ui *UI) Poll() {
	ui.sources.Poll(ui.queue)
}

// Tick dispatches at most one queued event to the active screen and then
// redraws whichever screen is active afterwards.
func (ui *UI) Tick() {
	if ui.queue.Count() > 0 {
		e := ui.queue.Get()
		ui.router.Active().HandleEvent(ui, e)
	}
	ui.draw()
}

// Step polls the input sources and runs one tick.
func (ui *UI) Step() {
	ui.Poll()
	ui.Tick()
}

// Run calls Step every period until ctx is done.
func (ui *UI) Run(ctx context.Context, period time.Duration) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if dropped := ui.queue.Dropped(); dropped > 0 {
				ui.logger.Info("Event queue overflowed during run", "dropped", dropped)
			}
			return ctx.Err()
		case <-ticker.C:
			ui.Step()
		}
	}
}

func (ui *UI) draw() {
	active := ui.router.Active()
	bounds := display.Bounds(ui.display)

	if h := ui.router.ActiveHandle(); h != ui.drawn {
		ui.display.Clear(bounds)
		screen.Invalidate(active)
		ui.drawn = h
	}

	active.Draw(ui.display, bounds)
	ui.display.Flush()
}
