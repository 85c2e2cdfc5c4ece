package wheelui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/controller"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display/displaytest"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/model"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/router"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/screen"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/view"
)

// probe records what the dispatch loop does to a screen.
type probe struct {
	events      []event.Event
	draws       int
	invalidated int
}

func (p *probe) Draw(display.Display, display.Rect) { p.draws++ }
func (p *probe) HandleEvent(_ screen.Navigator, e event.Event) {
	p.events = append(p.events, e)
}
func (p *probe) Invalidate() { p.invalidated++ }

func newTestUI(home screen.Screen, opts Options) (*UI, *displaytest.Recorder, *clock.Manual) {
	rec := displaytest.New(128, 64)
	clk := &clock.Manual{}
	return New(rec, clk, home, opts), rec, clk
}

func TestUI_OneEventPerTick(t *testing.T) {
	home := &probe{}
	ui, rec, _ := newTestUI(home, Options{})

	ui.Put(event.Click, 1)
	ui.Put(event.Click, 2)
	ui.Put(event.Click, 3)

	for tick := 1; tick <= 5; tick++ {
		ui.Tick()
		wantEvents := min(tick, 3)
		if len(home.events) != wantEvents {
			t.Fatalf("tick %d: %d events handled, want %d", tick, len(home.events), wantEvents)
		}
		if home.draws != tick {
			t.Fatalf("tick %d: %d draws, want %d", tick, home.draws, tick)
		}
	}

	for i, e := range home.events {
		if !e.Matches(event.Click, byte(i+1)) {
			t.Errorf("event %d = %v", i, e)
		}
	}
	if rec.Flushes != 5 {
		t.Errorf("Flushes = %d, want 5", rec.Flushes)
	}
}

func TestUI_ClearsAndInvalidatesOnScreenChange(t *testing.T) {
	home := &probe{}
	other := &probe{}
	ui, rec, _ := newTestUI(home, Options{})
	h := ui.Register(other)

	ui.Tick()
	ui.Tick()
	if home.invalidated != 1 || rec.Count("clear") != 1 {
		t.Fatalf("first activation: invalidated=%d clears=%d", home.invalidated, rec.Count("clear"))
	}

	ui.Push(h)
	ui.Tick()
	if other.invalidated != 1 || other.draws != 1 || home.draws != 2 {
		t.Errorf("after push: other inv=%d draws=%d, home draws=%d", other.invalidated, other.draws, home.draws)
	}

	ui.Pop()
	ui.Tick()
	if home.invalidated != 2 || rec.Count("clear") != 3 {
		t.Errorf("after pop: home inv=%d clears=%d", home.invalidated, rec.Count("clear"))
	}
}

func TestUI_StackBounds(t *testing.T) {
	ui, _, _ := newTestUI(&probe{}, Options{StackDepth: 2})
	a := ui.Register(&probe{})
	b := ui.Register(&probe{})
	c := ui.Register(&probe{})

	ui.Push(a)
	ui.Push(b)
	ui.Push(c)
	if ui.Active() != b || ui.Depth() != 2 {
		t.Errorf("after overflow: active=%d depth=%d, want %d/2", ui.Active(), ui.Depth(), b)
	}

	ui.Pop()
	ui.Pop()
	ui.Pop()
	if ui.Active() != router.Home {
		t.Errorf("Active() = %d, want home", ui.Active())
	}
}

func TestUI_QueueOverflowDropsNewest(t *testing.T) {
	home := &probe{}
	ui, _, _ := newTestUI(home, Options{QueueCapacity: 2})

	ui.Put(event.Click, 1)
	ui.Put(event.Click, 2)
	ui.Put(event.Click, 3)

	for i := 0; i < 3; i++ {
		ui.Tick()
	}
	if len(home.events) != 2 || home.events[1].Data != 2 {
		t.Errorf("handled %v, want clicks 1 and 2", home.events)
	}
}

func TestUI_NavigationThroughControllers(t *testing.T) {
	level := model.NewDirect(5)
	const (
		selectID = 1
		backID   = 2
	)

	ui, rec, _ := newTestUI(screen.NewEventMonitor(0), Options{})

	volume := ui.Register(screen.NewComposite(screen.Layout{
		Views: []screen.Placement{
			{View: view.NewValue[int](level, "Volume %d"), Bounds: display.Rect{W: 128, H: 10}},
		},
		Controllers: []screen.Controller{
			controller.NewKnob[int](level, 0, 10),
			controller.NewPop(event.Click, backID),
			&controller.Shortcut{Source: event.Hold, ID: backID, Post: event.Pop},
			controller.NewPop(event.Pop, 0),
		},
	}))

	menu := ui.Register(screen.NewMenu([]screen.MenuItem{
		{Text: "Volume", Target: volume},
	}, screen.MenuConfig{SelectID: selectID, BackID: backID}))

	ui.Show(menu)
	ui.Tick()
	if !rec.HasText("Volume") {
		t.Fatalf("menu not drawn: %v", rec.Texts())
	}

	ui.Put(event.Click, selectID)
	ui.Tick()
	if ui.Active() != volume {
		t.Fatalf("Active() = %d, want volume %d", ui.Active(), volume)
	}

	rec.Reset()
	ui.Put(event.Wheel, 20)
	ui.Tick()
	if level.Value() != 10 || !rec.HasText("Volume 10") {
		t.Errorf("level = %d, texts = %v", level.Value(), rec.Texts())
	}
	if level.Dirty() {
		t.Error("view should have reset the model while drawing")
	}

	// Hold re-posts the reserved pop source, which pops on the next tick.
	ui.Put(event.Hold, backID)
	ui.Tick()
	if ui.Active() != volume {
		t.Fatal("pop should wait for the re-posted event")
	}
	ui.Tick()
	if ui.Active() != menu {
		t.Errorf("Active() = %d, want menu %d", ui.Active(), menu)
	}

	ui.Put(event.Click, backID)
	ui.Tick()
	if ui.Active() != router.Home {
		t.Errorf("Active() = %d, want home", ui.Active())
	}
}

func TestUI_StepPollsSources(t *testing.T) {
	home := &probe{}
	ui, _, clk := newTestUI(home, Options{})

	pressed := false
	ui.AddSource(input.NewButton(input.PinFunc(func() bool { return pressed }), clk, input.ButtonConfig{ID: 9}))

	pressed = true
	ui.Step()
	clk.Advance(300 * time.Millisecond)
	pressed = false
	ui.Step()
	ui.Step()
	ui.Step()

	want := []event.Source{event.ButtonPress, event.ButtonRelease, event.Click}
	if len(home.events) != len(want) {
		t.Fatalf("handled %v, want %v", home.events, want)
	}
	for i, e := range home.events {
		if e.Source != want[i] || e.Data != 9 {
			t.Errorf("event %d = %v, want %v:9", i, e, want[i])
		}
	}
	if home.events[2].Time != 300 {
		t.Errorf("click stamped %d, want 300", home.events[2].Time)
	}
}

func TestUI_RunStopsWithContext(t *testing.T) {
	home := &probe{}
	ui, _, _ := newTestUI(home, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := ui.Run(ctx, time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want deadline exceeded", err)
	}
	if home.draws == 0 {
		t.Error("Run should have ticked at least once")
	}
}

func TestNew_PanicsWithoutHome(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNoHome {
			t.Errorf("recover() = %v, want ErrNoHome", r)
		}
	}()
	New(displaytest.New(8, 8), &clock.Manual{}, nil, Options{})
}

func TestInfrastructureError(t *testing.T) {
	base := errors.New("permission denied")
	err := error(NewInfrastructureError("open_device", base))

	if !IsInfrastructureError(err) {
		t.Error("IsInfrastructureError() = false")
	}
	if !errors.Is(err, base) {
		t.Error("errors.Is should unwrap to the cause")
	}
	if err.Error() != "wheelui: open_device: permission denied" {
		t.Errorf("Error() = %q", err.Error())
	}
}
