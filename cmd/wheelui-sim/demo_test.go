package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display/displaytest"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/icon"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/profile"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/router"
)

var testButtons = buttons{Select: 1, Back: 2}

func newTestDemo() (*demo, *wheelui.UI, *displaytest.Recorder) {
	rec := displaytest.New(128, 64)
	d := newDemo(testButtons)
	ui := wheelui.New(rec, &clock.Manual{}, d.home, wheelui.Options{})
	d.register(ui, testButtons)
	return d, ui, rec
}

func TestDemo_Volume(t *testing.T) {
	d, ui, rec := newTestDemo()

	ui.Tick()
	for _, item := range []string{"Volume", "Playback", "Events"} {
		if !rec.HasText(item) {
			t.Errorf("home menu missing %q: %v", item, rec.Texts())
		}
	}

	ui.Put(event.Click, testButtons.Select)
	ui.Tick()
	if ui.Active() != d.volumeScreen {
		t.Fatalf("Active() = %d, want volume screen", ui.Active())
	}
	if !rec.HasText("40%") {
		t.Errorf("initial volume not shown: %v", rec.Texts())
	}

	rec.Reset()
	ui.Put(event.Wheel, 3)
	ui.Tick()
	if d.state.Volume != 55 || !rec.HasText("55%") {
		t.Errorf("volume = %d, texts = %v", d.state.Volume, rec.Texts())
	}

	ui.Put(event.Wheel, 100)
	ui.Tick()
	if d.state.Volume != 100 {
		t.Errorf("volume = %d, want clamped to 100", d.state.Volume)
	}

	// Hold on select jumps straight home.
	ui.Put(event.Hold, testButtons.Select)
	ui.Tick()
	if ui.Active() != router.Home {
		t.Errorf("Active() = %d, want home", ui.Active())
	}
}

func TestDemo_Playback(t *testing.T) {
	d, ui, _ := newTestDemo()

	ui.Put(event.Wheel, 1)
	ui.Put(event.Click, testButtons.Select)
	ui.Tick()
	ui.Tick()
	if ui.Active() != d.playbackScreen {
		t.Fatalf("Active() = %d, want playback screen", ui.Active())
	}

	ui.Put(event.Click, testButtons.Select)
	ui.Put(event.Hold, testButtons.Select)
	ui.Tick()
	ui.Tick()
	if !d.playing.Value() {
		t.Error("click on select should have started playback")
	}
	if d.state.Online {
		t.Error("hold on select should have toggled online off")
	}

	ui.Put(event.Hold, testButtons.Back)
	ui.Tick()
	if ui.Active() != router.Home {
		t.Errorf("Active() = %d, want home", ui.Active())
	}
}

func TestDemo_Speed(t *testing.T) {
	d, ui, rec := newTestDemo()

	ui.Show(d.speedScreen)
	ui.Tick()
	if !rec.HasText("< 1x >") {
		t.Fatalf("speed choice not drawn: %v", rec.Texts())
	}

	ui.Put(event.Wheel, 1)
	ui.Put(event.Click, testButtons.Select)
	ui.Tick()
	ui.Tick()

	if d.state.Speed != 2 {
		t.Errorf("Speed = %d, want 2", d.state.Speed)
	}
	if ui.Active() != router.Home {
		t.Errorf("Active() = %d, want home after confirming", ui.Active())
	}
}

func TestDemo_EventsScreen(t *testing.T) {
	d, ui, rec := newTestDemo()

	ui.Show(d.eventsScreen)
	ui.Put(event.Click, testButtons.Back)
	ui.Tick()

	if !rec.HasText("Src: 4 click") {
		t.Errorf("monitor did not show the click: %v", rec.Texts())
	}
	if ui.Active() != d.eventsScreen {
		t.Error("click on back should stay on the monitor")
	}

	ui.Put(event.Hold, testButtons.Back)
	ui.Tick()
	if ui.Active() != router.Home {
		t.Errorf("Active() = %d, want home", ui.Active())
	}
}

func TestDemoButtons(t *testing.T) {
	b, err := demoButtons(profile.Default())
	if err != nil {
		t.Fatalf("demoButtons() error = %v", err)
	}
	if b.Select != 1 || b.Back != 2 {
		t.Errorf("demoButtons() = %+v", b)
	}

	if _, err := demoButtons(&profile.Profile{Name: "bare"}); err == nil {
		t.Error("expected an error for a profile without buttons")
	}
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	printProfile(&buf, profile.Default())

	out := buf.String()
	for _, want := range []string{`Profile "default"`, "128x64", "key=Return", "source=wheel"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintIcon(t *testing.T) {
	var buf bytes.Buffer
	printIconPreview(&buf, icon.Speaker)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 8 || len(lines[0]) != 16 {
		t.Errorf("preview is %d lines of %d", len(lines), len(lines[0]))
	}

	buf.Reset()
	printIconLiteral(&buf, icon.Speaker)
	if !strings.Contains(buf.String(), "0x04, 0x80,") {
		t.Errorf("literal missing first row:\n%s", buf.String())
	}
}
