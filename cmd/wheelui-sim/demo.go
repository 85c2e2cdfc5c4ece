package main

import (
	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/controller"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/icon"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/model"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/router"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/screen"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/view"
)

// player is the state the demo screens edit.
type player struct {
	Volume  int
	Playing bool
	Online  bool
	Speed   int
}

// demo is a small audio player: a home menu leading to volume,
// playback, speed and event monitor screens.
type demo struct {
	state player

	home    *screen.Menu
	volume  *model.Proxy[int]
	readout *model.Direct[int] // mirrors volume for the numeric view
	playing *model.Direct[bool]
	online  *model.Ref[bool]
	speed   *model.Ref[int]
	monitor *screen.EventMonitor

	volumeScreen   router.Handle
	playbackScreen router.Handle
	eventsScreen   router.Handle
	speedScreen    router.Handle
}

// buttons names the ids the demo listens to.
type buttons struct {
	Select byte
	Back   byte
}

func newDemo(b buttons) *demo {
	d := &demo{
		state: player{Volume: 40, Online: true, Speed: 1},
		home: screen.NewMenu(nil, screen.MenuConfig{
			SelectID: b.Select,
			BackID:   b.Back,
			NoBack:   true,
		}),
		monitor: screen.NewEventMonitor(0),
	}

	d.readout = model.NewDirect(d.state.Volume)
	d.volume = model.NewProxy[int](func(p *model.Proxy[int], v int) {
		d.state.Volume = v
		p.Set(v)
		d.readout.Update(v)
	}, d.state.Volume)
	d.playing = model.NewDirect(d.state.Playing)
	d.online = model.NewRef(&d.state.Online)
	d.speed = model.NewRef(&d.state.Speed)
	return d
}

// register adds the demo screens to ui and fills in the home menu. ui
// must have been created with d.home as its home screen.
func (d *demo) register(ui *wheelui.UI, b buttons) {
	back := []screen.Controller{
		controller.NewPop(event.Click, b.Back),
		&controller.Shortcut{Source: event.Hold, ID: b.Back, Post: event.Pop},
		controller.NewPop(event.Pop, 0),
		controller.NewShow(event.Hold, b.Select, router.Home),
	}

	rows := display.Rect{W: 128, H: 38}.SplitRows(3, 4)
	d.volumeScreen = ui.Register(screen.NewComposite(screen.Layout{
		Views: []screen.Placement{
			{View: view.NewLabel("Volume"), Bounds: rows[0]},
			{View: view.NewIcon(icon.Speaker), Bounds: display.Rect{Y: 14, W: 16, H: 8}},
			{View: view.NewValue[int](d.readout, "%d%%"), Bounds: display.Rect{X: 20, Y: 14, W: 40, H: 10}},
			{View: view.NewBar(d.volume, 0, 100), Bounds: rows[2]},
		},
		Controllers: append([]screen.Controller{
			&controller.Knob[int]{Source: event.Wheel, Coefficient: 5, Min: 0, Max: 100, Model: d.volume},
		}, back...),
	}))

	status := display.Rect{Y: 14, W: 40, H: 9}.SplitColumns(2, 8)
	d.playbackScreen = ui.Register(screen.NewComposite(screen.Layout{
		Views: []screen.Placement{
			{View: view.NewLabel("Playback"), Bounds: display.Rect{W: 128, H: 10}},
			{View: view.NewIconSwitch(d.playing, icon.Pause, icon.Play), Bounds: status[0]},
			{View: view.NewIconSwitch(d.online, icon.Online, icon.Offline), Bounds: status[1]},
		},
		Controllers: []screen.Controller{
			controller.NewToggle(event.Click, b.Select, d.playing),
			controller.NewToggle(event.Hold, b.Select, d.online),
			controller.NewPop(event.Click, b.Back),
			controller.NewPop(event.Hold, b.Back),
		},
	}))

	d.eventsScreen = ui.Register(screen.NewComposite(screen.Layout{
		Views: []screen.Placement{
			{View: d.monitor, Bounds: display.Rect{W: 128, H: 40}},
		},
		Controllers: []screen.Controller{
			d.monitor,
			controller.NewPop(event.Hold, b.Back),
		},
	}))

	d.speedScreen = ui.Register(screen.NewChoice("Playback speed", []string{"0.5x", "1x", "2x"}, d.speed,
		screen.ChoiceConfig{ConfirmID: b.Select, BackID: b.Back}))

	d.home.SetItems([]screen.MenuItem{
		{Text: "Volume", Target: d.volumeScreen},
		{Text: "Playback", Target: d.playbackScreen},
		{Text: "Speed", Target: d.speedScreen},
		{Text: "Events", Target: d.eventsScreen},
	})
}
