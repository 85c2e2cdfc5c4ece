//go:build linux

package linuxinput

import (
	"errors"
	"testing"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/profile"
)

const (
	keyEnter = 28
	relDial  = 7
)

func TestDevice_Key(t *testing.T) {
	d := newDevice("test", nil)
	pin := d.Key(keyEnter)
	other := d.Key(1)

	if pin.Read() {
		t.Fatal("pin should start released")
	}

	d.handle(&evdev.InputEvent{Type: evdev.EV_KEY, Code: keyEnter, Value: 1})
	if !pin.Read() || other.Read() {
		t.Errorf("after press: pin=%v other=%v", pin.Read(), other.Read())
	}

	d.handle(&evdev.InputEvent{Type: evdev.EV_KEY, Code: keyEnter, Value: 2})
	if !pin.Read() {
		t.Error("autorepeat should keep the pin high")
	}

	d.handle(&evdev.InputEvent{Type: evdev.EV_KEY, Code: keyEnter, Value: 0})
	if pin.Read() {
		t.Error("pin should read low after release")
	}
}

func TestDevice_Rel(t *testing.T) {
	d := newDevice("test", nil)
	counter := d.Rel(relDial)

	d.handle(&evdev.InputEvent{Type: evdev.EV_REL, Code: relDial, Value: 1})
	d.handle(&evdev.InputEvent{Type: evdev.EV_REL, Code: relDial, Value: 1})
	d.handle(&evdev.InputEvent{Type: evdev.EV_REL, Code: relDial, Value: -3})
	d.handle(&evdev.InputEvent{Type: evdev.EV_REL, Code: relDial + 1, Value: 5})
	d.handle(&evdev.InputEvent{Type: evdev.EV_SYN, Code: 0, Value: 0})

	if got := counter.Take(); got != -1 {
		t.Errorf("Take() = %d, want -1", got)
	}
	if got := counter.Take(); got != 0 {
		t.Errorf("second Take() = %d, want 0", got)
	}
}

func TestDevice_SharedBinding(t *testing.T) {
	d := newDevice("test", nil)
	a := d.Key(keyEnter)
	b := d.Key(keyEnter)

	d.handle(&evdev.InputEvent{Type: evdev.EV_KEY, Code: keyEnter, Value: 1})
	if !a.Read() || !b.Read() {
		t.Error("both pins should observe the same key")
	}
}

func TestDevice_BindAfterStartPanics(t *testing.T) {
	d := newDevice("test", nil)
	d.started = true

	defer func() {
		if recover() == nil {
			t.Error("Key after Start should panic")
		}
	}()
	d.Key(keyEnter)
}

func TestBind(t *testing.T) {
	p := &profile.Profile{
		Buttons: []profile.Button{
			{Name: "select", ID: 1, Code: keyEnter, Device: "/dev/input/event0"},
			{Name: "back", ID: 2, Code: 1, Device: "/dev/input/event0"},
		},
		Encoders: []profile.Encoder{
			{Name: "volume", Code: relDial, Device: "/dev/input/event3"},
		},
	}

	var opened []string
	open := func(path string) (*Device, error) {
		opened = append(opened, path)
		return newDevice(path, nil), nil
	}

	sources, set, err := bind(p, &clock.Manual{}, open)
	if err != nil {
		t.Fatalf("bind() error = %v", err)
	}
	if len(sources) != 3 {
		t.Errorf("len(sources) = %d, want 3", len(sources))
	}
	if len(opened) != 2 || opened[0] != "/dev/input/event0" || opened[1] != "/dev/input/event3" {
		t.Errorf("opened = %v", opened)
	}
	if len(set.devices["/dev/input/event0"].keys) != 2 {
		t.Error("both buttons should share one device")
	}
}

func TestBind_Errors(t *testing.T) {
	boom := errors.New("permission denied")
	open := func(string) (*Device, error) { return nil, boom }

	tests := map[string]struct {
		profile *profile.Profile
		want    error
	}{
		"missing path": {
			profile: &profile.Profile{Buttons: []profile.Button{{Name: "select"}}},
			want:    wheelui.ErrUnknownDevice,
		},
		"open failure": {
			profile: &profile.Profile{Encoders: []profile.Encoder{{Name: "volume", Device: "/dev/input/event9"}}},
			want:    boom,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := bind(tt.profile, &clock.Manual{}, open)
			if !errors.Is(err, tt.want) {
				t.Errorf("bind() error = %v, want %v", err, tt.want)
			}
		})
	}
}
