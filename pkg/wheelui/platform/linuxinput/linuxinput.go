//go:build linux

// Package linuxinput reads buttons and rotary encoders from Linux evdev
// nodes such as gpio-keys and rotary-encoder devices.
//
// Each Device runs one reader goroutine that only publishes into atomics.
// The pins and counters it hands out are read from the UI goroutine.
package linuxinput

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/internal"
)

// Device is one opened evdev node.
type Device struct {
	path string
	dev  *evdev.InputDevice

	keys map[evdev.EvCode]*atomic.Bool
	rels map[evdev.EvCode]*atomic.Int32

	started bool
	wg      sync.WaitGroup
}

// Open opens the evdev node at path. Bind keys and axes with Key and Rel,
// then call Start.
func Open(path string) (*Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, wheelui.NewInfrastructureError("open_device", fmt.Errorf("%s: %w", path, err))
	}

	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("Opened input device", "path", path, "name", name)

	return newDevice(path, dev), nil
}

func newDevice(path string, dev *evdev.InputDevice) *Device {
	return &Device{
		path: path,
		dev:  dev,
		keys: make(map[evdev.EvCode]*atomic.Bool),
		rels: make(map[evdev.EvCode]*atomic.Int32),
	}
}

// Key returns a pin that reads high while the EV_KEY code is down.
func (d *Device) Key(code uint16) input.Pin {
	d.mustNotBeStarted()
	state, ok := d.keys[evdev.EvCode(code)]
	if !ok {
		state = atomic.NewBool(false)
		d.keys[evdev.EvCode(code)] = state
	}
	return input.PinFunc(state.Load)
}

// Rel returns a counter over the EV_REL code's accumulated movement.
func (d *Device) Rel(code uint16) input.Counter {
	d.mustNotBeStarted()
	acc, ok := d.rels[evdev.EvCode(code)]
	if !ok {
		acc = atomic.NewInt32(0)
		d.rels[evdev.EvCode(code)] = acc
	}
	return input.CounterFunc(func() int {
		return int(acc.Swap(0))
	})
}

func (d *Device) mustNotBeStarted() {
	if d.started {
		panic("linuxinput: binding after Start on " + d.path)
	}
}

// Start launches the reader goroutine.
func (d *Device) Start() {
	if d.started {
		return
	}
	d.started = true
	d.wg.Add(1)
	go d.read()
}

func (d *Device) read() {
	defer d.wg.Done()
	logger := internal.GetInternalLogger()

	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if !errors.Is(err, os.ErrClosed) {
				logger.Debug("Input device reader stopped", "path", d.path, "error", err)
			}
			return
		}
		d.handle(ev)
	}
}

func (d *Device) handle(ev *evdev.InputEvent) {
	switch ev.Type {
	case evdev.EV_KEY:
		if state, ok := d.keys[ev.Code]; ok {
			// 0 release, 1 press, 2 autorepeat
			state.Store(ev.Value != 0)
		}
	case evdev.EV_REL:
		if acc, ok := d.rels[ev.Code]; ok {
			acc.Add(ev.Value)
		}
	}
}

// Close closes the node, which stops the reader.
func (d *Device) Close() error {
	err := d.dev.Close()
	d.wg.Wait()
	if err != nil {
		return fmt.Errorf("close %s: %w", d.path, err)
	}
	return nil
}
