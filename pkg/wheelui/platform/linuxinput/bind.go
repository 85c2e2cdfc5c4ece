//go:build linux

package linuxinput

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/profile"
)

// Set is every device opened for one profile.
type Set struct {
	devices map[string]*Device
	order   []string
	open    func(string) (*Device, error)
}

// Bind opens the devices a profile references and returns its buttons
// and encoders as input sources, in profile order. Call Start on the
// returned set once the sources are registered.
func Bind(p *profile.Profile, c clock.Clock) (input.Sources, *Set, error) {
	return bind(p, c, Open)
}

func bind(p *profile.Profile, c clock.Clock, open func(string) (*Device, error)) (input.Sources, *Set, error) {
	set := &Set{devices: make(map[string]*Device), open: open}
	var sources input.Sources

	for _, b := range p.Buttons {
		dev, err := set.device(b.Device)
		if err != nil {
			set.Close()
			return nil, nil, fmt.Errorf("button %q: %w", b.Name, err)
		}
		sources = append(sources, input.NewButton(dev.Key(b.Code), c, b.Config()))
	}

	for _, e := range p.Encoders {
		dev, err := set.device(e.Device)
		if err != nil {
			set.Close()
			return nil, nil, fmt.Errorf("encoder %q: %w", e.Name, err)
		}
		sources = append(sources, input.NewEncoder(dev.Rel(e.Code), e.Config()))
	}

	return sources, set, nil
}

func (s *Set) device(path string) (*Device, error) {
	if path == "" {
		return nil, fmt.Errorf("no device path: %w", wheelui.ErrUnknownDevice)
	}
	if dev, ok := s.devices[path]; ok {
		return dev, nil
	}
	dev, err := s.open(path)
	if err != nil {
		return nil, err
	}
	s.devices[path] = dev
	s.order = append(s.order, path)
	return dev, nil
}

// Start launches every device's reader.
func (s *Set) Start() {
	for _, path := range s.order {
		s.devices[path].Start()
	}
}

// Close closes every device.
func (s *Set) Close() error {
	var errs []error
	for _, path := range s.order {
		if err := s.devices[path].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
