//go:build linux

package main

import (
	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/linuxinput"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/profile"
)

func bindEvdev(p *profile.Profile, c clock.Clock) (input.Sources, func(), error) {
	sources, set, err := linuxinput.Bind(p, c)
	if err != nil {
		return nil, nil, err
	}
	set.Start()

	return sources, func() {
		if err := set.Close(); err != nil {
			wheelui.GetLogger().Warn("Failed to close input devices", "error", err)
		}
	}, nil
}
