//go:build !linux

package main

import (
	"errors"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/clock"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/profile"
)

func bindEvdev(*profile.Profile, clock.Clock) (input.Sources, func(), error) {
	return nil, nil, errors.New("evdev input is only available on linux")
}
