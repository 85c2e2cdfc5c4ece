// Wheelui-sim runs a demo wheelui interface in a desktop window.
//
// The keyboard stands in for buttons and the mouse wheel for the rotary
// encoder, as bound by a device profile. On Linux the real evdev devices
// named in the profile can drive the window instead.
//
// Usage:
//
//	wheelui-sim [command] [flags]
//
// Running without a command starts the simulator.
// See 'wheelui-sim --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/constants"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/display"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/input"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/desktop"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/profile"
)

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Simulator flags
var (
	profilePath string
	logLevel    string
	logPath     string
	inputMode   string
	scale       int
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "wheelui-sim",
	Short: "Run a wheelui demo in a desktop window",
	Long: `Runs a small audio player interface built with wheelui in an SDL window.

Buttons and the encoder are bound by a device profile (TOML). Without a
profile, Return selects, Escape goes back and the mouse wheel turns the
encoder. Close the window or press Ctrl+Q to quit.`,
	Example: `  # Default bindings
  wheelui-sim

  # A specific device profile, scaled up
  wheelui-sim --profile bench.toml --scale 6

  # Drive the window from the profile's evdev devices (linux)
  wheelui-sim --profile device.toml --input evdev`,
	SilenceUsage: true,
	RunE:         runSimulator,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Device profile (defaults to $"+constants.ProfileEnvVar+")")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logPath, "log-path", "", "Also write logs to this file")
	rootCmd.Flags().StringVar(&inputMode, "input", "keyboard", "Input backend (keyboard, evdev)")
	rootCmd.Flags().IntVar(&scale, "scale", 0, "Window pixels per panel pixel (overrides the profile)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log navigation diagnostics")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(iconCmd)
}

func loadProfile() (*profile.Profile, error) {
	path := profilePath
	if path == "" {
		path = os.Getenv(constants.ProfileEnvVar)
	}
	if path == "" {
		return profile.Default(), nil
	}
	return profile.Load(path)
}

func runSimulator(cmd *cobra.Command, args []string) error {
	prof, err := loadProfile()
	if err != nil {
		return err
	}

	theme, err := prof.Theme.Resolve()
	if err != nil {
		return err
	}
	display.SetTheme(theme)

	b, err := demoButtons(prof)
	if err != nil {
		return err
	}

	opts := desktop.WindowOptions{
		Title:    "wheelui - " + prof.Name,
		Scale:    prof.Display.Scale,
		Font:     prof.Display.Font,
		FontSize: prof.Display.FontSize,
	}
	if scale > 0 {
		opts.Scale = scale
	}

	win, err := desktop.Open(prof.Display.Width, prof.Display.Height, opts)
	if err != nil {
		return err
	}
	defer win.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clk := desktop.NewClock()
	events := &desktop.Events{OnQuit: cancel}

	d := newDemo(b)
	ui := wheelui.New(win, clk, d.home, wheelui.Options{
		LogPath:  logPath,
		LogLevel: logLevel,
		Debug:    debug,
	})
	defer wheelui.Close()
	d.register(ui, b)

	sources, closeInput, err := bindInput(prof, events, clk)
	if err != nil {
		return err
	}
	defer closeInput()
	for _, src := range sources {
		ui.AddSource(src)
	}

	logger := wheelui.GetLogger()
	logger.Info("Simulator started", "profile", prof.Name, "input", inputMode)

	err = ui.Run(ctx, constants.TickPeriod)
	logger.Info("Simulator stopped", "volume", d.state.Volume, "playing", d.state.Playing, "online", d.state.Online)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// demoButtons resolves the select and back buttons the demo needs.
func demoButtons(p *profile.Profile) (buttons, error) {
	sel, ok := p.Button("select")
	if !ok {
		return buttons{}, fmt.Errorf("profile %q has no %q button: %w", p.Name, "select", wheelui.ErrUnknownDevice)
	}
	back, ok := p.Button("back")
	if !ok {
		return buttons{}, fmt.Errorf("profile %q has no %q button: %w", p.Name, "back", wheelui.ErrUnknownDevice)
	}
	return buttons{Select: sel.ID, Back: back.ID}, nil
}

func bindInput(p *profile.Profile, events *desktop.Events, clk *desktop.Clock) (input.Sources, func(), error) {
	switch inputMode {
	case "keyboard":
		sources, err := desktop.Bind(p, events, clk)
		return sources, func() {}, err
	case "evdev":
		sources, closer, err := bindEvdev(p, clk)
		if err != nil {
			return nil, nil, err
		}
		// Window events still need pumping for quit and redraws.
		return append(input.Sources{events}, sources...), closer, nil
	default:
		return nil, nil, fmt.Errorf("unknown input backend %q", inputMode)
	}
}
