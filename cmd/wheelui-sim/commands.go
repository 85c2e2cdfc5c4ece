package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/event"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/icon"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/platform/profile"
)

// checkCmd validates a device profile
var checkCmd = &cobra.Command{
	Use:   "check [profile]",
	Short: "Validate a device profile and print its bindings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			profilePath = args[0]
		}
		p, err := loadProfile()
		if err != nil {
			return err
		}
		printProfile(cmd.OutOrStdout(), p)
		return nil
	},
}

func printProfile(w io.Writer, p *profile.Profile) {
	fmt.Fprintf(w, "Profile %q\n", p.Name)
	fmt.Fprintf(w, "  display  %dx%d (scale %d)\n", p.Display.Width, p.Display.Height, p.Display.Scale)
	for _, b := range p.Buttons {
		fmt.Fprintf(w, "  button   %-8s id=%d key=%s code=%d", b.Name, b.ID, orDash(b.Key), b.Code)
		if b.Device != "" {
			fmt.Fprintf(w, " device=%s", b.Device)
		}
		fmt.Fprintln(w)
	}
	for _, e := range p.Encoders {
		fmt.Fprintf(w, "  encoder  %-8s source=%s code=%d", e.Name, event.Source(e.Source), e.Code)
		if e.Device != "" {
			fmt.Fprintf(w, " device=%s", e.Device)
		}
		fmt.Fprintln(w)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Icon command flags
var (
	iconWidth  int
	iconHeight int
	iconAsGo   bool
)

// iconCmd rasterizes an SVG into the 1-bit icon format
var iconCmd = &cobra.Command{
	Use:   "icon <file.svg>",
	Short: "Rasterize an SVG into a 1-bit icon",
	Long: `Rasterizes an SVG at the given size and prints a preview, or a Go
literal ready to paste into an icon table with --go.`,
	Example: `  wheelui-sim icon speaker.svg --width 16 --height 8
  wheelui-sim icon play.svg --go`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		ic, err := icon.FromSVG(f, name, iconWidth, iconHeight)
		if err != nil {
			return err
		}

		if iconAsGo {
			printIconLiteral(cmd.OutOrStdout(), ic)
		} else {
			printIconPreview(cmd.OutOrStdout(), ic)
		}
		return nil
	},
}

func init() {
	iconCmd.Flags().IntVar(&iconWidth, "width", 8, "Icon width in pixels")
	iconCmd.Flags().IntVar(&iconHeight, "height", 8, "Icon height in pixels")
	iconCmd.Flags().BoolVar(&iconAsGo, "go", false, "Print a Go literal instead of a preview")
}

func printIconPreview(w io.Writer, ic icon.Icon) {
	for y := 0; y < int(ic.Height); y++ {
		var line strings.Builder
		for x := 0; x < int(ic.Width); x++ {
			if ic.Bit(x, y) {
				line.WriteByte('#')
			} else {
				line.WriteByte('.')
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

func printIconLiteral(w io.Writer, ic icon.Icon) {
	fmt.Fprintf(w, "icon.Icon{Name: %q, Width: %d, Height: %d, Data: []byte{\n", ic.Name, ic.Width, ic.Height)
	stride := ic.Stride()
	for y := 0; y < int(ic.Height); y++ {
		row := ic.Data[y*stride : (y+1)*stride]
		parts := make([]string, len(row))
		for i, b := range row {
			parts[i] = fmt.Sprintf("0x%02X", b)
		}
		fmt.Fprintf(w, "\t%s,\n", strings.Join(parts, ", "))
	}
	fmt.Fprintln(w, "}}")
}
