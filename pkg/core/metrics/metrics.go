// Package metrics abstracts the display measurements a month graph needs from
// its host: pixel density, screen width and named dimension resources.
//
// A [Provider] stands in for the host toolkit. [Static] serves values loaded
// from configuration; [Terminal] measures the attached terminal and exposes it
// as a virtual pixel canvas of [CellWidth] by [CellHeight] cells.
package metrics

import (
	"math"
	"os"

	"golang.org/x/term"

	"github.com/matzehuels/monthgraph/pkg/errors"
)

// ReferenceDPI is the density at which one density-independent pixel is one pixel.
const ReferenceDPI = 160

// Provider supplies host display metrics.
type Provider interface {
	// Density is the display density in dots per inch.
	Density() float64
	// ReferenceDensity is the density at which dp and pixels coincide.
	ReferenceDensity() float64
	// ScreenWidth is the full screen width in pixels.
	ScreenWidth() float64
	// ResolveDimension converts a named dimension resource to whole pixels.
	ResolveDimension(id string) (float64, error)
}

// DPToPixel converts density-independent pixels to pixels for p.
func DPToPixel(p Provider, dp float64) float64 {
	ref := p.ReferenceDensity()
	if ref == 0 {
		return dp
	}
	return dp * (p.Density() / ref)
}

// Static is a Provider backed by fixed values.
// Dimensions are expressed in dp and resolved to whole pixels.
type Static struct {
	DensityDPI   float64
	ReferenceDPI float64
	Width        float64
	Dimensions   map[string]float64
}

// NewStatic returns a Static provider at reference density.
func NewStatic(width float64) *Static {
	return &Static{
		DensityDPI:   ReferenceDPI,
		ReferenceDPI: ReferenceDPI,
		Width:        width,
		Dimensions:   map[string]float64{},
	}
}

func (s *Static) Density() float64 { return s.DensityDPI }

func (s *Static) ReferenceDensity() float64 {
	if s.ReferenceDPI == 0 {
		return ReferenceDPI
	}
	return s.ReferenceDPI
}

func (s *Static) ScreenWidth() float64 { return s.Width }

// ResolveDimension looks up id and truncates the scaled value to whole pixels.
func (s *Static) ResolveDimension(id string) (float64, error) {
	if err := errors.ValidateDimensionID(id); err != nil {
		return 0, err
	}
	dp, ok := s.Dimensions[id]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidDimension, "unknown dimension %q", id)
	}
	return math.Trunc(DPToPixel(s, dp)), nil
}

// Terminal cells map onto a virtual pixel canvas at reference density.
// A cell is exactly one default label line tall.
const (
	CellWidth  = 4
	CellHeight = 9
)

// Terminal measures the terminal attached to a file descriptor.
// Its screen width is the column count times CellWidth.
type Terminal struct {
	Static
	fd           int
	fallbackCols int
}

// NewTerminal returns a provider for stdout, assuming fallbackCols columns
// when stdout is not a terminal.
func NewTerminal(fallbackCols int) *Terminal {
	return &Terminal{
		Static: Static{
			DensityDPI:   ReferenceDPI,
			ReferenceDPI: ReferenceDPI,
			Dimensions:   map[string]float64{},
		},
		fd:           int(os.Stdout.Fd()),
		fallbackCols: fallbackCols,
	}
}

// ScreenWidth returns the terminal width in virtual pixels.
func (t *Terminal) ScreenWidth() float64 {
	cols, _ := t.Size()
	return float64(cols * CellWidth)
}

// Size returns the terminal's columns and rows. When the size cannot be
// read it reports the fallback column count and zero rows.
func (t *Terminal) Size() (cols, rows int) {
	if !term.IsTerminal(t.fd) {
		return t.fallbackCols, 0
	}
	w, h, err := term.GetSize(t.fd)
	if err != nil || w <= 0 {
		return t.fallbackCols, 0
	}
	return w, h
}

var (
	_ Provider = (*Static)(nil)
	_ Provider = (*Terminal)(nil)
)
