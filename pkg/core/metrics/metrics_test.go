package metrics

import (
	"testing"

	"github.com/matzehuels/monthgraph/pkg/errors"
)

func TestDPToPixel(t *testing.T) {
	tests := []struct {
		name    string
		density float64
		dp      float64
		want    float64
	}{
		{"mdpi", 160, 9, 9},
		{"xhdpi", 320, 9, 18},
		{"xxhdpi", 480, 9, 27},
		{"420dpi", 420, 9, 23.625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Static{DensityDPI: tt.density, ReferenceDPI: ReferenceDPI}
			if got := DPToPixel(s, tt.dp); got != tt.want {
				t.Errorf("DPToPixel(%v) = %v, want %v", tt.dp, got, tt.want)
			}
		})
	}
}

func TestStaticReferenceDefault(t *testing.T) {
	s := &Static{DensityDPI: 320}
	if s.ReferenceDensity() != ReferenceDPI {
		t.Errorf("ReferenceDensity() = %v, want %v", s.ReferenceDensity(), ReferenceDPI)
	}
}

func TestStaticResolveDimension(t *testing.T) {
	s := &Static{
		DensityDPI:   420,
		ReferenceDPI: ReferenceDPI,
		Width:        1080,
		Dimensions:   map[string]float64{"content_inset": 16},
	}

	px, err := s.ResolveDimension("content_inset")
	if err != nil {
		t.Fatalf("ResolveDimension: %v", err)
	}
	if px != 42 { // 16 * 2.625
		t.Errorf("px = %v, want 42", px)
	}

	if _, err := s.ResolveDimension("missing"); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("missing dimension error = %v", err)
	}
	if _, err := s.ResolveDimension("bad id"); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("bad id error = %v", err)
	}
}

func TestTerminalFallback(t *testing.T) {
	// fd -1 is never a terminal.
	p := NewTerminal(96)
	p.fd = -1
	p.Dimensions["gutter"] = 2

	cols, rows := p.Size()
	if cols != 96 || rows != 0 {
		t.Errorf("Size() = %d, %d; want 96, 0", cols, rows)
	}
	if w := p.ScreenWidth(); w != 96*CellWidth {
		t.Errorf("ScreenWidth() = %v, want %v", w, 96*CellWidth)
	}
	if px, err := p.ResolveDimension("gutter"); err != nil || px != 2 {
		t.Errorf("ResolveDimension = %v, %v", px, err)
	}
	if DPToPixel(p, 9) != CellHeight {
		t.Error("a default label line should be one cell tall")
	}
}
