package screen

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// palette8 is the RGB swatch for 8-colour mode, one triple per colour
// index, matching the classic dim ANSI scheme.
var palette8 = []byte{
	0x00, 0x00, 0x00,
	0x80, 0x00, 0x00,
	0x00, 0x80, 0x00,
	0x80, 0x80, 0x00,
	0x00, 0x00, 0x80,
	0x80, 0x00, 0x80,
	0x00, 0x80, 0x80,
	0xc0, 0xc0, 0xc0,
}

// palette256 is the xterm 256-colour swatch: the 16 base colours, the
// 6x6x6 colour cube, then the 24-step grayscale ramp.
var palette256 = buildPalette256()

var cubeLevels = [6]byte{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

func buildPalette256() []byte {
	p := make([]byte, 0, 256*3)
	p = append(p, palette8...)
	p = append(p,
		0x80, 0x80, 0x80,
		0xff, 0x00, 0x00,
		0x00, 0xff, 0x00,
		0xff, 0xff, 0x00,
		0x00, 0x00, 0xff,
		0xff, 0x00, 0xff,
		0x00, 0xff, 0xff,
		0xff, 0xff, 0xff,
	)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, cubeLevels[r], cubeLevels[g], cubeLevels[b])
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := byte(0x08 + 0x0a*i)
		p = append(p, v, v, v)
	}
	return p
}

// Palette returns the flat RGB triple sequence for the active colour
// depth, 24 or 768 bytes. Informational only; rendering never consults
// it.
func (s *Screen) Palette() []byte {
	if s.backend.Colours() >= 256 {
		return palette256
	}
	return palette8
}

// NearestColour returns the palette index whose swatch entry is closest
// to the given RGB value, using perceptual (Lab) distance.
func (s *Screen) NearestColour(r, g, b uint8) int {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	pal := s.Palette()

	best := 0
	bestDist := math.MaxFloat64
	for i := 0; i < len(pal); i += 3 {
		c := colorful.Color{
			R: float64(pal[i]) / 255,
			G: float64(pal[i+1]) / 255,
			B: float64(pal[i+2]) / 255,
		}
		if d := target.DistanceLab(c); d < bestDist {
			bestDist = d
			best = i / 3
		}
	}
	return best
}
