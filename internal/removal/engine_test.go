package removal

import (
	"image"
	"image/color"
	"testing"
)

// newSolidImage creates a buffer filled with a single color
func newSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// fillRect paints a rectangular region of the buffer with a single color
func fillRect(img *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// cloneImage returns an independent copy of the buffer
func cloneImage(img *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(img.Rect)
	copy(dst.Pix, img.Pix)
	return dst
}

// opaqueCount counts pixels with nonzero alpha
func opaqueCount(img *image.NRGBA) int {
	n := 0
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			if img.NRGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestFloodFill_UniformBackground(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	red := color.NRGBA{255, 0, 0, 255}

	img := newSolidImage(10, 10, white)
	fillRect(img, image.Rect(3, 3, 6, 6), red)

	_, removed := FloodFill(img, []image.Point{{X: 0, Y: 0}}, 50, false)

	if removed != 91 {
		t.Errorf("removed: got %d, want 91 (100 pixels minus 9 red)", removed)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("cleared pixel: got %v, want fully transparent black", got)
	}
	if got := img.NRGBAAt(4, 4); got != red {
		t.Errorf("foreground pixel: got %v, want %v", got, red)
	}
	if n := opaqueCount(img); n != 9 {
		t.Errorf("opaque pixels after removal: got %d, want 9", n)
	}
}

func TestFloodFill_DisconnectedIslandSurvives(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	// White frame, black ring, white island in the middle. The island
	// matches the seed color but no path to it avoids the ring.
	img := newSolidImage(9, 9, white)
	fillRect(img, image.Rect(2, 2, 7, 7), black)
	fillRect(img, image.Rect(3, 3, 6, 6), white)

	for _, eightWay := range []bool{false, true} {
		name := "4-way"
		if eightWay {
			name = "8-way"
		}
		t.Run(name, func(t *testing.T) {
			buf := cloneImage(img)
			_, removed := FloodFill(buf, []image.Point{{X: 0, Y: 0}}, 0, eightWay)

			if removed != 56 {
				t.Errorf("removed: got %d, want 56 (outer white only)", removed)
			}
			if got := buf.NRGBAAt(4, 4); got != white {
				t.Errorf("island center: got %v, want untouched white", got)
			}
			if got := buf.NRGBAAt(2, 2); got != black {
				t.Errorf("ring pixel: got %v, want untouched black", got)
			}
		})
	}
}

func TestFloodFill_EightWayCrossesDiagonals(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	// White pixels only on the main diagonal; they touch corner to corner.
	img := newSolidImage(3, 3, black)
	for i := 0; i < 3; i++ {
		img.SetNRGBA(i, i, white)
	}

	buf := cloneImage(img)
	_, removed := FloodFill(buf, []image.Point{{X: 0, Y: 0}}, 0, false)
	if removed != 1 {
		t.Errorf("4-way removed: got %d, want 1 (diagonals not connected)", removed)
	}

	buf = cloneImage(img)
	_, removed = FloodFill(buf, []image.Point{{X: 0, Y: 0}}, 0, true)
	if removed != 3 {
		t.Errorf("8-way removed: got %d, want 3 (whole diagonal)", removed)
	}
}

func TestFloodFill_MultipleSeedColors(t *testing.T) {
	blue := color.NRGBA{0, 0, 255, 255}
	red := color.NRGBA{255, 0, 0, 255}

	// Left half blue, right half red. Either seed color matches, so the
	// fill crosses the color boundary and clears everything.
	img := newSolidImage(6, 1, blue)
	fillRect(img, image.Rect(3, 0, 6, 1), red)

	seeds := []image.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	_, removed := FloodFill(img, seeds, 0, false)

	if removed != 6 {
		t.Errorf("removed: got %d, want 6", removed)
	}
}

func TestFloodFill_ThresholdInclusive(t *testing.T) {
	base := color.NRGBA{100, 100, 100, 255}
	near := color.NRGBA{103, 104, 100, 255} // distance exactly 5

	tests := []struct {
		name        string
		threshold   float64
		wantRemoved int
	}{
		{"at boundary", 5, 2},
		{"below boundary", 4.999, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newSolidImage(2, 1, base)
			img.SetNRGBA(1, 0, near)

			_, removed := FloodFill(img, []image.Point{{X: 0, Y: 0}}, tt.threshold, false)
			if removed != tt.wantRemoved {
				t.Errorf("removed: got %d, want %d", removed, tt.wantRemoved)
			}
		})
	}
}

func TestFloodFill_SeedOnForeground(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	red := color.NRGBA{255, 0, 0, 255}

	// Seeding inside the red square removes the square, not the white
	// background around it.
	img := newSolidImage(10, 10, white)
	fillRect(img, image.Rect(3, 3, 6, 6), red)

	_, removed := FloodFill(img, []image.Point{{X: 4, Y: 4}}, 50, false)

	if removed != 9 {
		t.Errorf("removed: got %d, want 9", removed)
	}
	if got := img.NRGBAAt(0, 0); got != white {
		t.Errorf("background pixel: got %v, want untouched white", got)
	}
}

func TestGlobalPurge_IgnoresConnectivity(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	// Two white runs separated by black. A seed in the left run clears
	// the right run too.
	img := newSolidImage(7, 1, white)
	fillRect(img, image.Rect(2, 0, 5, 1), black)

	_, removed := GlobalPurge(img, []image.Point{{X: 0, Y: 0}}, 0)

	if removed != 4 {
		t.Errorf("removed: got %d, want 4 (both white runs)", removed)
	}
	if got := img.NRGBAAt(6, 0); got != (color.NRGBA{}) {
		t.Errorf("disconnected match: got %v, want cleared", got)
	}
	if got := img.NRGBAAt(3, 0); got != black {
		t.Errorf("non-matching pixel: got %v, want untouched black", got)
	}
}

func TestGlobalPurge_CountNeverBelowFloodFill(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}
	red := color.NRGBA{255, 0, 0, 255}

	island := newSolidImage(9, 9, white)
	fillRect(island, image.Rect(2, 2, 7, 7), black)
	fillRect(island, image.Rect(3, 3, 6, 6), white)

	connected := newSolidImage(5, 5, white)
	connected.SetNRGBA(2, 2, red)

	tests := []struct {
		name      string
		img       *image.NRGBA
		wantEqual bool
	}{
		{"disconnected island", island, false},
		{"fully connected", connected, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds := []image.Point{{X: 0, Y: 0}}

			_, flooded := FloodFill(cloneImage(tt.img), seeds, 0, false)
			_, purged := GlobalPurge(cloneImage(tt.img), seeds, 0)

			if purged < flooded {
				t.Errorf("purge removed %d, flood fill removed %d; purge must never remove fewer", purged, flooded)
			}
			if tt.wantEqual && purged != flooded {
				t.Errorf("connected content: purge removed %d, flood fill removed %d, want equal", purged, flooded)
			}
			if !tt.wantEqual && purged == flooded {
				t.Errorf("island content: purge and flood fill both removed %d, want purge to remove more", purged)
			}
		})
	}
}

func TestGlobalPurge_DuplicateSeedColorsKept(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}

	img := newSolidImage(4, 4, white)
	seeds := []image.Point{{X: 0, Y: 0}, {X: 3, Y: 3}} // same color twice

	_, removed := GlobalPurge(img, seeds, 0)
	if removed != 16 {
		t.Errorf("removed: got %d, want 16", removed)
	}
}

func TestPurgeColors_ExplicitList(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	green := color.NRGBA{0, 255, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}

	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, green)
	img.SetNRGBA(2, 0, blue)

	_, removed := PurgeColors(img, []color.NRGBA{blue}, 0)

	if removed != 1 {
		t.Errorf("removed: got %d, want 1", removed)
	}
	if got := img.NRGBAAt(2, 0); got != (color.NRGBA{}) {
		t.Errorf("blue pixel: got %v, want cleared", got)
	}
	if got := img.NRGBAAt(0, 0); got != red {
		t.Errorf("red pixel: got %v, want untouched", got)
	}
}

func TestPurgeColors_NearMatches(t *testing.T) {
	base := color.NRGBA{100, 100, 100, 255}
	near := color.NRGBA{103, 104, 100, 255} // distance exactly 5
	far := color.NRGBA{120, 120, 120, 255}

	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, base)
	img.SetNRGBA(1, 0, near)
	img.SetNRGBA(2, 0, far)

	_, removed := PurgeColors(img, []color.NRGBA{base}, 5)

	if removed != 2 {
		t.Errorf("removed: got %d, want 2 (base and boundary match)", removed)
	}
	if got := img.NRGBAAt(2, 0); got != far {
		t.Errorf("far pixel: got %v, want untouched", got)
	}
}
