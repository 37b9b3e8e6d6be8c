package removal

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name          string
		spec          string
		width, height int
		want          image.Point
	}{
		{"origin", "0,0", 10, 10, image.Point{X: 0, Y: 0}},
		{"absolute", "3,7", 10, 10, image.Point{X: 3, Y: 7}},
		{"last pixel", "9,9", 10, 10, image.Point{X: 9, Y: 9}},
		{"center percent", "50%,50%", 101, 101, image.Point{X: 50, Y: 50}},
		{"full percent", "100%,100%", 10, 10, image.Point{X: 9, Y: 9}},
		{"zero percent", "0%,0%", 10, 10, image.Point{X: 0, Y: 0}},
		{"mixed forms", "50%,3", 101, 10, image.Point{X: 50, Y: 3}},
		{"decimal truncates", "2.9,3.9", 10, 10, image.Point{X: 2, Y: 3}},
		{"surrounding spaces", " 3 , 4 ", 10, 10, image.Point{X: 3, Y: 4}},
		{"percent of 1-wide", "100%,0", 1, 10, image.Point{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeed(tt.spec, tt.width, tt.height)
			if err != nil {
				t.Fatalf("ParseSeed(%q) failed: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeed(%q): got %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseSeed_Errors(t *testing.T) {
	tests := []struct {
		name          string
		spec          string
		width, height int
		wantErr       error
	}{
		{"single part", "1", 10, 10, ErrInvalidFormat},
		{"three parts", "1,2,3", 10, 10, ErrInvalidFormat},
		{"empty", "", 10, 10, ErrInvalidFormat},
		{"non-numeric x", "a,1", 10, 10, ErrInvalidNumber},
		{"non-numeric y", "1,b", 10, 10, ErrInvalidNumber},
		{"empty parts", ",", 10, 10, ErrInvalidNumber},
		{"bad percent", "x%,1", 10, 10, ErrInvalidNumber},
		{"x at width", "10,5", 10, 10, ErrOutOfRange},
		{"y at height", "5,10", 10, 10, ErrOutOfRange},
		{"negative x", "-1,0", 10, 10, ErrOutOfRange},
		{"percent above 100", "101%,0", 10, 10, ErrOutOfRange},
		{"negative percent", "-0.1%,0", 10, 10, ErrOutOfRange},
		{"nan component", "NaN,0", 10, 10, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed(tt.spec, tt.width, tt.height)
			if err == nil {
				t.Fatalf("ParseSeed(%q) should fail", tt.spec)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSeed(%q) error %v, want %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestCornerSeeds(t *testing.T) {
	got := CornerSeeds(100, 50)
	want := []image.Point{{X: 0, Y: 0}, {X: 99, Y: 0}, {X: 0, Y: 49}, {X: 99, Y: 49}}

	if len(got) != 4 {
		t.Fatalf("CornerSeeds returned %d points, want 4", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCornerSeeds_InBounds(t *testing.T) {
	dims := []struct{ w, h int }{{1, 1}, {1, 10}, {10, 1}, {2, 2}, {640, 480}}

	for _, d := range dims {
		for i, p := range CornerSeeds(d.w, d.h) {
			if p.X < 0 || p.X >= d.w || p.Y < 0 || p.Y >= d.h {
				t.Errorf("corner %d of %dx%d out of bounds: %v", i, d.w, d.h, p)
			}
		}
	}
}

func TestSeedColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(2, 0, color.NRGBA{255, 0, 0, 255})

	seeds := []image.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	colors := SeedColors(img, seeds)

	if len(colors) != 3 {
		t.Fatalf("SeedColors returned %d colors, want 3 (duplicates kept)", len(colors))
	}
	if colors[0] != (color.NRGBA{255, 0, 0, 255}) || colors[2] != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("duplicate seed colors not preserved: %v", colors)
	}
	if colors[1] != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("colors[1]: got %v, want green", colors[1])
	}
}
