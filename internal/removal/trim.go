package removal

import (
	"image"

	"github.com/disintegration/imaging"
)

// Trim crops transparent edges away from the buffer.
//
// The bounding box is the smallest rectangle containing every pixel with
// nonzero alpha, right/bottom exclusive. When at least one such pixel
// exists, the returned buffer is a copy holding exactly the pixels inside
// the box. When the whole buffer is transparent the original buffer is
// returned unmodified together with a box covering the full extent, so the
// caller never receives a zero-size image.
//
// Trimming its own output again is a no-op: the content already touches
// every edge, so the box spans the full buffer.
func Trim(img *image.NRGBA) (*image.NRGBA, image.Rectangle) {
	box, ok := opaqueBounds(img)
	if !ok {
		return img, img.Bounds()
	}
	return imaging.Crop(img, box), box
}

// opaqueBounds returns the bounding box of all nonzero-alpha pixels. ok is
// false when every pixel is fully transparent.
func opaqueBounds(img *image.NRGBA) (box image.Rectangle, ok bool) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if img.Pix[row+x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
