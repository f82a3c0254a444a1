package gfx

import (
	"image"
	"image/color"
	"image/draw"

	// Register the decoders for the formats game assets ship in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) && rgba.Stride == rgba.Bounds().Dx()*4 {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// prepareBitmap readies the 2D-backend variant. A decode at least as
// large as the logical size is kept as-is, with the crop-scale factors
// (natural/logical) mapping crop rectangles to its pixels at draw time.
// A smaller decode is upsampled to the logical size with nearest-neighbor
// filtering.
func prepareBitmap(b *bitmapData, img image.Image, w, h int) {
	natural := img.Bounds()
	if natural.Dx() >= w && natural.Dy() >= h {
		b.img = toRGBA(img)
		b.cropScaleX = float32(natural.Dx()) / float32(w)
		b.cropScaleY = float32(natural.Dy()) / float32(h)
		return
	}
	resized := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(resized, resized.Bounds(), img, natural, xdraw.Src, nil)
	b.img = resized
	b.cropScaleX, b.cropScaleY = 1, 1
}

const (
	missingSize = 32
	missingCell = 8
)

// missingImage is the built-in placeholder substituted for textures whose
// source failed to load: a magenta/black checkerboard.
func missingImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, missingSize, missingSize))
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	for y := 0; y < missingSize; y++ {
		for x := 0; x < missingSize; x++ {
			if (x/missingCell+y/missingCell)%2 == 0 {
				img.SetRGBA(x, y, magenta)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}
