package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Shader maps one cell record to a display colour.
type Shader func(rec []uint8) color.RGBA

// FillRecords converts strided cell records into RGBA pixels in buf. A nil
// shader clears the buffer to transparent black. Records beyond len(buf)/4 are
// ignored.
func FillRecords(buf []byte, cells []uint8, stride int, shade Shader) {
	if stride <= 0 {
		return
	}
	n := min(len(cells)/stride, len(buf)/4)
	if shade == nil {
		clear(buf[:n*4])
		return
	}
	for i := 0; i < n; i++ {
		col := shade(cells[i*stride : (i+1)*stride])
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ImageFromRecords returns a w*h image of the shaded cell records.
func ImageFromRecords(w, h int, cells []uint8, stride int, shade Shader) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillRecords(img.Pix, cells, stride, shade)
	return img
}

// Upscale enlarges src by an integer factor with nearest-neighbour sampling
// so individual cells stay crisp.
func Upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
