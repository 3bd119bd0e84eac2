package layout

import "image"

// Paginate slices a tall raster into page-height bands. It returns the
// band boundaries as row offsets: cuts[0] is always 0 and the last entry
// is the image height, so band i covers rows [cuts[i], cuts[i+1]) and
// every row belongs to exactly one band.
//
// When a default cut point would slice through content, the cut moves up
// to the nearest visually empty row within tolerance×window rows; if no
// empty row is close enough the default boundary stands.
func Paginate(img image.Image, window int, tolerance float64) []int {
	height := img.Bounds().Dy()
	cuts := []int{0}
	if window <= 0 {
		return append(cuts, height)
	}

	prev := 0
	for height-prev > window {
		cut := prev + window
		span := int(float64(window) * tolerance)
		if seam, ok := seekBlankRow(img, cut, span); ok && seam > prev {
			cut = seam
		}
		cuts = append(cuts, cut)
		prev = cut
	}
	return append(cuts, height)
}

// seekBlankRow walks upward from y looking for a fully blank row within
// span rows
func seekBlankRow(img image.Image, y, span int) (int, bool) {
	for dy := 0; dy <= span && y-dy > 0; dy++ {
		if rowBlank(img, y-dy) {
			return y - dy, true
		}
	}
	return 0, false
}

// rowBlank reports whether every pixel of the row is near-white
func rowBlank(img image.Image, y int) bool {
	const threshold = 0xfa00
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		r, g, bl, _ := img.At(x, b.Min.Y+y).RGBA()
		if r < threshold || g < threshold || bl < threshold {
			return false
		}
	}
	return true
}
