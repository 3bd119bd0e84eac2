package pdf

import (
	"bytes"
	"image"
	"image/png"

	"github.com/m-mizutani/goerr/v2"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FitWithin scales (w, h) down to fit inside (maxW, maxH), preserving the
// aspect ratio. Images already inside the bounds are returned unchanged;
// nothing is ever scaled up.
func FitWithin(w, h, maxW, maxH float64) (float64, float64) {
	if w > maxW {
		ratio := maxW / w
		w = maxW
		h = h * ratio
	}
	if h > maxH {
		ratio := maxH / h
		h = maxH
		w = w * ratio
	}
	return w, h
}

// decodePreview decodes attachment bytes into an image for embedding
func decodePreview(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode attachment image")
	}
	return img, nil
}

// encodePNG renders any decoded image to PNG bytes, the one raster format
// embedded in the document
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, goerr.Wrap(err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}
