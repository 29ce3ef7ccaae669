package renderer

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageDecoder turns an image file into tightly packed RGBA8 rows.
type ImageDecoder func(path string) (*image.RGBA, error)

// DecodeImage decodes the file at path and flips it vertically, as texture
// coordinates start at the bottom-left corner while image rows start at the top.
func DecodeImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode '%s': %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image '%s' (%s) is empty", path, format)
	}
	return transform.FlipV(img), nil
}
