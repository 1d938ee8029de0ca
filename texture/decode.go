package texture

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads the image file at path and returns tightly packed pixel
// data, dimensions, and the channel count implied by the decoded color
// model (1 for grayscale, 3 for RGB-like, 4 for RGBA-like). Rows are
// packed bottom-up so the texture is vertically flipped for OpenGL's
// UV origin.
func Decode(path string) (pixels []byte, width, height, channels int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("could not open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("could not decode image %s: %w", path, err)
	}

	channels = channelCount(img)
	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()

	pixels = make([]byte, width*height*channels)
	i := 0
	// Walk source rows top to bottom, writing into the buffer starting at
	// the last row. This performs the mandatory vertical flip during
	// packing instead of as a second pass.
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := height - 1 - (y - bounds.Min.Y)
		i = row * width * channels
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			switch channels {
			case 1:
				pixels[i] = byte(r >> 8)
				i++
			case 3:
				pixels[i] = byte(r >> 8)
				pixels[i+1] = byte(g >> 8)
				pixels[i+2] = byte(b >> 8)
				i += 3
			default:
				pixels[i] = byte(r >> 8)
				pixels[i+1] = byte(g >> 8)
				pixels[i+2] = byte(b >> 8)
				pixels[i+3] = byte(a >> 8)
				i += 4
			}
		}
	}

	return pixels, width, height, channels, nil
}

// channelCount maps the decoded image's concrete type onto the channel
// counts the registry validates against. JPEG decodes to YCbCr (3),
// PNG with alpha to NRGBA (4), grayscale formats to Gray (1).
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	default:
		return 4
	}
}
