package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLUploader is the production GPU implementation backed by go-gl. It
// must only be used on the thread that owns the GL context.
type GLUploader struct{}

func (GLUploader) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch channels {
	case 3:
		internalFormat = gl.RGB8
		format = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported channel count %d", channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Tightly packed rows; 3-channel images are not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(width),
		int32(height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

func (GLUploader) Bind(slot int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (GLUploader) Delete(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}
