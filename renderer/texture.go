package renderer

import (
	"log"
	"unsafe"
)

const bytesPerPixel = 4

// Texture owns one 2D texture object. A texture whose image could not be decoded
// has no GPU object and zero dimensions; check Valid before drawing with it.
type Texture struct {
	ctx       *Context
	id        uint32
	path      string
	width     int
	height    int
	bpp       int
	destroyed bool
}

// NewTexture decodes the image at path and uploads it.
func NewTexture(ctx *Context, path string) *Texture {
	return NewTextureWithDecoder(ctx, path, DecodeImage)
}

// NewTextureWithDecoder is NewTexture with a caller supplied decoder. The decoded
// pixels are dropped once uploaded.
func NewTextureWithDecoder(ctx *Context, path string, decode ImageDecoder) *Texture {
	t := &Texture{ctx: ctx, path: path}
	img, err := decode(path)
	if err != nil {
		log.Printf("Failed to load texture %s: %v", path, err)
		return t
	}
	t.width = img.Rect.Dx()
	t.height = img.Rect.Dy()
	t.bpp = bytesPerPixel
	pix := packRows(img.Pix, img.Stride, t.width*t.bpp, t.height)

	gl := ctx.gl
	ctx.call("glGenTextures", func() { t.id = gl.GenTexture() })
	ctx.call("glBindTexture", func() { gl.BindTexture(TEXTURE_2D, t.id) })
	ctx.call("glTexParameteri", func() { gl.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, LINEAR) })
	ctx.call("glTexParameteri", func() { gl.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, LINEAR) })
	ctx.call("glTexParameteri", func() { gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_S, CLAMP_TO_EDGE) })
	ctx.call("glTexParameteri", func() { gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_T, CLAMP_TO_EDGE) })
	ctx.call("glTexImage2D", func() {
		gl.TexImage2D(TEXTURE_2D, 0, RGBA8, int32(t.width), int32(t.height), 0, RGBA, uint32(UnsignedByte), unsafe.Pointer(&pix[0]))
	})
	ctx.call("glBindTexture", func() { gl.BindTexture(TEXTURE_2D, 0) })
	log.Printf("Loaded texture %s (w: %dp, h: %dp) %d Byte", path, t.width, t.height, len(pix))
	return t
}

// packRows drops any row padding so rows are rowLen bytes apart.
func packRows(pix []byte, stride, rowLen, rows int) []byte {
	if stride == rowLen {
		return pix[:rowLen*rows]
	}
	packed := make([]byte, 0, rowLen*rows)
	for y := 0; y < rows; y++ {
		packed = append(packed, pix[y*stride:y*stride+rowLen]...)
	}
	return packed
}

func (t *Texture) ID() uint32 {
	return t.id
}

func (t *Texture) Path() string {
	return t.path
}

func (t *Texture) Width() int {
	return t.width
}

func (t *Texture) Height() int {
	return t.height
}

// BPP is the number of bytes per uploaded pixel.
func (t *Texture) BPP() int {
	return t.bpp
}

func (t *Texture) Valid() bool {
	return t.id != 0 && !t.destroyed
}

// Bind activates sampler unit slot and binds the texture to it.
func (t *Texture) Bind(slot uint32) {
	mustBeAlive(t.destroyed, "Texture")
	t.ctx.call("glActiveTexture", func() { t.ctx.gl.ActiveTexture(TEXTURE0 + slot) })
	t.ctx.call("glBindTexture", func() { t.ctx.gl.BindTexture(TEXTURE_2D, t.id) })
}

func (t *Texture) Unbind() {
	t.ctx.call("glBindTexture", func() { t.ctx.gl.BindTexture(TEXTURE_2D, 0) })
}

func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	if t.id != 0 {
		t.ctx.call("glDeleteTextures", func() { t.ctx.gl.DeleteTexture(t.id) })
	}
	t.destroyed = true
}
