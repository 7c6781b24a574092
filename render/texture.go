package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/gift"
	"github.com/h2non/filetype"
)

var flipVertical = gift.New(gift.FlipVertical())

// Texture is a 2D RGBA8 texture resident on the GPU.
type Texture struct {
	backend  Backend
	id       uint32
	Width    int
	Height   int
	Path     string
	released bool
}

// LoadTexture decodes a JPEG or PNG file and uploads it.
func LoadTexture(backend Backend, path string) (*Texture, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &TextureLoadError{Path: path, Err: err}
	}
	if !filetype.IsImage(buf) {
		return nil, &TextureLoadError{Path: path, Err: errors.New("not an image file")}
	}
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, &TextureLoadError{Path: path, Err: err}
	}
	tex, err := NewTexture(backend, img)
	if err != nil {
		return nil, &TextureLoadError{Path: path, Err: errors.Unwrap(err)}
	}
	tex.Path = path
	return tex, nil
}

// NewTexture uploads img flipped vertically, since texture coordinates start
// at the bottom-left.
func NewTexture(backend Backend, img image.Image) (*Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, &TextureLoadError{Err: errors.New("empty image")}
	}
	flipped := image.NewRGBA(flipVertical.Bounds(img.Bounds()))
	flipVertical.Draw(flipped, img)
	return upload(backend, flipped), nil
}

// NewTextureFromPixels uploads tightly packed RGBA8 rows as given.
func NewTextureFromPixels(backend Backend, width, height int, pix []byte) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, &TextureLoadError{Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}
	if len(pix) != width*height*4 {
		return nil, &TextureLoadError{Err: fmt.Errorf("got %d bytes for %dx%d RGBA", len(pix), width, height)}
	}
	rgba := &image.RGBA{Pix: pix, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	return upload(backend, rgba), nil
}

func upload(backend Backend, rgba *image.RGBA) *Texture {
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	if rgba.Stride != w*4 || rgba.Rect.Min != (image.Point{}) {
		packed := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(packed, packed.Rect, rgba, rgba.Rect.Min, draw.Src)
		rgba = packed
	}
	return &Texture{
		backend: backend,
		id:      backend.CreateTexture(w, h, rgba.Pix),
		Width:   w,
		Height:  h,
	}
}

// Bind makes the texture the source for texture unit unit.
func (t *Texture) Bind(unit uint32) error {
	if t.released {
		return &ReleasedError{Resource: "texture"}
	}
	t.backend.BindTexture(unit, t.id)
	return nil
}

// Release deletes the GPU texture. Further calls are no-ops.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.backend.DeleteTexture(t.id)
	t.released = true
}
