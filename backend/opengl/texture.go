package opengl

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// TextureOptions control how an image file becomes a texture.
type TextureOptions struct {
	// FlipVertically puts the first image row at the bottom, matching
	// OpenGL's texture coordinate origin.
	FlipVertically bool
}

// Texture owns one 2D texture object.
type Texture struct {
	id            uint32
	width, height int
}

// decodeImage reads an image file into tightly packed RGBA pixels.
func decodeImage(path string, opts TextureOptions) (*image.RGBA, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}

	var rgba *image.RGBA
	if opts.FlipVertically {
		rgba = transform.FlipV(img)
	} else {
		rgba = clone.AsRGBA(img)
	}
	if rgba.Rect.Empty() {
		return nil, fmt.Errorf("load texture %s: empty image", path)
	}
	return rgba, nil
}

// LoadTexture decodes an image file and uploads it with mip-maps, repeat
// wrapping and trilinear minification.
func LoadTexture(path string, opts TextureOptions) (*Texture, error) {
	rgba, err := decodeImage(path, opts)
	if err != nil {
		return nil, err
	}
	return NewTexture(rgba), nil
}

// NewTexture uploads RGBA pixels as a texture.
func NewTexture(rgba *image.RGBA) *Texture {
	t := &Texture{width: rgba.Rect.Dx(), height: rgba.Rect.Dy()}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(t.width), int32(t.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t
}

// ID returns the GL texture name, or 0 once deleted.
func (t *Texture) ID() uint32 {
	if t == nil {
		return 0
	}
	return t.id
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	if t.ID() == 0 {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Delete releases the texture. It is safe to call more than once.
func (t *Texture) Delete() {
	if t == nil || t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
