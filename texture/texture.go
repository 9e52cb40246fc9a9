package texture

import (
	"image"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Texture owns a GL 2D texture object.
type Texture struct {
	id            uint32
	width, height int
}

// Load2D decodes path and uploads it as an sRGB texture with a full mipmap
// chain.
func Load2D(path string) (*Texture, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return New(img), nil
}

// New uploads an RGBA image whose rows are already bottom-up.
func New(img *image.RGBA) *Texture {
	size := img.Rect.Size()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8_ALPHA8, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{id: id, width: size.X, height: size.Y}
}

func (t *Texture) Size() (int, int) { return t.width, t.height }

// Bind makes the texture current on the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Release deletes the texture. It is safe to call more than once.
func (t *Texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
