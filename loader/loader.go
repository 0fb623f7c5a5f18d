// Package loader turns an encoded image file into a tight, non-premultiplied
// 4-channel pixel buffer, whatever the source encoding.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/eason9999/qoy-rvv/source"
)

// Channels is the fixed pixel layout every loaded image is normalized to.
const Channels = 4

const sniffLen = 1024

var ErrDecode = errors.New("image cannot be decoded")
var ErrEmptyImage = errors.New("image has zero area")

type ErrUnsupportedFormat struct {
	MimeType *mimetype.MIME
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("image format is not supported: %s", e.MimeType)
}

// Image is a decoded target. Pix holds Width*Height RGBA pixels, row after
// row, with no padding.
type Image struct {
	Path   string
	Pix    []byte
	Width  int
	Height int
}

type Loader struct {
	fsys      source.FileSystem
	mimeTypes map[string]struct{}
}

func New(fsys source.FileSystem) *Loader {
	mimeTypes := make(map[string]struct{}, 8)
	for _, mt := range []string{"image/png", "image/jpeg", "image/gif", "image/bmp", "image/tiff", "image/webp"} {
		mimeTypes[mt] = struct{}{}
	}

	return &Loader{
		fsys:      fsys,
		mimeTypes: mimeTypes,
	}
}

func (l *Loader) SupportedMimeTypes() []string {
	mimeTypes := make([]string, 0, len(l.mimeTypes))
	for k := range l.mimeTypes {
		mimeTypes = append(mimeTypes, k)
	}

	return mimeTypes
}

// Load opens and decodes path. Every failure wraps ErrDecode.
func (l *Loader) Load(path string) (*Image, error) {
	file, err := l.fsys.Open(path)
	if err != nil {
		return nil, errors.Join(ErrDecode, errors.New("failed to open file"), err)
	}
	defer file.Close()

	img, err := l.Decode(file)
	if err != nil {
		return nil, err
	}
	img.Path = path

	return img, nil
}

// Decode sniffs the content type from the first bytes of r, rejects anything
// outside the supported set and decodes the rest.
func (l *Loader) Decode(r io.Reader) (*Image, error) {
	mimeBlock := make([]byte, sniffLen)
	readed, err := io.ReadFull(r, mimeBlock)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errors.Join(ErrDecode, errors.New("failed to read file to determine mime type"), err)
	}

	mime := mimetype.Detect(mimeBlock[:readed])
	if _, ok := l.mimeTypes[mime.String()]; !ok {
		return nil, errors.Join(ErrDecode, &ErrUnsupportedFormat{MimeType: mime})
	}

	decoded, _, err := image.Decode(io.MultiReader(bytes.NewReader(mimeBlock[:readed]), r))
	if err != nil {
		return nil, errors.Join(ErrDecode, fmt.Errorf("failed to decode %s", mime), err)
	}

	bounds := decoded.Bounds()
	if bounds.Empty() {
		return nil, errors.Join(ErrDecode, ErrEmptyImage)
	}

	return &Image{
		Pix:    toRGBA(decoded),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// toRGBA returns the pixels of img as tight non-premultiplied RGBA. An NRGBA
// image is copied row by row; any other color model is converted.
func toRGBA(img image.Image) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if nrgba, ok := img.(*image.NRGBA); ok {
		rowLen := width * Channels
		if nrgba.Stride == rowLen && bounds.Min == (image.Point{}) {
			return nrgba.Pix[:rowLen*height]
		}

		pix := make([]byte, rowLen*height)
		for y := range height {
			start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pix[y*rowLen:(y+1)*rowLen], nrgba.Pix[start:start+rowLen])
		}
		return pix
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst.Pix
}
