package utils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	mapart "github.com/AK1089/minecraftMapArt"
)

// Extensions lists the image types ReadImage accepts.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}

var (
	ErrExtension = errors.New("Invalid file extension. Please use PNG, JPEG, GIF, WebP or BMP files only.")
	ErrNotFound  = errors.New("image not found")
)

// CheckExtension rejects paths whose extension is not an image type we
// decode. Paths without an extension are accepted.
func CheckExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil
	}
	for _, e := range Extensions {
		if ext == e {
			return nil
		}
	}
	return errors.Wrap(ErrExtension, path)
}

// ReadImage decodes the image at path.
func ReadImage(path string) (image.Image, error) {
	if err := CheckExtension(path); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "Unable to find %s - make sure the path is correct", path)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()
	return DecodeImage(file)
}

func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encoding %s", filename)
	}
	return errors.WithStack(f.Close())
}

// DataURL encodes img as an inline PNG for HTML <img> tags.
func DataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.WithStack(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// PaletteImage draws one tileSize square per entry, left to right.
func PaletteImage(entries []mapart.Entry, tileSize int) (*image.RGBA, error) {
	if len(entries) == 0 {
		return nil, errors.New("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	img := image.NewRGBA(image.Rect(0, 0, tileSize*len(entries), tileSize))
	for i, e := range entries {
		c := color.RGBA{R: e.RGB.R, G: e.RGB.G, B: e.RGB.B, A: 255}
		x0 := i * tileSize
		for y := range tileSize {
			for x := x0; x < x0+tileSize; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img, nil
}

func SavePalette(entries []mapart.Entry, tileSize int, filename string) error {
	img, err := PaletteImage(entries, tileSize)
	if err != nil {
		return err
	}
	return SaveImage(img, filename)
}
