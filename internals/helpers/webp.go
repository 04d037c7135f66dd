package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// batas sisi terpanjang gambar hasil konversi
const maxImageDimension = 1600

// ConvertImageToWebP membaca file multipart (jpeg/png/webp), resize bila
// melebihi maxImageDimension, lalu encode ke WebP lossy quality 85.
// File .webp dilewatkan apa adanya.
func ConvertImageToWebP(fh *multipart.FileHeader) (*bytes.Buffer, error) {
	buf, err := ReadMultipartFile(fh)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == ".webp" {
		return buf, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("gagal decode gambar: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxImageDimension || b.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return out, nil
}

// WebPFilename mengganti ekstensi nama file menjadi .webp.
func WebPFilename(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	if base == "" {
		base = "image"
	}
	return base + ".webp"
}
