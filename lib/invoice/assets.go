package invoice

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
)

// ObjectStore is the object storage the pipeline reads logos from and writes documents to
type ObjectStore interface {
	GetObject(ctx context.Context, key string) ([]byte, string, error)
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}

// Logo is a verified image ready to be placed on the page
type Logo struct {
	Key    string
	Data   []byte
	Format string // PNG, JPG or GIF
	Width  int
	Height int
}

var imageFormats = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

// LogoFetcher loads the optional business logo. A missing or unusable logo never fails
// the request; Fetch returns nil and the document is laid out without one.
type LogoFetcher struct {
	Store  ObjectStore
	Logger *logrus.Logger
}

// Fetch returns the decoded logo for key, or nil when it cannot be used
func (f *LogoFetcher) Fetch(ctx context.Context, key string) *Logo {
	logo, err := f.load(ctx, key)
	if err != nil {
		f.Logger.WithError(err).WithField("logo_key", key).Warn("Error loading logo, continuing without it")
		return nil
	}
	return logo
}

func (f *LogoFetcher) load(ctx context.Context, key string) (*Logo, error) {
	data, contentType, err := f.Store.GetObject(ctx, key)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("logo %s has content type %q, not an image", key, contentType)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo %s: %w", key, err)
	}
	pdfFormat, ok := imageFormats[format]
	if !ok {
		return nil, fmt.Errorf("unsupported logo format %s", format)
	}

	// gofpdf rejects some images the stdlib decodes, such as 16-bit or interlaced PNGs
	if err := embeddable(key, data, pdfFormat); err != nil {
		return nil, err
	}

	return &Logo{
		Key:    key,
		Data:   data,
		Format: pdfFormat,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// embeddable registers the image on a scratch document, the same way PDFCanvas does
func embeddable(key string, data []byte, format string) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.RegisterImageOptionsReader(key, gofpdf.ImageOptions{ImageType: format}, bytes.NewReader(data))
	if !pdf.Ok() {
		return fmt.Errorf("logo %s cannot be embedded: %w", key, pdf.Error())
	}
	return nil
}
