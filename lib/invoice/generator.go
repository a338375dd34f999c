package invoice

import (
	"context"
	"fmt"

	"compaexpress/lib/models"

	"github.com/sirupsen/logrus"
)

// Generator runs the sales note pipeline: validate, fetch the logo, lay out, render
// and publish. Steps run sequentially; only the final step writes to storage.
type Generator struct {
	Logos     *LogoFetcher
	Renderer  *Renderer
	Publisher *Publisher
	NewCanvas CanvasFactory
	Logger    *logrus.Logger
}

// NewGenerator wires the pipeline against one object store and the gofpdf canvas
func NewGenerator(store ObjectStore, logger *logrus.Logger) *Generator {
	return &Generator{
		Logos:     &LogoFetcher{Store: store, Logger: logger},
		Renderer:  NewRenderer(),
		Publisher: NewPublisher(store),
		NewCanvas: NewPDFCanvasFactory(),
		Logger:    logger,
	}
}

// Generate renders the request and returns the storage key of the document
func (g *Generator) Generate(ctx context.Context, req *models.GeneratePDFRequest, correlationID string) (string, error) {
	log := g.Logger.WithFields(logrus.Fields{
		"operation":      "GeneratePDF",
		"correlation_id": correlationID,
	})

	if err := Validate(req); err != nil {
		return "", err
	}

	profile := NewBusinessProfile(*req.Negocio)
	doc := Document{
		Invoice: *req.Invoice,
		Items:   req.InvoiceItems,
		Profile: profile,
	}
	if key, ok := profile.LogoKey.Get(); ok {
		doc.Logo = g.Logos.Fetch(ctx, key)
	}

	layout := g.Renderer.Config.Compute(doc.Logo != nil, len(doc.Items))
	if layout.Table.Dropped > 0 {
		log.WithFields(logrus.Fields{
			"dropped_items": layout.Table.Dropped,
			"item_count":    len(doc.Items),
			"row_capacity":  len(layout.Table.Rows),
		}).Warn("Invoice items exceed table capacity, extra items are omitted")
	}

	canvas := g.NewCanvas(g.Renderer.Config)
	g.Renderer.Render(canvas, layout, doc)
	body, err := canvas.Bytes()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}
	log.WithField("bytes", len(body)).Debug("Rendered invoice document")

	key, err := g.Publisher.Publish(ctx, profile.Name, req.Invoice.ID.String(), body)
	if err != nil {
		return "", err
	}
	log.WithField("key", key).Info("Invoice document published")
	return key, nil
}
