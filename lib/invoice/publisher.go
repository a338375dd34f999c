package invoice

import (
	"context"
	"fmt"
	"time"

	"compaexpress/lib/constants"
)

// ArtifactKey is the storage key of a rendered document. Keys are unique per
// millisecond only; two documents for the same invoice in the same millisecond collide.
func ArtifactKey(businessName, invoiceID string, t time.Time) string {
	return fmt.Sprintf("invoices/%s/%s/%d.pdf", businessName, invoiceID, t.UnixMilli())
}

// Publisher writes rendered documents to object storage
type Publisher struct {
	Store ObjectStore
	Now   func() time.Time
}

// NewPublisher returns a publisher stamped with the wall clock
func NewPublisher(store ObjectStore) *Publisher {
	return &Publisher{Store: store, Now: time.Now}
}

// Publish stores body and returns its key
func (p *Publisher) Publish(ctx context.Context, businessName, invoiceID string, body []byte) (string, error) {
	key := ArtifactKey(businessName, invoiceID, p.Now())
	if err := p.Store.PutObject(ctx, key, body, constants.PDF_CONTENT_TYPE); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPublish, err)
	}
	return key, nil
}
