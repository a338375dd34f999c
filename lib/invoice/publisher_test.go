package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactKey(t *testing.T) {
	ts := time.UnixMilli(1718000000123)
	assert.Equal(t, "invoices/Acme/1/1718000000123.pdf", ArtifactKey("Acme", "1", ts))
}

func TestPublisher_Publish(t *testing.T) {
	//Arrange
	store := &MockStore{}
	p := &Publisher{Store: store, Now: func() time.Time { return time.UnixMilli(42) }}

	//Act
	key, err := p.Publish(context.Background(), "Acme", "7", []byte("%PDF-1.3"))

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "invoices/Acme/7/42.pdf", key)
	require.Len(t, store.Puts, 1)
	assert.Equal(t, key, store.Puts[0].Key)
	assert.Equal(t, "application/pdf", store.Puts[0].ContentType)
	assert.Equal(t, []byte("%PDF-1.3"), store.Puts[0].Body)
}

func TestPublisher_PublishError(t *testing.T) {
	//Arrange
	cause := errors.New("SlowDown")
	p := &Publisher{Store: &MockStore{PutErr: cause}, Now: time.Now}

	//Act
	key, err := p.Publish(context.Background(), "Acme", "7", []byte("x"))

	//Assert
	assert.Empty(t, key)
	assert.ErrorIs(t, err, ErrPublish)
	assert.ErrorIs(t, err, cause)
}
