package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_Put(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStore(bucket, "https://cdn.example.no/uploads/")

	url, err := store.Put(context.Background(), "buyer-requests/abc.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.no/uploads/buyer-requests/abc.jpg", url)

	attrs, err := bucket.Attributes(context.Background(), "buyer-requests/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	data, err := bucket.ReadAll(context.Background(), "buyer-requests/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}
