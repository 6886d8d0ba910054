package s3

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/5w1tchy/isbn-books-api/internal/models"
	"github.com/5w1tchy/isbn-books-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	key, contentType string
	body             []byte
	err              error
}

func (f *fakeUploader) PutObject(_ context.Context, key, contentType string, body []byte) error {
	f.key, f.contentType, f.body = key, contentType, body
	return f.err
}

var exportTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func TestExport(t *testing.T) {
	store := testutil.NewMemStore(testutil.FixtureBook)
	up := &fakeUploader{}

	key, err := Export(context.Background(), store, up, "exports/", exportTime)
	require.NoError(t, err)

	assert.Equal(t, "exports/books-20240309T140507Z.json", key)
	assert.Equal(t, key, up.key)
	assert.Equal(t, "application/json", up.contentType)

	var got struct {
		Books      []models.Book `json:"books"`
		ExportedAt string        `json:"exported_at"`
	}
	require.NoError(t, json.Unmarshal(up.body, &got))
	assert.Equal(t, []models.Book{testutil.FixtureBook}, got.Books)
	assert.Equal(t, "2024-03-09T14:05:07Z", got.ExportedAt)
}

func TestExport_EmptyCatalogIsArray(t *testing.T) {
	up := &fakeUploader{}
	_, err := Export(context.Background(), testutil.NewMemStore(), up, "", exportTime)
	require.NoError(t, err)
	assert.Contains(t, string(up.body), `"books":[]`)
}

func TestExport_Errors(t *testing.T) {
	store := testutil.NewMemStore()
	store.Err = errors.New("db down")
	_, err := Export(context.Background(), store, &fakeUploader{}, "", exportTime)
	assert.ErrorContains(t, err, "list books")

	up := &fakeUploader{err: errors.New("access denied")}
	_, err = Export(context.Background(), testutil.NewMemStore(), up, "", exportTime)
	assert.ErrorContains(t, err, "access denied")
}

func TestNewClient_RequiresBucket(t *testing.T) {
	_, err := NewClient(context.Background(), Options{Region: "us-east-1"})
	assert.Error(t, err)
}
