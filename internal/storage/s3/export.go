package s3

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/5w1tchy/isbn-books-api/internal/models"
)

// Lister is the read side of the book store.
type Lister interface {
	List(ctx context.Context) ([]models.Book, error)
}

// Uploader is satisfied by *S3Client.
type Uploader interface {
	PutObject(ctx context.Context, objectKey, contentType string, body []byte) error
}

type snapshot struct {
	Books      []models.Book `json:"books"`
	ExportedAt string        `json:"exported_at"`
}

// SnapshotKey names the object an export taken at now is written to.
func SnapshotKey(prefix string, now time.Time) string {
	return fmt.Sprintf("%sbooks-%s.json", prefix, now.UTC().Format("20060102T150405Z"))
}

// Export uploads the whole catalog as one JSON document and returns its key.
func Export(ctx context.Context, books Lister, up Uploader, prefix string, now time.Time) (string, error) {
	list, err := books.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list books: %w", err)
	}

	body, err := json.Marshal(snapshot{Books: list, ExportedAt: now.UTC().Format(time.RFC3339)})
	if err != nil {
		return "", err
	}

	key := SnapshotKey(prefix, now)
	if err := up.PutObject(ctx, key, "application/json", body); err != nil {
		return "", err
	}
	log.Printf("[export] wrote %d books to %s (%d bytes)", len(list), key, len(body))
	return key, nil
}
