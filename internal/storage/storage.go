package storage

import (
	"context"
	"path"
	"regexp"
	"strings"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the object storage operations used for archived source documents.
type FileStorage interface {
	// PutObject uploads data under objectKey.
	PutObject(ctx context.Context, objectKey string, contentType string, data []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SourceDocumentKey is the object key for a unit's uploaded source document.
func SourceDocumentKey(unitID, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	name = unsafeKeyChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == "_" {
		name = "document.pdf"
	}
	return "sources/" + unitID + "/" + name
}
