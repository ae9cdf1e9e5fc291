// Package storage archives uploaded CVs in Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/careerfuture/backend/config"
	"github.com/careerfuture/backend/utils"
)

// CVArchive stores uploaded CV files and returns where they went.
type CVArchive interface {
	UploadCV(ctx context.Context, filename string, content []byte) (string, error)
}

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	now        func() time.Time
}

// NewCloudStorageClient creates a new Cloud Storage client for cfg.CVBucketName.
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	if cfg.CVBucketName == "" {
		return nil, fmt.Errorf("CV_BUCKET_NAME is not set")
	}

	client, err := storage.NewClient(ctx, option.WithUserAgent(utils.UserAgent))
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.CVBucketName,
		now:        time.Now,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadCV writes content under cvs/<date>/<uuid><ext> and returns its URL.
// Uploads are anonymous, so no user identity appears in the object name.
func (c *CloudStorageClient) UploadCV(ctx context.Context, filename string, content []byte) (string, error) {
	objectName := ObjectName(filename, c.now(), uuid.NewString())

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = getContentType(filepath.Ext(filename))
	wc.Metadata = map[string]string{"original_filename": filepath.Base(filename)}

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return ObjectURL(c.bucketName, objectName), nil
}

// ObjectName builds the archive path for an upload.
func ObjectName(filename string, at time.Time, id string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("cvs/%s/%s%s", at.UTC().Format("2006-01-02"), id, ext)
}

// ObjectURL is the public URL of an object.
func ObjectURL(bucket, objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName)
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".html", ".htm":
		return "text/html"
	case ".md":
		return "text/markdown"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
