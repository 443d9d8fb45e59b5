package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"gondola-rental/internal/domain"
)

type Archiver interface {
	// Store persists the report and returns the object key, or "" when
	// archiving is disabled.
	Store(ctx context.Context, report *domain.RunReport) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioArchiver struct {
	client objectPutter
	bucket string
}

// NewArchiver writes run reports to MinIO. A nil client disables archiving.
func NewArchiver(client *minio.Client, bucket string) Archiver {
	if client == nil {
		return noopArchiver{}
	}
	return &minioArchiver{client: client, bucket: bucket}
}

func ObjectKey(report *domain.RunReport) string {
	return fmt.Sprintf("runs/%s/%s.json", report.Job, report.StartedAt.UTC().Format("20060102T150405Z"))
}

func (a *minioArchiver) Store(ctx context.Context, report *domain.RunReport) (string, error) {
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode run report: %w", err)
	}

	key := ObjectKey(report)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload run report: %w", err)
	}
	return key, nil
}

type noopArchiver struct{}

func (noopArchiver) Store(context.Context, *domain.RunReport) (string, error) {
	return "", nil
}
