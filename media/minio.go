package media

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tubeline/config"
	"tubeline/models"
)

// MinIO keeps uploads in one S3 bucket under <folder>/<kind>s/<uuid><ext>.
// The object key doubles as the public id.
type MinIO struct {
	client     *mclient.Client
	bucket     string
	folder     string
	publicBase string
}

// NewMinIO connects and fails fast when the bucket is missing.
func NewMinIO(ctx context.Context, cfg config.MediaConfig) (*MinIO, error) {
	const op = "media/NewMinIO"

	endpoint := cfg.S3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.S3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.S3.Bucket)
	}

	base := cfg.S3.PublicBaseURL
	if base == "" {
		scheme := "http"
		if secure {
			scheme = "https"
		}
		base = scheme + "://" + endpoint + "/" + cfg.S3.Bucket
	}

	return &MinIO{
		client:     client,
		bucket:     cfg.S3.Bucket,
		folder:     cfg.Folder,
		publicBase: strings.TrimRight(base, "/"),
	}, nil
}

func (m *MinIO) Upload(ctx context.Context, kind models.MediaKind, f models.File) (*models.MediaRef, error) {
	const op = "media/MinIO.Upload"

	if f.Reader == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFile)
	}

	ext := strings.ToLower(path.Ext(f.Filename))
	key := path.Join(m.folder, string(kind)+"s", uuid.NewString()+ext)

	size := f.Size
	if size <= 0 {
		size = -1
	}

	info, err := m.client.PutObject(ctx, m.bucket, key, f.Reader, size, mclient.PutObjectOptions{
		ContentType: f.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	link := m.publicBase + "/" + key

	return &models.MediaRef{
		URL:          link,
		SecureURL:    link,
		PublicID:     key,
		ResourceType: string(kind),
		Format:       strings.TrimPrefix(ext, "."),
		Bytes:        int(info.Size),
	}, nil
}

func (m *MinIO) DestroyByPublicID(ctx context.Context, publicID string, _ models.MediaKind) error {
	const op = "media/MinIO.DestroyByPublicID"

	if publicID == "" {
		return fmt.Errorf("%s: %w", op, ErrUnknownRef)
	}

	if err := m.client.RemoveObject(ctx, m.bucket, publicID, mclient.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *MinIO) DestroyByRef(ctx context.Context, ref models.MediaRef) error {
	key := ref.PublicID
	if key == "" {
		var ok bool
		key, ok = m.keyFromURL(ref.Link())
		if !ok {
			return fmt.Errorf("media/MinIO.DestroyByRef: %w", ErrUnknownRef)
		}
	}

	return m.DestroyByPublicID(ctx, key, models.MediaKind(ref.ResourceType))
}

func (m *MinIO) keyFromURL(link string) (string, bool) {
	prefix := m.publicBase + "/"
	if !strings.HasPrefix(link, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(link, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}

	return key, key != ""
}
