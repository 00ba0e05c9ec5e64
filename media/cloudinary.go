// Package media stores uploaded files with an external provider and
// releases them again. Cloudinary is the default provider; MinIO serves
// S3-compatible deployments.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"tubeline/config"
	"tubeline/models"
)

var (
	// ErrEmptyFile is returned when an upload carries no reader.
	ErrEmptyFile = errors.New("media: empty file")
	// ErrUnknownRef is returned when a stored reference cannot be mapped
	// back to a provider object.
	ErrUnknownRef = errors.New("media: unknown reference")
)

type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cfg config.MediaConfig) (*Cloudinary, error) {
	const op = "media/NewCloudinary"

	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Cloudinary{cld: cld, folder: cfg.Folder}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, kind models.MediaKind, f models.File) (*models.MediaRef, error) {
	const op = "media/Cloudinary.Upload"

	if f.Reader == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFile)
	}

	params := uploader.UploadParams{
		Folder:       path.Join(c.folder, string(kind)+"s"),
		ResourceType: string(kind),
	}

	res, err := c.cld.Upload.Upload(ctx, f.Reader, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("%s: %s", op, res.Error.Message)
	}

	return &models.MediaRef{
		URL:          res.URL,
		SecureURL:    res.SecureURL,
		PublicID:     res.PublicID,
		ResourceType: res.ResourceType,
		Format:       res.Format,
		Bytes:        res.Bytes,
		Width:        res.Width,
		Height:       res.Height,
	}, nil
}

// DestroyByPublicID removes an asset by its provider id.
func (c *Cloudinary) DestroyByPublicID(ctx context.Context, publicID string, kind models.MediaKind) error {
	const op = "media/Cloudinary.DestroyByPublicID"

	if publicID == "" {
		return fmt.Errorf("%s: %w", op, ErrUnknownRef)
	}

	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: string(kind),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("%s: %s", op, res.Error.Message)
	}

	return nil
}

// DestroyByRef removes the asset a stored reference points at. When only a
// URL was kept, the public id and resource type are recovered from it.
func (c *Cloudinary) DestroyByRef(ctx context.Context, ref models.MediaRef) error {
	publicID, kind := ref.PublicID, models.MediaKind(ref.ResourceType)
	if publicID == "" {
		var ok bool
		publicID, kind, ok = publicIDFromURL(ref.Link())
		if !ok {
			return fmt.Errorf("media/Cloudinary.DestroyByRef: %w", ErrUnknownRef)
		}
	}
	if kind == "" {
		kind = models.MediaImage
	}

	return c.DestroyByPublicID(ctx, publicID, kind)
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// publicIDFromURL parses a delivery URL such as
// https://res.cloudinary.com/<cloud>/video/upload/v1700000000/tubeline/videos/abc.mp4
// into ("tubeline/videos/abc", "video").
func publicIDFromURL(raw string) (string, models.MediaKind, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	at := -1
	for i, p := range parts {
		if p == "upload" {
			at = i
			break
		}
	}
	if at < 1 || at == len(parts)-1 {
		return "", "", false
	}

	kind := models.MediaKind(parts[at-1])
	rest := parts[at+1:]
	if len(rest) > 1 && versionSegment.MatchString(rest[0]) {
		rest = rest[1:]
	}

	id := strings.Join(rest, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if id == "" {
		return "", "", false
	}

	return id, kind, true
}
