// Package cloudinary stores product images. The admin panel uploads here and
// saves the returned secure URL on the product document.
package cloudinary

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

//go:generate mockgen -source=cloudinary_service.go -destination=../mock/cloudinary/cloudinary_service_mock.go -package=mock
type Service interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type service struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewService(cloudName, apiKey, apiSecret, folder string) (Service, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &service{
		cld:    cld,
		folder: folder,
	}, nil
}

// UploadImage stores the image under a fresh public ID so re-uploading a file
// with the same name never clobbers an image still referenced by a product.
func (s *service) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	publicID := uuid.NewString()
	if base := strings.TrimSuffix(path.Base(filename), path.Ext(filename)); base != "" {
		publicID = base + "-" + publicID
	}

	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder,
		PublicID:       publicID,
		ResourceType:   "image",
		Transformation: "c_fill,w_800,h_800,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return res.SecureURL, nil
}

func (s *service) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// ExtractPublicID recovers the public ID (folder included) from a Cloudinary
// delivery URL, e.g. .../image/upload/v123/giftstore/mug-abc.jpg ->
// giftstore/mug-abc. Returns "" for URLs that don't look like Cloudinary's.
func ExtractPublicID(url string) string {
	const marker = "/upload/"
	i := strings.Index(url, marker)
	if i < 0 {
		return ""
	}

	rest := strings.TrimPrefix(url[i+len(marker):], "v")
	if j := strings.IndexByte(rest, '/'); j >= 0 && isDigits(rest[:j]) {
		rest = rest[j+1:]
	}

	return strings.TrimSuffix(rest, path.Ext(rest))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
