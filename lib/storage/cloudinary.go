package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"
)

// CloudinaryStore uploads images through the Cloudinary SDK
type CloudinaryStore struct {
	Folder string
	cld    *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a Cloudinary backend from account credentials
func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	return newCloudinaryStore(cloudName, apiKey, apiSecret, folder, "")
}

// newCloudinaryStore builds the SDK client; a non-empty apiBase replaces the default API host
func newCloudinaryStore(cloudName, apiKey, apiSecret, folder, apiBase string) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("%w: CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required", ErrNotConfigured)
	}

	cfg, err := cldconfig.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("invalid cloudinary configuration: %w", err)
	}
	if apiBase != "" {
		cfg.API.UploadPrefix = strings.TrimRight(apiBase, "/")
	}

	cld, err := cloudinary.NewFromConfiguration(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &CloudinaryStore{Folder: strings.Trim(folder, "/"), cld: cld}, nil
}

func (c *CloudinaryStore) Name() string { return "cloudinary" }

func (c *CloudinaryStore) folderFor(folder string) string {
	folder = strings.Trim(folder, "/")
	if c.Folder == "" {
		return folder
	}
	if folder == "" {
		return c.Folder
	}
	return c.Folder + "/" + folder
}

// Upload stores the image under the configured folder, named after the file without its extension
func (c *CloudinaryStore) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	res, err := c.cld.Upload.Upload(ctx, bytes.NewReader(in.Data), uploader.UploadParams{
		Folder:     c.folderFor(in.Folder),
		PublicID:   strings.TrimSuffix(in.FileName, path.Ext(in.FileName)),
		Overwrite:  api.Bool(true),
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if res.Error.Message != "" {
		return UploadResult{}, fmt.Errorf("cloudinary error: %s", res.Error.Message)
	}

	secureURL := res.SecureURL
	if secureURL == "" {
		secureURL = res.URL
	}
	if secureURL == "" {
		return UploadResult{}, fmt.Errorf("cloudinary upload returned no URL")
	}
	return UploadResult{URL: secureURL, PublicID: res.PublicID}, nil
}

// Delete destroys the image with the given public id. An already missing image is not an error.
func (c *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary error: %s", res.Error.Message)
	}
	if res.Result != "" && res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy returned %q", res.Result)
	}
	return nil
}

// Ping calls the admin ping endpoint
func (c *CloudinaryStore) Ping(ctx context.Context) error {
	res, err := c.cld.Admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("cloudinary ping failed: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary error: %s", res.Error.Message)
	}
	if res.Status != "ok" {
		return fmt.Errorf("cloudinary ping returned %q", res.Status)
	}
	return nil
}
