package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/casaluna/hotel/api/internal/config"
)

var (
	ErrUpload = errors.New("storage upload failed")
	ErrDelete = errors.New("storage delete failed")
)

// Client uploads and deletes objects in the managed storage bucket
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// NewClient creates a storage client for the configured bucket
func NewClient(supabase config.SupabaseConfig, storage config.StorageConfig) *Client {
	timeout := storage.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(supabase.URL, "/"),
		serviceKey: supabase.ServiceKey,
		bucket:     storage.Bucket,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Upload stores an object under a generated key inside the given folder and
// returns the object's public URL.
func (c *Client) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key := objectKey(folder, filename)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("%w: status %d: %s", ErrUpload, resp.StatusCode, msg)
	}

	return c.PublicURL(key), nil
}

// Delete removes an object by its key or public URL
func (c *Client) Delete(ctx context.Context, keyOrURL string) error {
	key := c.keyFromURL(keyOrURL)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelete, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelete, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%w: status %d: %s", ErrDelete, resp.StatusCode, msg)
	}
	return nil
}

// Compensate deletes an object after a failed database write. Failures are
// logged and swallowed: the original write error is what the caller reports.
func (c *Client) Compensate(ctx context.Context, keyOrURL string) {
	if keyOrURL == "" {
		return
	}
	if err := c.Delete(ctx, keyOrURL); err != nil {
		slog.Error("compensating storage delete failed, object orphaned",
			slog.String("object", keyOrURL),
			slog.String("error", err.Error()),
		)
	}
}

// PublicURL returns the public URL for an object key
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, key)
}

// keyFromURL strips the public-URL prefix if present, leaving the object key
func (c *Client) keyFromURL(keyOrURL string) string {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", c.baseURL, c.bucket)
	if after, ok := strings.CutPrefix(keyOrURL, prefix); ok {
		return after
	}
	return strings.TrimLeft(keyOrURL, "/")
}

// objectKey builds a collision-free key preserving the original extension
func objectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := uuid.NewString() + ext
	if folder == "" {
		return url.PathEscape(name)
	}
	return url.PathEscape(folder) + "/" + url.PathEscape(name)
}
