package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/casaluna/hotel/api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(
		config.SupabaseConfig{URL: srv.URL, ServiceKey: "service-key"},
		config.StorageConfig{Bucket: "hotel-assets"},
	)
	return client, srv
}

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	})

	url, err := client.Upload(context.Background(), "gallery", "sunset.jpg", "image/jpeg", strings.NewReader("fake-bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if !strings.HasPrefix(gotPath, "/storage/v1/object/hotel-assets/gallery/") {
		t.Errorf("upload path = %q, want /storage/v1/object/hotel-assets/gallery/...", gotPath)
	}
	if !strings.HasSuffix(gotPath, ".jpg") {
		t.Errorf("upload path = %q, want .jpg suffix", gotPath)
	}
	if gotAuth != "Bearer service-key" {
		t.Errorf("Authorization = %q, want Bearer service-key", gotAuth)
	}
	if gotContentType != "image/jpeg" {
		t.Errorf("Content-Type = %q, want image/jpeg", gotContentType)
	}
	if !strings.Contains(url, "/storage/v1/object/public/hotel-assets/gallery/") {
		t.Errorf("public URL = %q, want public object URL", url)
	}
}

func TestUploadServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	})

	_, err := client.Upload(context.Background(), "menu", "dish.png", "image/png", strings.NewReader("x"))
	if !errors.Is(err, ErrUpload) {
		t.Fatalf("Upload() error = %v, want ErrUpload", err)
	}
}

func TestDeleteByPublicURL(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	})

	publicURL := client.PublicURL("gallery/abc.jpg")
	if err := client.Delete(context.Background(), publicURL); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q, want DELETE", gotMethod)
	}
	if gotPath != "/storage/v1/object/hotel-assets/gallery/abc.jpg" {
		t.Errorf("delete path = %q", gotPath)
	}
}

func TestCompensateSwallowsErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	// Must not panic or propagate; the write error owns the response.
	client.Compensate(context.Background(), "gallery/abc.jpg")
	client.Compensate(context.Background(), "")
}
