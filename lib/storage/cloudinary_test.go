package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestCloudinary(t *testing.T, handler http.HandlerFunc) *CloudinaryStore {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := newCloudinaryStore("demo", "key", "secret", "designsync", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store
}

func TestCloudinaryUpload(t *testing.T) {
	store := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/demo/image/upload") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if got := r.FormValue("folder"); got != "designsync/projects/p1" {
			t.Errorf("expected prefixed folder, got %s", got)
		}
		if got := r.FormValue("public_id"); got != "a" {
			t.Errorf("expected public id without extension, got %s", got)
		}
		if r.FormValue("signature") == "" || r.FormValue("api_key") != "key" {
			t.Error("expected signed request")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/a.png","public_id":"designsync/projects/p1/a"}`)
	})

	res, err := store.Upload(context.Background(), UploadInput{Folder: "projects/p1", FileName: "a.png", Data: []byte("png")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.URL != "https://res.cloudinary.com/demo/a.png" || res.PublicID != "designsync/projects/p1/a" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestCloudinaryUploadError(t *testing.T) {
	store := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Invalid Signature"}}`)
	})

	if _, err := store.Upload(context.Background(), UploadInput{FileName: "a.png", Data: []byte("png")}); err == nil {
		t.Error("expected upload error")
	}
}

func TestCloudinaryDeleteAndPing(t *testing.T) {
	store := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/demo/image/destroy"):
			// urlencoded bodies are parsed before ParseMultipartForm reports ErrNotMultipart
			r.ParseMultipartForm(1 << 20)
			if r.FormValue("public_id") != "designsync/a" {
				t.Errorf("unexpected public id %s", r.FormValue("public_id"))
			}
			fmt.Fprint(w, `{"result":"ok"}`)
		case strings.HasSuffix(r.URL.Path, "/demo/ping"):
			fmt.Fprint(w, `{"status":"ok"}`)
		default:
			http.NotFound(w, r)
		}
	})

	if err := store.Delete(context.Background(), "designsync/a"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCloudinaryDeleteReportsFailure(t *testing.T) {
	store := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":"error"}`)
	})

	if err := store.Delete(context.Background(), "designsync/a"); err == nil {
		t.Error("expected destroy failure to be reported")
	}
}

func TestNewCloudinaryStoreRequiresCredentials(t *testing.T) {
	if _, err := NewCloudinaryStore("demo", "", "secret", ""); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCloudinaryFolderPrefix(t *testing.T) {
	store := &CloudinaryStore{Folder: "designsync"}
	tests := []struct{ in, want string }{
		{"", "designsync"},
		{"/projects/p1/", "designsync/projects/p1"},
	}
	for _, tt := range tests {
		if got := store.folderFor(tt.in); got != tt.want {
			t.Errorf("folderFor(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct{ folder, file, want string }{
		{"", "a.png", "a.png"},
		{"/projects/p1/", "a.png", "projects/p1/a.png"},
		{"projects/p1/designs/d1", "b.jpg", "projects/p1/designs/d1/b.jpg"},
	}
	for _, tt := range tests {
		if got := ObjectKey(tt.folder, tt.file); got != tt.want {
			t.Errorf("ObjectKey(%q, %q): expected %s, got %s", tt.folder, tt.file, tt.want, got)
		}
	}
}
