package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/designsync-api/database"
	"github.com/designsync-api/lib/cache"
	"github.com/designsync-api/lib/storage"
	"github.com/designsync-api/models"
)

// setupTestDB points database.DB at a fresh SQLite file and restores globals afterwards
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "designsync.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prevDB, prevStore, prevCache := database.DB, storage.Store, cache.Default
	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		database.DB, storage.Store, cache.Default = prevDB, prevStore, prevCache
	})
}

type memoryStore struct {
	mu       sync.Mutex
	uploads  []storage.UploadInput
	deleted  []string
	failOn   map[string]bool
	pingErr  error
	deleteFn func(string) error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{failOn: map[string]bool{}}
}

func (m *memoryStore) Name() string { return "memory" }

func (m *memoryStore) Upload(ctx context.Context, in storage.UploadInput) (storage.UploadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn[string(in.Data)] {
		return storage.UploadResult{}, errors.New("upload rejected")
	}
	m.uploads = append(m.uploads, in)
	key := storage.ObjectKey(in.Folder, in.FileName)
	return storage.UploadResult{URL: "https://cdn.test/" + key, PublicID: key}, nil
}

func (m *memoryStore) Delete(ctx context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteFn != nil {
		if err := m.deleteFn(publicID); err != nil {
			return err
		}
	}
	m.deleted = append(m.deleted, publicID)
	return nil
}

func (m *memoryStore) Ping(ctx context.Context) error { return m.pingErr }

type memoryCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	deletes []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.items, key)
		m.deletes = append(m.deletes, key)
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func createUser(t *testing.T, email string, role models.Role) models.User {
	t.Helper()
	name := "user-" + email
	user := models.User{Email: email, Password: "x", Name: &name, Role: role}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return user
}

func createProject(t *testing.T, ownerID, name string, createdAt time.Time) models.Project {
	t.Helper()
	project := models.Project{
		UserID:    ownerID,
		Name:      name,
		Platform:  models.PlatformWeb,
		Category:  "commerce",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return project
}

// imageFile builds a multipart file header the way gin hands them to handlers.
// An empty contentType leaves the part without a Content-Type header.
func imageFile(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="images"; filename="`+name+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	part.Write(data)
	w.Close()

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return req.MultipartForm.File["images"][0]
}
