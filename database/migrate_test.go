package database

import (
	"path/filepath"
	"testing"

	"github.com/designsync-api/models"
)

func newTestConnection(t *testing.T, name string) *DBConnection {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), name+".db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return &DBConnection{DB: db, Name: name}
}

func TestMigrateDataBetweenDatabases(t *testing.T) {
	source := newTestConnection(t, "source")
	target := newTestConnection(t, "target")

	user := models.User{Email: "owner@example.com", Password: "hash"}
	source.DB.Create(&user)
	project := models.Project{UserID: user.ID, Name: "Shop", Platform: models.PlatformWeb, Category: "commerce"}
	source.DB.Create(&project)
	deleted := models.Project{UserID: user.ID, Name: "Old", Platform: models.PlatformApp, Category: "travel"}
	source.DB.Create(&deleted)
	source.DB.Delete(&deleted)
	design := models.Design{ProjectID: project.ID, Name: "Checkout"}
	source.DB.Create(&design)
	source.DB.Create(&models.DesignImage{DesignID: design.ID, ImageURL: "https://cdn.test/a.png"})

	if err := MigrateDataBetweenDatabases(source, target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var projects int64
	target.DB.Unscoped().Model(&models.Project{}).Count(&projects)
	if projects != 2 {
		t.Errorf("expected 2 projects including soft-deleted, got %d", projects)
	}

	var copied models.Project
	if err := target.DB.First(&copied, "id = ?", project.ID).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if copied.Name != "Shop" {
		t.Errorf("expected Shop, got %s", copied.Name)
	}

	var images int64
	target.DB.Model(&models.DesignImage{}).Count(&images)
	if images != 1 {
		t.Errorf("expected 1 image, got %d", images)
	}
}

func TestDialector(t *testing.T) {
	if name := Dialector("sqlite:///tmp/dev.db").Name(); name != "sqlite" {
		t.Errorf("expected sqlite, got %s", name)
	}
	if name := Dialector("postgres://localhost/designsync").Name(); name != "postgres" {
		t.Errorf("expected postgres, got %s", name)
	}
}
