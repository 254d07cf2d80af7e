package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope", "settings.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	defaults := DefaultSettings()
	if settings.CoverArtMaxSize != defaults.CoverArtMaxSize {
		t.Errorf("CoverArtMaxSize = %d, want %d", settings.CoverArtMaxSize, defaults.CoverArtMaxSize)
	}
	if settings.RemoteEnabled() {
		t.Error("defaults should not enable remote features")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"contact_email":"user@example.com"}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if settings.ContactEmail != "user@example.com" {
		t.Errorf("ContactEmail = %q", settings.ContactEmail)
	}
	if !settings.RemoteEnabled() {
		t.Error("remote features should be enabled with a contact email")
	}
	// Fields absent from the file keep their defaults.
	if settings.SearchLimit != DefaultSettings().SearchLimit {
		t.Errorf("SearchLimit = %d, want default %d", settings.SearchLimit, DefaultSettings().SearchLimit)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")

	settings := DefaultSettings()
	settings.ContactEmail = "someone@example.org"
	settings.CoverArtMaxSize = 1000

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.ContactEmail != "someone@example.org" {
		t.Errorf("ContactEmail = %q", loaded.ContactEmail)
	}
	if loaded.CoverArtMaxSize != 1000 {
		t.Errorf("CoverArtMaxSize = %d, want 1000", loaded.CoverArtMaxSize)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted corrupt JSON")
	}
}
