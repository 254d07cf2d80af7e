package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	ioutils "github.com/Ivan-Ayub97/Metagify/internal/io"
)

// Settings holds all configuration options.
type Settings struct {
	// ContactEmail identifies the user to the release database, as its
	// terms of use require. Remote lookup and cover art download stay
	// disabled while this is empty; local tag editing never needs it.
	ContactEmail string `json:"contact_email"`

	// Cover art settings
	CoverArtMaxSize int  `json:"cover_art_max_size"`
	EmbedCoverArt   bool `json:"embed_cover_art"`

	// Remote lookup settings
	SearchLimit            int     `json:"search_limit"`
	RequestTimeoutSeconds  float64 `json:"request_timeout_seconds"`
	CoverArtTimeoutSeconds float64 `json:"cover_art_timeout_seconds"`

	// File loading
	MaxParallelReads int `json:"max_parallel_reads"`

	// Rename settings
	RenamePattern string `json:"rename_pattern"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ContactEmail: "",

		CoverArtMaxSize: 500,
		EmbedCoverArt:   true,

		SearchLimit:            25,
		RequestTimeoutSeconds:  30,
		CoverArtTimeoutSeconds: 15,

		MaxParallelReads: 4,

		RenamePattern: "%track% - %title%",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so the first
// run works without any setup.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RemoteEnabled reports whether remote lookup features may be used.
func (s *Settings) RemoteEnabled() bool {
	return s.ContactEmail != ""
}
