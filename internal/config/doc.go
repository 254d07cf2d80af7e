// Package config provides configuration management for Metagify.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Gating of remote lookup features
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Cover art bounded to 500px
//	// Remote lookup disabled until a contact email is set
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.ContactEmail = "user@example.com"
//	err := settings.Save("/path/to/config.json")
//
// # Remote Feature Gating
//
// The release database's terms of use require an identified client, so
// remote lookup and cover art download stay disabled while
// ContactEmail is empty. Local tag editing never needs it:
//
//	if settings.RemoteEnabled() { ... }
package config
