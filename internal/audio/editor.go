package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported audio container.
type Format string

const (
	FormatMP3  Format = "mp3"
	FormatFLAC Format = "flac"
	FormatM4A  Format = "m4a"
	FormatOGG  Format = "ogg"
)

var (
	// ErrUnsupportedFormat is returned for file extensions no editor
	// handles.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrUnreadable is returned when a file cannot be opened or its
	// tag state cannot be parsed.
	ErrUnreadable = errors.New("unreadable audio file")

	// ErrWriteFailed is returned when persisting tag changes fails.
	ErrWriteFailed = errors.New("tag write failed")
)

// Editor is the per-format tag editing surface.
//
// An Editor holds the file's complete tag state in memory. Scalar and
// picture writes mutate that state; nothing touches the file until
// Save, which persists in place.
type Editor interface {
	// Path returns the file this editor was opened on.
	Path() string

	// Format returns the container format.
	Format() Format

	// ReadScalar returns the value stored under the native key, or ""
	// when the key is absent.
	ReadScalar(nativeKey string) string

	// WriteScalar stores value under the native key. An empty value
	// removes the key entirely.
	WriteScalar(nativeKey, value string)

	// ReadPicture returns the first embedded picture and its MIME
	// type, or nil when the file has no artwork.
	ReadPicture() (data []byte, mime string)

	// WritePicture replaces all embedded pictures with a single front
	// cover. Passing nil data deletes every embedded picture.
	WritePicture(data []byte, mime string)

	// Save persists the in-memory tag state to the file in place.
	Save() error

	// Close releases the underlying file handle. Pending writes that
	// were not saved are discarded.
	Close() error
}

// FormatOf maps a file path to its container format by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return FormatMP3, nil
	case ".flac":
		return FormatFLAC, nil
	case ".m4a":
		return FormatM4A, nil
	case ".ogg":
		return FormatOGG, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Open parses the file at path and returns the editor for its format.
//
// Returns an error wrapping ErrUnsupportedFormat for unknown
// extensions and ErrUnreadable when the file cannot be parsed.
func Open(path string) (Editor, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatMP3:
		return openMP3(path)
	case FormatFLAC:
		return openFLAC(path)
	case FormatM4A:
		return openM4A(path)
	default:
		return openOGG(path)
	}
}

func unreadable(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUnreadable, filepath.Base(path), err)
}

func writeFailed(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrWriteFailed, filepath.Base(path), err)
}
