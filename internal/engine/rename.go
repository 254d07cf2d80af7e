package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ivan-Ayub97/Metagify/internal/audio"
	ioutils "github.com/Ivan-Ayub97/Metagify/internal/io"
	"github.com/Ivan-Ayub97/Metagify/internal/model"
)

// RenameByPattern renames each file according to a pattern expanded from
// its tags. Supported placeholders: %artist%, %title%, %album%, %track%,
// %year%. The extension is preserved and the result is sanitized for the
// filesystem.
//
// A file whose target name already exists, or collides with another file
// in the same batch, is skipped and recorded in the report.
func (e *Engine) RenameByPattern(files []string, pattern string) model.Report {
	result := model.Report{Total: len(files)}
	claimed := make(map[string]bool, len(files))

	for _, path := range files {
		target, err := e.renameTarget(path, pattern)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			continue
		}
		if target == path {
			result.Processed++
			continue
		}

		if claimed[target] {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: another file in the batch renames to %q", filepath.Base(path), filepath.Base(target)))
			continue
		}
		if _, err := os.Stat(target); err == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %q already exists", filepath.Base(path), filepath.Base(target)))
			continue
		}

		if err := os.Rename(path, target); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			continue
		}

		claimed[target] = true
		result.Processed++
		e.progress(ProgressEvent{Message: fmt.Sprintf("Renamed %s to %s", filepath.Base(path), filepath.Base(target)), Level: LevelVerbose})
	}

	return result
}

func (e *Engine) renameTarget(path, pattern string) (string, error) {
	editor, err := e.openEditor(path)
	if err != nil {
		return "", err
	}
	defer editor.Close()

	name := ExpandPattern(pattern, audio.ToCanonical(editor))
	name = ioutils.SanitizeFileName(name)
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("pattern %q expands to an empty name", pattern)
	}

	return filepath.Join(filepath.Dir(path), name+filepath.Ext(path)), nil
}

// ExpandPattern substitutes the tag placeholders in pattern with the
// corresponding values. The track placeholder uses only the track's own
// number, not the "n/total" pair.
func ExpandPattern(pattern string, values model.Values) string {
	track := values.Get(model.FieldTrackNumber)
	if n, _, ok := strings.Cut(track, "/"); ok {
		track = n
	}

	replacer := strings.NewReplacer(
		"%artist%", values.Get(model.FieldArtist),
		"%title%", values.Get(model.FieldTitle),
		"%album%", values.Get(model.FieldAlbum),
		"%track%", track,
		"%year%", values.Get(model.FieldYear),
	)
	return replacer.Replace(pattern)
}
