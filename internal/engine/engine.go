package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/Ivan-Ayub97/Metagify/internal/audio"
	"github.com/Ivan-Ayub97/Metagify/internal/config"
	ioutils "github.com/Ivan-Ayub97/Metagify/internal/io"
	"github.com/Ivan-Ayub97/Metagify/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update emitted while a batch runs.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// TrackCountMismatchError is returned by ApplyRelease when the number of
// selected files does not match the number of tracks on the release. No
// file is written when this error is returned.
type TrackCountMismatchError struct {
	Selected int
	Expected int
}

func (e *TrackCountMismatchError) Error() string {
	return fmt.Sprintf("selected %d files but the release has %d tracks", e.Selected, e.Expected)
}

// Engine applies metadata edits to batches of audio files.
type Engine struct {
	settings     *config.Settings
	imageService *ioutils.ImageService

	// openEditor is the seam used to open a file for tag editing. Tests
	// replace it with an in-memory implementation.
	openEditor func(path string) (audio.Editor, error)

	onProgress func(ProgressEvent)
}

// NewEngine creates an Engine using the given settings.
func NewEngine(settings *config.Settings, onProgress func(ProgressEvent)) *Engine {
	return &Engine{
		settings:     settings,
		imageService: ioutils.NewImageService(),
		openEditor:   audio.Open,
		onProgress:   onProgress,
	}
}

// SaveAll applies edits and an optional cover change to every file in the
// batch. Files are processed in order, one at a time. A failing file is
// recorded in the report and the batch continues with the next file.
//
// The report callback is invoked with (0, total) before any file is
// touched, and with (i+1, total) after each file completes, whether it
// succeeded or failed. Cancelling ctx stops the batch at the next file
// boundary; files already written stay written.
func (e *Engine) SaveAll(ctx context.Context, files []string, edits model.Edits, cover *model.CoverChange, report func(done, total int)) model.Report {
	result := model.Report{Total: len(files)}
	notify(report, 0, result.Total)

	for i, path := range files {
		if ctx.Err() != nil {
			e.progress(ProgressEvent{Message: "Stopped before processing remaining files", Level: LevelWarning})
			break
		}

		if err := e.applyToFile(path, edits, cover); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			e.progress(ProgressEvent{Message: fmt.Sprintf("Error saving %s: %v", filepath.Base(path), err), Level: LevelError})
		} else {
			result.Processed++
			e.progress(ProgressEvent{Message: fmt.Sprintf("Saved %s", filepath.Base(path)), Level: LevelVerbose})
		}

		notify(report, i+1, result.Total)
	}

	return result
}

// ApplyRelease writes the metadata of a reconciled release onto the files,
// pairing the nth file (by base name order) with the nth track. The raw
// cover art, if any, is resized once and embedded into every file.
//
// When the file count does not match the release track count, a
// TrackCountMismatchError is returned and nothing is written.
func (e *Engine) ApplyRelease(ctx context.Context, files []string, release *model.Release, art []byte, report func(done, total int)) (model.Report, error) {
	if len(files) != len(release.Tracks) {
		return model.Report{}, &TrackCountMismatchError{Selected: len(files), Expected: len(release.Tracks)}
	}

	ordered := make([]string, len(files))
	copy(ordered, files)
	sort.Slice(ordered, func(i, j int) bool {
		return filepath.Base(ordered[i]) < filepath.Base(ordered[j])
	})

	cover := e.prepareCover(ctx, art)
	total := release.TotalTracks()

	result := model.Report{Total: len(ordered)}
	notify(report, 0, result.Total)

	for i, path := range ordered {
		if ctx.Err() != nil {
			e.progress(ProgressEvent{Message: "Stopped before processing remaining files", Level: LevelWarning})
			break
		}

		track := release.Tracks[i]
		edits := releaseEdits(release, track, total)

		if err := e.applyToFile(path, edits, cover); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			e.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", filepath.Base(path), err), Level: LevelError})
		} else {
			result.Processed++
			e.progress(ProgressEvent{Message: fmt.Sprintf("Tagged %s as %q", filepath.Base(path), track.Title), Level: LevelVerbose})
		}

		notify(report, i+1, result.Total)
	}

	return result, nil
}

func (e *Engine) applyToFile(path string, edits model.Edits, cover *model.CoverChange) error {
	editor, err := e.openEditor(path)
	if err != nil {
		return err
	}
	defer editor.Close()

	audio.FromCanonical(editor, edits)

	if cover != nil {
		switch cover.Action {
		case model.CoverRemove:
			editor.WritePicture(nil, "")
		case model.CoverReplace:
			editor.WritePicture(cover.Data, cover.MIME)
		}
	}

	return editor.Save()
}

// prepareCover resizes the raw artwork once so every file in the batch
// embeds the same bytes. Returns nil when no artwork should be embedded.
func (e *Engine) prepareCover(ctx context.Context, art []byte) *model.CoverChange {
	if len(art) == 0 || !e.settings.EmbedCoverArt {
		return nil
	}

	resized, mime, err := e.imageService.ResizeToBound(ctx, art, e.settings.CoverArtMaxSize)
	if err != nil {
		e.progress(ProgressEvent{Message: fmt.Sprintf("Error preparing cover art: %v", err), Level: LevelWarning})
		return nil
	}

	return &model.CoverChange{Action: model.CoverReplace, Data: resized, MIME: mime}
}

// releaseEdits derives the per-file edits from a release track. Only
// fields with a value are flagged, so everything else on the file is left
// untouched.
func releaseEdits(release *model.Release, track model.ReleaseTrack, totalTracks int) model.Edits {
	artist := track.ArtistCredit
	if artist == "" {
		artist = release.ArtistCredit
	}

	values := model.Values{
		model.FieldTitle:       track.Title,
		model.FieldArtist:      artist,
		model.FieldAlbumArtist: release.ArtistCredit,
		model.FieldAlbum:       release.Title,
		model.FieldYear:        release.Year(),
		model.FieldTrackNumber: fmt.Sprintf("%d/%d", track.Position, totalTracks),
	}
	if release.CatalogNumber != "" {
		values[model.FieldCatalogNumber] = release.CatalogNumber
	}

	include := model.FieldSet{}
	for field, value := range values {
		if value != "" {
			include[field] = true
		}
	}

	return model.Edits{Mode: model.ModeBatch, Values: values, Include: include}
}

func (e *Engine) progress(event ProgressEvent) {
	if e.onProgress != nil {
		e.onProgress(event)
	}
}

func notify(report func(done, total int), done, total int) {
	if report != nil {
		report(done, total)
	}
}
