package audio

import (
	"fmt"
	"strconv"
	"strings"

	mp4tag "github.com/Sorrow446/go-mp4tag"
)

// m4aEditor edits MP4 metadata atoms through go-mp4tag.
//
// Native keys are atom names (©nam, ©ART, aART, ...). Fields without a
// standard atom (producer, BPM, ISRC, catalog number) live in freeform
// atoms and use keys of the form "----:<NAME>". The track number atom
// holds a number/total pair, surfaced here as the "n/total" string.
type m4aEditor struct {
	path    string
	scalars map[string]string
	custom  map[string]string
	picData []byte
	picMIME string
}

func openM4A(path string) (*m4aEditor, error) {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return nil, unreadable(path, err)
	}
	defer mp4.Close()

	tags, err := mp4.Read()
	if err != nil {
		return nil, unreadable(path, err)
	}

	e := &m4aEditor{
		path:    path,
		scalars: make(map[string]string),
		custom:  make(map[string]string),
	}

	e.scalars["©nam"] = tags.Title
	e.scalars["©ART"] = tags.Artist
	e.scalars["©alb"] = tags.Album
	e.scalars["aART"] = tags.AlbumArtist
	e.scalars["©gen"] = tags.CustomGenre
	e.scalars["©wrt"] = tags.Composer
	e.scalars["cprt"] = tags.Copyright
	e.scalars["©cmt"] = tags.Comment

	e.scalars["©day"] = tags.Date
	if tags.Date == "" && tags.Year != 0 {
		e.scalars["©day"] = strconv.Itoa(int(tags.Year))
	}

	if tags.TrackNumber > 0 {
		track := strconv.Itoa(int(tags.TrackNumber))
		if tags.TrackTotal > 0 {
			track += "/" + strconv.Itoa(int(tags.TrackTotal))
		}
		e.scalars["trkn"] = track
	}

	for name, value := range tags.Custom {
		e.custom[strings.ToUpper(name)] = value
	}

	if len(tags.Pictures) > 0 && tags.Pictures[0] != nil {
		e.picData = tags.Pictures[0].Data
		e.picMIME = pictureMIME(e.picData)
	}

	return e, nil
}

func (e *m4aEditor) Path() string   { return e.path }
func (e *m4aEditor) Format() Format { return FormatM4A }

func (e *m4aEditor) ReadScalar(nativeKey string) string {
	if name, ok := freeformKey(nativeKey); ok {
		return e.custom[name]
	}
	return e.scalars[nativeKey]
}

func (e *m4aEditor) WriteScalar(nativeKey, value string) {
	if name, ok := freeformKey(nativeKey); ok {
		if value == "" {
			delete(e.custom, name)
		} else {
			e.custom[name] = value
		}
		return
	}

	if value == "" {
		delete(e.scalars, nativeKey)
	} else {
		e.scalars[nativeKey] = value
	}
}

func (e *m4aEditor) ReadPicture() ([]byte, string) {
	return e.picData, e.picMIME
}

func (e *m4aEditor) WritePicture(data []byte, mime string) {
	e.picData = data
	e.picMIME = mime
}

func (e *m4aEditor) Save() error {
	tags := &mp4tag.MP4Tags{
		Title:       e.scalars["©nam"],
		Artist:      e.scalars["©ART"],
		Album:       e.scalars["©alb"],
		AlbumArtist: e.scalars["aART"],
		CustomGenre: e.scalars["©gen"],
		Composer:    e.scalars["©wrt"],
		Copyright:   e.scalars["cprt"],
		Comment:     e.scalars["©cmt"],
		Date:        e.scalars["©day"],
		Custom:      make(map[string]string, len(e.custom)),
	}

	// The library only deletes atoms named on this list, and for
	// freeform and picture atoms only the all-at-once names work. Every
	// surviving custom value and the picture are re-written from the
	// in-memory state, so clearing them wholesale first keeps the file
	// free of stale or duplicated entries.
	deletes := []string{"allcustom", "allpictures"}
	for atom, field := range map[string]string{
		"©nam": "title",
		"©ART": "artist",
		"©alb": "album",
		"aART": "albumartist",
		"©gen": "customgenre",
		"©wrt": "composer",
		"cprt": "copyright",
		"©cmt": "comment",
		"©day": "date",
	} {
		if e.scalars[atom] == "" {
			deletes = append(deletes, field)
		}
	}

	if track := e.scalars["trkn"]; track != "" {
		number, total, err := splitTrackPair(track)
		if err != nil {
			return writeFailed(e.path, err)
		}
		tags.TrackNumber = number
		tags.TrackTotal = total
		if total == 0 {
			deletes = append(deletes, "tracktotal")
		}
	} else {
		deletes = append(deletes, "tracknumber", "tracktotal")
	}

	for name, value := range e.custom {
		tags.Custom[name] = value
	}

	if e.picData != nil {
		tags.Pictures = []*mp4tag.MP4Picture{{Data: e.picData}}
	}

	mp4, err := mp4tag.Open(e.path)
	if err != nil {
		return writeFailed(e.path, err)
	}
	defer mp4.Close()

	if err := mp4.Write(tags, deletes); err != nil {
		return writeFailed(e.path, err)
	}
	return nil
}

func (e *m4aEditor) Close() error { return nil }

// freeformKey splits a "----:<NAME>" native key.
func freeformKey(nativeKey string) (string, bool) {
	name, ok := strings.CutPrefix(nativeKey, "----:")
	return strings.ToUpper(name), ok
}

// splitTrackPair parses "n" or "n/total" into the MP4 pair.
func splitTrackPair(track string) (number, total int16, err error) {
	numberPart, totalPart, hasTotal := strings.Cut(track, "/")

	n, err := strconv.Atoi(strings.TrimSpace(numberPart))
	if err != nil {
		return 0, 0, fmt.Errorf("bad track number %q", track)
	}
	number = int16(n)

	if hasTotal {
		t, err := strconv.Atoi(strings.TrimSpace(totalPart))
		if err != nil {
			return 0, 0, fmt.Errorf("bad track total %q", track)
		}
		total = int16(t)
	}

	return number, total, nil
}
