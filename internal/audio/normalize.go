package audio

import "github.com/Ivan-Ayub97/Metagify/internal/model"

// nativeKeys maps every canonical field to its container-native key,
// per format. The tables mirror what mainstream taggers write, so
// files edited here stay legible to other tools.
var nativeKeys = map[Format]map[model.Field]string{
	FormatMP3: {
		model.FieldTitle:         "TIT2",
		model.FieldArtist:        "TPE1",
		model.FieldAlbum:         "TALB",
		model.FieldAlbumArtist:   "TPE2",
		model.FieldYear:          "TDRC",
		model.FieldGenre:         "TCON",
		model.FieldTrackNumber:   "TRCK",
		model.FieldComposer:      "TCOM",
		model.FieldProducer:      "TXXX:PRODUCER",
		model.FieldCopyright:     "TCOP",
		model.FieldComment:       "COMM",
		model.FieldBPM:           "TBPM",
		model.FieldISRC:          "TSRC",
		model.FieldCatalogNumber: "TXXX:CATALOGNUMBER",
	},
	FormatFLAC: vorbisKeys,
	FormatOGG:  vorbisKeys,
	FormatM4A: {
		model.FieldTitle:         "©nam",
		model.FieldArtist:        "©ART",
		model.FieldAlbum:         "©alb",
		model.FieldAlbumArtist:   "aART",
		model.FieldYear:          "©day",
		model.FieldGenre:         "©gen",
		model.FieldTrackNumber:   "trkn",
		model.FieldComposer:      "©wrt",
		model.FieldProducer:      "----:PRODUCER",
		model.FieldCopyright:     "cprt",
		model.FieldComment:       "©cmt",
		model.FieldBPM:           "----:BPM",
		model.FieldISRC:          "----:ISRC",
		model.FieldCatalogNumber: "----:CATALOGNUMBER",
	},
}

// FLAC and Ogg Vorbis share one field vocabulary.
var vorbisKeys = map[model.Field]string{
	model.FieldTitle:         "TITLE",
	model.FieldArtist:        "ARTIST",
	model.FieldAlbum:         "ALBUM",
	model.FieldAlbumArtist:   "ALBUMARTIST",
	model.FieldYear:          "DATE",
	model.FieldGenre:         "GENRE",
	model.FieldTrackNumber:   "TRACKNUMBER",
	model.FieldComposer:      "COMPOSER",
	model.FieldProducer:      "PRODUCER",
	model.FieldCopyright:     "COPYRIGHT",
	model.FieldComment:       "COMMENT",
	model.FieldBPM:           "BPM",
	model.FieldISRC:          "ISRC",
	model.FieldCatalogNumber: "CATALOGNUMBER",
}

// NativeKey returns the container-native key for a canonical field.
func NativeKey(format Format, field model.Field) string {
	return nativeKeys[format][field]
}

// ToCanonical reads every canonical field from the editor. Fields the
// file does not carry come back as empty strings.
func ToCanonical(e Editor) model.Values {
	values := make(model.Values, len(model.AllFields()))
	keys := nativeKeys[e.Format()]
	for _, field := range model.AllFields() {
		values[field] = e.ReadScalar(keys[field])
	}
	return values
}

// FromCanonical applies edits to the editor.
//
// In ModeSingle every canonical field is written: blank values remove
// the native key. In ModeBatch only the fields flagged in
// edits.Include are written; everything else stays untouched.
func FromCanonical(e Editor, edits model.Edits) {
	keys := nativeKeys[e.Format()]
	for _, field := range model.AllFields() {
		if edits.Mode == model.ModeBatch && !edits.Include.Has(field) {
			continue
		}
		e.WriteScalar(keys[field], edits.Values.Get(field))
	}
}
