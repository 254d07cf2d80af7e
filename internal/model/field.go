package model

// Field identifies one canonical tag field.
//
// Every supported container (MP3, FLAC, M4A, OGG) maps each Field to a
// container-native key, so code above the format adapters only ever
// speaks in these names.
type Field string

const (
	FieldTitle         Field = "title"
	FieldArtist        Field = "artist"
	FieldAlbum         Field = "album"
	FieldAlbumArtist   Field = "albumartist"
	FieldYear          Field = "year"
	FieldGenre         Field = "genre"
	FieldTrackNumber   Field = "tracknumber"
	FieldComposer      Field = "composer"
	FieldProducer      Field = "producer"
	FieldCopyright     Field = "copyright"
	FieldComment       Field = "comment"
	FieldBPM           Field = "bpm"
	FieldISRC          Field = "isrc"
	FieldCatalogNumber Field = "catalognumber"
)

// AllFields returns every canonical field in display order.
//
// The order matches the editing form: identity fields first, then
// credits, then cataloguing fields.
func AllFields() []Field {
	return []Field{
		FieldTitle,
		FieldArtist,
		FieldAlbum,
		FieldAlbumArtist,
		FieldYear,
		FieldGenre,
		FieldTrackNumber,
		FieldComposer,
		FieldProducer,
		FieldCopyright,
		FieldComment,
		FieldBPM,
		FieldISRC,
		FieldCatalogNumber,
	}
}

// Values holds one string value per canonical field.
//
// A missing key and an empty string are equivalent: both mean the
// field is absent (on read) or should be removed (on write).
type Values map[Field]string

// Get returns the value for f, or "" when absent.
func (v Values) Get(f Field) string {
	return v[f]
}

// Set stores value under f. Storing "" is allowed and means "remove
// this field" when the values are written back.
func (v Values) Set(f Field, value string) {
	v[f] = value
}

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for f, s := range v {
		out[f] = s
	}
	return out
}

// FieldSet marks a subset of canonical fields, used by batch edits to
// flag which fields participate in the write.
type FieldSet map[Field]bool

// Has reports whether f is flagged.
func (s FieldSet) Has(f Field) bool {
	return s[f]
}
