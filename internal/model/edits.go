package model

// EditMode selects how Values are applied to a file.
type EditMode int

const (
	// ModeSingle applies every canonical field: a blank value removes
	// the corresponding native key. Used when editing one file whose
	// full field set is shown to the user.
	ModeSingle EditMode = iota

	// ModeBatch applies only the fields flagged in Edits.Include,
	// leaving every other field untouched. A blank value on an
	// included field still removes the key.
	ModeBatch
)

// Edits describes a pending metadata write.
type Edits struct {
	// Mode selects single-file or batch application semantics.
	Mode EditMode

	// Values are the canonical field values to apply.
	Values Values

	// Include flags the participating fields in ModeBatch.
	// Ignored in ModeSingle.
	Include FieldSet
}

// CoverAction selects what happens to embedded artwork during a save.
type CoverAction int

const (
	// CoverKeep leaves embedded artwork untouched.
	CoverKeep CoverAction = iota

	// CoverReplace removes all embedded pictures and embeds the
	// supplied image as the single front cover.
	CoverReplace

	// CoverRemove deletes every embedded picture.
	CoverRemove
)

// CoverChange pairs a CoverAction with the image it applies.
//
// Data and MIME are only consulted for CoverReplace.
type CoverChange struct {
	Action CoverAction
	Data   []byte
	MIME   string
}

// Report summarises one batch operation.
type Report struct {
	// Processed is the number of files saved successfully.
	Processed int

	// Total is the number of files the batch set out to process.
	// Processed < Total when files failed or the batch was stopped.
	Total int

	// Errors holds one "<basename>: <message>" entry per failed file,
	// in processing order.
	Errors []string
}

// Summary is a read-only snapshot of one file's tags, used to populate
// file listings without opening a writable editor per file.
type Summary struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Year     string
	HasCover bool
}
