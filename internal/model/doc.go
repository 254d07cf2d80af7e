// Package model defines the core data structures shared by the
// Metagify tag-editing engine.
//
// # Fields
//
// Field enumerates the canonical tag fields every supported container
// maps onto. Values holds one string per canonical field:
//
//	v := model.Values{model.FieldTitle: "Come Together"}
//	fmt.Println(v.Get(model.FieldTitle))
//
// # Edits
//
// Edits describes a pending write: the values to apply, the edit mode
// (single-file or batch) and, in batch mode, which fields are included:
//
//	e := model.Edits{
//	    Mode:    model.ModeBatch,
//	    Values:  model.Values{model.FieldAlbum: "Abbey Road"},
//	    Include: model.FieldSet{model.FieldAlbum: true},
//	}
//
// # Cover
//
// CoverChange describes what happens to embedded artwork during a
// save: keep it, replace it wholly, or remove every embedded picture.
package model
