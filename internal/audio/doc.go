// Package audio reads and writes tag metadata for the supported audio
// containers: MP3 (ID3v2), FLAC, M4A (MP4 atoms) and Ogg Vorbis.
//
// # Editors
//
// Open selects a format editor from the file extension and parses the
// file's complete tag state into memory:
//
//	e, err := audio.Open("/music/01 Come Together.mp3")
//	if err != nil { ... }
//	e.WriteScalar("TIT2", "Come Together")
//	err = e.Save()
//
// Editors speak container-native keys (ID3 frame IDs, Vorbis field
// names, MP4 atom names). Code above this package uses canonical
// fields and converts through the normalizer:
//
//	values := audio.ToCanonical(e)
//	audio.FromCanonical(e, edits)
//
// Writing an empty value removes the native key. WritePicture replaces
// all embedded artwork with a single front cover; passing nil data
// deletes every embedded picture.
//
// # Summaries
//
// Summarize produces a read-only snapshot for file listings without
// constructing a writable editor:
//
//	s, err := audio.Summarize(path)
package audio
