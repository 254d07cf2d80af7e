// Package ogg implements the subset of the Ogg container format needed
// to read and rewrite the Vorbis comment header in place.
//
// An Ogg file is a sequence of pages. Each page carries a 27-byte
// header, a segment (lacing) table and a payload; logical packets are
// laced across segments and may continue over page boundaries. For a
// Vorbis stream the first three packets are the identification header,
// the comment header and the setup header, and the Vorbis I spec
// guarantees the headers end on a page boundary before audio begins.
//
// Parse splits a file into the identification page, the comment and
// setup packets, and the untouched audio pages. SetComments replaces
// the comment list; WriteTo re-paginates the header packets, renumbers
// the audio pages and recomputes every affected page checksum:
//
//	f, err := ogg.Parse(r)
//	if err != nil { ... }
//	f.SetComments([]string{"TITLE=Come Together"})
//	_, err = f.WriteTo(w)
//
// Page checksums use the Ogg variant of CRC-32 (polynomial 0x04C11DB7,
// no bit reflection, zero initial value), which the standard library
// checksum packages cannot produce.
package ogg
