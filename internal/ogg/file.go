package ogg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

var (
	identMagic   = []byte("\x01vorbis")
	commentMagic = []byte("\x03vorbis")
	setupMagic   = []byte("\x05vorbis")
)

// File is a parsed Ogg Vorbis stream with its comment header split out
// for editing. Audio pages are kept as raw bytes and never touched
// beyond sequence renumbering.
type File struct {
	identPage []byte
	serial    uint32
	vendor    string
	comments  []string
	setup     []byte
	audio     []*page
}

// Parse reads a complete Ogg Vorbis stream from r.
//
// It expects the layout the Vorbis I specification mandates: the
// identification header alone on the first page, the comment and setup
// headers on the following page(s), audio starting on a fresh page.
func Parse(r io.Reader) (*File, error) {
	first, err := readPage(r)
	if err != nil {
		return nil, fmt.Errorf("read first page: %w", err)
	}
	if first.headerType&flagBOS == 0 {
		return nil, fmt.Errorf("first page is not a stream start")
	}
	if !bytes.HasPrefix(first.data, identMagic) {
		return nil, fmt.Errorf("first packet is not a Vorbis identification header")
	}

	f := &File{
		identPage: first.raw,
		serial:    first.serial,
	}

	// Accumulate header pages until the comment and setup packets are
	// both complete. Lacing values below 255 terminate a packet.
	var packets [][]byte
	var current []byte
	midPacket := false

	for len(packets) < 2 {
		p, err := readPage(r)
		if err == io.EOF {
			return nil, fmt.Errorf("stream ends inside Vorbis headers")
		}
		if err != nil {
			return nil, fmt.Errorf("read header page: %w", err)
		}
		if p.serial != f.serial {
			return nil, fmt.Errorf("multiplexed streams are not supported")
		}
		if midPacket && p.headerType&flagContinued == 0 {
			return nil, fmt.Errorf("header packet truncated at page boundary")
		}

		offset := 0
		for _, lace := range p.segments {
			current = append(current, p.data[offset:offset+int(lace)]...)
			offset += int(lace)
			if lace < 255 {
				packets = append(packets, current)
				current = nil
			}
		}
		midPacket = len(current) > 0

		if len(packets) > 2 || (len(packets) == 2 && midPacket) {
			return nil, fmt.Errorf("audio data shares a page with Vorbis headers")
		}
	}

	if !bytes.HasPrefix(packets[0], commentMagic) {
		return nil, fmt.Errorf("second packet is not a Vorbis comment header")
	}
	if !bytes.HasPrefix(packets[1], setupMagic) {
		return nil, fmt.Errorf("third packet is not a Vorbis setup header")
	}

	f.vendor, f.comments, err = decodeComments(packets[0])
	if err != nil {
		return nil, err
	}
	f.setup = packets[1]

	for {
		p, err := readPage(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read audio page: %w", err)
		}
		f.audio = append(f.audio, p)
	}

	return f, nil
}

// Vendor returns the vendor string from the comment header.
func (f *File) Vendor() string {
	return f.vendor
}

// Comments returns the "KEY=value" comment entries in file order.
func (f *File) Comments() []string {
	out := make([]string, len(f.comments))
	copy(out, f.comments)
	return out
}

// SetComments replaces the comment list. The vendor string is kept.
func (f *File) SetComments(comments []string) {
	f.comments = make([]string, len(comments))
	copy(f.comments, comments)
}

// WriteTo writes the stream back out: the original identification
// page, freshly paginated comment and setup headers, then the audio
// pages renumbered to follow on.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	var written int64

	n, err := w.Write(f.identPage)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("write identification page: %w", err)
	}

	headerPages := paginate([][]byte{encodeComments(f.vendor, f.comments), f.setup}, f.serial, 1)
	for _, p := range headerPages {
		n, err := w.Write(p)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write header page: %w", err)
		}
	}

	sequence := uint32(1 + len(headerPages))
	for _, p := range f.audio {
		raw := p.raw
		if p.sequence != sequence {
			raw = renumber(raw, sequence)
		}
		n, err := w.Write(raw)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write audio page: %w", err)
		}
		sequence++
	}

	return written, nil
}

// decodeComments parses a Vorbis comment header packet.
func decodeComments(packet []byte) (vendor string, comments []string, err error) {
	buf := packet[len(commentMagic):]

	readString := func() (string, error) {
		if len(buf) < 4 {
			return "", fmt.Errorf("comment header truncated")
		}
		length := binary.LittleEndian.Uint32(buf[:4])
		buf = buf[4:]
		if uint32(len(buf)) < length {
			return "", fmt.Errorf("comment header truncated")
		}
		s := string(buf[:length])
		buf = buf[length:]
		return s, nil
	}

	vendor, err = readString()
	if err != nil {
		return "", nil, err
	}

	if len(buf) < 4 {
		return "", nil, fmt.Errorf("comment header truncated")
	}
	count := binary.LittleEndian.Uint32(buf[:4])
	buf = buf[4:]

	for i := uint32(0); i < count; i++ {
		c, err := readString()
		if err != nil {
			return "", nil, err
		}
		comments = append(comments, c)
	}

	if len(buf) < 1 || buf[0]&0x01 == 0 {
		return "", nil, fmt.Errorf("comment header missing framing bit")
	}

	return vendor, comments, nil
}

// encodeComments builds a Vorbis comment header packet.
func encodeComments(vendor string, comments []string) []byte {
	size := len(commentMagic) + 4 + len(vendor) + 4 + 1
	for _, c := range comments {
		size += 4 + len(c)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, commentMagic...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(vendor)))
	buf = append(buf, vendor...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(comments)))
	for _, c := range comments {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c)))
		buf = append(buf, c...)
	}
	buf = append(buf, 0x01)
	return buf
}
