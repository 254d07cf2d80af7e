package ogg

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header type flags.
const (
	flagContinued = 0x01
	flagBOS       = 0x02
	flagEOS       = 0x04
)

const headerSize = 27

// page is one parsed Ogg page. Raw holds the complete on-disk bytes so
// untouched pages can be copied through verbatim.
type page struct {
	headerType byte
	granule    uint64
	serial     uint32
	sequence   uint32
	segments   []byte
	data       []byte
	raw        []byte
}

// readPage reads the next page from r. Returns io.EOF (unwrapped) when
// the reader is exhausted at a page boundary.
func readPage(r io.Reader) (*page, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read page header: %w", err)
	}

	if string(header[0:4]) != "OggS" {
		return nil, fmt.Errorf("missing OggS capture pattern")
	}
	if header[4] != 0 {
		return nil, fmt.Errorf("unsupported Ogg stream version %d", header[4])
	}

	p := &page{
		headerType: header[5],
		granule:    binary.LittleEndian.Uint64(header[6:14]),
		serial:     binary.LittleEndian.Uint32(header[14:18]),
		sequence:   binary.LittleEndian.Uint32(header[18:22]),
	}

	segmentCount := int(header[26])
	p.segments = make([]byte, segmentCount)
	if _, err := io.ReadFull(r, p.segments); err != nil {
		return nil, fmt.Errorf("read segment table: %w", err)
	}

	dataSize := 0
	for _, lace := range p.segments {
		dataSize += int(lace)
	}
	p.data = make([]byte, dataSize)
	if _, err := io.ReadFull(r, p.data); err != nil {
		return nil, fmt.Errorf("read page payload: %w", err)
	}

	p.raw = make([]byte, 0, headerSize+segmentCount+dataSize)
	p.raw = append(p.raw, header...)
	p.raw = append(p.raw, p.segments...)
	p.raw = append(p.raw, p.data...)

	return p, nil
}

// encodePage builds the on-disk bytes for one page, including the
// checksum.
func encodePage(headerType byte, granule uint64, serial, sequence uint32, segments, data []byte) []byte {
	buf := make([]byte, headerSize, headerSize+len(segments)+len(data))
	copy(buf[0:4], "OggS")
	buf[4] = 0
	buf[5] = headerType
	binary.LittleEndian.PutUint64(buf[6:14], granule)
	binary.LittleEndian.PutUint32(buf[14:18], serial)
	binary.LittleEndian.PutUint32(buf[18:22], sequence)
	// CRC (bytes 22-25) stays zero until the whole page is assembled.
	buf[26] = byte(len(segments))
	buf = append(buf, segments...)
	buf = append(buf, data...)

	binary.LittleEndian.PutUint32(buf[22:26], checksum(buf))
	return buf
}

// renumber rewrites the sequence number of a raw page and fixes its
// checksum. Used when re-pagination changes how many header pages
// precede the audio pages.
func renumber(raw []byte, sequence uint32) []byte {
	out := make([]byte, len(raw))
	copy(out, raw)
	binary.LittleEndian.PutUint32(out[18:22], sequence)
	binary.LittleEndian.PutUint32(out[22:26], 0)
	binary.LittleEndian.PutUint32(out[22:26], checksum(out))
	return out
}

// paginate lays the given packets out as a run of pages. Each packet
// contributes ceil(len/255) lacing values with a trailing short (or
// zero) value marking its end; pages are cut at 255 segments. A page
// that starts mid-packet carries the continued flag. Header pages have
// a zero granule position.
func paginate(packets [][]byte, serial uint32, startSequence uint32) [][]byte {
	var pages [][]byte

	var segments []byte
	var data []byte
	continued := false
	sequence := startSequence

	flush := func(midPacket bool) {
		headerType := byte(0)
		if continued {
			headerType |= flagContinued
		}
		pages = append(pages, encodePage(headerType, 0, serial, sequence, segments, data))
		sequence++
		segments = nil
		data = nil
		continued = midPacket
	}

	for _, packet := range packets {
		rest := packet
		for {
			lace := byte(255)
			if len(rest) < 255 {
				lace = byte(len(rest))
			}
			segments = append(segments, lace)
			data = append(data, rest[:lace]...)
			rest = rest[lace:]

			done := lace < 255
			if len(segments) == 255 {
				flush(!done)
			}
			if done {
				break
			}
		}
	}

	if len(segments) > 0 {
		flush(false)
	}

	return pages
}
