package audio

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func mp4Box(name string, parts ...[]byte) []byte {
	size := 8
	for _, p := range parts {
		size += len(p)
	}
	out := make([]byte, 0, size)
	out = binary.BigEndian.AppendUint32(out, uint32(size))
	out = append(out, name...)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func be32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func be16(v uint16) []byte {
	return binary.BigEndian.AppendUint16(nil, v)
}

// unityMatrix is the identity transformation mvhd and tkhd carry.
func unityMatrix() []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{0x00010000, 0, 0, 0, 0x00010000, 0, 0, 0, 0x40000000} {
		buf.Write(be32(v))
	}
	return buf.Bytes()
}

// writeM4AFixture assembles a minimal but structurally complete MP4
// audio file: ftyp, a moov with one empty sound track and an empty
// ilst, and a small mdat. The tag library rewrites the ilst in place
// and fixes the stco chunk offset itself when moov grows.
func writeM4AFixture(t *testing.T) string {
	t.Helper()

	ftyp := mp4Box("ftyp", []byte("M4A "), be32(0x200), []byte("M4A mp42isom"))

	mvhd := mp4Box("mvhd",
		be32(0),              // version + flags
		be32(0), be32(0),     // creation, modification
		be32(44100), be32(0), // timescale, duration
		be32(0x00010000), be16(0x0100), be16(0), // rate, volume, reserved
		make([]byte, 8),
		unityMatrix(),
		make([]byte, 24),
		be32(2), // next track ID
	)

	tkhd := mp4Box("tkhd",
		be32(0x000007),   // version 0, track enabled flags
		be32(0), be32(0), // creation, modification
		be32(1), be32(0), // track ID, reserved
		be32(0), // duration
		make([]byte, 8),
		be16(0), be16(0),      // layer, alternate group
		be16(0x0100), be16(0), // volume, reserved
		unityMatrix(),
		be32(0), be32(0), // width, height
	)

	mdhd := mp4Box("mdhd",
		be32(0),
		be32(0), be32(0),
		be32(44100), be32(0),
		be16(0x55C4), be16(0), // language "und", pre_defined
	)

	soundHdlr := mp4Box("hdlr", be32(0), be32(0), []byte("soun"), make([]byte, 13))

	smhd := mp4Box("smhd", be32(0), be16(0), be16(0))
	dinf := mp4Box("dinf", mp4Box("dref", be32(0), be32(1), mp4Box("url ", be32(1))))

	mp4a := mp4Box("mp4a",
		make([]byte, 6), be16(1), // reserved, data reference index
		make([]byte, 8),
		be16(2), be16(16), // channels, sample size
		be16(0), be16(0),
		be32(44100<<16),
	)
	stbl := mp4Box("stbl",
		mp4Box("stsd", be32(0), be32(1), mp4a),
		mp4Box("stts", be32(0), be32(0)),
		mp4Box("stsc", be32(0), be32(0)),
		mp4Box("stsz", be32(0), be32(0), be32(0)),
		mp4Box("stco", be32(0), be32(1), be32(0)), // offset patched below
	)

	minf := mp4Box("minf", smhd, dinf, stbl)
	mdia := mp4Box("mdia", mdhd, soundHdlr, minf)
	trak := mp4Box("trak", tkhd, mdia)

	metaHdlr := mp4Box("hdlr", be32(0), be32(0), []byte("mdir"), []byte("appl"), make([]byte, 9))
	meta := mp4Box("meta", be32(0), metaHdlr, mp4Box("ilst"))
	udta := mp4Box("udta", meta)

	moov := mp4Box("moov", mvhd, trak, udta)
	mdat := mp4Box("mdat", bytes.Repeat([]byte{0xAA}, 64))

	file := append(append(ftyp, moov...), mdat...)

	// Point the single chunk at the mdat payload.
	stcoEntry := bytes.Index(file, []byte("stco")) + 12
	binary.BigEndian.PutUint32(file[stcoEntry:], uint32(len(file)-len(mdat)+8))

	path := filepath.Join(t.TempDir(), "fixture.m4a")
	if err := os.WriteFile(path, file, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSplitTrackPair(t *testing.T) {
	tests := []struct {
		input      string
		wantNumber int16
		wantTotal  int16
		wantErr    bool
	}{
		{"3/12", 3, 12, false},
		{"7", 7, 0, false},
		{" 3 / 12 ", 3, 12, false},
		{"", 0, 0, true},
		{"a/b", 0, 0, true},
		{"3/", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			number, total, err := splitTrackPair(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("splitTrackPair(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitTrackPair(%q) error = %v", tt.input, err)
			}
			if number != tt.wantNumber || total != tt.wantTotal {
				t.Errorf("splitTrackPair(%q) = %d/%d, want %d/%d",
					tt.input, number, total, tt.wantNumber, tt.wantTotal)
			}
		})
	}
}

func TestFreeformKey(t *testing.T) {
	tests := []struct {
		key      string
		wantName string
		wantOK   bool
	}{
		{"----:PRODUCER", "PRODUCER", true},
		{"----:catalognumber", "CATALOGNUMBER", true},
		{"©nam", "", false},
		{"trkn", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			name, ok := freeformKey(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("freeformKey(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && name != tt.wantName {
				t.Errorf("freeformKey(%q) = %q, want %q", tt.key, name, tt.wantName)
			}
		})
	}
}

func TestM4A_ScalarRoundTrip(t *testing.T) {
	path := writeM4AFixture(t)

	e, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	e.WriteScalar("©nam", "Come Together")
	e.WriteScalar("©gen", "Rock")
	e.WriteScalar("trkn", "3/12")
	e.WriteScalar("----:PRODUCER", "George Martin")
	if err := e.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	e, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"©nam", "Come Together"},
		{"©gen", "Rock"},
		{"trkn", "3/12"},
		{"----:PRODUCER", "George Martin"},
		{"©alb", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := e.ReadScalar(tt.key); got != tt.want {
				t.Errorf("ReadScalar(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestM4A_BlankValueRemovesAtom(t *testing.T) {
	path := writeM4AFixture(t)

	e, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	e.WriteScalar("©gen", "Rock")
	e.WriteScalar("trkn", "3/12")
	e.WriteScalar("----:PRODUCER", "George Martin")
	if err := e.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	e, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	e.WriteScalar("©gen", "")
	e.WriteScalar("trkn", "")
	e.WriteScalar("----:PRODUCER", "")
	if err := e.Save(); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	e, err = Open(path)
	if err != nil {
		t.Fatalf("final reopen error = %v", err)
	}
	if got := e.ReadScalar("©gen"); got != "" {
		t.Errorf("©gen after removal = %q, want \"\"", got)
	}
	if got := e.ReadScalar("trkn"); got != "" {
		t.Errorf("trkn after removal = %q, want \"\"", got)
	}
	if got := e.ReadScalar("----:PRODUCER"); got != "" {
		t.Errorf("----:PRODUCER after removal = %q, want \"\"", got)
	}
}

func TestM4A_PictureWriteReadDelete(t *testing.T) {
	path := writeM4AFixture(t)
	cover := pngBytes(t)

	e, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	e.WritePicture(cover, "image/png")
	if err := e.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	e, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	data, mime := e.ReadPicture()
	if !bytes.Equal(data, cover) {
		t.Error("picture data did not round-trip")
	}
	if mime != "image/png" {
		t.Errorf("picture mime = %q, want image/png", mime)
	}

	e.WritePicture(nil, "")
	if err := e.Save(); err != nil {
		t.Fatalf("delete Save() error = %v", err)
	}

	e, err = Open(path)
	if err != nil {
		t.Fatalf("final reopen error = %v", err)
	}
	if data, _ := e.ReadPicture(); data != nil {
		t.Error("picture still present after deletion")
	}
}

func TestM4A_PictureReplaceDropsOldImage(t *testing.T) {
	path := writeM4AFixture(t)
	first := pngBytes(t)

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 6, 6))); err != nil {
		t.Fatal(err)
	}
	second := buf.Bytes()

	e, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	e.WritePicture(first, "image/png")
	if err := e.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	e, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	e.WritePicture(second, "image/png")
	if err := e.Save(); err != nil {
		t.Fatalf("replace Save() error = %v", err)
	}

	e, err = Open(path)
	if err != nil {
		t.Fatalf("final reopen error = %v", err)
	}
	data, _ := e.ReadPicture()
	if !bytes.Equal(data, second) {
		t.Errorf("picture after replace = %d bytes, want the %d byte replacement", len(data), len(second))
	}
}
