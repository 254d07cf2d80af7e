package ogg

import (
	"bytes"
	"strings"
	"testing"
)

// buildStream assembles a minimal Ogg Vorbis stream: identification
// header alone on the first page, comment and setup headers paginated
// together, then one audio page.
func buildStream(t *testing.T, vendor string, comments []string) []byte {
	t.Helper()

	ident := append([]byte{}, identMagic...)
	ident = append(ident, make([]byte, 22)...)

	setup := append([]byte{}, setupMagic...)
	setup = append(setup, bytes.Repeat([]byte{0xAB}, 64)...)

	audio := bytes.Repeat([]byte{0xCD}, 128)

	var buf bytes.Buffer
	buf.Write(encodePage(flagBOS, 0, 777, 0, []byte{byte(len(ident))}, ident))
	for _, p := range paginate([][]byte{encodeComments(vendor, comments), setup}, 777, 1) {
		buf.Write(p)
	}
	buf.Write(encodePage(flagEOS, 4096, 777, 2, []byte{byte(len(audio))}, audio))

	return buf.Bytes()
}

func TestParse_ReadsComments(t *testing.T) {
	stream := buildStream(t, "test vendor", []string{"TITLE=Song", "ARTIST=Band"})

	f, err := Parse(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if f.Vendor() != "test vendor" {
		t.Errorf("Vendor() = %q, want %q", f.Vendor(), "test vendor")
	}

	got := f.Comments()
	want := []string{"TITLE=Song", "ARTIST=Band"}
	if len(got) != len(want) {
		t.Fatalf("Comments() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Comments()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_RejectsNonOgg(t *testing.T) {
	_, err := Parse(strings.NewReader("ID3\x04\x00 not an ogg file at all, just bytes"))
	if err == nil {
		t.Fatal("Parse() accepted non-Ogg input")
	}
}

func TestFile_RewriteRoundTrip(t *testing.T) {
	stream := buildStream(t, "vend", []string{"TITLE=Old"})

	f, err := Parse(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	f.SetComments([]string{"TITLE=New", "GENRE=Rock"})

	var out bytes.Buffer
	if _, err := f.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	g, err := Parse(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Parse() of rewritten stream error = %v", err)
	}

	if g.Vendor() != "vend" {
		t.Errorf("vendor not preserved: got %q", g.Vendor())
	}

	got := g.Comments()
	if len(got) != 2 || got[0] != "TITLE=New" || got[1] != "GENRE=Rock" {
		t.Errorf("Comments() after rewrite = %v", got)
	}
}

func TestFile_RewriteKeepsAudioPayload(t *testing.T) {
	stream := buildStream(t, "v", []string{"ALBUM=First"})

	f, err := Parse(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Inflate the comment header enough to force extra header pages,
	// which shifts the audio page sequence numbers.
	f.SetComments([]string{"COMMENT=" + strings.Repeat("x", 70000)})

	var out bytes.Buffer
	if _, err := f.WriteTo(&out); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	g, err := Parse(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Parse() of rewritten stream error = %v", err)
	}

	if len(g.audio) != 1 {
		t.Fatalf("audio pages = %d, want 1", len(g.audio))
	}
	if !bytes.Equal(g.audio[0].data, bytes.Repeat([]byte{0xCD}, 128)) {
		t.Error("audio payload changed during rewrite")
	}
	if g.audio[0].headerType&flagEOS == 0 {
		t.Error("end-of-stream flag lost during rewrite")
	}
}

func TestPaginate_PacketMultipleOf255(t *testing.T) {
	packet := bytes.Repeat([]byte{0x11}, 510)

	pages := paginate([][]byte{packet}, 5, 1)
	if len(pages) != 1 {
		t.Fatalf("paginate produced %d pages, want 1", len(pages))
	}

	p, err := readPage(bytes.NewReader(pages[0]))
	if err != nil {
		t.Fatalf("readPage() error = %v", err)
	}

	// 510 bytes laces as 255, 255, 0: the zero terminator marks the
	// packet end.
	if len(p.segments) != 3 || p.segments[2] != 0 {
		t.Errorf("segments = %v, want [255 255 0]", p.segments)
	}
	if !bytes.Equal(p.data, packet) {
		t.Error("payload mismatch after pagination")
	}
}

func TestChecksum_KnownLayout(t *testing.T) {
	// A rewritten page must carry a checksum that matches a fresh
	// computation over the page with its CRC field zeroed.
	page := encodePage(0, 0, 1, 1, []byte{3}, []byte{1, 2, 3})

	stored := uint32(page[22]) | uint32(page[23])<<8 | uint32(page[24])<<16 | uint32(page[25])<<24

	zeroed := make([]byte, len(page))
	copy(zeroed, page)
	zeroed[22], zeroed[23], zeroed[24], zeroed[25] = 0, 0, 0, 0

	if checksum(zeroed) != stored {
		t.Errorf("stored checksum %08x does not match recomputation %08x", stored, checksum(zeroed))
	}
}
