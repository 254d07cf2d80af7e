package audio

import (
	"bytes"
	"encoding/base64"
	"os"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/go-flac"

	"github.com/Ivan-Ayub97/Metagify/internal/ogg"
)

// metadataBlockPicture is the Vorbis comment field holding embedded
// artwork: a base64-encoded FLAC picture block.
const metadataBlockPicture = "METADATA_BLOCK_PICTURE"

// oggEditor edits Ogg Vorbis comments. Native keys are Vorbis field
// names, the same set the FLAC editor uses.
type oggEditor struct {
	path     string
	file     *ogg.File
	comments commentList
	picData  []byte
	picMIME  string
}

func openOGG(path string) (*oggEditor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, unreadable(path, err)
	}

	f, err := ogg.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, unreadable(path, err)
	}

	e := &oggEditor{path: path, file: f}
	e.comments.entries = f.Comments()

	if encoded := e.comments.get(metadataBlockPicture); encoded != "" {
		block, err := base64.StdEncoding.DecodeString(encoded)
		if err == nil {
			pic, err := flacpicture.ParseFromMetaDataBlock(flac.MetaDataBlock{
				Type: flac.Picture,
				Data: block,
			})
			if err == nil {
				e.picData = pic.ImageData
				e.picMIME = pic.MIME
			}
		}
	}

	return e, nil
}

func (e *oggEditor) Path() string   { return e.path }
func (e *oggEditor) Format() Format { return FormatOGG }

func (e *oggEditor) ReadScalar(nativeKey string) string {
	return e.comments.get(nativeKey)
}

func (e *oggEditor) WriteScalar(nativeKey, value string) {
	e.comments.set(nativeKey, value)
}

func (e *oggEditor) ReadPicture() ([]byte, string) {
	return e.picData, e.picMIME
}

func (e *oggEditor) WritePicture(data []byte, mime string) {
	e.picData = data
	e.picMIME = mime
}

func (e *oggEditor) Save() error {
	e.comments.set(metadataBlockPicture, "")
	if e.picData != nil {
		pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front Cover", e.picData, e.picMIME)
		if err != nil {
			return writeFailed(e.path, err)
		}
		block := pic.Marshal()
		e.comments.set(metadataBlockPicture, base64.StdEncoding.EncodeToString(block.Data))
	}

	e.file.SetComments(e.comments.entries)

	var buf bytes.Buffer
	if _, err := e.file.WriteTo(&buf); err != nil {
		return writeFailed(e.path, err)
	}
	if err := os.WriteFile(e.path, buf.Bytes(), 0644); err != nil {
		return writeFailed(e.path, err)
	}
	return nil
}

func (e *oggEditor) Close() error { return nil }
