package audio

import (
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// flacEditor edits FLAC Vorbis comments and picture blocks.
//
// Native keys are Vorbis field names (TITLE, ARTIST, ...). On save the
// old comment and picture blocks are dropped and rebuilt from the
// in-memory state; every other metadata block passes through as is.
type flacEditor struct {
	path     string
	file     *flac.File
	vendor   string
	comments commentList
	picData  []byte
	picMIME  string
}

func openFLAC(path string) (*flacEditor, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, unreadable(path, err)
	}

	e := &flacEditor{path: path, file: f, vendor: flacvorbis.New().Vendor}

	for _, block := range f.Meta {
		switch block.Type {
		case flac.VorbisComment:
			comment, err := flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				return nil, unreadable(path, err)
			}
			e.vendor = comment.Vendor
			e.comments.entries = comment.Comments
		case flac.Picture:
			if e.picData != nil {
				continue
			}
			pic, err := flacpicture.ParseFromMetaDataBlock(*block)
			if err != nil {
				return nil, unreadable(path, err)
			}
			e.picData = pic.ImageData
			e.picMIME = pic.MIME
		}
	}

	return e, nil
}

func (e *flacEditor) Path() string   { return e.path }
func (e *flacEditor) Format() Format { return FormatFLAC }

func (e *flacEditor) ReadScalar(nativeKey string) string {
	return e.comments.get(nativeKey)
}

func (e *flacEditor) WriteScalar(nativeKey, value string) {
	e.comments.set(nativeKey, value)
}

func (e *flacEditor) ReadPicture() ([]byte, string) {
	return e.picData, e.picMIME
}

func (e *flacEditor) WritePicture(data []byte, mime string) {
	e.picData = data
	e.picMIME = mime
}

func (e *flacEditor) Save() error {
	var meta []*flac.MetaDataBlock
	for _, block := range e.file.Meta {
		if block.Type != flac.VorbisComment && block.Type != flac.Picture {
			meta = append(meta, block)
		}
	}

	comment := flacvorbis.New()
	comment.Vendor = e.vendor
	comment.Comments = e.comments.entries
	commentBlock := comment.Marshal()
	meta = append(meta, &commentBlock)

	if e.picData != nil {
		pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front Cover", e.picData, e.picMIME)
		if err != nil {
			return writeFailed(e.path, err)
		}
		picBlock := pic.Marshal()
		meta = append(meta, &picBlock)
	}

	e.file.Meta = meta
	if err := e.file.Save(e.path); err != nil {
		return writeFailed(e.path, err)
	}
	return nil
}

func (e *flacEditor) Close() error { return nil }
