package audio

import (
	"strings"

	"github.com/bogem/id3v2/v2"
)

// mp3Editor edits ID3v2 tags through the id3v2 library.
//
// Native keys are ID3 frame IDs (TIT2, TPE1, ...). The comment frame
// uses the key "COMM" and user-defined text frames use keys of the
// form "TXXX:<DESCRIPTION>".
type mp3Editor struct {
	path string
	tag  *id3v2.Tag
}

func openMP3(path string) (*mp3Editor, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, unreadable(path, err)
	}
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetVersion(4)

	return &mp3Editor{path: path, tag: tag}, nil
}

func (e *mp3Editor) Path() string   { return e.path }
func (e *mp3Editor) Format() Format { return FormatMP3 }

func (e *mp3Editor) ReadScalar(nativeKey string) string {
	if desc, ok := userFrameKey(nativeKey); ok {
		for _, frame := range e.tag.GetFrames("TXXX") {
			udt, ok := frame.(id3v2.UserDefinedTextFrame)
			if ok && strings.EqualFold(udt.Description, desc) {
				return udt.Value
			}
		}
		return ""
	}

	if nativeKey == "COMM" {
		for _, frame := range e.tag.GetFrames(e.tag.CommonID("Comments")) {
			if comm, ok := frame.(id3v2.CommentFrame); ok {
				return comm.Text
			}
		}
		return ""
	}

	return e.tag.GetTextFrame(nativeKey).Text
}

func (e *mp3Editor) WriteScalar(nativeKey, value string) {
	if desc, ok := userFrameKey(nativeKey); ok {
		e.writeUserFrame(desc, value)
		return
	}

	if nativeKey == "COMM" {
		e.tag.DeleteFrames(e.tag.CommonID("Comments"))
		if value != "" {
			e.tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding: id3v2.EncodingUTF8,
				Language: "eng",
				Text:     value,
			})
		}
		return
	}

	e.tag.DeleteFrames(nativeKey)
	if value != "" {
		e.tag.AddTextFrame(nativeKey, id3v2.EncodingUTF8, value)
	}
}

// writeUserFrame replaces the TXXX frame with the given description.
// The library only deletes whole frame sequences, so the surviving
// user frames are collected and re-added.
func (e *mp3Editor) writeUserFrame(desc, value string) {
	var keep []id3v2.UserDefinedTextFrame
	for _, frame := range e.tag.GetFrames("TXXX") {
		udt, ok := frame.(id3v2.UserDefinedTextFrame)
		if ok && !strings.EqualFold(udt.Description, desc) {
			keep = append(keep, udt)
		}
	}

	e.tag.DeleteFrames("TXXX")
	for _, udt := range keep {
		e.tag.AddUserDefinedTextFrame(udt)
	}
	if value != "" {
		e.tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: desc,
			Value:       value,
		})
	}
}

func (e *mp3Editor) ReadPicture() ([]byte, string) {
	for _, frame := range e.tag.GetFrames(e.tag.CommonID("Attached picture")) {
		if pic, ok := frame.(id3v2.PictureFrame); ok {
			return pic.Picture, pic.MimeType
		}
	}
	return nil, ""
}

func (e *mp3Editor) WritePicture(data []byte, mime string) {
	e.tag.DeleteFrames(e.tag.CommonID("Attached picture"))
	if data == nil {
		return
	}

	e.tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mime,
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     data,
	})
}

func (e *mp3Editor) Save() error {
	if err := e.tag.Save(); err != nil {
		return writeFailed(e.path, err)
	}
	return nil
}

func (e *mp3Editor) Close() error {
	return e.tag.Close()
}

// userFrameKey splits a "TXXX:<DESCRIPTION>" native key.
func userFrameKey(nativeKey string) (string, bool) {
	desc, ok := strings.CutPrefix(nativeKey, "TXXX:")
	return desc, ok
}
