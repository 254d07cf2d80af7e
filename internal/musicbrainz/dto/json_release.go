package dto

import (
	"strings"

	"github.com/Ivan-Ayub97/Metagify/internal/model"
)

// JSONArtistCredit is one entry of an artist-credit list. The credited
// name and its join phrase concatenate across entries to form the
// display credit ("Simon & Garfunkel").
type JSONArtistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase"`
}

// JSONRecording is the recording a track links to.
type JSONRecording struct {
	Title string `json:"title"`
}

// JSONTrack is one track within a medium.
type JSONTrack struct {
	Position     int                `json:"position"`
	Title        string             `json:"title"`
	Recording    *JSONRecording     `json:"recording"`
	ArtistCredit []JSONArtistCredit `json:"artist-credit"`
}

// JSONMedium is one medium (disc) of a release.
type JSONMedium struct {
	TrackCount int         `json:"track-count"`
	Tracks     []JSONTrack `json:"tracks"`
}

// JSONLabelInfo carries the catalog number assignment of a release.
type JSONLabelInfo struct {
	CatalogNumber string `json:"catalog-number"`
}

// JSONRelease represents a release lookup response.
type JSONRelease struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Date         string             `json:"date"`
	ArtistCredit []JSONArtistCredit `json:"artist-credit"`
	Media        []JSONMedium       `json:"media"`
	LabelInfo    []JSONLabelInfo    `json:"label-info"`
}

// creditPhrase joins an artist-credit list into a single display
// string.
func creditPhrase(credits []JSONArtistCredit) string {
	var b strings.Builder
	for _, c := range credits {
		b.WriteString(c.Name)
		b.WriteString(c.JoinPhrase)
	}
	return b.String()
}

// ToRelease converts the wire release into the flattened model type.
// Only the first medium is used; multi-disc releases are tagged one
// disc at a time.
//
// Returns false when the payload has no usable medium.
func (jr *JSONRelease) ToRelease() (*model.Release, bool) {
	if len(jr.Media) == 0 {
		return nil, false
	}
	medium := jr.Media[0]
	if len(medium.Tracks) == 0 {
		return nil, false
	}

	release := &model.Release{
		ID:           jr.ID,
		Title:        jr.Title,
		ArtistCredit: creditPhrase(jr.ArtistCredit),
		Date:         jr.Date,
		TrackCount:   medium.TrackCount,
	}

	if len(jr.LabelInfo) > 0 {
		release.CatalogNumber = jr.LabelInfo[0].CatalogNumber
	}

	for _, jt := range medium.Tracks {
		track := model.ReleaseTrack{
			Position:     jt.Position,
			Title:        jt.Title,
			ArtistCredit: creditPhrase(jt.ArtistCredit),
		}
		// The recording title is authoritative; the track title is a
		// denormalized copy that some releases omit.
		if jt.Recording != nil && jt.Recording.Title != "" {
			track.Title = jt.Recording.Title
		}
		release.Tracks = append(release.Tracks, track)
	}

	return release, true
}
