package model

// Release is one release from the remote database, flattened to the
// parts tag reconciliation needs: ordered tracks, the release-level
// artist credit, and the declared track count.
type Release struct {
	// ID is the database identifier of the release.
	ID string

	// Title is the release title, applied as the album name.
	Title string

	// ArtistCredit is the joined release-level artist credit phrase.
	ArtistCredit string

	// Date is the release date as the database reports it, typically
	// "YYYY-MM-DD" but sometimes just "YYYY".
	Date string

	// TrackCount is the declared track count of the first medium.
	// Zero when the database did not declare one.
	TrackCount int

	// CatalogNumber is the label catalog number, when present.
	CatalogNumber string

	// Tracks holds the first medium's tracks in release order.
	Tracks []ReleaseTrack
}

// ReleaseTrack is one track of a release.
type ReleaseTrack struct {
	// Position is the 1-based track position within the medium.
	Position int

	// Title is the recording title.
	Title string

	// ArtistCredit is the track-level artist credit phrase. Empty when
	// the track carries no credit of its own; callers fall back to the
	// release credit.
	ArtistCredit string
}

// Year returns the release year: the first four characters of Date.
func (r *Release) Year() string {
	if len(r.Date) < 4 {
		return r.Date
	}
	return r.Date[:4]
}

// TotalTracks returns the declared track count, falling back to the
// length of the track list.
func (r *Release) TotalTracks() int {
	if r.TrackCount > 0 {
		return r.TrackCount
	}
	return len(r.Tracks)
}

// SearchResult is one row of a release search, enough to present a
// pick list without fetching each full release.
type SearchResult struct {
	ID           string
	Title        string
	ArtistCredit string
	Date         string
	Country      string
	Status       string
	TrackCount   int
}
