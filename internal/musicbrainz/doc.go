// Package musicbrainz looks up release metadata and cover art from the
// MusicBrainz web service and the Cover Art Archive.
//
// The package handles three operations:
//
//  1. Searching releases by artist and album name
//  2. Fetching one release with its full track list
//  3. Downloading front cover art, best effort
//
// # Client Setup
//
// MusicBrainz requires an identified client, so a Client only
// constructs once a contact email is configured:
//
//	client, err := musicbrainz.NewClient(settings)
//	if errors.Is(err, musicbrainz.ErrNoContact) {
//	    // remote features stay disabled
//	}
//
// # Searching and Applying
//
//	results, err := client.SearchReleases(ctx, "The Beatles", "Abbey Road")
//	release, err := client.LookupRelease(ctx, results[0].ID)
//	art, mime := client.FetchFrontCover(ctx, release.ID)
//
// FetchFrontCover never fails a batch: a missing or slow cover simply
// comes back empty.
//
// # Wire Format
//
// The dto subpackage mirrors the web service's JSON layout and
// converts it into the flattened model types the engine consumes.
package musicbrainz
