package musicbrainz

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Ivan-Ayub97/Metagify/internal/config"
	internalhttp "github.com/Ivan-Ayub97/Metagify/internal/http"
	"github.com/Ivan-Ayub97/Metagify/internal/model"
	"github.com/Ivan-Ayub97/Metagify/internal/musicbrainz/dto"
)

const (
	apiBase      = "https://musicbrainz.org/ws/2"
	coverArtBase = "https://coverartarchive.org"

	appName    = "Metagify"
	appVersion = "1.1"

	// Lookup includes: the track list with recordings and per-track
	// credits, plus label info for catalog numbers.
	lookupIncludes = "artists+recordings+artist-credits+release-groups+labels"
)

var (
	// ErrNoContact is returned when remote features are used without a
	// configured contact email.
	ErrNoContact = errors.New("no contact email configured")

	// ErrMalformedRelease is returned when the web service responds
	// with a release payload missing the parts tagging needs.
	ErrMalformedRelease = errors.New("malformed release payload")
)

// Client talks to the MusicBrainz web service and the Cover Art
// Archive.
//
// Example usage:
//
//	client, err := musicbrainz.NewClient(settings)
//	if err != nil { ... }
//
//	results, err := client.SearchReleases(ctx, "The Beatles", "Abbey Road")
type Client struct {
	http            *internalhttp.Client
	searchLimit     int
	coverArtTimeout time.Duration

	// Overridable in tests.
	apiBase      string
	coverArtBase string
}

// NewClient creates a client identified by the configured contact
// email.
//
// Returns ErrNoContact when the settings carry no contact email;
// MusicBrainz's terms of use require an identifiable User-Agent, so
// remote features stay off until one is configured.
func NewClient(settings *config.Settings) (*Client, error) {
	if !settings.RemoteEnabled() {
		return nil, ErrNoContact
	}

	userAgent := fmt.Sprintf("%s/%s (%s)", appName, appVersion, settings.ContactEmail)
	timeout := time.Duration(settings.RequestTimeoutSeconds * float64(time.Second))

	return &Client{
		http:            internalhttp.NewClient(userAgent, timeout),
		searchLimit:     settings.SearchLimit,
		coverArtTimeout: time.Duration(settings.CoverArtTimeoutSeconds * float64(time.Second)),
		apiBase:         apiBase,
		coverArtBase:    coverArtBase,
	}, nil
}

// SearchReleases queries the release index by artist and album name.
//
// Both terms are optional; whichever is present becomes a quoted
// field query, joined with AND:
//
//	artist:"The Beatles" AND release:"Abbey Road"
func (c *Client) SearchReleases(ctx context.Context, artist, album string) ([]model.SearchResult, error) {
	var parts []string
	if artist != "" {
		parts = append(parts, fmt.Sprintf(`artist:"%s"`, escapeQuery(artist)))
	}
	if album != "" {
		parts = append(parts, fmt.Sprintf(`release:"%s"`, escapeQuery(album)))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty search query")
	}

	query := url.Values{}
	query.Set("query", strings.Join(parts, " AND "))
	query.Set("limit", strconv.Itoa(c.searchLimit))
	query.Set("fmt", "json")

	var payload dto.JSONSearchResponse
	if err := c.http.GetJSON(ctx, c.apiBase+"/release?"+query.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("search releases: %w", err)
	}

	return payload.ToSearchResults(), nil
}

// LookupRelease fetches one release with its full track list.
func (c *Client) LookupRelease(ctx context.Context, releaseID string) (*model.Release, error) {
	query := url.Values{}
	query.Set("inc", lookupIncludes)
	query.Set("fmt", "json")

	var payload dto.JSONRelease
	u := fmt.Sprintf("%s/release/%s?%s", c.apiBase, url.PathEscape(releaseID), query.Encode())
	if err := c.http.GetJSON(ctx, u, &payload); err != nil {
		return nil, fmt.Errorf("lookup release %s: %w", releaseID, err)
	}

	release, ok := payload.ToRelease()
	if !ok {
		return nil, fmt.Errorf("%w: release %s has no usable medium", ErrMalformedRelease, releaseID)
	}
	return release, nil
}

// FetchFrontCover downloads the 500px front cover for a release.
//
// This is best effort: releases without art, slow responses and
// network failures all come back as (nil, ""), never as an error. The
// fetch has its own deadline so a stalled archive cannot hold up a
// tagging batch.
func (c *Client) FetchFrontCover(ctx context.Context, releaseID string) ([]byte, string) {
	u := fmt.Sprintf("%s/release/%s/front-500", c.coverArtBase, url.PathEscape(releaseID))
	data, err := c.http.DownloadBytes(ctx, u, c.coverArtTimeout)
	if err != nil || len(data) == 0 {
		return nil, ""
	}
	return data, sniffImageMIME(data)
}

// escapeQuery escapes the quote characters a quoted Lucene term cannot
// contain.
func escapeQuery(term string) string {
	return strings.ReplaceAll(term, `"`, `\"`)
}

// sniffImageMIME detects the cover's MIME type from magic bytes. The
// archive serves JPEG and PNG.
func sniffImageMIME(data []byte) string {
	if len(data) >= 4 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png"
	}
	return "image/jpeg"
}
