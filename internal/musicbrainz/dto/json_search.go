package dto

import "github.com/Ivan-Ayub97/Metagify/internal/model"

// JSONSearchRelease is one row of a release search response. Search
// rows carry a flat track count instead of full media.
type JSONSearchRelease struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Date         string             `json:"date"`
	Country      string             `json:"country"`
	Status       string             `json:"status"`
	TrackCount   int                `json:"track-count"`
	ArtistCredit []JSONArtistCredit `json:"artist-credit"`
}

// JSONSearchResponse represents a release search response.
type JSONSearchResponse struct {
	Releases []JSONSearchRelease `json:"releases"`
}

// ToSearchResults converts the wire rows into model search results.
func (jsr *JSONSearchResponse) ToSearchResults() []model.SearchResult {
	results := make([]model.SearchResult, 0, len(jsr.Releases))
	for _, r := range jsr.Releases {
		results = append(results, model.SearchResult{
			ID:           r.ID,
			Title:        r.Title,
			ArtistCredit: creditPhrase(r.ArtistCredit),
			Date:         r.Date,
			Country:      r.Country,
			Status:       r.Status,
			TrackCount:   r.TrackCount,
		})
	}
	return results
}
