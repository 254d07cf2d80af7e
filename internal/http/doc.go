// Package http provides an HTTP client configured for release
// database and cover art requests.
//
// The Client in this package handles:
//   - User-Agent headers identifying the application and contact
//   - JSON decoding of API responses
//   - Timeout handling, including short per-call deadlines for
//     best-effort artwork downloads
//
// # Basic Usage
//
//	client := http.NewClient("Metagify/1.0 (user@example.com)", 30*time.Second)
//
//	// Fetch and decode an API response
//	var result searchResult
//	err := client.GetJSON(ctx, searchURL, &result)
//
//	// Fetch cover art with its own 15 second deadline
//	data, err := client.DownloadBytes(ctx, artURL, 15*time.Second)
package http
