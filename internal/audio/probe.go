package audio

import (
	"os"
	"strconv"

	"github.com/dhowden/tag"

	"github.com/Ivan-Ayub97/Metagify/internal/model"
)

// Summarize reads the listing snapshot for one file.
//
// It goes through the dhowden/tag reader, which handles all four
// supported containers in a single pass and avoids building a
// writable editor just to fill a table row.
func Summarize(path string) (model.Summary, error) {
	if _, err := FormatOf(path); err != nil {
		return model.Summary{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return model.Summary{}, unreadable(path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return model.Summary{}, unreadable(path, err)
	}

	s := model.Summary{
		Path:     path,
		Title:    m.Title(),
		Artist:   m.Artist(),
		Album:    m.Album(),
		HasCover: m.Picture() != nil,
	}
	if year := m.Year(); year != 0 {
		s.Year = strconv.Itoa(year)
	}

	return s, nil
}
