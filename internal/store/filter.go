package store

import (
	"strings"

	"github.com/example/lessence/internal/models"
)

// Filter returns the subsequence of perfumes matching the combined
// criteria, preserving input order. A perfume passes when it shares at
// least one note with selectedNotes (an empty selection passes
// everything) and its name or brand contains the query
// case-insensitively (an empty query passes everything).
func Filter(perfumes []models.Perfume, selectedNotes []string, query string) []models.Perfume {
	noteSet := make(map[string]struct{}, len(selectedNotes))
	for _, note := range selectedNotes {
		if note != "" {
			noteSet[note] = struct{}{}
		}
	}
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Perfume, 0, len(perfumes))
	for _, p := range perfumes {
		if len(noteSet) > 0 && !sharesNote(p.Notes, noteSet) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Brand), query) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func sharesNote(notes []string, selected map[string]struct{}) bool {
	for _, note := range notes {
		if _, ok := selected[note]; ok {
			return true
		}
	}
	return false
}
