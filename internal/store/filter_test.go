package store

import (
	"testing"

	"github.com/example/lessence/internal/models"
)

// filterFixture is a six-perfume catalogue with two Amber scents, used
// to exercise note selection and ordering.
func filterFixture() []models.Perfume {
	return []models.Perfume{
		{ID: "1", Name: "Nocturnal Bloom", Brand: "L'Essence", Price: 185, Notes: []string{"Black Orchid", "Amber", "Patchouli"}},
		{ID: "2", Name: "Golden Hour", Brand: "L'Essence", Price: 160, Notes: []string{"Bergamot", "Saffron", "Honey"}},
		{ID: "3", Name: "Oceanic Drift", Brand: "L'Essence", Price: 145, Notes: []string{"Sea Salt", "Driftwood", "Sage"}},
		{ID: "4", Name: "Amber Dusk", Brand: "L'Essence", Price: 200, Notes: []string{"Amber", "Vanilla"}},
		{ID: "5", Name: "Forest Rain", Brand: "L'Essence", Price: 155, Notes: []string{"Pine", "Petrichor", "Moss"}},
		{ID: "6", Name: "Citrus Zest", Brand: "L'Essence", Price: 130, Notes: []string{"Yuzu", "Basil", "Vetiver"}},
	}
}

func filteredIDs(perfumes []models.Perfume) []string {
	ids := make([]string, len(perfumes))
	for i, p := range perfumes {
		ids[i] = p.ID
	}
	return ids
}

func TestFilterNoCriteria(t *testing.T) {
	fixture := filterFixture()

	result := Filter(fixture, nil, "")
	if len(result) != len(fixture) {
		t.Fatalf("Expected all %d perfumes, got %d", len(fixture), len(result))
	}
	for i, p := range result {
		if p.ID != fixture[i].ID {
			t.Errorf("Position %d: ID = %q, want %q", i, p.ID, fixture[i].ID)
		}
	}
}

func TestFilterByNote(t *testing.T) {
	result := Filter(filterFixture(), []string{"Amber"}, "")

	ids := filteredIDs(result)
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "4" {
		t.Fatalf("Amber filter = %v, want [1 4]", ids)
	}
}

func TestFilterByMultipleNotes(t *testing.T) {
	// A perfume passes when it shares at least one selected note.
	result := Filter(filterFixture(), []string{"Amber", "Pine"}, "")

	ids := filteredIDs(result)
	if len(ids) != 3 || ids[0] != "1" || ids[1] != "4" || ids[2] != "5" {
		t.Fatalf("Amber+Pine filter = %v, want [1 4 5]", ids)
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	result := Filter(filterFixture(), nil, "ZeSt")

	if len(result) != 1 {
		t.Fatalf("Expected 1 match for %q, got %d", "ZeSt", len(result))
	}
	if result[0].Name != "Citrus Zest" {
		t.Errorf("Name = %q, want %q", result[0].Name, "Citrus Zest")
	}
}

func TestFilterSearchMatchesBrand(t *testing.T) {
	result := Filter(filterFixture(), nil, "l'essence")

	if len(result) != len(filterFixture()) {
		t.Fatalf("Brand search matched %d perfumes, want %d", len(result), len(filterFixture()))
	}
}

func TestFilterSearchTrimsWhitespace(t *testing.T) {
	result := Filter(filterFixture(), nil, "  golden  ")

	if len(result) != 1 || result[0].ID != "2" {
		t.Fatalf("Trimmed search = %v, want [2]", filteredIDs(result))
	}
}

func TestFilterCombined(t *testing.T) {
	// Note and search criteria are conjunctive.
	result := Filter(filterFixture(), []string{"Amber"}, "dusk")

	if len(result) != 1 || result[0].ID != "4" {
		t.Fatalf("Combined filter = %v, want [4]", filteredIDs(result))
	}
}

func TestFilterNoMatches(t *testing.T) {
	result := Filter(filterFixture(), []string{"Tobacco"}, "")
	if len(result) != 0 {
		t.Fatalf("Expected no matches, got %v", filteredIDs(result))
	}

	result = Filter(nil, []string{"Amber"}, "anything")
	if len(result) != 0 {
		t.Fatalf("Empty catalogue should yield no matches, got %d", len(result))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	result := Filter(filterFixture(), []string{"Amber", "Saffron", "Yuzu"}, "")

	ids := filteredIDs(result)
	want := []string{"1", "2", "4", "6"}
	if len(ids) != len(want) {
		t.Fatalf("Filter = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Filter = %v, want %v", ids, want)
		}
	}
}
