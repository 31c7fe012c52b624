package store

import (
	"sort"

	"github.com/example/lessence/internal/models"
)

// Catalog is an immutable snapshot of the perfume collection, built
// once at startup. All accessors return copies so callers can never
// mutate the snapshot.
type Catalog struct {
	perfumes []models.Perfume
	byID     map[string]models.Perfume
	notes    []string
}

// NewCatalog builds a catalogue snapshot from the given perfumes,
// preserving their order.
func NewCatalog(perfumes []models.Perfume) *Catalog {
	c := &Catalog{
		perfumes: make([]models.Perfume, len(perfumes)),
		byID:     make(map[string]models.Perfume, len(perfumes)),
	}
	copy(c.perfumes, perfumes)

	seen := make(map[string]struct{})
	for _, p := range c.perfumes {
		c.byID[p.ID] = p
		for _, note := range p.Notes {
			if _, ok := seen[note]; ok {
				continue
			}
			seen[note] = struct{}{}
			c.notes = append(c.notes, note)
		}
	}
	sort.Strings(c.notes)

	return c
}

// All returns every perfume in catalogue order.
func (c *Catalog) All() []models.Perfume {
	out := make([]models.Perfume, len(c.perfumes))
	copy(out, c.perfumes)
	return out
}

// Get looks up a perfume by ID.
func (c *Catalog) Get(id string) (models.Perfume, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Notes returns the distinct note tags across the catalogue, sorted.
func (c *Catalog) Notes() []string {
	out := make([]string, len(c.notes))
	copy(out, c.notes)
	return out
}
