package store

import "github.com/example/lessence/internal/models"

// SignatureCollection returns the built-in L'Essence catalogue. It is
// the default catalogue source and the seed for the Postgres source.
func SignatureCollection() []models.Perfume {
	return []models.Perfume{
		{
			ID:          "1",
			Name:        "Nocturnal Bloom",
			Brand:       "L'Essence",
			Price:       185,
			Image:       "https://images.unsplash.com/photo-1585386959984-a4155224a1ad?auto=format&fit=crop&w=800&q=80",
			Notes:       []string{"Black Orchid", "Amber", "Patchouli"},
			Description: "A dark, velvety fragrance that unfolds under the moonlight. Notes of rare orchid blend with smoky amber for an intoxicating finish.",
			Mood:        "Mysterious",
		},
		{
			ID:          "2",
			Name:        "Golden Hour",
			Brand:       "L'Essence",
			Price:       160,
			Image:       "https://images.unsplash.com/photo-1594035910387-fea4779426e9?auto=format&fit=crop&w=800&q=80",
			Notes:       []string{"Bergamot", "Saffron", "Honey"},
			Description: "Capturing the fleeting moment of sunset. Bright citrus opens into warm saffron threads and sweet honey drizzle.",
			Mood:        "Warm",
		},
		{
			ID:          "3",
			Name:        "Oceanic Drift",
			Brand:       "L'Essence",
			Price:       145,
			Image:       "https://images.unsplash.com/photo-1595425970339-27d2c1256924?auto=format&fit=crop&w=800&q=80",
			Notes:       []string{"Sea Salt", "Driftwood", "Sage"},
			Description: "The raw power of the Atlantic. Salty air meets weathered wood and aromatic sage in this crisp, refreshing scent.",
			Mood:        "Fresh",
		},
		{
			ID:          "4",
			Name:        "Velvet Rose",
			Brand:       "L'Essence",
			Price:       210,
			Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?auto=format&fit=crop&w=800&q=80",
			Notes:       []string{"Damask Rose", "Oud", "Praline"},
			Description: "A sophisticated floral with a gourmand twist. Deep red roses layered over exotic oud wood.",
			Mood:        "Romantic",
		},
		{
			ID:          "5",
			Name:        "Forest Rain",
			Brand:       "L'Essence",
			Price:       155,
			Image:       "https://images.unsplash.com/photo-1592914610354-fd354ea45e48?auto=format&fit=crop&w=800&q=80",
			Notes:       []string{"Pine", "Petrichor", "Moss"},
			Description: "The scent of a pine forest after a heavy rain. Earthy, green, and profoundly grounding.",
			Mood:        "Earthy",
		},
		{
			ID:          "6",
			Name:        "Citrus Zest",
			Brand:       "L'Essence",
			Price:       130,
			Image:       "https://images.unsplash.com/photo-1616949755610-8c9bbc08f138?auto=format&fit=crop&w=800&q=80",
			Notes:       []string{"Yuzu", "Basil", "Vetiver"},
			Description: "An explosion of energy. Sparkling Japanese yuzu meets spicy basil for an invigorating wake-up call.",
			Mood:        "Energetic",
		},
	}
}
