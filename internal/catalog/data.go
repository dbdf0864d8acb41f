package catalog

// GenreAll is the selector value that disables genre filtering.
const GenreAll = "All"

var genres = []string{GenreAll, "Electronic", "Jazz", "Hip Hop", "Synthwave", "Folk", "Rock"}

// seedProducts returns the catalog dataset. Slice order is the catalog
// declaration order that listings and suggestions preserve.
func seedProducts() []Product {
	ps := []Product{
		{
			ID:          1,
			Title:       "Cosmic Echoes",
			Artist:      "The Stardust Crusaders",
			PriceCents:  2999,
			Image:       "https://images.unsplash.com/photo-1500462918059-b1a0cb512f1d?w=500&h=500&fit=crop",
			Genre:       "Electronic",
			Year:        2023,
			Description: "A mesmerizing journey through cosmic soundscapes, blending ambient textures with pulsating electronic beats.",
			Tracklist:   []string{"Nebula Dawn", "Stellar Drift", "Cosmic Highway", "Dark Matter", "Event Horizon", "Supernova", "Gravity Wells", "Light Years Away"},
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:           2,
			Title:        "Midnight Moods",
			Artist:       "Luna Simone",
			PriceCents:   3499,
			Image:        "https://images.unsplash.com/photo-1500099817043-86d46000d58f?w=500&h=500&fit=crop",
			Genre:        "Jazz",
			Year:         2022,
			Description:  "Sultry jazz vocals meet sophisticated instrumentals in this late-night masterpiece.",
			Tracklist:    []string{"After Hours", "Velvet Moon", "City Lights", "Whispered Secrets", "Nocturnal", "Blue Reverie", "Starlit Café"},
			InStock:      true,
			IsBestSeller: true,
		},
		{
			ID:          3,
			Title:       "Urban Legends",
			Artist:      "Street Poets",
			PriceCents:  2799,
			Image:       "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=500&h=500&fit=crop",
			Genre:       "Hip Hop",
			Year:        2024,
			Description: "Raw storytelling meets hard-hitting production from the concrete jungle.",
			Tracklist:   []string{"Block Stories", "Rising Sun", "Concrete Dreams", "Street Philosophy", "Night Shift", "Crown Heights", "Legacy"},
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:           4,
			Title:        "Neon Dreams",
			Artist:       "Synthwave Collective",
			PriceCents:   3299,
			Image:        "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=500&h=500&fit=crop",
			Genre:        "Synthwave",
			Year:         2023,
			Description:  "Retro-futuristic soundscapes that transport you to neon-lit streets.",
			Tracklist:    []string{"Digital Sunset", "Chrome Heart", "Arcade Runner", "Night Drive", "Electric City", "Laser Grid", "Retro Future", "Endless Highway"},
			InStock:      true,
			IsBestSeller: true,
		},
		{
			ID:                 5,
			Title:              "Acoustic Sessions",
			Artist:             "Emma Hartley",
			PriceCents:         2299,
			OriginalPriceCents: 2699,
			Image:              "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=500&h=500&fit=crop",
			Genre:              "Folk",
			Year:               2023,
			Description:        "Intimate acoustic performances recorded live in a single session.",
			Tracklist:          []string{"Homeward Bound", "Autumn Leaves", "River Song", "Mountain High", "Simple Days", "Wanderer"},
			InStock:            true,
			IsSale:             true,
		},
		{
			ID:          6,
			Title:       "Electric Soul",
			Artist:      "The Voltage Band",
			PriceCents:  3199,
			Image:       "https://images.unsplash.com/photo-1498038432885-c6f3f1b912ee?w=500&h=500&fit=crop",
			Genre:       "Rock",
			Year:        2024,
			Description: "High-energy rock infused with soul and funk influences.",
			Tracklist:   []string{"Thunder Road", "Soul Fire", "Electric Avenue", "Power Surge", "Midnight Rider", "Voltage Drop", "Final Countdown"},
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:                 7,
			Title:              "Ocean Waves",
			Artist:             "Ambient Dreams",
			PriceCents:         2499,
			OriginalPriceCents: 2999,
			Image:              "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=500&h=500&fit=crop",
			Genre:              "Electronic",
			Year:               2023,
			Description:        "Peaceful ambient soundscapes inspired by the rhythm of the ocean.",
			Tracklist:          []string{"Tidal Flow", "Deep Blue", "Coral Reef", "Sunset Horizon", "Moonlit Shore", "Pacific Dreams"},
			InStock:            true,
			IsSale:             true,
		},
		{
			ID:           8,
			Title:        "Golden Hour",
			Artist:       "The Sunset Collective",
			PriceCents:   2899,
			Image:        "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=500&h=500&fit=crop",
			Genre:        "Jazz",
			Year:         2024,
			Description:  "Warm, melodic jazz perfect for sunset listening sessions.",
			Tracklist:    []string{"Amber Light", "Twilight Serenade", "Evening Breeze", "Golden Memories", "Dusk Dance"},
			InStock:      true,
			IsBestSeller: true,
		},
		{
			ID:                 9,
			Title:              "Vintage Vibes",
			Artist:             "Retro Revival",
			PriceCents:         1999,
			OriginalPriceCents: 2599,
			Image:              "https://images.unsplash.com/photo-1484755560615-a4c64e778a6c?w=500&h=500&fit=crop",
			Genre:              "Rock",
			Year:               2022,
			Description:        "Classic rock sounds with a modern twist.",
			Tracklist:          []string{"Time Machine", "Old School", "Vinyl Days", "Retro Groove", "Classic Feel"},
			InStock:            true,
			IsSale:             true,
		},
		{
			ID:          10,
			Title:       "City Nights",
			Artist:      "Metro Sound",
			PriceCents:  3399,
			Image:       "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=500&h=500&fit=crop",
			Genre:       "Hip Hop",
			Year:        2024,
			Description: "Urban beats that capture the energy of the city after dark.",
			Tracklist:   []string{"Neon Streets", "Midnight Metro", "Urban Pulse", "City Anthem", "Night Crawler", "Downtown"},
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:           11,
			Title:        "Forest Whispers",
			Artist:       "Nature Sound",
			PriceCents:   2699,
			Image:        "https://images.unsplash.com/photo-1518609878373-06d740f60d8b?w=500&h=500&fit=crop",
			Genre:        "Folk",
			Year:         2023,
			Description:  "Organic folk melodies inspired by the tranquility of nature.",
			Tracklist:    []string{"Morning Dew", "Woodland Path", "River Flow", "Mountain Echo", "Sunset Trail"},
			InStock:      true,
			IsBestSeller: true,
		},
		{
			ID:          12,
			Title:       "Digital Horizon",
			Artist:      "Cyber Wave",
			PriceCents:  3599,
			Image:       "https://images.unsplash.com/photo-1571330735066-03aaa9429d89?w=500&h=500&fit=crop",
			Genre:       "Synthwave",
			Year:        2024,
			Description: "Futuristic synthwave pushing the boundaries of electronic music.",
			Tracklist:   []string{"Binary Dreams", "Cyber City", "Digital Dawn", "Neon Pulse", "Future State", "Virtual Reality"},
			InStock:     true,
			IsNew:       true,
		},
	}

	for i := range ps {
		ps[i].Reviews = generateReviews(ps[i].ID)
	}
	return ps
}
