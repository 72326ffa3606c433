package pages

// Page is a marketing page with no upstream data dependency. The SPA
// chrome renders these as-is.
type Page struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Tagline  string   `json:"tagline"`
	Sections []string `json:"sections"`
}

var catalog = []Page{
	{
		Slug:    "home",
		Title:   "LuxeStay Hotels",
		Tagline: "Where every stay feels like a celebration.",
		Sections: []string{
			"hero",
			"overview",
			"rooms-preview",
		},
	},
	{
		Slug:    "about",
		Title:   "About LuxeStay",
		Tagline: "Two decades of hospitality across 200+ branches.",
		Sections: []string{
			"story",
			"values",
		},
	},
	{
		Slug:    "dining",
		Title:   "Dining",
		Tagline: "Seasonal menus from dawn to midnight.",
		Sections: []string{
			"restaurants",
			"room-service",
		},
	},
	{
		Slug:    "gallery",
		Title:   "Gallery",
		Tagline: "Rooms, lobbies and skylines.",
		Sections: []string{
			"rooms",
			"common-areas",
		},
	},
	{
		Slug:    "offers",
		Title:   "Offers",
		Tagline: "Use LUXESTAY for 500 off your stay.",
		Sections: []string{
			"promo",
			"seasonal",
		},
	},
}

// Catalog returns every marketing page in display order.
func Catalog() []Page {
	return catalog
}

// BySlug returns the page for slug, if present.
func BySlug(slug string) (Page, bool) {
	for _, p := range catalog {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}
