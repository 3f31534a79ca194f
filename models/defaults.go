package models

// DefaultTheme matches the palette the page shipped with before themes
// became editable.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		Background:     "#f0f0f0",
		CardBackground: "#ffffff",
		TextMain:       "#102C57",
		PrimaryButton:  "#102C57",
		ButtonText:     "#ffffff",
		Accent:         "#FFC300",
		Navbar:         "#ffffff",
	}
}

// DefaultSnapshot is the built-in fallback tier: every field defined, so a
// load that never reaches remote or cache still yields a complete page.
func DefaultSnapshot() ContentSnapshot {
	return ContentSnapshot{
		Organization: OrganizationProfile{
			Name:         "",
			Tagline:      "",
			Description:  "",
			HeaderImage:  "",
			SectionTitle: "Tautan Kami",
		},
		Podcast: PodcastInfo{
			Title:    "Podcast Terbaru",
			VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		Links: []SocialLink{},
		Theme: DefaultTheme(),
	}
}
