package content

import "orgportal/backend/models"

// Reconcile merges the fallback tiers into one fully-populated snapshot,
// field-wise, in priority order remote > cached > defaults. An empty field
// means the tier never set it, so the next tier shows through; a branch is
// never replaced wholesale. Pure function, so the fallback chain is testable
// without any network.
func Reconcile(remote, cached *models.ContentSnapshot, defaults models.ContentSnapshot) models.ContentSnapshot {
	out := defaults.Clone()

	// Apply the lower-priority tier first so the higher one overwrites.
	if cached != nil {
		overlay(&out, *cached)
	}
	if remote != nil {
		overlay(&out, *remote)
	}
	return out
}

func overlay(dst *models.ContentSnapshot, src models.ContentSnapshot) {
	setIf(&dst.Organization.Name, src.Organization.Name)
	setIf(&dst.Organization.Tagline, src.Organization.Tagline)
	setIf(&dst.Organization.Description, src.Organization.Description)
	setIf(&dst.Organization.HeaderImage, src.Organization.HeaderImage)
	setIf(&dst.Organization.SectionTitle, src.Organization.SectionTitle)

	setIf(&dst.Podcast.Title, src.Podcast.Title)
	setIf(&dst.Podcast.VideoURL, src.Podcast.VideoURL)

	setIf(&dst.Theme.Background, src.Theme.Background)
	setIf(&dst.Theme.CardBackground, src.Theme.CardBackground)
	setIf(&dst.Theme.TextMain, src.Theme.TextMain)
	setIf(&dst.Theme.PrimaryButton, src.Theme.PrimaryButton)
	setIf(&dst.Theme.ButtonText, src.Theme.ButtonText)
	setIf(&dst.Theme.Accent, src.Theme.Accent)
	setIf(&dst.Theme.Navbar, src.Theme.Navbar)

	// The link list is replaced as a unit when the tier carries one; merging
	// two lists element-wise has no sensible meaning here.
	if src.Links != nil {
		dst.Links = make([]models.SocialLink, len(src.Links))
		copy(dst.Links, src.Links)
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
