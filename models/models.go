package models

// LinkCategory partitions links into the primary button list and the icon row.
type LinkCategory string

const (
	CategoryContact LinkCategory = "contact"
	CategorySocial  LinkCategory = "social"
)

// OrganizationProfile holds the editable header block of the page.
type OrganizationProfile struct {
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	Description  string `json:"description"`
	HeaderImage  string `json:"headerImage"`
	SectionTitle string `json:"sectionTitle"`
}

// PodcastInfo holds the embedded podcast block. VideoURL is stored as typed
// by the admin; conversion to an embeddable form happens at render time.
type PodcastInfo struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

type SocialLink struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	URL       string       `json:"url"`
	IconName  string       `json:"iconName,omitempty"`
	Category  LinkCategory `json:"category"`
	Highlight bool         `json:"highlight,omitempty"`
}

// ThemeSettings is the fixed set of admin-customizable color slots.
type ThemeSettings struct {
	Background     string `json:"background"`
	CardBackground string `json:"cardBackground"`
	TextMain       string `json:"textMain"`
	PrimaryButton  string `json:"primaryButton"`
	ButtonText     string `json:"buttonText"`
	Accent         string `json:"accent"`
	Navbar         string `json:"navbar"`
}

// ContentSnapshot is the unit of persistence: the whole page content saved
// and loaded atomically as one JSON document.
type ContentSnapshot struct {
	Organization OrganizationProfile `json:"organization"`
	Podcast      PodcastInfo         `json:"podcast"`
	Links        []SocialLink        `json:"links"`
	Theme        ThemeSettings       `json:"theme"`
}

// Clone returns a deep copy so callers can never mutate store state through
// a returned snapshot.
func (s ContentSnapshot) Clone() ContentSnapshot {
	out := s
	out.Links = make([]SocialLink, len(s.Links))
	copy(out.Links, s.Links)
	return out
}

// VideoFragment tags a header media URL whose content is a video when the
// URL shape alone cannot tell (e.g. a raw storage URL from an upload).
const VideoFragment = "#video"
