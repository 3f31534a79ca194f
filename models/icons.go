package models

// Icon identifies one of the drawable glyphs the link renderer knows about.
type Icon int

const (
	IconGeneric Icon = iota // globe, the fallback
	IconInstagram
	IconTikTok
	IconYouTube
	IconWhatsApp
	IconFacebook
	IconTwitter
	IconLinkedIn
	IconMail
	IconShop
	IconMapPin
	IconGithub
	IconPhone
)

var iconsByName = map[string]Icon{
	"Globe":     IconGeneric,
	"Instagram": IconInstagram,
	"TikTok":    IconTikTok,
	"Youtube":   IconYouTube,
	"WhatsApp":  IconWhatsApp,
	"Facebook":  IconFacebook,
	"Twitter":   IconTwitter,
	"Linkedin":  IconLinkedIn,
	"Mail":      IconMail,
	"Shop":      IconShop,
	"MapPin":    IconMapPin,
	"Github":    IconGithub,
	"Phone":     IconPhone,
}

// LookupIcon maps a stored icon name to a renderer glyph. Unknown or empty
// names resolve to IconGeneric rather than failing.
func LookupIcon(name string) Icon {
	if ic, ok := iconsByName[name]; ok {
		return ic
	}
	return IconGeneric
}
