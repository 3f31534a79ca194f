package models

import "testing"

func TestLookupIconFallsBackToGeneric(t *testing.T) {
	cases := []struct {
		name string
		want Icon
	}{
		{"Instagram", IconInstagram},
		{"TikTok", IconTikTok},
		{"Youtube", IconYouTube},
		{"Globe", IconGeneric},
		{"", IconGeneric},
		{"NotAnIcon", IconGeneric},
		{"instagram", IconGeneric}, // names are case-sensitive keys
	}
	for _, tc := range cases {
		if got := LookupIcon(tc.name); got != tc.want {
			t.Errorf("LookupIcon(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	orig := DefaultSnapshot()
	orig.Links = []SocialLink{{ID: "1", Title: "IG"}}

	clone := orig.Clone()
	clone.Links[0].Title = "changed"
	clone.Organization.Name = "changed"

	if orig.Links[0].Title != "IG" {
		t.Error("Clone shares the link slice with the original")
	}
	if orig.Organization.Name == "changed" {
		t.Error("Clone shares organization state with the original")
	}
}

func TestDefaultSnapshotFullyPopulated(t *testing.T) {
	def := DefaultSnapshot()
	if def.Links == nil {
		t.Error("Default links must be non-nil")
	}
	theme := def.Theme
	for slot, v := range map[string]string{
		"background":     theme.Background,
		"cardBackground": theme.CardBackground,
		"textMain":       theme.TextMain,
		"primaryButton":  theme.PrimaryButton,
		"buttonText":     theme.ButtonText,
		"accent":         theme.Accent,
		"navbar":         theme.Navbar,
	} {
		if v == "" {
			t.Errorf("Default theme slot %s is empty", slot)
		}
	}
}
