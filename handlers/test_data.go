// Note: To fill the page with demo content, use:
// curl -X POST "http://localhost:8080/api/test/seed-content?links=6" -H "Content-Type: application/json"

package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"orgportal/backend/models"
	"orgportal/backend/services/content"
)

// Predefined pools keep generated links looking like real page content.
var socialIcons = []string{
	"Instagram", "TikTok", "Youtube", "Facebook", "Twitter", "Linkedin", "Github",
}

var contactTitles = []string{
	"Hubungi Kami", "Gabung Kepanitiaan", "Daftar Anggota Baru",
	"Kerja Sama & Sponsorship", "Kotak Saran",
}

var sectionTitles = []string{
	"Tautan Kami", "Link Penting", "Kontak & Media Sosial",
}

// SeedContentHandler replaces the in-memory snapshot with generated demo
// content. It never touches the remote backend; saving the seeded content
// still requires a real admin session.
func SeedContentHandler(store *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		linkCount := 6
		if c := r.URL.Query().Get("links"); c != "" {
			n, err := strconv.Atoi(c)
			if err != nil || n < 1 || n > 30 {
				http.Error(w, "links must be between 1 and 30", http.StatusBadRequest)
				return
			}
			linkCount = n
		}

		snap := generateSnapshot(linkCount)
		store.ReplaceSnapshot(snap)
		log.Printf("seeded demo content with %d links", linkCount)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"links":   linkCount,
		})
	}
}

func generateSnapshot(linkCount int) models.ContentSnapshot {
	snap := models.DefaultSnapshot()

	name := gofakeit.Company()
	snap.Organization.Name = name
	snap.Organization.Tagline = gofakeit.Slogan()
	snap.Organization.Description = gofakeit.Paragraph(1, 3, 12, " ")
	snap.Organization.SectionTitle = pick(sectionTitles)

	snap.Podcast.Title = fmt.Sprintf("Podcast %s", gofakeit.HipsterWord())

	for i := 0; i < linkCount; i++ {
		var link models.SocialLink
		if i%2 == 0 {
			link = models.SocialLink{
				ID:        uuid.NewString(),
				Title:     pick(contactTitles),
				URL:       gofakeit.URL(),
				IconName:  "Phone",
				Category:  models.CategoryContact,
				Highlight: gofakeit.Bool(),
			}
		} else {
			icon := pick(socialIcons)
			link = models.SocialLink{
				ID:       uuid.NewString(),
				Title:    icon,
				URL:      fmt.Sprintf("https://%s.com/%s", strings.ToLower(icon), gofakeit.Username()),
				IconName: icon,
				Category: models.CategorySocial,
			}
		}
		snap.Links = append(snap.Links, link)
	}

	return snap
}

func pick(pool []string) string {
	return pool[gofakeit.Number(0, len(pool)-1)]
}
