package content

import (
	"testing"

	"orgportal/backend/models"
)

func TestReconcileDefaultsOnly(t *testing.T) {
	got := Reconcile(nil, nil, models.DefaultSnapshot())
	want := models.DefaultSnapshot()

	if got.Podcast.Title != want.Podcast.Title {
		t.Errorf("Expected default podcast title %q, got %q", want.Podcast.Title, got.Podcast.Title)
	}
	if got.Theme != want.Theme {
		t.Errorf("Expected default theme, got %+v", got.Theme)
	}
	if got.Links == nil {
		t.Error("Expected non-nil link list after reconcile")
	}
}

func TestReconcilePartialRemoteOverDefaults(t *testing.T) {
	remote := &models.ContentSnapshot{}
	remote.Organization.Name = "HMP Bisnis Digital"
	remote.Theme.Accent = "#ff0000"

	got := Reconcile(remote, nil, models.DefaultSnapshot())

	if got.Organization.Name != "HMP Bisnis Digital" {
		t.Errorf("Expected remote name to win, got %q", got.Organization.Name)
	}
	if got.Theme.Accent != "#ff0000" {
		t.Errorf("Expected remote accent to win, got %q", got.Theme.Accent)
	}

	// Fields the remote tier never set must show the defaults, not zeroes.
	def := models.DefaultSnapshot()
	if got.Theme.Background != def.Theme.Background {
		t.Errorf("Expected default background %q, got %q", def.Theme.Background, got.Theme.Background)
	}
	if got.Podcast.VideoURL != def.Podcast.VideoURL {
		t.Errorf("Expected default video URL, got %q", got.Podcast.VideoURL)
	}
	if got.Organization.SectionTitle != def.Organization.SectionTitle {
		t.Errorf("Expected default section title, got %q", got.Organization.SectionTitle)
	}
}

func TestReconcilePriorityOrder(t *testing.T) {
	remote := &models.ContentSnapshot{}
	remote.Organization.Tagline = "from remote"

	cached := &models.ContentSnapshot{}
	cached.Organization.Tagline = "from cache"
	cached.Organization.Description = "cached description"

	got := Reconcile(remote, cached, models.DefaultSnapshot())

	if got.Organization.Tagline != "from remote" {
		t.Errorf("Expected remote tier to beat cache, got %q", got.Organization.Tagline)
	}
	// A field only the cache set still shows through.
	if got.Organization.Description != "cached description" {
		t.Errorf("Expected cached description to survive, got %q", got.Organization.Description)
	}
}

func TestReconcileCachedWhenNoRemote(t *testing.T) {
	cached := &models.ContentSnapshot{}
	cached.Organization.Name = "Cached Org"
	cached.Links = []models.SocialLink{{ID: "1", Title: "IG", Category: models.CategorySocial}}

	got := Reconcile(nil, cached, models.DefaultSnapshot())

	if got.Organization.Name != "Cached Org" {
		t.Errorf("Expected cached name, got %q", got.Organization.Name)
	}
	if len(got.Links) != 1 || got.Links[0].ID != "1" {
		t.Errorf("Expected cached links, got %+v", got.Links)
	}
}

func TestReconcileLinksReplacedWholesale(t *testing.T) {
	cached := &models.ContentSnapshot{
		Links: []models.SocialLink{{ID: "old", Title: "Old"}},
	}
	remote := &models.ContentSnapshot{
		Links: []models.SocialLink{{ID: "a"}, {ID: "b"}},
	}

	got := Reconcile(remote, cached, models.DefaultSnapshot())

	if len(got.Links) != 2 {
		t.Fatalf("Expected remote link list to replace cached one, got %d links", len(got.Links))
	}

	// The merged list must be a copy, not an alias of the remote slice.
	got.Links[0].ID = "mutated"
	if remote.Links[0].ID != "a" {
		t.Error("Reconcile aliased the remote link slice")
	}
}
