package services

import (
	"regexp"
	"strings"
	"testing"
)

func TestNewPublicSlug(t *testing.T) {
	pattern := regexp.MustCompile(`^project-[a-z0-9]{26}-\d+$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		slug := NewPublicSlug()
		if !pattern.MatchString(slug) {
			t.Fatalf("slug %q does not match %s", slug, pattern)
		}
		if seen[slug] {
			t.Fatalf("duplicate slug generated: %q", slug)
		}
		seen[slug] = true
	}
}

func TestBuildShareLinks(t *testing.T) {
	links := buildShareLinks("Luxury Heights", "https://example.com/projects/public/project-abc-1")

	if links.PublicLink != "https://example.com/projects/public/project-abc-1" {
		t.Errorf("publicLink = %q", links.PublicLink)
	}
	if !strings.HasPrefix(links.Whatsapp, "https://wa.me/?text=") {
		t.Errorf("whatsapp link = %q", links.Whatsapp)
	}
	if !strings.Contains(links.Whatsapp, "Luxury+Heights") {
		t.Errorf("whatsapp link missing escaped project name: %q", links.Whatsapp)
	}
	if !strings.HasPrefix(links.Email, "mailto:?subject=Luxury+Heights&body=") {
		t.Errorf("email link = %q", links.Email)
	}
	if strings.Contains(links.Email, " ") {
		t.Errorf("email link contains unescaped spaces: %q", links.Email)
	}
}
