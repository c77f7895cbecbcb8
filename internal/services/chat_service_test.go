package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParticipantKeyOrderInsensitive(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	k1 := ParticipantKey([]uuid.UUID{a, b})
	k2 := ParticipantKey([]uuid.UUID{b, a})
	if k1 != k2 {
		t.Errorf("keys differ for the same participant set: %q vs %q", k1, k2)
	}

	parts := strings.Split(k1, ":")
	if len(parts) != 2 {
		t.Fatalf("expected 2 key segments, got %d (%q)", len(parts), k1)
	}
	if parts[0] > parts[1] {
		t.Errorf("key segments not sorted: %q", k1)
	}
}

func TestParticipantKeyDistinctSets(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	if ParticipantKey([]uuid.UUID{a, b}) == ParticipantKey([]uuid.UUID{a, c}) {
		t.Error("different participant sets produced the same key")
	}
}
