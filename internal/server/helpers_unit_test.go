package server

import (
	"testing"

	"mindease/backend/internal/wellness"
)

func TestClaimHasAudience(t *testing.T) {
	if !claimHasAudience("expected", "expected") {
		t.Fatalf("expected string audience to match")
	}
	if claimHasAudience("other", "expected") {
		t.Fatalf("expected mismatched string audience to fail")
	}
	if !claimHasAudience([]any{"x", "expected", "y"}, "expected") {
		t.Fatalf("expected []any audience to match")
	}
	if !claimHasAudience([]string{"x", "expected", "y"}, "expected") {
		t.Fatalf("expected []string audience to match")
	}
	if claimHasAudience(nil, "expected") {
		t.Fatalf("expected nil audience to fail")
	}
}

func TestParseLimit(t *testing.T) {
	cases := map[string]int{
		"":      defaultListLimit,
		"abc":   defaultListLimit,
		"-3":    defaultListLimit,
		" 7 ":   7,
		"10000": maxListLimit,
	}
	for raw, want := range cases {
		if got := parseLimit(raw); got != want {
			t.Fatalf("parseLimit(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestNormalizeRequestMode(t *testing.T) {
	if got := normalizeRequestMode("  "); got != "auto" {
		t.Fatalf("expected blank mode to default to auto, got %q", got)
	}
	if got := normalizeRequestMode(" timetable "); got != "timetable" {
		t.Fatalf("expected trimmed mode, got %q", got)
	}
}

func TestSessionRegistrySharesDefaultMemory(t *testing.T) {
	registry := NewSessionRegistry(2)
	if registry.Memory("") != registry.Memory("   ") {
		t.Fatalf("expected blank session ids to share the default memory")
	}
	if registry.Len() != 0 {
		t.Fatalf("expected shared memory to not count as a session, got %d", registry.Len())
	}
}

func TestSessionRegistryEvictsLeastRecentlyUsed(t *testing.T) {
	registry := NewSessionRegistry(2)
	a := registry.Memory("a")
	a.Record([]wellness.Topic{wellness.TopicSleep})
	registry.Memory("b")
	if registry.Memory("a") != a {
		t.Fatalf("expected session a to be reused")
	}
	registry.Memory("c")

	if registry.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", registry.Len())
	}
	if registry.Memory("a").Len() != 1 {
		t.Fatalf("expected recently used session a to survive eviction")
	}
	if registry.Memory("b").Len() != 0 {
		t.Fatalf("expected evicted session b to start fresh")
	}
}
