package leaderboard

import (
	"math/rand"
	"testing"

	"github.com/obrev/obrev/internal/progression"
)

func TestStandingsIncludeYou(t *testing.T) {
	b := New(rand.New(rand.NewSource(1)))
	entries := b.Standings(progression.State{DisplayName: "Maya", XP: 2350, Streak: 4})

	if len(entries) != len(rivals)+1 {
		t.Fatalf("entries = %d, want %d", len(entries), len(rivals)+1)
	}

	you := YourRank(entries)
	if you.Name != "Maya" || !you.IsYou {
		t.Errorf("your row = %+v", you)
	}
	if you.Level != 3 {
		t.Errorf("your level = %d, want 3", you.Level)
	}
}

func TestStandingsSortedAndRanked(t *testing.T) {
	b := New(rand.New(rand.NewSource(7)))
	entries := b.Standings(progression.State{XP: 1000})

	for i := 1; i < len(entries); i++ {
		if entries[i].XP > entries[i-1].XP {
			t.Errorf("entries not sorted at %d: %d > %d", i, entries[i].XP, entries[i-1].XP)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
}

func TestDeterministicForSeed(t *testing.T) {
	you := progression.State{DisplayName: "Maya", XP: 500}

	a := New(rand.New(rand.NewSource(42))).Standings(you)
	b := New(rand.New(rand.NewSource(42))).Standings(you)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAnonymousFallbackName(t *testing.T) {
	b := New(rand.New(rand.NewSource(1)))
	you := YourRank(b.Standings(progression.State{}))
	if you.Name != "You" {
		t.Errorf("fallback name = %q, want You", you.Name)
	}
}
