// Package leaderboard produces the practice leaderboard. There is no
// server; rivals are generated locally so the board still gives the
// student something to chase.
package leaderboard

import (
	"math/rand"
	"sort"

	"github.com/obrev/obrev/internal/progression"
)

// Entry is one row on the board.
type Entry struct {
	Rank   int
	Name   string
	Avatar string
	XP     int
	Level  int
	Streak int
	IsYou  bool
}

// rival is a generated competitor archetype. XP is jittered per board
// so standings shift between visits.
type rival struct {
	name    string
	avatar  string
	baseXP  int
	jitter  int
	streak  int
}

var rivals = []rival{
	{name: "Priya", avatar: "🩺", baseXP: 4200, jitter: 800, streak: 12},
	{name: "Jordan", avatar: "📚", baseXP: 3500, jitter: 700, streak: 5},
	{name: "Sam", avatar: "🦉", baseXP: 2900, jitter: 600, streak: 9},
	{name: "Alexis", avatar: "⚡", baseXP: 2100, jitter: 500, streak: 3},
	{name: "Noor", avatar: "🌙", baseXP: 1400, jitter: 400, streak: 6},
	{name: "Casey", avatar: "🎯", baseXP: 800, jitter: 300, streak: 1},
	{name: "River", avatar: "🔥", baseXP: 300, jitter: 200, streak: 2},
}

// Board generates standings for one visit.
type Board struct {
	rng *rand.Rand
}

// New creates a board over an injected random source, so tests can
// seed it deterministically.
func New(rng *rand.Rand) *Board {
	return &Board{rng: rng}
}

// Standings merges the student into the generated rivals and returns
// rows sorted by XP descending with ranks assigned.
func (b *Board) Standings(you progression.State) []Entry {
	entries := make([]Entry, 0, len(rivals)+1)
	for _, r := range rivals {
		xp := r.baseXP + b.rng.Intn(2*r.jitter+1) - r.jitter
		if xp < 0 {
			xp = 0
		}
		entries = append(entries, Entry{
			Name:   r.name,
			Avatar: r.avatar,
			XP:     xp,
			Level:  xp/progression.XPPerLevel + 1,
			Streak: r.streak,
		})
	}

	name := you.DisplayName
	if name == "" {
		name = "You"
	}
	entries = append(entries, Entry{
		Name:   name,
		Avatar: you.Avatar,
		XP:     you.XP,
		Level:  you.Level(),
		Streak: you.Streak,
		IsYou:  true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].XP > entries[j].XP
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// YourRank returns the student's row from standings.
func YourRank(entries []Entry) Entry {
	for _, e := range entries {
		if e.IsYou {
			return e
		}
	}
	return Entry{}
}
