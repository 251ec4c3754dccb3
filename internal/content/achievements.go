package content

// Achievement is a catalog entry. The bonus XP is granted once, on
// first unlock.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	XP          int
}

// Achievements returns the full catalog in display order.
func Achievements() []Achievement {
	return achievements
}

// AchievementByID looks up a catalog entry, nil if absent.
func AchievementByID(id string) *Achievement {
	for i := range achievements {
		if achievements[i].ID == id {
			return &achievements[i]
		}
	}
	return nil
}

var achievements = []Achievement{
	{
		ID:          "first-module",
		Title:       "First Steps",
		Description: "Complete your first module",
		Icon:        "🎯",
		XP:          100,
	},
	{
		ID:          "perfect-quiz",
		Title:       "Perfect Score",
		Description: "Score 100% on any quiz",
		Icon:        "💯",
		XP:          200,
	},
	{
		ID:          "week-streak",
		Title:       "Dedicated Learner",
		Description: "Study for 7 days in a row",
		Icon:        "🔥",
		XP:          300,
	},
	{
		ID:          "all-modules",
		Title:       "Master of Obstetrics",
		Description: "Complete all modules",
		Icon:        "👑",
		XP:          1000,
	},
	{
		ID:          "speed-demon",
		Title:       "Speed Demon",
		Description: "Complete a quiz in under 2 minutes",
		Icon:        "⚡",
		XP:          150,
	},
	{
		ID:          "night-owl",
		Title:       "Night Owl",
		Description: "Study after midnight",
		Icon:        "🦉",
		XP:          100,
	},
}
