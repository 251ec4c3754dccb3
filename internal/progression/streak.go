package progression

import "time"

// StudyDayFormat is the layout for LastStudyDay values.
const StudyDayFormat = "2006-01-02"

// nextStreak applies the daily streak rule given the previous study day
// and today's date. The rule works on whole local calendar days:
//
//	same day (or clock moved backwards)  -> streak unchanged
//	exactly one day later                -> streak + 1
//	two or more days later               -> reset to 1
//	no previous study day                -> 1
//
// Both days are re-parsed in UTC before differencing so the count is a
// pure calendar-day distance; a DST-shortened 23-hour day still counts
// as one day.
func nextStreak(streak int, lastDay string, today time.Time) int {
	if lastDay == "" {
		return 1
	}
	prev, err := time.Parse(StudyDayFormat, lastDay)
	if err != nil {
		// Unparseable history: start over rather than guessing.
		return 1
	}
	cur, _ := time.Parse(StudyDayFormat, today.Format(StudyDayFormat))
	diff := int(cur.Sub(prev).Hours() / 24)
	switch {
	case diff <= 0:
		return streak
	case diff == 1:
		return streak + 1
	default:
		return 1
	}
}
