package service

import (
	"regexp"
	"time"
)

// Badge names awarded by the streak tracker.
const (
	BadgeQuickChef    = "Quick Chef"
	BadgeHealthyEater = "Healthy Eater"
	BadgeSpiceMaster  = "Spice Master"
)

var spicePattern = regexp.MustCompile(`(?i)(chili|chilli|spice|spicy|pepper)`)

// StreakUpdate holds the next profile values to persist after a save.
type StreakUpdate struct {
	LastCookedDate time.Time
	StreakCount    int
	Badges         []string
}

// ComputeStreakUpdate computes the updated cooking streak and badge set.
// It is a pure function: persistence is the caller's job.
//
// The streak counts consecutive calendar days, ignoring time of day:
// same day keeps the streak (minimum 1), the next day increments it, a
// gap resets it to 1. A lastCooked in the future (clock skew or a
// backdated profile) also resets to 1.
//
// Badges accrue as a monotonic union; a badge once earned is never removed.
func ComputeStreakUpdate(today time.Time, lastCooked *time.Time, currentStreak int, preference, ingredients string, badges []string) StreakUpdate {
	streak := currentStreak
	if lastCooked == nil {
		streak = 1
	} else {
		switch diff := calendarDayDifference(today, *lastCooked); {
		case diff == 0:
			if streak < 1 {
				streak = 1
			}
		case diff == 1:
			streak = currentStreak + 1
		default: // gap or negative diff
			streak = 1
		}
	}

	next := make([]string, 0, len(badges)+3)
	seen := make(map[string]bool, len(badges)+3)
	add := func(b string) {
		if !seen[b] {
			seen[b] = true
			next = append(next, b)
		}
	}
	for _, b := range badges {
		add(b)
	}
	add(BadgeQuickChef)
	if preference == "healthy" {
		add(BadgeHealthyEater)
	}
	if spicePattern.MatchString(ingredients) {
		add(BadgeSpiceMaster)
	}

	return StreakUpdate{
		LastCookedDate: truncateToDay(today),
		StreakCount:    streak,
		Badges:         next,
	}
}

// calendarDayDifference returns the number of calendar days from b to a,
// ignoring time of day. Both times are interpreted in a's location. The
// dates are rebuilt in UTC before subtracting so DST days (23 or 25 hours
// long) still count as exactly one day.
func calendarDayDifference(a, b time.Time) int {
	bl := b.In(a.Location())
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(bl.Year(), bl.Month(), bl.Day(), 0, 0, 0, 0, time.UTC)
	return int(da.Sub(db) / (24 * time.Hour))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
