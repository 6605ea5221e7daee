package engine

import "math"

// XPForLevel returns the XP cost to advance from level to level+1:
// floor(100 * 1.5^(level-1)). Strictly increasing and unbounded.
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

// CumulativeXPForLevel returns the total XP spent to reach the given level,
// i.e. the sum of XPForLevel(1..level-1). Level 1 costs nothing.
func CumulativeXPForLevel(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += XPForLevel(l)
	}
	return total
}

// LevelForTotalXP returns the smallest level whose cumulative cost covers
// totalXP. Negative input is treated as 0.
func LevelForTotalXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := 1
	xpNeeded := 0
	for totalXP >= xpNeeded+XPForLevel(level) {
		xpNeeded += XPForLevel(level)
		level++
	}
	return level
}

// LevelProgress returns the XP accumulated within the current level and the
// cost of the current level.
func LevelProgress(totalXP int) (currentXP, xpNeeded int) {
	if totalXP < 0 {
		totalXP = 0
	}
	level := LevelForTotalXP(totalXP)
	return totalXP - CumulativeXPForLevel(level), XPForLevel(level)
}

// LevelTitle maps a level to its title band; the highest matching
// threshold wins.
func LevelTitle(level int) string {
	bands := []struct {
		min   int
		title string
	}{
		{50, "Legendary Master"},
		{40, "Discipline Grandmaster"},
		{30, "Mental Titan"},
		{25, "Elite Warrior"},
		{20, "Master of Will"},
		{15, "Advanced Practitioner"},
		{10, "Dedicated Achiever"},
		{5, "Rising Star"},
	}
	for _, b := range bands {
		if level >= b.min {
			return b.title
		}
	}
	return "Beginner"
}

// StreakBonusPercent returns the XP bonus percentage earned by a streak.
func StreakBonusPercent(streak int) int {
	switch {
	case streak >= 30:
		return 50
	case streak >= 14:
		return 30
	case streak >= 7:
		return 15
	case streak >= 3:
		return 5
	default:
		return 0
	}
}

// MentalStrengthScore is a derived display metric in [0,100]:
// min(level*2,40) + min(streak*1.5,30) + min(completed/10,30), floored.
func MentalStrengthScore(level, streak, completed int) int {
	levelScore := math.Min(float64(level)*2, 40)
	streakScore := math.Min(float64(streak)*1.5, 30)
	completionScore := math.Min(float64(completed)/10, 30)

	score := int(math.Floor(levelScore + streakScore + completionScore))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
