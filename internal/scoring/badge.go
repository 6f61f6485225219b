package scoring

import "math"

// BadgeTier is an XP band with a display name.
type BadgeTier struct {
	Name  string
	MinXP int
	MaxXP int
}

// BadgeTiers are ordered from lowest to highest.
var BadgeTiers = []BadgeTier{
	{Name: "Iron", MinXP: 0, MaxXP: 499},
	{Name: "Silver", MinXP: 500, MaxXP: 1999},
	{Name: "Gold", MinXP: 2000, MaxXP: 4499},
	{Name: "Elite", MinXP: 4500, MaxXP: 6999},
	{Name: "Expert", MinXP: 7000, MaxXP: 9499},
	{Name: "Master", MinXP: 9500, MaxXP: math.MaxInt},
}

// Badge returns the tier name for a total XP value.
func Badge(xp int) string {
	for _, tier := range BadgeTiers {
		if xp >= tier.MinXP && xp <= tier.MaxXP {
			return tier.Name
		}
	}
	return BadgeTiers[0].Name
}

// NextBadge returns the next tier above xp and how much XP is still needed.
// At the top tier it returns "Master" and 0.
func NextBadge(xp int) (string, int) {
	for _, tier := range BadgeTiers {
		if tier.MinXP > xp {
			return tier.Name, tier.MinXP - xp
		}
	}
	return BadgeTiers[len(BadgeTiers)-1].Name, 0
}
