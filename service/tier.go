package service

import (
	"Crewly/models"
	"Crewly/types"
)

// Tier themes: five names per theme, lowest first.
var tierPresets = map[string][5]string{
	"nautical":   {"Deckhand", "Bosun", "First Mate", "Captain", "Commodore"},
	"expedition": {"Scout", "Trailblazer", "Pathfinder", "Expedition Lead", "Summit Legend"},
	"royal":      {"Page", "Squire", "Knight", "Baron", "Monarch"},
	"cosmic":     {"Stargazer", "Cadet", "Pilot", "Commander", "Voyager"},
}

// Level lower bounds on the 0-1000 score range.
var tierBounds = [5]float64{0, 200, 400, 600, 800}

// ThemeNames resolves a group's tier names: its custom list when it carries a
// valid one, the named preset otherwise, falling back to defaultTheme.
func ThemeNames(group *models.Group, defaultTheme string) [5]string {
	if group != nil {
		if custom := group.TierNames(); custom != nil {
			var names [5]string
			copy(names[:], custom)
			return names
		}
		if names, ok := tierPresets[group.TierTheme]; ok {
			return names
		}
	}
	if names, ok := tierPresets[defaultTheme]; ok {
		return names
	}
	return tierPresets["nautical"]
}

// ResolveTier maps a composite score to a tier. Pure and monotonic: a higher
// score never yields a lower level.
func ResolveTier(total float64, names [5]string) types.Tier {
	level := 1
	for i := len(tierBounds) - 1; i >= 0; i-- {
		if total >= tierBounds[i] {
			level = i + 1
			break
		}
	}
	return types.Tier{Level: level, Name: names[level-1]}
}
