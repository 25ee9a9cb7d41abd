package service

import (
	"testing"

	"Crewly/models"
)

func TestResolveTier_Bounds(t *testing.T) {
	names := tierPresets["nautical"]
	cases := []struct {
		total float64
		level int
		name  string
	}{
		{0, 1, "Deckhand"},
		{199, 1, "Deckhand"},
		{200, 2, "Bosun"},
		{399.9, 2, "Bosun"},
		{400, 3, "First Mate"},
		{600, 4, "Captain"},
		{799, 4, "Captain"},
		{800, 5, "Commodore"},
		{1000, 5, "Commodore"},
	}
	for _, c := range cases {
		tier := ResolveTier(c.total, names)
		if tier.Level != c.level || tier.Name != c.name {
			t.Fatalf("ResolveTier(%v) = level %d %q, want level %d %q",
				c.total, tier.Level, tier.Name, c.level, c.name)
		}
	}
}

func TestResolveTier_Monotonic(t *testing.T) {
	names := tierPresets["cosmic"]
	prev := 0
	for total := 0.0; total <= 1000; total += 10 {
		tier := ResolveTier(total, names)
		if tier.Level < prev {
			t.Fatalf("level dropped at total=%v: %d -> %d", total, prev, tier.Level)
		}
		prev = tier.Level
	}
}

func TestThemeNames_CustomOverridesTheme(t *testing.T) {
	g := &models.Group{
		TierTheme:       "royal",
		CustomTierNames: []byte(`["Rookie","Regular","Veteran","Elite","Legend"]`),
	}
	names := ThemeNames(g, "nautical")
	if names[0] != "Rookie" || names[4] != "Legend" {
		t.Fatalf("custom names ignored: %v", names)
	}
}

func TestThemeNames_InvalidCustomFallsBack(t *testing.T) {
	// wrong length, fall through to the theme
	g := &models.Group{
		TierTheme:       "royal",
		CustomTierNames: []byte(`["Only","Three","Names"]`),
	}
	names := ThemeNames(g, "nautical")
	if names != tierPresets["royal"] {
		t.Fatalf("expected royal preset, got %v", names)
	}
}

func TestThemeNames_UnknownThemeUsesDefault(t *testing.T) {
	g := &models.Group{TierTheme: "nonexistent"}
	if names := ThemeNames(g, "expedition"); names != tierPresets["expedition"] {
		t.Fatalf("expected expedition preset, got %v", names)
	}
	if names := ThemeNames(nil, "also-unknown"); names != tierPresets["nautical"] {
		t.Fatalf("expected nautical fallback, got %v", names)
	}
}
